package dashboard

import (
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"github.com/vfg2006/transaction-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/transaction-dashboard-api/pkg/utils"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100

	minYear = 1
	maxYear = 9999
)

// ListParams são os parâmetros crus da listagem, como chegam na query string
type ListParams struct {
	Search  string
	Month   string
	Year    string
	Page    string
	PerPage string
}

func parseMonth(value string) (time.Month, error) {
	month, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || month < 1 || month > 12 {
		return 0, NewDashboardError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, "month="+value)
	}
	return time.Month(month), nil
}

func parseYear(value string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || year < minYear || year > maxYear {
		return 0, NewDashboardError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, "year="+value)
	}
	return year, nil
}

// parsePeriod exige mês e ano e valida os dois
func parsePeriod(month, year string) (int, time.Month, error) {
	if strings.TrimSpace(month) == "" || strings.TrimSpace(year) == "" {
		return 0, 0, NewDashboardError(ErrMonthYearRequired, apiErrors.ErrMissingRequiredData, "")
	}

	m, err := parseMonth(month)
	if err != nil {
		return 0, 0, err
	}

	y, err := parseYear(year)
	if err != nil {
		return 0, 0, err
	}

	return y, m, nil
}

// buildListFilter monta o filtro da listagem. O intervalo do ano é
// atribuído depois do mês e por isso prevalece quando ambos existem.
func buildListFilter(params ListParams, now time.Time) (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{}

	var year int
	hasYear := strings.TrimSpace(params.Year) != ""
	if hasYear {
		y, err := parseYear(params.Year)
		if err != nil {
			return filter, err
		}
		year = y
	}

	if strings.TrimSpace(params.Month) != "" {
		month, err := parseMonth(params.Month)
		if err != nil {
			return filter, err
		}

		monthYear := now.UTC().Year()
		if hasYear {
			monthYear = year
		}
		filter = filter.WithDateRange(domain.MonthRange(monthYear, month))
	}

	if hasYear {
		filter = filter.WithDateRange(domain.YearRange(year))
	}

	if params.Search != "" {
		filter = filter.WithTitleSearch(params.Search)
	}

	return filter, nil
}

// buildPagination aplica os padrões; perPage acima de MaxPerPage volta ao padrão
func buildPagination(params ListParams) domain.Pagination {
	perPage := utils.PositiveIntOrDefault(params.PerPage, DefaultPerPage)
	if perPage > MaxPerPage {
		perPage = DefaultPerPage
	}

	return domain.Pagination{
		Page:    utils.PositiveIntOrDefault(params.Page, DefaultPage),
		PerPage: perPage,
	}
}
