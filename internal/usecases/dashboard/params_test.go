package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
)

func TestBuildListFilter(t *testing.T) {
	now := time.Date(2023, time.August, 10, 12, 0, 0, 0, time.UTC)
	yearRange := domain.YearRange(2022)
	monthRange := domain.MonthRange(2023, time.March)

	tests := []struct {
		name   string
		params ListParams
		want   domain.TransactionFilter
	}{
		{
			name:   "sem parâmetros",
			params: ListParams{},
			want:   domain.TransactionFilter{},
		},
		{
			name:   "mês usa o ano corrente",
			params: ListParams{Month: "3"},
			want:   domain.TransactionFilter{DateRange: &monthRange},
		},
		{
			name:   "ano prevalece sobre o mês",
			params: ListParams{Month: "3", Year: "2022"},
			want:   domain.TransactionFilter{DateRange: &yearRange},
		},
		{
			name:   "busca por título",
			params: ListParams{Search: "shirt", Year: "2022"},
			want:   domain.TransactionFilter{DateRange: &yearRange, TitleSearch: "shirt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := buildListFilter(tt.params, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, filter)
		})
	}
}

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name   string
		params ListParams
		want   domain.Pagination
	}{
		{name: "padrão", params: ListParams{}, want: domain.Pagination{Page: 1, PerPage: 10}},
		{name: "valores válidos", params: ListParams{Page: "3", PerPage: "25"}, want: domain.Pagination{Page: 3, PerPage: 25}},
		{name: "não numéricos", params: ListParams{Page: "x", PerPage: "y"}, want: domain.Pagination{Page: 1, PerPage: 10}},
		{name: "zero e negativo", params: ListParams{Page: "0", PerPage: "-1"}, want: domain.Pagination{Page: 1, PerPage: 10}},
		{name: "perPage no limite", params: ListParams{PerPage: "100"}, want: domain.Pagination{Page: 1, PerPage: 100}},
		{name: "perPage acima do limite", params: ListParams{PerPage: "2305843009213693952"}, want: domain.Pagination{Page: 1, PerPage: 10}},
		{name: "perPage além de int", params: ListParams{PerPage: "99999999999999999999"}, want: domain.Pagination{Page: 1, PerPage: 10}},
		{name: "página enorme", params: ListParams{Page: "1000000000000000000"}, want: domain.Pagination{Page: 1000000000000000000, PerPage: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildPagination(tt.params))
		})
	}
}

func TestParsePeriod(t *testing.T) {
	year, month, err := parsePeriod("12", "2021")
	require.NoError(t, err)
	assert.Equal(t, 2021, year)
	assert.Equal(t, time.December, month)

	_, _, err = parsePeriod(" ", "2021")
	assert.ErrorIs(t, err, ErrMonthYearRequired)

	_, _, err = parsePeriod("1", "10000")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
