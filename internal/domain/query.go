package domain

import (
	"time"

	"github.com/vfg2006/transaction-dashboard-api/pkg/utils"
)

// DateRange é um critério sobre dateOfSale. From é sempre inclusivo;
// To é inclusivo apenas quando ToInclusive é verdadeiro
type DateRange struct {
	From        time.Time
	To          time.Time
	ToInclusive bool
}

// Contains informa se t está dentro do intervalo
func (r DateRange) Contains(t time.Time) bool {
	if t.Before(r.From) {
		return false
	}
	if r.ToInclusive {
		return !t.After(r.To)
	}
	return t.Before(r.To)
}

// MonthRange retorna [primeiro dia do mês, primeiro dia do mês seguinte).
// Dezembro vira janeiro do ano seguinte.
func MonthRange(year int, month time.Month) DateRange {
	start := utils.FirstDayOfMonth(year, month)
	return DateRange{
		From: start,
		To:   start.AddDate(0, 1, 0),
	}
}

// YearRange retorna [year-01-01, year-12-31] com os dois extremos inclusivos.
// O limite superior é a meia-noite de 31/12, mantido por compatibilidade com a listagem original.
func YearRange(year int) DateRange {
	return DateRange{
		From:        time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:          time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		ToInclusive: true,
	}
}

// CalendarMonthRange retorna do primeiro instante do mês até o último instante
// do último dia, calculado pela quantidade de dias do mês
func CalendarMonthRange(year int, month time.Month) DateRange {
	lastDay := time.Date(year, month, utils.DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	return DateRange{
		From:        utils.FirstDayOfMonth(year, month),
		To:          utils.EndOfDay(lastDay),
		ToInclusive: true,
	}
}

// TransactionFilter agrupa os critérios aplicados sobre as transações.
// Um filtro vazio seleciona todos os registros.
type TransactionFilter struct {
	DateRange   *DateRange
	TitleSearch string
}

// WithDateRange substitui o intervalo de datas; a última atribuição prevalece
func (f TransactionFilter) WithDateRange(r DateRange) TransactionFilter {
	f.DateRange = &r
	return f
}

func (f TransactionFilter) WithTitleSearch(search string) TransactionFilter {
	f.TitleSearch = search
	return f
}

// IsEmpty informa se o filtro não restringe nenhum registro
func (f TransactionFilter) IsEmpty() bool {
	return f.DateRange == nil && f.TitleSearch == ""
}

// GroupKey é a chave de agrupamento de uma agregação
type GroupKey string

const (
	GroupByCategory GroupKey = "category"
	GroupByMonth    GroupKey = "month"
	GroupByDay      GroupKey = "day"
)

// Aggregation descreve uma contagem agrupada sobre um conjunto filtrado
type Aggregation struct {
	Filter  TransactionFilter
	GroupBy GroupKey
}

// GroupCount é uma linha de uma agregação. Category é preenchido quando a
// chave é categoria; Bucket quando a chave é mês ou dia.
type GroupCount struct {
	Category string
	Bucket   int
	Count    int64
}
