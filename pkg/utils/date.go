package utils

import "time"

// FirstDayOfMonth retorna o primeiro instante do mês em UTC
func FirstDayOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth retorna a quantidade de dias do mês, considerando anos bissextos
func DaysInMonth(year int, month time.Month) int {
	// Dia 0 do mês seguinte é o último dia do mês informado
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// EndOfDay retorna o último instante representável no Postgres (microsegundos) do dia
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Microsecond), t.Location())
}
