package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{name: "janeiro", year: 2022, month: time.January, want: 31},
		{name: "fevereiro ano comum", year: 2022, month: time.February, want: 28},
		{name: "fevereiro ano bissexto", year: 2024, month: time.February, want: 29},
		{name: "fevereiro 1900 não bissexto", year: 1900, month: time.February, want: 28},
		{name: "abril", year: 2022, month: time.April, want: 30},
		{name: "dezembro", year: 2022, month: time.December, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month))
		})
	}
}

func TestEndOfDay(t *testing.T) {
	day := time.Date(2022, 2, 28, 0, 0, 0, 0, time.UTC)

	end := EndOfDay(day)

	assert.Equal(t, time.Date(2022, 2, 28, 23, 59, 59, 999999000, time.UTC), end)
	assert.True(t, end.Before(time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPositiveIntOrDefault(t *testing.T) {
	assert.Equal(t, 3, PositiveIntOrDefault("3", 1))
	assert.Equal(t, 3, PositiveIntOrDefault(" 3 ", 1))
	assert.Equal(t, 1, PositiveIntOrDefault("", 1))
	assert.Equal(t, 10, PositiveIntOrDefault("abc", 10))
	assert.Equal(t, 10, PositiveIntOrDefault("0", 10))
	assert.Equal(t, 10, PositiveIntOrDefault("-5", 10))
	assert.Equal(t, 10, PositiveIntOrDefault("2.5", 10))
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, 10)
	assert.NotEqual(t, first, second)
}
