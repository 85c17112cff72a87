package domain

import "github.com/shopspring/decimal"

// CategoryStatistic é a contagem de itens por categoria.
// TotalSales é uma quantidade de registros, não uma soma de preços.
type CategoryStatistic struct {
	Category   string `json:"category"`
	TotalSales int64  `json:"totalSales"`
}

// CategoryTotal é a fatia do gráfico de pizza global
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

// MonthBar é a contagem de vendas por mês do calendário (1-12)
type MonthBar struct {
	Month      int   `json:"month"`
	TotalSales int64 `json:"totalSales"`
}

// DayBar é a contagem de vendas por dia do mês
type DayBar struct {
	Day        int   `json:"day"`
	TotalSales int64 `json:"totalSales"`
}

// TotalStatistics resume um mês. Aqui TotalSales é a soma monetária dos preços.
type TotalStatistics struct {
	TotalSales    decimal.Decimal `json:"totalSales"`
	TotalProducts int64           `json:"totalProducts"`
}

// CombinedReport junta pizza, barras por dia e totais de um mês
type CombinedReport struct {
	PieChartData    []CategoryStatistic `json:"pieChartData"`
	BarChartData    []DayBar            `json:"barChartData"`
	TotalStatistics TotalStatistics     `json:"totalStatistics"`
}
