package handler

import (
	"net/http"

	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/dashboard"
)

// GetBarChart retorna a quantidade de vendas por mês do calendário
func GetBarChart(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bars, err := service.GetBarChart(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, bars)
	})
}

// GetPieChart retorna a quantidade de transações por categoria
func GetPieChart(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pie, err := service.GetPieChart(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, pie)
	})
}

func GetCombinedData(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		report, err := service.GetCombinedData(r.Context(), query.Get("month"), query.Get("year"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}
