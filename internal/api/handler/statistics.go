package handler

import (
	"net/http"

	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/dashboard"
)

func GetStatistics(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		statistics, err := service.GetMonthlyStatistics(r.Context(), query.Get("month"), query.Get("year"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, statistics)
	})
}
