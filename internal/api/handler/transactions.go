package handler

import (
	"net/http"

	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/transaction-dashboard-api/pkg/log"
)

// ListTransactions retorna a página de transações com o total filtrado
func ListTransactions(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		params := dashboard.ListParams{
			Search:  query.Get("search"),
			Month:   query.Get("month"),
			Year:    query.Get("year"),
			Page:    query.Get("page"),
			PerPage: query.Get("perPage"),
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"month":    params.Month,
			"year":     params.Year,
			"page":     params.Page,
			"per_page": params.PerPage,
		}).Debug("Listando transações")

		page, err := service.ListTransactions(r.Context(), params)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, page)
	})
}
