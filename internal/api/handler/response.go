package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/seeding"
	"github.com/vfg2006/transaction-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/transaction-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros dos serviços para a resposta padronizada.
// Somente a mensagem pública vai para o cliente; a causa fica no log.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var dashErr *dashboard.DashboardError
	if errors.As(err, &dashErr) {
		if apiErrors.StatusFor(dashErr.Code) >= http.StatusInternalServerError {
			logger.Error("Erro ao consultar o painel")
		} else {
			logger.Warn("Requisição inválida")
		}
		apiErrors.WriteError(w, dashErr.Code, dashErr.Err.Error(), nil)
		return
	}

	var seedErr *seeding.SeedError
	if errors.As(err, &seedErr) {
		logger.WithField("run_id", seedErr.RunID).Error("Erro ao carregar a base")
		apiErrors.WriteError(w, seedErr.Code, seedErr.Err.Error(), nil)
		return
	}

	logger.Error("Erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal server error", nil)
}
