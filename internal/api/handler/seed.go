package handler

import (
	"net/http"

	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/seeding"
	"github.com/vfg2006/transaction-dashboard-api/pkg/log"
)

// SeedStatusProvider expõe o estado da carga e do agendamento
type SeedStatusProvider interface {
	GetStatus() domain.SeedSyncStatus
}

// InitDatabase substitui a base pelos dados da fonte externa
func InitDatabase(seeder seeding.Seeder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - InitDatabase")

		result, err := seeder.Seed(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, domain.SeedResponse{
			Message: seeding.SuccessMessage,
			RunID:   result.RunID,
			Count:   result.Count,
		})
	})
}

func GetSeedStatus(provider SeedStatusProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, provider.GetStatus())
	})
}
