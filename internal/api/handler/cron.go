package handler

import (
	"net/http"

	"github.com/vfg2006/transaction-dashboard-api/pkg/log"
)

// SeedSyncTrigger dispara a recarga agendada fora do horário do cron
type SeedSyncTrigger interface {
	SeedStatusProvider
	TriggerManualSync()
}

// RunSeedSync inicia uma recarga em segundo plano e responde imediatamente
func RunSeedSync(trigger SeedSyncTrigger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunSeedSync")

		if trigger.GetStatus().Running {
			writeJSON(w, r, http.StatusConflict, map[string]any{
				"message": "Seed already running",
			})
			return
		}

		trigger.TriggerManualSync()

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Seed sync started",
		})
	})
}
