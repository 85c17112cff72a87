package domain

import "time"

// SeedResult descreve uma execução concluída da carga de dados
type SeedResult struct {
	RunID       string    `json:"runId"`
	Count       int       `json:"count"`
	StartedAt   time.Time `json:"startedAt"`
	CompletedAt time.Time `json:"completedAt"`
}

// SeedResponse é a resposta do endpoint de inicialização
type SeedResponse struct {
	Message string `json:"message"`
	RunID   string `json:"runId"`
	Count   int    `json:"count"`
}

// SeedStatus resume a execução atual e a última execução da carga
type SeedStatus struct {
	Running         bool       `json:"running"`
	LastRunID       string     `json:"lastRunId,omitempty"`
	LastCount       int        `json:"lastCount"`
	LastStartedAt   *time.Time `json:"lastStartedAt,omitempty"`
	LastCompletedAt *time.Time `json:"lastCompletedAt,omitempty"`
	LastError       string     `json:"lastError,omitempty"`
}

// SeedSyncStatus acrescenta a configuração do agendamento ao status da carga
type SeedSyncStatus struct {
	SeedStatus
	Cron    string `json:"cron"`
	Enabled bool   `json:"enabled"`
}
