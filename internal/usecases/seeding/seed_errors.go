package seeding

import (
	"errors"
	"fmt"
)

var (
	// Falha de rede, status ou decodificação da fonte; a base não é alterada
	ErrSeedFetch = errors.New("failed to fetch seed data")
	// A base recusou a substituição; a transação foi desfeita
	ErrSeedStore = errors.New("failed to store seed data")

	ErrGenerateID = errors.New("error generating run ID")
)

// SeedError é um erro da carga com o código da API e a causa interna
type SeedError struct {
	Err     error
	Code    string
	RunID   string
	Details string
}

func (e *SeedError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SeedError) Unwrap() error {
	return e.Err
}

func NewSeedError(err error, code string, runID string, details string) *SeedError {
	return &SeedError{
		Err:     err,
		Code:    code,
		RunID:   runID,
		Details: details,
	}
}
