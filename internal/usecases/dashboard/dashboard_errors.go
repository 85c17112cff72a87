package dashboard

import (
	"errors"
	"fmt"
)

// Erros específicos das consultas do painel
var (
	// Erros de validação
	ErrMonthYearRequired = errors.New("bad request: month and year required")
	ErrInvalidPeriod     = errors.New("bad request: invalid month or year")

	// Erros de banco de dados
	ErrQueryFailed = errors.New("query failed")
)

// DashboardError carrega o erro exibido ao cliente e o código da API.
// Details guarda a causa interna e nunca é enviado na resposta.
type DashboardError struct {
	Err     error
	Code    string
	Details string
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
