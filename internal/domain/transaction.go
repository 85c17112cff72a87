package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Preços saem como número no JSON, no mesmo formato da fonte de dados
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction representa uma venda de produto importada da fonte externa
type Transaction struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Sold        bool            `json:"sold"`
	Image       string          `json:"image"`
	DateOfSale  time.Time       `json:"dateOfSale"`
}

// TransactionsPage é a resposta paginada da listagem
type TransactionsPage struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int64          `json:"total"`
}

type Pagination struct {
	Page    int
	PerPage int
}

// maxOffset é o maior OFFSET aceito pelo Postgres (bigint)
const maxOffset = uint64(math.MaxInt64)

// Offset retorna quantos registros devem ser pulados, saturando em maxOffset
func (p Pagination) Offset() uint64 {
	if p.Page <= 1 || p.PerPage <= 0 {
		return 0
	}

	skipped := uint64(p.Page - 1)
	if skipped > maxOffset/uint64(p.PerPage) {
		return maxOffset
	}

	return skipped * uint64(p.PerPage)
}
