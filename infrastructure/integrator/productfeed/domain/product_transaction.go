package productfeeddomain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
)

// ProductTransaction é o registro como publicado pela fonte externa
type ProductTransaction struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Sold        bool            `json:"sold"`
	DateOfSale  time.Time       `json:"dateOfSale"`
}

func (p ProductTransaction) ToDomain() *domain.Transaction {
	return &domain.Transaction{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Sold:        p.Sold,
		Image:       p.Image,
		DateOfSale:  p.DateOfSale.UTC(),
	}
}
