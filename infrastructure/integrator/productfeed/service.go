package productfeed

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/productfeed/productfeedclient"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var (
	ErrEmptyPayload = errors.New("a fonte não retornou transações")
	ErrDuplicateID  = errors.New("a fonte retornou ids duplicados")
)

type ProductFeedIntegrator interface {
	FetchTransactions(ctx context.Context) ([]*domain.Transaction, error)
}

type ProductFeedService struct {
	Client productfeedclient.Client
}

func New(client productfeedclient.Client) ProductFeedIntegrator {
	return &ProductFeedService{
		Client: client,
	}
}

// FetchTransactions busca a fonte e converte os registros para o domínio.
// Um payload vazio ou com ids repetidos é tratado como falha da fonte.
func (s *ProductFeedService) FetchTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	resp, err := s.Client.GetProductTransactions(ctx)
	if err != nil {
		return nil, err
	}

	if len(resp) == 0 {
		return nil, ErrEmptyPayload
	}

	seen := make(map[int64]struct{}, len(resp))
	transactions := make([]*domain.Transaction, 0, len(resp))
	for _, item := range resp {
		if _, ok := seen[item.ID]; ok {
			return nil, errors.Wrapf(ErrDuplicateID, "id %d", item.ID)
		}
		seen[item.ID] = struct{}{}

		transactions = append(transactions, item.ToDomain())
	}

	logrus.WithField("count", len(transactions)).Debug("Transações obtidas da fonte externa")

	return transactions, nil
}
