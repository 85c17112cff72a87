package productfeedclient

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	productfeeddomain "github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/productfeed/domain"
	"github.com/vfg2006/transaction-dashboard-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetProductTransactions(ctx context.Context) ([]productfeeddomain.ProductTransaction, error)
}

type ProductFeedClient struct {
	httpClient *http.Client
	sourceURL  string
}

// NewClient cria o cliente da fonte de transações com o timeout configurado
func NewClient(cfg config.Seed) Client {
	return &ProductFeedClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		sourceURL: cfg.SourceURL,
	}
}
