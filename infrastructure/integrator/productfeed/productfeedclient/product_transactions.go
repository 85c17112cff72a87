package productfeedclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	productfeeddomain "github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/productfeed/domain"
)

func (c *ProductFeedClient) GetProductTransactions(ctx context.Context) ([]productfeeddomain.ProductTransaction, error) {
	endpoint, err := url.Parse(c.sourceURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL da fonte")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response []productfeeddomain.ProductTransaction
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return response, nil
}
