package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	metadomain "github.com/backtrue/fbaudit-api/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

// GetAdAccounts lista as contas de anúncio visíveis pela credencial.
func (c *MetaClient) GetAdAccounts(ctx context.Context, credential string) ([]metadomain.AdAccount, error) {
	endpoint := fmt.Sprintf("%s/me/adaccounts", c.cfg.Meta.URL)

	params := url.Values{}
	params.Set("fields", "id,name,account_status")
	params.Set("access_token", credential)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("audit: failed to list meta ad accounts")
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response metadomain.AdAccountResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response.Data, nil
}
