package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	metadomain "github.com/backtrue/fbaudit-api/infrastructure/integrator/meta/domain"
	"github.com/backtrue/fbaudit-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNoInsightData indica que a conta não tem dados na janela consultada.
var ErrNoInsightData = errors.New("nenhum dado de insights para a janela consultada")

// GetAccountInsights busca a linha agregada de insights da conta na janela.
func (c *MetaClient) GetAccountInsights(
	ctx context.Context,
	credential, accountID string,
	window *domain.InsightWindow,
	fields []string,
) (*metadomain.InsightRow, error) {
	endpoint := fmt.Sprintf("%s/%s/insights", c.cfg.Meta.URL, normalizeAccountID(accountID))

	params := url.Values{}
	params.Set("fields", strings.Join(fields, ","))
	params.Set("time_range", timeRangeParam(window))
	params.Set("access_token", credential)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("audit: failed to call meta account insights")
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response metadomain.InsightResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if len(response.Data) == 0 {
		return nil, ErrNoInsightData
	}

	return &response.Data[0], nil
}
