package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	metadomain "github.com/backtrue/fbaudit-api/infrastructure/integrator/meta/domain"
	"github.com/backtrue/fbaudit-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// SubEntityParams parametriza as consultas de insights por conjunto de
// anúncios (level=adset) ou por anúncio (level=ad).
type SubEntityParams struct {
	Level      string
	Fields     []string
	Window     *domain.InsightWindow
	ActiveOnly bool
	Limit      int
}

// activeAdSetFilter restringe a consulta a conjuntos com veiculação ativa.
const activeAdSetFilter = `[{"field":"adset.effective_status","operator":"IN","value":["ACTIVE"]}]`

// GetSubEntityInsights busca as linhas de insights das entidades filhas da
// conta. As linhas voltam sem filtragem de relevância; o ranqueamento é
// responsabilidade de quem consome.
func (c *MetaClient) GetSubEntityInsights(
	ctx context.Context,
	credential, accountID string,
	params SubEntityParams,
) ([]metadomain.InsightRow, error) {
	endpoint := fmt.Sprintf("%s/%s/insights", c.cfg.Meta.URL, normalizeAccountID(accountID))

	query := url.Values{}
	query.Set("level", params.Level)
	query.Set("fields", strings.Join(params.Fields, ","))
	query.Set("time_range", timeRangeParam(params.Window))
	query.Set("access_token", credential)

	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	if params.ActiveOnly {
		query.Set("filtering", activeAdSetFilter)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("level", params.Level).
			Error("audit: failed to call meta sub entity insights")
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

	return response.Data, nil
}
