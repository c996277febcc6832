package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	metadomain "github.com/backtrue/fbaudit-api/infrastructure/integrator/meta/domain"
	"github.com/backtrue/fbaudit-api/internal/config"
	"github.com/backtrue/fbaudit-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type Client interface {
	GetAccountInsights(ctx context.Context, credential, accountID string, window *domain.InsightWindow, fields []string) (*metadomain.InsightRow, error)
	GetSubEntityInsights(ctx context.Context, credential, accountID string, params SubEntityParams) ([]metadomain.InsightRow, error)
	GetAdAccounts(ctx context.Context, credential string) ([]metadomain.AdAccount, error)
}

type MetaClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg: cfg,
	}
}

// normalizeAccountID garante o prefixo act_ exigido pelos endpoints de insights.
func normalizeAccountID(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}

// timeRangeParam serializa a janela no formato {"since":...,"until":...}
// esperado pela API do Meta.
func timeRangeParam(window *domain.InsightWindow) string {
	return fmt.Sprintf(
		"{\"since\":\"%s\",\"until\":\"%s\"}",
		window.Since.Format(time.DateOnly),
		window.Until.Format(time.DateOnly),
	)
}

// handleResponse lê o corpo e converte respostas de erro da API em erros Go.
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var apiError metadomain.ErrorResponse
	if err := json.Unmarshal(body, &apiError); err == nil && apiError.Error.Message != "" {
		logrus.WithFields(logrus.Fields{
			"status":     resp.StatusCode,
			"code":       apiError.Error.Code,
			"subcode":    apiError.Error.ErrorSubcode,
			"fbtrace_id": apiError.Error.FBTraceID,
		}).Error("audit: meta api returned an error")

		if apiError.IsAuthError() {
			return nil, fmt.Errorf("credencial do Meta inválida ou expirada: %s", apiError.Error.Message)
		}
		return nil, fmt.Errorf("erro da API do Meta: %s", apiError.Error.Message)
	}

	return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
}
