package meta

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/backtrue/fbaudit-api/infrastructure/integrator/meta/domain"
	"github.com/backtrue/fbaudit-api/infrastructure/integrator/meta/metaclient"
	"github.com/backtrue/fbaudit-api/infrastructure/integrator/meta/mocks"
	"github.com/backtrue/fbaudit-api/internal/config"
	"github.com/backtrue/fbaudit-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Audit: config.Audit{
			AccountWindowDays: 28,
			EntityWindowDays:  7,
		},
	}
}

// insightRowFromJSON monta uma linha de insight a partir do payload como a
// API do Meta a devolveria.
func insightRowFromJSON(t *testing.T, payload string) *metadomain.InsightRow {
	t.Helper()
	var row metadomain.InsightRow
	require.NoError(t, json.Unmarshal([]byte(payload), &row))
	return &row
}

func TestMetaIntegrator_GetAccountMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), mockClient)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, metrics *domain.AccountMetrics, err error)
	}{
		{
			name: "Métricas normalizadas com ROAS reportado",
			setup: func() {
				row := insightRowFromJSON(t, `{
					"account_id": "123456",
					"account_name": "Loja Exemplo",
					"spend": "28000.506",
					"purchase": [{"action_type": "purchase", "value": "320"}],
					"purchase_roas": [{"action_type": "omni_purchase", "value": "3.456"}],
					"outbound_clicks_ctr": [{"action_type": "outbound_click", "value": "1.876"}]
				}`)

				mockClient.EXPECT().
					GetAccountInsights(gomock.Any(), "token", "123456", gomock.Any(), gomock.Any()).
					Return(row, nil)
			},
			validate: func(t *testing.T, metrics *domain.AccountMetrics, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Loja Exemplo", metrics.AccountName)
				assert.Equal(t, 28000.51, metrics.Spend)
				assert.Equal(t, 320, metrics.Purchases)
				assert.Equal(t, 3.46, metrics.ROAS)
				assert.Equal(t, 1.88, metrics.CTR)
			},
		},
		{
			name: "ROAS omitido é reconstruído a partir dos valores de ação",
			setup: func() {
				row := insightRowFromJSON(t, `{
					"account_id": "123456",
					"account_name": "Loja Exemplo",
					"spend": "1000",
					"purchase": [{"action_type": "purchase", "value": "50"}],
					"action_values": [{"action_type": "purchase", "value": "2500"}]
				}`)

				mockClient.EXPECT().
					GetAccountInsights(gomock.Any(), "token", "123456", gomock.Any(), gomock.Any()).
					Return(row, nil)
			},
			validate: func(t *testing.T, metrics *domain.AccountMetrics, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2.5, metrics.ROAS)
			},
		},
		{
			name: "Conta sem dados vira erro de negócio",
			setup: func() {
				mockClient.EXPECT().
					GetAccountInsights(gomock.Any(), "token", "123456", gomock.Any(), gomock.Any()).
					Return(nil, metaclient.ErrNoInsightData)
			},
			validate: func(t *testing.T, metrics *domain.AccountMetrics, err error) {
				assert.ErrorIs(t, err, domain.ErrAccountWithoutData)
				assert.Nil(t, metrics)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			metrics, err := integrator.GetAccountMetrics(context.Background(), "token", "123456")
			tt.validate(t, metrics, err)
		})
	}
}

func TestMetaIntegrator_GetAdSetROAS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), mockClient)

	row := insightRowFromJSON(t, `{
		"adset_name": "Conjunto A",
		"website_purchase_roas": [{"action_type": "omni_purchase", "value": "4.2"}],
		"purchase": [{"action_type": "purchase", "value": "9"}],
		"spend": "350.75"
	}`)

	mockClient.EXPECT().
		GetSubEntityInsights(gomock.Any(), "token", "123456", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, params metaclient.SubEntityParams) ([]metadomain.InsightRow, error) {
			// As consultas de ROAS restringem a conjuntos ativos e limitam o retorno
			assert.Equal(t, "adset", params.Level)
			assert.True(t, params.ActiveOnly)
			assert.Equal(t, 100, params.Limit)
			return []metadomain.InsightRow{*row}, nil
		})

	adSets, err := integrator.GetAdSetROAS(context.Background(), "token", "123456")

	assert.NoError(t, err)
	assert.Len(t, adSets, 1)
	assert.Equal(t, "Conjunto A", adSets[0].Name)
	assert.Equal(t, 4.2, adSets[0].ROAS)
	assert.Equal(t, 9, adSets[0].Purchases)
}

func TestMetaIntegrator_GetAdSetConversions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), mockClient)

	mockClient.EXPECT().
		GetSubEntityInsights(gomock.Any(), "token", "123456", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, params metaclient.SubEntityParams) ([]metadomain.InsightRow, error) {
			// A busca de conversão varre todos os conjuntos, sem filtro nem limite
			assert.Equal(t, "adset", params.Level)
			assert.False(t, params.ActiveOnly)
			assert.Zero(t, params.Limit)
			return nil, nil
		})

	adSets, err := integrator.GetAdSetConversions(context.Background(), "token", "123456")

	assert.NoError(t, err)
	assert.Empty(t, adSets)
}

func TestMetaIntegrator_GetAdAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), mockClient)

	mockClient.EXPECT().
		GetAdAccounts(gomock.Any(), "token").
		Return([]metadomain.AdAccount{
			{ID: "act_1", Name: "Ativa", AccountStatus: metadomain.AccountStatusActive},
			{ID: "act_2", Name: "Desativada", AccountStatus: 2},
		}, nil)

	accounts, err := integrator.GetAdAccounts(context.Background(), "token")

	assert.NoError(t, err)
	assert.Len(t, accounts, 1)
	assert.Equal(t, "Ativa", accounts[0].Name)
}
