package domain

import (
	"time"

	"github.com/backtrue/fbaudit-api/pkg/utils"
)

// Metric identifica um dos quatro KPIs canônicos do diagnóstico.
// Os literais abaixo são os únicos valores válidos em toda a API.
type Metric string

const (
	MetricDailySpend Metric = "dailySpend"
	MetricPurchases  Metric = "purchases"
	MetricROAS       Metric = "roas"
	MetricCTR        Metric = "ctr"
)

// MetricOrder define a ordem fixa de comparação e de emissão de eventos.
var MetricOrder = []Metric{MetricDailySpend, MetricPurchases, MetricROAS, MetricCTR}

type ComparisonStatus string

const (
	StatusAchieved    ComparisonStatus = "achieved"
	StatusNotAchieved ComparisonStatus = "not_achieved"
)

// InsightWindow é a janela retroativa usada nas consultas ao Meta.
type InsightWindow struct {
	Since time.Time `json:"since"`
	Until time.Time `json:"until"`
}

// NewInsightWindow cria uma janela terminando hoje com o número de dias informado.
func NewInsightWindow(days int) *InsightWindow {
	until := time.Now()
	return &InsightWindow{
		Since: until.AddDate(0, 0, -days),
		Until: until,
	}
}

// Days retorna o tamanho da janela em dias inteiros.
func (w *InsightWindow) Days() int {
	return utils.RoundToInt(w.Until.Sub(w.Since).Hours() / 24)
}

// AccountMetrics são os totais canônicos da conta na janela de 28 dias,
// já normalizados e arredondados na fronteira com o Meta.
type AccountMetrics struct {
	AccountID   string         `json:"account_id"`
	AccountName string         `json:"account_name"`
	Spend       float64        `json:"spend"`
	Purchases   int            `json:"purchases"`
	ROAS        float64        `json:"roas"`
	CTR         float64        `json:"ctr"`
	Window      *InsightWindow `json:"date_range"`
}

// HealthCheckMetrics são os KPIs diários derivados dos totais da conta.
type HealthCheckMetrics struct {
	DailySpend float64 `json:"dailySpend"`
	Purchases  int     `json:"purchases"`
	ROAS       float64 `json:"roas"`
	CTR        float64 `json:"ctr"`
}

// CalculateHealthCheckMetrics deriva os KPIs diários dos totais da janela.
// Gasto e compras são diluídos pelos dias da janela; ROAS e CTR são usados
// como reportados pela plataforma.
func CalculateHealthCheckMetrics(m *AccountMetrics, windowDays int) *HealthCheckMetrics {
	if windowDays <= 0 {
		windowDays = 1
	}

	dailySpend := m.Spend / float64(windowDays)
	dailyPurchases := float64(m.Purchases) / float64(windowDays)

	return &HealthCheckMetrics{
		DailySpend: utils.RoundWithTwoDecimalPlace(dailySpend),
		Purchases:  utils.RoundToInt(dailyPurchases),
		ROAS:       utils.RoundWithTwoDecimalPlace(m.ROAS),
		CTR:        utils.RoundWithTwoDecimalPlace(m.CTR),
	}
}

// Value retorna o valor do KPI correspondente à métrica informada.
func (m *HealthCheckMetrics) Value(metric Metric) float64 {
	switch metric {
	case MetricDailySpend:
		return m.DailySpend
	case MetricPurchases:
		return float64(m.Purchases)
	case MetricROAS:
		return m.ROAS
	case MetricCTR:
		return m.CTR
	}
	return 0
}

// PlanTarget são as metas por métrica derivadas do plano de orçamento.
type PlanTarget struct {
	DailySpend float64 `json:"dailySpend"`
	Purchases  int     `json:"purchases"`
	ROAS       float64 `json:"roas"`
	CTR        float64 `json:"ctr"`
}

// Value retorna a meta correspondente à métrica informada.
func (t *PlanTarget) Value(metric Metric) float64 {
	switch metric {
	case MetricDailySpend:
		return t.DailySpend
	case MetricPurchases:
		return float64(t.Purchases)
	case MetricROAS:
		return t.ROAS
	case MetricCTR:
		return t.CTR
	}
	return 0
}

// KpiComparison é o resultado da comparação meta vs. realizado de uma métrica.
// O campo Advice é preenchido pelo orquestrador de recomendações.
type KpiComparison struct {
	Metric Metric           `json:"metric"`
	Target float64          `json:"target"`
	Actual float64          `json:"actual"`
	Status ComparisonStatus `json:"status"`
	Advice string           `json:"advice,omitempty"`
}

type ProgressEventType string

const (
	EventComparisons    ProgressEventType = "comparisons"
	EventGenerating     ProgressEventType = "generating"
	EventAdviceComplete ProgressEventType = "advice_complete"
)

// ProgressEvent é a notificação incremental emitida durante o diagnóstico.
type ProgressEvent struct {
	Type   ProgressEventType `json:"type"`
	Metric Metric            `json:"metric,omitempty"`
	Data   []*KpiComparison  `json:"data,omitempty"`
	Advice string            `json:"advice,omitempty"`
}

// ProgressFunc recebe os eventos de progresso na ordem de emissão.
// Pode ser nil quando o chamador não consome o stream.
type ProgressFunc func(event *ProgressEvent)

// HealthCheckRequest são os parâmetros de uma execução do diagnóstico.
type HealthCheckRequest struct {
	UserID      int    `json:"-"`
	AdAccountID string `json:"ad_account_id"`
	PlanID      string `json:"plan_id"`
	Industry    string `json:"industry"`
	// Credential é o access token do Meta fornecido pela camada de sessão.
	Credential string `json:"access_token"`
}

// HealthCheckResult é o retorno completo de uma execução.
type HealthCheckResult struct {
	Report      *HealthCheckReport `json:"report"`
	Comparisons []*KpiComparison   `json:"comparisons"`
}

// HealthCheckReport é o agregado persistido de um diagnóstico concluído.
// Imutável após a criação; uma nova execução gera um novo registro.
type HealthCheckReport struct {
	ID            string              `json:"id"`
	UserID        int                 `json:"user_id"`
	AdAccountID   string              `json:"ad_account_id"`
	AdAccountName string              `json:"ad_account_name"`
	PlanID        string              `json:"plan_id"`
	Industry      string              `json:"industry"`
	Metrics       *HealthCheckMetrics `json:"metrics"`
	Targets       *PlanTarget         `json:"targets"`
	Comparisons   []*KpiComparison    `json:"comparisons"`
	DataStartDate time.Time           `json:"data_start_date"`
	DataEndDate   time.Time           `json:"data_end_date"`
	CreatedAt     time.Time           `json:"created_at"`
}

// AdAccountSummary é uma conta de anúncio ativa disponível para diagnóstico.
type AdAccountSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdSetConversion é um conjunto de anúncios ranqueável por taxa de conversão
// (compras / visualizações de conteúdo) na janela de 7 dias.
type AdSetConversion struct {
	AdSetID        string  `json:"adset_id"`
	Name           string  `json:"adset_name"`
	Purchases      int     `json:"purchases"`
	ViewContent    int     `json:"view_content"`
	ConversionRate float64 `json:"conversion_rate"`
	Spend          float64 `json:"spend"`
}

// AdSetROAS é um conjunto de anúncios ativo ranqueável pelo ROAS reportado.
type AdSetROAS struct {
	Name      string  `json:"adset_name"`
	ROAS      float64 `json:"roas"`
	Purchases int     `json:"purchases"`
	Spend     float64 `json:"spend"`
}

// AdOutboundStat é um anúncio ranqueável pela taxa de cliques externos
// (candidato a Hero Post).
type AdOutboundStat struct {
	Name        string  `json:"ad_name"`
	CTR         float64 `json:"ctr"`
	OutboundCTR float64 `json:"outbound_ctr"`
	Purchases   int     `json:"purchases"`
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
}
