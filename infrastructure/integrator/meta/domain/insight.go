package metadomain

// InsightRow é uma linha de insights retornada pela API do Meta, em qualquer
// nível (conta, conjunto de anúncios ou anúncio). Somente os campos pedidos
// na consulta vêm preenchidos.
type InsightRow struct {
	AccountID    string        `json:"account_id"`
	AccountName  string        `json:"account_name"`
	AdSetID      string        `json:"adset_id"`
	AdSetName    string        `json:"adset_name"`
	AdName       string        `json:"ad_name"`
	Spend        FlexMetric    `json:"spend"`
	Purchase     FlexMetric    `json:"purchase"`
	PurchaseROAS FlexMetric    `json:"purchase_roas"`
	WebsiteROAS  FlexMetric    `json:"website_purchase_roas"`
	CTR          FlexMetric    `json:"ctr"`
	OutboundCTR  FlexMetric    `json:"outbound_clicks_ctr"`
	ViewContent  FlexMetric    `json:"view_content"`
	Impressions  FlexMetric    `json:"impressions"`
	ActionValues []ActionValue `json:"action_values"`
	DateStart    string        `json:"date_start"`
	DateStop     string        `json:"date_stop"`
}

// ActionValueOf retorna o valor numérico da ação pedida em action_values.
func (r *InsightRow) ActionValueOf(actionType string) float64 {
	for _, action := range r.ActionValues {
		if action.ActionType == actionType {
			return sanitize(parseFloat(action.Value))
		}
	}
	return 0
}

// InsightResponse é o envelope paginado da API de insights.
type InsightResponse struct {
	Data []InsightRow `json:"data"`
}

// AccountStatusActive é o status de conta ativa na API do Meta.
const AccountStatusActive = 1

// AdAccount é uma conta de anúncio retornada por /me/adaccounts.
type AdAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
}

// AdAccountResponse é o envelope da listagem de contas.
type AdAccountResponse struct {
	Data []AdAccount `json:"data"`
}
