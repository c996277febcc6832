package meta

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	metadomain "github.com/backtrue/fbaudit-api/infrastructure/integrator/meta/domain"
	"github.com/backtrue/fbaudit-api/infrastructure/integrator/meta/metaclient"
	"github.com/backtrue/fbaudit-api/internal/config"
	"github.com/backtrue/fbaudit-api/internal/domain"
	"github.com/backtrue/fbaudit-api/pkg/utils"
)

// Campos pedidos nas consultas de insights. Os nomes seguem a API do Meta.
var (
	accountFields         = []string{"account_id", "account_name", "spend", "purchase", "purchase_roas", "outbound_clicks_ctr", "action_values"}
	adSetConversionFields = []string{"adset_id", "adset_name", "spend", "purchase", "view_content"}
	adSetROASFields       = []string{"adset_name", "website_purchase_roas", "purchase", "spend"}
	adOutboundFields      = []string{"ad_name", "ctr", "outbound_clicks_ctr", "spend", "impressions", "purchase"}
)

// subEntityLimit limita as consultas por conjunto e por anúncio.
const subEntityLimit = 100

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetAccountMetrics busca e normaliza os totais da conta na janela longa.
// Contas sem dados na janela retornam erro; o diagnóstico não prossegue
// sem os totais.
func (s *MetaIntegrator) GetAccountMetrics(ctx context.Context, credential, accountID string) (*domain.AccountMetrics, error) {
	window := domain.NewInsightWindow(s.cfg.Audit.AccountWindowDays)

	row, err := s.Client.GetAccountInsights(ctx, credential, accountID, window, accountFields)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("audit: failed to get account insights from API")

		if errors.Is(err, metaclient.ErrNoInsightData) {
			return nil, domain.ErrAccountWithoutData
		}
		return nil, err
	}

	spend := row.Spend.Float("")
	roas := row.PurchaseROAS.Float("")

	// A plataforma às vezes omite o purchase_roas agregado. Quando há gasto,
	// o valor é reconstruído a partir do retorno de compras em action_values.
	if roas == 0 && spend > 0 {
		if purchaseValue := row.ActionValueOf("purchase"); purchaseValue > 0 {
			roas = purchaseValue / spend
		}
	}

	metrics := &domain.AccountMetrics{
		AccountID:   accountID,
		AccountName: row.AccountName,
		Spend:       utils.RoundWithTwoDecimalPlace(spend),
		Purchases:   row.Purchase.Int(""),
		ROAS:        utils.RoundWithTwoDecimalPlace(roas),
		CTR:         utils.RoundWithTwoDecimalPlace(row.OutboundCTR.Float("outbound_click")),
		Window:      window,
	}

	logrus.WithFields(logrus.Fields{
		"account_id":   accountID,
		"account_name": metrics.AccountName,
	}).Debug("audit: successfully retrieved account metrics")

	return metrics, nil
}

// GetAdSetConversions busca as linhas por conjunto de anúncios usadas na
// busca por taxa de conversão. O ranqueamento fica com o chamador.
func (s *MetaIntegrator) GetAdSetConversions(ctx context.Context, credential, accountID string) ([]*domain.AdSetConversion, error) {
	rows, err := s.Client.GetSubEntityInsights(ctx, credential, accountID, metaclient.SubEntityParams{
		Level:  "adset",
		Fields: adSetConversionFields,
		Window: domain.NewInsightWindow(s.cfg.Audit.EntityWindowDays),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("audit: failed to get adset conversion insights from API")
		return nil, err
	}

	adSets := make([]*domain.AdSetConversion, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		adSets = append(adSets, &domain.AdSetConversion{
			AdSetID:     row.AdSetID,
			Name:        row.AdSetName,
			Purchases:   row.Purchase.Int(""),
			ViewContent: row.ViewContent.Int(""),
			Spend:       row.Spend.Float(""),
		})
	}

	return adSets, nil
}

// GetAdSetROAS busca as linhas por conjunto ativo usadas na busca por ROAS.
func (s *MetaIntegrator) GetAdSetROAS(ctx context.Context, credential, accountID string) ([]*domain.AdSetROAS, error) {
	rows, err := s.Client.GetSubEntityInsights(ctx, credential, accountID, metaclient.SubEntityParams{
		Level:      "adset",
		Fields:     adSetROASFields,
		Window:     domain.NewInsightWindow(s.cfg.Audit.EntityWindowDays),
		ActiveOnly: true,
		Limit:      subEntityLimit,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("audit: failed to get adset roas insights from API")
		return nil, err
	}

	adSets := make([]*domain.AdSetROAS, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		adSets = append(adSets, &domain.AdSetROAS{
			Name:      row.AdSetName,
			ROAS:      row.WebsiteROAS.Float(""),
			Purchases: row.Purchase.Int(""),
			Spend:     row.Spend.Float(""),
		})
	}

	return adSets, nil
}

// GetAdOutboundStats busca as linhas por anúncio usadas na busca do Hero Post.
func (s *MetaIntegrator) GetAdOutboundStats(ctx context.Context, credential, accountID string) ([]*domain.AdOutboundStat, error) {
	rows, err := s.Client.GetSubEntityInsights(ctx, credential, accountID, metaclient.SubEntityParams{
		Level:  "ad",
		Fields: adOutboundFields,
		Window: domain.NewInsightWindow(s.cfg.Audit.EntityWindowDays),
		Limit:  subEntityLimit,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("audit: failed to get ad outbound insights from API")
		return nil, err
	}

	ads := make([]*domain.AdOutboundStat, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		ads = append(ads, &domain.AdOutboundStat{
			Name:        row.AdName,
			CTR:         row.CTR.Float(""),
			OutboundCTR: row.OutboundCTR.Float("outbound_click"),
			Purchases:   row.Purchase.Int(""),
			Spend:       row.Spend.Float(""),
			Impressions: row.Impressions.Int(""),
		})
	}

	return ads, nil
}

// GetAdAccounts lista as contas ativas da credencial. O status 1 representa
// conta ativa na API do Meta.
func (s *MetaIntegrator) GetAdAccounts(ctx context.Context, credential string) ([]*domain.AdAccountSummary, error) {
	accounts, err := s.Client.GetAdAccounts(ctx, credential)
	if err != nil {
		logrus.WithError(err).Error("audit: failed to get ad accounts from API")
		return nil, err
	}

	active := make([]*domain.AdAccountSummary, 0, len(accounts))
	for _, account := range accounts {
		if account.AccountStatus != metadomain.AccountStatusActive {
			continue
		}
		active = append(active, &domain.AdAccountSummary{
			ID:   account.ID,
			Name: account.Name,
		})
	}

	logrus.WithField("total_accounts", len(active)).Info("audit: successfully retrieved active ad accounts")

	return active, nil
}
