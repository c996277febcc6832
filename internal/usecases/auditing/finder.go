package auditing

import (
	"context"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/backtrue/fbaudit-api/internal/domain"
	"github.com/backtrue/fbaudit-api/pkg/utils"
)

// placeholderAdSetName aparece quando a plataforma não resolve o nome do
// conjunto. Entradas assim não servem como evidência.
const placeholderAdSetName = "(not set)"

// accountEvidence reúne as entidades representativas buscadas para embasar
// as recomendações. Campos vazios significam busca sem resultado ou falha
// absorvida.
type accountEvidence struct {
	conversions []*domain.AdSetConversion
	roas        []*domain.AdSetROAS
	heroes      []*domain.AdOutboundStat
}

// collectEvidence dispara em paralelo as buscas de evidência das métricas
// não atingidas. Falhas em buscas individuais são registradas e absorvidas;
// a recomendação segue sem evidência.
func (s *service) collectEvidence(
	ctx context.Context,
	request *domain.HealthCheckRequest,
	comparisons []*domain.KpiComparison,
) *accountEvidence {
	needed := make(map[domain.Metric]bool, len(comparisons))
	for _, comparison := range comparisons {
		if comparison.Status == domain.StatusNotAchieved {
			needed[comparison.Metric] = true
		}
	}

	evidence := &accountEvidence{}

	var wg sync.WaitGroup

	if needed[domain.MetricPurchases] {
		wg.Add(1)
		go func() {
			defer wg.Done()
			adSets, err := s.insights.GetAdSetConversions(ctx, request.Credential, request.AdAccountID)
			if err != nil {
				logrus.WithError(err).WithField("ad_account_id", request.AdAccountID).
					Warn("audit: conversion evidence search failed, advice will go without it")
				return
			}
			evidence.conversions = rankAdSetConversions(adSets, s.cfg.Audit.TopEntityCount)
		}()
	}

	if needed[domain.MetricROAS] {
		wg.Add(1)
		go func() {
			defer wg.Done()
			adSets, err := s.insights.GetAdSetROAS(ctx, request.Credential, request.AdAccountID)
			if err != nil {
				logrus.WithError(err).WithField("ad_account_id", request.AdAccountID).
					Warn("audit: roas evidence search failed, advice will go without it")
				return
			}
			evidence.roas = rankAdSetROAS(adSets, s.cfg.Audit.TopEntityCount)
		}()
	}

	if needed[domain.MetricCTR] {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ads, err := s.insights.GetAdOutboundStats(ctx, request.Credential, request.AdAccountID)
			if err != nil {
				logrus.WithError(err).WithField("ad_account_id", request.AdAccountID).
					Warn("audit: hero post search failed, advice will go without it")
				return
			}
			evidence.heroes = rankHeroAds(ads, s.cfg.Audit.HeroImpressionTiers, s.cfg.Audit.TopEntityCount)
		}()
	}

	wg.Wait()

	return evidence
}

// rankAdSetConversions calcula a taxa de conversão por conjunto e retorna os
// melhores colocados. Conjuntos sem nome resolvido ou sem visualizações de
// conteúdo ficam de fora.
func rankAdSetConversions(adSets []*domain.AdSetConversion, top int) []*domain.AdSetConversion {
	ranked := make([]*domain.AdSetConversion, 0, len(adSets))
	for _, adSet := range adSets {
		if adSet.Name == "" || adSet.Name == placeholderAdSetName {
			continue
		}
		if adSet.ViewContent <= 0 {
			continue
		}

		adSet.ConversionRate = utils.RoundWithTwoDecimalPlace(
			float64(adSet.Purchases) / float64(adSet.ViewContent) * 100,
		)
		ranked = append(ranked, adSet)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ConversionRate > ranked[j].ConversionRate
	})

	if len(ranked) > top {
		ranked = ranked[:top]
	}
	return ranked
}

// rankAdSetROAS retorna os conjuntos ativos com maior ROAS reportado.
func rankAdSetROAS(adSets []*domain.AdSetROAS, top int) []*domain.AdSetROAS {
	ranked := make([]*domain.AdSetROAS, 0, len(adSets))
	for _, adSet := range adSets {
		if adSet.ROAS <= 0 {
			continue
		}
		ranked = append(ranked, adSet)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ROAS > ranked[j].ROAS
	})

	if len(ranked) > top {
		ranked = ranked[:top]
	}
	return ranked
}

// rankHeroAds busca anúncios destaque relaxando progressivamente o piso de
// impressões. Cada faixa é avaliada sobre o conjunto completo de anúncios e a
// primeira com resultados encerra a busca. Anúncios sem nome resolvido ficam
// de fora, como nas demais buscas.
func rankHeroAds(ads []*domain.AdOutboundStat, impressionTiers []int, top int) []*domain.AdOutboundStat {
	for _, tier := range impressionTiers {
		qualified := make([]*domain.AdOutboundStat, 0, len(ads))
		for _, ad := range ads {
			if ad.Name == "" || ad.Name == placeholderAdSetName {
				continue
			}
			if ad.Impressions >= tier && ad.OutboundCTR > 0 {
				qualified = append(qualified, ad)
			}
		}

		if len(qualified) == 0 {
			continue
		}

		sort.SliceStable(qualified, func(i, j int) bool {
			return qualified[i].OutboundCTR > qualified[j].OutboundCTR
		})

		if len(qualified) > top {
			qualified = qualified[:top]
		}
		return qualified
	}

	return nil
}
