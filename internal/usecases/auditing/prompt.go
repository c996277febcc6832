package auditing

import (
	"fmt"
	"strings"

	"github.com/backtrue/fbaudit-api/internal/domain"
)

// advisorPersona define o tom das recomendações geradas.
const advisorPersona = "Você é um consultor de anúncios de e-commerce no Facebook com mais de dez anos " +
	"de experiência. Responda em tom próximo e direto, com passos práticos, e produza a resposta em HTML simples."

// Nomes das métricas usados nos textos das recomendações.
var metricLabels = map[domain.Metric]string{
	domain.MetricDailySpend: "investimento diário",
	domain.MetricPurchases:  "compras",
	domain.MetricROAS:       "ROAS",
	domain.MetricCTR:        "CTR de cliques externos",
}

// Frases fixas usadas quando a geração da recomendação falha.
var fallbackAdvice = map[domain.Metric]string{
	domain.MetricDailySpend: "Não foi possível gerar a recomendação de investimento diário. Tente novamente mais tarde.",
	domain.MetricPurchases:  "Não foi possível gerar a recomendação de compras. Tente novamente mais tarde.",
	domain.MetricROAS:       "Não foi possível gerar a recomendação de ROAS. Tente novamente mais tarde.",
	domain.MetricCTR:        "Não foi possível gerar a recomendação de CTR. Tente novamente mais tarde.",
}

// buildAdvicePrompt monta o prompt da métrica não atingida, incorporando a
// evidência disponível. Sem evidência, o prompt pede orientação genérica
// para o segmento informado.
func buildAdvicePrompt(
	comparison *domain.KpiComparison,
	evidence *accountEvidence,
	industry string,
) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		"A métrica de %s desta conta de anúncios está abaixo da meta: o objetivo era %.2f e o realizado foi %.2f.\n\n",
		metricLabels[comparison.Metric], comparison.Target, comparison.Actual,
	)

	if industry != "" {
		fmt.Fprintf(&b, "A conta pertence ao segmento de %s.\n\n", industry)
	}

	switch comparison.Metric {
	case domain.MetricDailySpend:
		b.WriteString("Explique por que manter o ritmo de investimento planejado importa para a fase de aprendizagem " +
			"dos conjuntos e sugira como redistribuir o orçamento para voltar à meta diária.\n")

	case domain.MetricPurchases:
		writeConversionEvidence(&b, evidence.conversions)
		b.WriteString("\nCom base na lógica de escalar os conjuntos que já provaram converter, " +
			"proponha os próximos passos para recuperar o volume de compras.\n")

	case domain.MetricROAS:
		writeROASEvidence(&b, evidence.roas)
		b.WriteString("\nProponha como concentrar o orçamento nos conjuntos de maior retorno " +
			"para puxar o ROAS da conta de volta à meta.\n")

	case domain.MetricCTR:
		writeHeroEvidence(&b, evidence.heroes)
		b.WriteString("\nProponha como aproveitar os criativos de melhor desempenho " +
			"para elevar a taxa de cliques externos da conta.\n")
	}

	b.WriteString("\nEstruture a resposta com: análise da situação, estratégia central, " +
		"recomendações apoiadas nos dados, passos de operação e um fechamento encorajador.")

	return b.String()
}

func writeConversionEvidence(b *strings.Builder, adSets []*domain.AdSetConversion) {
	if len(adSets) == 0 {
		b.WriteString("Não foram encontrados conjuntos de anúncios com dados de conversão suficientes nos últimos 7 dias. " +
			"Recomende primeiro verificar se os anúncios estão veiculando normalmente.\n")
		return
	}

	b.WriteString("Estes são os conjuntos com maior taxa de conversão nos últimos 7 dias:\n\n")
	for i, adSet := range adSets {
		fmt.Fprintf(b, "%d. %s\n   - Taxa de conversão: %.2f%%\n   - Compras: %d\n   - Investimento: %.2f\n\n",
			i+1, adSet.Name, adSet.ConversionRate, adSet.Purchases, adSet.Spend)
	}
}

func writeROASEvidence(b *strings.Builder, adSets []*domain.AdSetROAS) {
	if len(adSets) == 0 {
		b.WriteString("Não foram encontrados conjuntos ativos com ROAS positivo nos últimos 7 dias. " +
			"Recomende revisar a atribuição de conversões antes de escalar.\n")
		return
	}

	b.WriteString("Estes são os conjuntos ativos com maior ROAS nos últimos 7 dias:\n\n")
	for i, adSet := range adSets {
		fmt.Fprintf(b, "%d. %s\n   - ROAS: %.2f\n   - Compras: %d\n   - Investimento: %.2f\n\n",
			i+1, adSet.Name, adSet.ROAS, adSet.Purchases, adSet.Spend)
	}
}

func writeHeroEvidence(b *strings.Builder, ads []*domain.AdOutboundStat) {
	if len(ads) == 0 {
		b.WriteString("Não foram encontrados anúncios com cliques externos relevantes nos últimos 7 dias. " +
			"Recomende testar novos criativos com chamadas mais diretas.\n")
		return
	}

	b.WriteString("Estes são os anúncios com melhor CTR de cliques externos nos últimos 7 dias:\n\n")
	for i, ad := range ads {
		fmt.Fprintf(b, "%d. %s\n   - CTR externo: %.2f%%\n   - Impressões: %d\n   - Compras: %d\n   - Investimento: %.2f\n\n",
			i+1, ad.Name, ad.OutboundCTR, ad.Impressions, ad.Purchases, ad.Spend)
	}
}

// stripCodeFence remove as cercas de código markdown que o modelo costuma
// colocar ao redor de respostas HTML.
func stripCodeFence(advice string) string {
	advice = strings.ReplaceAll(advice, "```html", "")
	advice = strings.TrimSpace(advice)
	advice = strings.TrimPrefix(advice, "```")
	advice = strings.TrimSuffix(advice, "```")
	return strings.TrimSpace(advice)
}
