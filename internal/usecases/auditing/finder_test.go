package auditing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backtrue/fbaudit-api/internal/domain"
)

func TestRankAdSetConversions(t *testing.T) {
	tests := []struct {
		name     string
		adSets   []*domain.AdSetConversion
		top      int
		validate func(t *testing.T, result []*domain.AdSetConversion)
	}{
		{
			name: "Ordena por taxa de conversão e calcula o percentual",
			adSets: []*domain.AdSetConversion{
				{Name: "Conjunto A", Purchases: 5, ViewContent: 100},
				{Name: "Conjunto B", Purchases: 20, ViewContent: 100},
				{Name: "Conjunto C", Purchases: 10, ViewContent: 100},
			},
			top: 3,
			validate: func(t *testing.T, result []*domain.AdSetConversion) {
				assert.Len(t, result, 3)
				assert.Equal(t, "Conjunto B", result[0].Name)
				assert.Equal(t, 20.0, result[0].ConversionRate)
				assert.Equal(t, "Conjunto C", result[1].Name)
				assert.Equal(t, "Conjunto A", result[2].Name)
				assert.Equal(t, 5.0, result[2].ConversionRate)
			},
		},
		{
			name: "Descarta conjuntos sem nome resolvido ou sem visualizações",
			adSets: []*domain.AdSetConversion{
				{Name: "", Purchases: 10, ViewContent: 100},
				{Name: "(not set)", Purchases: 10, ViewContent: 100},
				{Name: "Conjunto válido", Purchases: 10, ViewContent: 0},
				{Name: "Conjunto bom", Purchases: 3, ViewContent: 50},
			},
			top: 3,
			validate: func(t *testing.T, result []*domain.AdSetConversion) {
				assert.Len(t, result, 1)
				assert.Equal(t, "Conjunto bom", result[0].Name)
				assert.Equal(t, 6.0, result[0].ConversionRate)
			},
		},
		{
			name: "Limita ao número de posições pedido",
			adSets: []*domain.AdSetConversion{
				{Name: "A", Purchases: 1, ViewContent: 10},
				{Name: "B", Purchases: 2, ViewContent: 10},
				{Name: "C", Purchases: 3, ViewContent: 10},
				{Name: "D", Purchases: 4, ViewContent: 10},
			},
			top: 2,
			validate: func(t *testing.T, result []*domain.AdSetConversion) {
				assert.Len(t, result, 2)
				assert.Equal(t, "D", result[0].Name)
				assert.Equal(t, "C", result[1].Name)
			},
		},
		{
			name:   "Lista vazia retorna vazio",
			adSets: nil,
			top:    3,
			validate: func(t *testing.T, result []*domain.AdSetConversion) {
				assert.Empty(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rankAdSetConversions(tt.adSets, tt.top)
			tt.validate(t, result)
		})
	}
}

func TestRankAdSetROAS(t *testing.T) {
	tests := []struct {
		name     string
		adSets   []*domain.AdSetROAS
		top      int
		validate func(t *testing.T, result []*domain.AdSetROAS)
	}{
		{
			name: "Ordena por ROAS decrescente e descarta zerados",
			adSets: []*domain.AdSetROAS{
				{Name: "Conjunto A", ROAS: 2.5},
				{Name: "Conjunto B", ROAS: 0},
				{Name: "Conjunto C", ROAS: 4.1},
			},
			top: 3,
			validate: func(t *testing.T, result []*domain.AdSetROAS) {
				assert.Len(t, result, 2)
				assert.Equal(t, "Conjunto C", result[0].Name)
				assert.Equal(t, "Conjunto A", result[1].Name)
			},
		},
		{
			name: "Limita ao número de posições pedido",
			adSets: []*domain.AdSetROAS{
				{Name: "A", ROAS: 1.0},
				{Name: "B", ROAS: 2.0},
				{Name: "C", ROAS: 3.0},
				{Name: "D", ROAS: 4.0},
			},
			top: 3,
			validate: func(t *testing.T, result []*domain.AdSetROAS) {
				assert.Len(t, result, 3)
				assert.Equal(t, "D", result[0].Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rankAdSetROAS(tt.adSets, tt.top)
			tt.validate(t, result)
		})
	}
}

func TestRankHeroAds(t *testing.T) {
	tiers := []int{500, 100, 10}

	tests := []struct {
		name     string
		ads      []*domain.AdOutboundStat
		validate func(t *testing.T, result []*domain.AdOutboundStat)
	}{
		{
			name: "Primeira faixa com resultados encerra a busca",
			ads: []*domain.AdOutboundStat{
				{Name: "Anúncio grande", Impressions: 800, OutboundCTR: 2.1},
				{Name: "Anúncio médio", Impressions: 200, OutboundCTR: 3.5},
			},
			validate: func(t *testing.T, result []*domain.AdOutboundStat) {
				// O anúncio médio tem CTR maior, mas não entra porque a
				// faixa de 500 impressões já teve resultado.
				assert.Len(t, result, 1)
				assert.Equal(t, "Anúncio grande", result[0].Name)
			},
		},
		{
			name: "Relaxa para a faixa seguinte quando a primeira fica vazia",
			ads: []*domain.AdOutboundStat{
				{Name: "Anúncio médio", Impressions: 200, OutboundCTR: 1.8},
				{Name: "Anúncio pequeno", Impressions: 50, OutboundCTR: 4.0},
			},
			validate: func(t *testing.T, result []*domain.AdOutboundStat) {
				assert.Len(t, result, 1)
				assert.Equal(t, "Anúncio médio", result[0].Name)
			},
		},
		{
			name: "Chega à última faixa quando só há anúncios pequenos",
			ads: []*domain.AdOutboundStat{
				{Name: "Anúncio pequeno A", Impressions: 30, OutboundCTR: 1.0},
				{Name: "Anúncio pequeno B", Impressions: 15, OutboundCTR: 2.0},
			},
			validate: func(t *testing.T, result []*domain.AdOutboundStat) {
				assert.Len(t, result, 2)
				assert.Equal(t, "Anúncio pequeno B", result[0].Name)
			},
		},
		{
			name: "Anúncios sem nome resolvido ficam de fora",
			ads: []*domain.AdOutboundStat{
				{Name: "", Impressions: 900, OutboundCTR: 3.0},
				{Name: "(not set)", Impressions: 800, OutboundCTR: 2.5},
				{Name: "Anúncio nomeado", Impressions: 600, OutboundCTR: 1.2},
			},
			validate: func(t *testing.T, result []*domain.AdOutboundStat) {
				assert.Len(t, result, 1)
				assert.Equal(t, "Anúncio nomeado", result[0].Name)
			},
		},
		{
			name: "Só anúncios sem nome retorna vazio",
			ads: []*domain.AdOutboundStat{
				{Name: "", Impressions: 900, OutboundCTR: 3.0},
				{Name: "(not set)", Impressions: 50, OutboundCTR: 2.5},
			},
			validate: func(t *testing.T, result []*domain.AdOutboundStat) {
				assert.Nil(t, result)
			},
		},
		{
			name: "CTR zerado nunca qualifica",
			ads: []*domain.AdOutboundStat{
				{Name: "Anúncio sem cliques", Impressions: 900, OutboundCTR: 0},
			},
			validate: func(t *testing.T, result []*domain.AdOutboundStat) {
				assert.Nil(t, result)
			},
		},
		{
			name: "Abaixo de todas as faixas retorna vazio",
			ads: []*domain.AdOutboundStat{
				{Name: "Anúncio recém criado", Impressions: 5, OutboundCTR: 3.0},
			},
			validate: func(t *testing.T, result []*domain.AdOutboundStat) {
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rankHeroAds(tt.ads, tiers, 3)
			tt.validate(t, result)
		})
	}
}
