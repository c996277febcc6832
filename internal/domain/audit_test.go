package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHealthCheckMetrics(t *testing.T) {
	tests := []struct {
		name       string
		metrics    *AccountMetrics
		windowDays int
		validate   func(t *testing.T, result *HealthCheckMetrics)
	}{
		{
			name: "Gasto e compras são diluídos pelos dias da janela",
			metrics: &AccountMetrics{
				Spend:     28000.0,
				Purchases: 336,
				ROAS:      3.4,
				CTR:       1.87,
			},
			windowDays: 28,
			validate: func(t *testing.T, result *HealthCheckMetrics) {
				assert.Equal(t, 1000.0, result.DailySpend)
				assert.Equal(t, 12, result.Purchases)
				assert.Equal(t, 3.4, result.ROAS)
				assert.Equal(t, 1.87, result.CTR)
			},
		},
		{
			name: "Compras fracionadas são arredondadas ao inteiro mais próximo",
			metrics: &AccountMetrics{
				Spend:     1000.0,
				Purchases: 10,
			},
			windowDays: 28,
			validate: func(t *testing.T, result *HealthCheckMetrics) {
				// 10/28 = 0.357
				assert.Equal(t, 0, result.Purchases)
				assert.Equal(t, 35.71, result.DailySpend)
			},
		},
		{
			name: "Janela inválida cai em um dia",
			metrics: &AccountMetrics{
				Spend:     500.0,
				Purchases: 4,
			},
			windowDays: 0,
			validate: func(t *testing.T, result *HealthCheckMetrics) {
				assert.Equal(t, 500.0, result.DailySpend)
				assert.Equal(t, 4, result.Purchases)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateHealthCheckMetrics(tt.metrics, tt.windowDays)
			tt.validate(t, result)
		})
	}
}

func TestBudgetPlan_Targets(t *testing.T) {
	plan := &BudgetPlan{
		DailyAdBudget:  1500.0,
		RequiredOrders: 450,
		TargetROAS:     3.5,
	}

	targets := plan.Targets(1.5)

	assert.Equal(t, 1500.0, targets.DailySpend)
	assert.Equal(t, 15, targets.Purchases) // 450 / 30 dias
	assert.Equal(t, 3.5, targets.ROAS)
	assert.Equal(t, 1.5, targets.CTR)
}

func TestInsightWindow_Days(t *testing.T) {
	window := NewInsightWindow(28)
	assert.Equal(t, 28, window.Days())
}
