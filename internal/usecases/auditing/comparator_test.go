package auditing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backtrue/fbaudit-api/internal/domain"
)

func TestCompareMetrics(t *testing.T) {
	tests := []struct {
		name     string
		metrics  *domain.HealthCheckMetrics
		targets  *domain.PlanTarget
		validate func(t *testing.T, result []*domain.KpiComparison)
	}{
		{
			name: "Todas as metas atingidas",
			metrics: &domain.HealthCheckMetrics{
				DailySpend: 1200.0,
				Purchases:  15,
				ROAS:       3.5,
				CTR:        2.0,
			},
			targets: &domain.PlanTarget{
				DailySpend: 1000.0,
				Purchases:  10,
				ROAS:       3.0,
				CTR:        1.5,
			},
			validate: func(t *testing.T, result []*domain.KpiComparison) {
				assert.Len(t, result, 4)
				for _, comparison := range result {
					assert.Equal(t, domain.StatusAchieved, comparison.Status)
				}
			},
		},
		{
			name: "Nenhuma meta atingida",
			metrics: &domain.HealthCheckMetrics{
				DailySpend: 500.0,
				Purchases:  3,
				ROAS:       1.2,
				CTR:        0.8,
			},
			targets: &domain.PlanTarget{
				DailySpend: 1000.0,
				Purchases:  10,
				ROAS:       3.0,
				CTR:        1.5,
			},
			validate: func(t *testing.T, result []*domain.KpiComparison) {
				assert.Len(t, result, 4)
				for _, comparison := range result {
					assert.Equal(t, domain.StatusNotAchieved, comparison.Status)
				}
			},
		},
		{
			name: "Valor igual à meta conta como atingido",
			metrics: &domain.HealthCheckMetrics{
				DailySpend: 1000.0,
				Purchases:  10,
				ROAS:       3.0,
				CTR:        1.5,
			},
			targets: &domain.PlanTarget{
				DailySpend: 1000.0,
				Purchases:  10,
				ROAS:       3.0,
				CTR:        1.5,
			},
			validate: func(t *testing.T, result []*domain.KpiComparison) {
				for _, comparison := range result {
					assert.Equal(t, domain.StatusAchieved, comparison.Status)
				}
			},
		},
		{
			name: "Ordem das métricas é sempre a canônica",
			metrics: &domain.HealthCheckMetrics{
				DailySpend: 500.0,
				Purchases:  15,
				ROAS:       1.2,
				CTR:        2.0,
			},
			targets: &domain.PlanTarget{
				DailySpend: 1000.0,
				Purchases:  10,
				ROAS:       3.0,
				CTR:        1.5,
			},
			validate: func(t *testing.T, result []*domain.KpiComparison) {
				assert.Equal(t, domain.MetricDailySpend, result[0].Metric)
				assert.Equal(t, domain.MetricPurchases, result[1].Metric)
				assert.Equal(t, domain.MetricROAS, result[2].Metric)
				assert.Equal(t, domain.MetricCTR, result[3].Metric)

				assert.Equal(t, domain.StatusNotAchieved, result[0].Status)
				assert.Equal(t, domain.StatusAchieved, result[1].Status)
				assert.Equal(t, domain.StatusNotAchieved, result[2].Status)
				assert.Equal(t, domain.StatusAchieved, result[3].Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := compareMetrics(tt.metrics, tt.targets)
			tt.validate(t, result)
		})
	}
}
