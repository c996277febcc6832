package auditing

import (
	"github.com/backtrue/fbaudit-api/internal/domain"
)

// compareMetrics confronta os KPIs realizados com as metas do plano na ordem
// canônica das métricas. Igualar a meta conta como atingido.
func compareMetrics(metrics *domain.HealthCheckMetrics, targets *domain.PlanTarget) []*domain.KpiComparison {
	comparisons := make([]*domain.KpiComparison, 0, len(domain.MetricOrder))

	for _, metric := range domain.MetricOrder {
		target := targets.Value(metric)
		actual := metrics.Value(metric)

		status := domain.StatusNotAchieved
		if actual >= target {
			status = domain.StatusAchieved
		}

		comparisons = append(comparisons, &domain.KpiComparison{
			Metric: metric,
			Target: target,
			Actual: actual,
			Status: status,
		})
	}

	return comparisons
}
