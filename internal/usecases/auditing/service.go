package auditing

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/backtrue/fbaudit-api/infrastructure/integrator/openai"
	"github.com/backtrue/fbaudit-api/infrastructure/repository"
	"github.com/backtrue/fbaudit-api/internal/config"
	"github.com/backtrue/fbaudit-api/internal/domain"
	"github.com/backtrue/fbaudit-api/pkg/utils"
)

// historyLimit limita o histórico de diagnósticos retornado por usuário.
const historyLimit = 10

type Auditor interface {
	RunHealthCheck(ctx context.Context, request *domain.HealthCheckRequest, onProgress domain.ProgressFunc) (*domain.HealthCheckResult, error)
	GetHealthCheckHistory(userID int) ([]*domain.HealthCheckReport, error)
	ListAdAccounts(ctx context.Context, credential string) ([]*domain.AdAccountSummary, error)
	ListBudgetPlans(userID int) ([]*domain.BudgetPlan, error)
	CreateBudgetPlan(plan *domain.BudgetPlan) (*domain.BudgetPlan, error)
}

type service struct {
	cfg        *config.Config
	insights   InsightSource
	advisor    Advisor
	planRepo   repository.BudgetPlanRepository
	reportRepo repository.HealthCheckRepository
}

func New(
	cfg *config.Config,
	insights InsightSource,
	advisor Advisor,
	planRepo repository.BudgetPlanRepository,
	reportRepo repository.HealthCheckRepository,
) Auditor {
	return &service{
		cfg:        cfg,
		insights:   insights,
		advisor:    advisor,
		planRepo:   planRepo,
		reportRepo: reportRepo,
	}
}

// RunHealthCheck executa o diagnóstico completo da conta: métricas da janela
// longa, comparação com o plano, busca de evidência e recomendações por
// métrica não atingida. Os eventos de progresso saem sempre na ordem
// canônica das métricas; onProgress pode ser nil.
func (s *service) RunHealthCheck(
	ctx context.Context,
	request *domain.HealthCheckRequest,
	onProgress domain.ProgressFunc,
) (*domain.HealthCheckResult, error) {
	accountMetrics, err := s.insights.GetAccountMetrics(ctx, request.Credential, request.AdAccountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": request.AdAccountID,
			"error":         err.Error(),
		}).Error("audit: failed to get account metrics")
		return nil, err
	}

	plan, err := s.planRepo.GetByID(request.PlanID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"plan_id": request.PlanID,
			"error":   err.Error(),
		}).Error("audit: failed to load budget plan")
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrPlanNotFound
	}

	metrics := domain.CalculateHealthCheckMetrics(accountMetrics, s.cfg.Audit.AccountWindowDays)
	targets := plan.Targets(s.cfg.Audit.TargetCTR)
	comparisons := compareMetrics(metrics, targets)

	emit(onProgress, &domain.ProgressEvent{
		Type: domain.EventComparisons,
		Data: comparisons,
	})

	evidence := s.collectEvidence(ctx, request, comparisons)

	// As recomendações saem uma a uma, na ordem das comparações. Somente
	// métricas não atingidas recebem recomendação.
	for _, comparison := range comparisons {
		if comparison.Status != domain.StatusNotAchieved {
			continue
		}

		emit(onProgress, &domain.ProgressEvent{
			Type:   domain.EventGenerating,
			Metric: comparison.Metric,
		})

		comparison.Advice = s.generateAdvice(ctx, comparison, evidence, request.Industry)

		emit(onProgress, &domain.ProgressEvent{
			Type:   domain.EventAdviceComplete,
			Metric: comparison.Metric,
			Advice: comparison.Advice,
		})
	}

	report := s.buildReport(request, accountMetrics, metrics, targets, comparisons)

	// A persistência do relatório não derruba um diagnóstico já concluído.
	if _, err := s.reportRepo.Save(report); err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": request.AdAccountID,
			"user_id":       request.UserID,
			"error":         err.Error(),
		}).Error("audit: failed to persist health check report")
	}

	return &domain.HealthCheckResult{
		Report:      report,
		Comparisons: comparisons,
	}, nil
}

// generateAdvice pede a recomendação ao modelo. Falhas de geração viram a
// frase fixa da métrica; o diagnóstico nunca falha por causa da recomendação.
func (s *service) generateAdvice(
	ctx context.Context,
	comparison *domain.KpiComparison,
	evidence *accountEvidence,
	industry string,
) string {
	advice, err := s.advisor.Complete(ctx, &openai.CompletionRequest{
		System: advisorPersona,
		Prompt: buildAdvicePrompt(comparison, evidence, industry),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"metric": string(comparison.Metric),
			"error":  err.Error(),
		}).Error("audit: failed to generate advice")
		return fallbackAdvice[comparison.Metric]
	}

	return stripCodeFence(advice)
}

func (s *service) buildReport(
	request *domain.HealthCheckRequest,
	accountMetrics *domain.AccountMetrics,
	metrics *domain.HealthCheckMetrics,
	targets *domain.PlanTarget,
	comparisons []*domain.KpiComparison,
) *domain.HealthCheckReport {
	return &domain.HealthCheckReport{
		UserID:        request.UserID,
		AdAccountID:   request.AdAccountID,
		AdAccountName: accountMetrics.AccountName,
		PlanID:        request.PlanID,
		Industry:      request.Industry,
		Metrics:       metrics,
		Targets:       targets,
		Comparisons:   comparisons,
		DataStartDate: accountMetrics.Window.Since,
		DataEndDate:   accountMetrics.Window.Until,
	}
}

// GetHealthCheckHistory retorna os diagnósticos mais recentes do usuário.
func (s *service) GetHealthCheckHistory(userID int) ([]*domain.HealthCheckReport, error) {
	reports, err := s.reportRepo.GetByUserID(userID, historyLimit)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("audit: failed to load health check history")
		return nil, err
	}

	return reports, nil
}

// ListAdAccounts lista as contas ativas visíveis pela credencial informada.
func (s *service) ListAdAccounts(ctx context.Context, credential string) ([]*domain.AdAccountSummary, error) {
	return s.insights.GetAdAccounts(ctx, credential)
}

// ListBudgetPlans retorna os planos de orçamento do usuário, do mais recente
// para o mais antigo.
func (s *service) ListBudgetPlans(userID int) ([]*domain.BudgetPlan, error) {
	plans, err := s.planRepo.GetByUserID(userID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("audit: failed to load budget plans")
		return nil, err
	}

	return plans, nil
}

// CreateBudgetPlan gera o identificador e persiste um novo plano de orçamento.
func (s *service) CreateBudgetPlan(plan *domain.BudgetPlan) (*domain.BudgetPlan, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	plan.ID = id

	if err := s.planRepo.Save(plan); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": plan.UserID,
			"plan_id": plan.ID,
			"error":   err.Error(),
		}).Error("audit: failed to save budget plan")
		return nil, err
	}

	return plan, nil
}

func emit(onProgress domain.ProgressFunc, event *domain.ProgressEvent) {
	if onProgress != nil {
		onProgress(event)
	}
}
