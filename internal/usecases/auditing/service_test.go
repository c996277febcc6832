package auditing

import (
	"context"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	repomocks "github.com/backtrue/fbaudit-api/infrastructure/repository/mocks"
	"github.com/backtrue/fbaudit-api/internal/config"
	"github.com/backtrue/fbaudit-api/internal/domain"
	"github.com/backtrue/fbaudit-api/internal/usecases/auditing/mocks"
	"github.com/backtrue/fbaudit-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func auditConfig() *config.Config {
	return &config.Config{
		Audit: config.Audit{
			AccountWindowDays:   28,
			EntityWindowDays:    7,
			TargetCTR:           1.5,
			HeroImpressionTiers: []int{500, 100, 10},
			TopEntityCount:      3,
		},
	}
}

func TestService_RunHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsights := mocks.NewMockInsightSource(ctrl)
	mockAdvisor := mocks.NewMockAdvisor(ctrl)
	mockPlanRepo := repomocks.NewMockBudgetPlanRepository(ctrl)
	mockReportRepo := repomocks.NewMockHealthCheckRepository(ctrl)

	service := &service{
		cfg:        auditConfig(),
		insights:   mockInsights,
		advisor:    mockAdvisor,
		planRepo:   mockPlanRepo,
		reportRepo: mockReportRepo,
	}

	request := &domain.HealthCheckRequest{
		UserID:      7,
		AdAccountID: "123456",
		PlanID:      "plan01",
		Industry:    "moda",
		Credential:  "token",
	}

	// Plano com metas: 1000/dia, 10 compras/dia, ROAS 3, CTR 1.5.
	plan := &domain.BudgetPlan{
		ID:             "plan01",
		UserID:         7,
		DailyAdBudget:  1000.0,
		RequiredOrders: 300,
		TargetROAS:     3.0,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, result *domain.HealthCheckResult, events []*domain.ProgressEvent, err error)
	}{
		{
			name: "Conta saudável não gera recomendações",
			setup: func() {
				mockInsights.EXPECT().
					GetAccountMetrics(gomock.Any(), "token", "123456").
					Return(&domain.AccountMetrics{
						AccountID:   "123456",
						AccountName: "Loja Exemplo",
						Spend:       33600.0, // 1200/dia
						Purchases:   336,     // 12/dia
						ROAS:        3.4,
						CTR:         1.9,
						Window:      domain.NewInsightWindow(28),
					}, nil)

				mockPlanRepo.EXPECT().GetByID("plan01").Return(plan, nil)
				mockReportRepo.EXPECT().Save(gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.HealthCheckResult, events []*domain.ProgressEvent, err error) {
				assert.NoError(t, err)
				assert.Len(t, result.Comparisons, 4)
				for _, comparison := range result.Comparisons {
					assert.Equal(t, domain.StatusAchieved, comparison.Status)
					assert.Empty(t, comparison.Advice)
				}

				// Somente o evento inicial de comparações
				assert.Len(t, events, 1)
				assert.Equal(t, domain.EventComparisons, events[0].Type)
			},
		},
		{
			name: "Métrica não atingida gera eventos e recomendação em ordem",
			setup: func() {
				mockInsights.EXPECT().
					GetAccountMetrics(gomock.Any(), "token", "123456").
					Return(&domain.AccountMetrics{
						AccountID:   "123456",
						AccountName: "Loja Exemplo",
						Spend:       33600.0,
						Purchases:   336,
						ROAS:        1.8, // abaixo da meta de 3.0
						CTR:         1.9,
						Window:      domain.NewInsightWindow(28),
					}, nil)

				mockPlanRepo.EXPECT().GetByID("plan01").Return(plan, nil)

				mockInsights.EXPECT().
					GetAdSetROAS(gomock.Any(), "token", "123456").
					Return([]*domain.AdSetROAS{{Name: "Conjunto top", ROAS: 5.2}}, nil)

				mockAdvisor.EXPECT().
					Complete(gomock.Any(), gomock.Any()).
					Return("```html\n<p>Escale o conjunto top.</p>\n```", nil)

				mockReportRepo.EXPECT().Save(gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.HealthCheckResult, events []*domain.ProgressEvent, err error) {
				assert.NoError(t, err)

				roas := result.Comparisons[2]
				assert.Equal(t, domain.MetricROAS, roas.Metric)
				assert.Equal(t, domain.StatusNotAchieved, roas.Status)
				assert.Equal(t, "<p>Escale o conjunto top.</p>", roas.Advice)

				assert.Len(t, events, 3)
				assert.Equal(t, domain.EventComparisons, events[0].Type)
				assert.Equal(t, domain.EventGenerating, events[1].Type)
				assert.Equal(t, domain.MetricROAS, events[1].Metric)
				assert.Equal(t, domain.EventAdviceComplete, events[2].Type)
				assert.Equal(t, "<p>Escale o conjunto top.</p>", events[2].Advice)
			},
		},
		{
			name: "Falha na geração usa a frase fixa da métrica",
			setup: func() {
				mockInsights.EXPECT().
					GetAccountMetrics(gomock.Any(), "token", "123456").
					Return(&domain.AccountMetrics{
						AccountID: "123456",
						Spend:     33600.0,
						Purchases: 336,
						ROAS:      1.8,
						CTR:       1.9,
						Window:    domain.NewInsightWindow(28),
					}, nil)

				mockPlanRepo.EXPECT().GetByID("plan01").Return(plan, nil)

				mockInsights.EXPECT().
					GetAdSetROAS(gomock.Any(), "token", "123456").
					Return(nil, errors.New("api indisponível"))

				mockAdvisor.EXPECT().
					Complete(gomock.Any(), gomock.Any()).
					Return("", errors.New("timeout"))

				mockReportRepo.EXPECT().Save(gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.HealthCheckResult, events []*domain.ProgressEvent, err error) {
				assert.NoError(t, err)
				assert.Equal(t, fallbackAdvice[domain.MetricROAS], result.Comparisons[2].Advice)
			},
		},
		{
			name: "Falha ao salvar o relatório não derruba o diagnóstico",
			setup: func() {
				mockInsights.EXPECT().
					GetAccountMetrics(gomock.Any(), "token", "123456").
					Return(&domain.AccountMetrics{
						AccountID: "123456",
						Spend:     33600.0,
						Purchases: 336,
						ROAS:      3.4,
						CTR:       1.9,
						Window:    domain.NewInsightWindow(28),
					}, nil)

				mockPlanRepo.EXPECT().GetByID("plan01").Return(plan, nil)
				mockReportRepo.EXPECT().Save(gomock.Any()).Return(nil, errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, result *domain.HealthCheckResult, events []*domain.ProgressEvent, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Len(t, result.Comparisons, 4)
			},
		},
		{
			name: "Plano inexistente interrompe o diagnóstico",
			setup: func() {
				mockInsights.EXPECT().
					GetAccountMetrics(gomock.Any(), "token", "123456").
					Return(&domain.AccountMetrics{
						AccountID: "123456",
						Spend:     100.0,
						Window:    domain.NewInsightWindow(28),
					}, nil)

				mockPlanRepo.EXPECT().GetByID("plan01").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.HealthCheckResult, events []*domain.ProgressEvent, err error) {
				assert.ErrorIs(t, err, domain.ErrPlanNotFound)
				assert.Nil(t, result)
				assert.Empty(t, events)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			var events []*domain.ProgressEvent
			result, err := service.RunHealthCheck(context.Background(), request, func(event *domain.ProgressEvent) {
				events = append(events, event)
			})

			tt.validate(t, result, events, err)
		})
	}
}

func TestService_GetHealthCheckHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportRepo := repomocks.NewMockHealthCheckRepository(ctrl)

	service := &service{
		cfg:        auditConfig(),
		reportRepo: mockReportRepo,
	}

	mockReportRepo.EXPECT().
		GetByUserID(7, historyLimit).
		Return([]*domain.HealthCheckReport{{ID: "abc123", UserID: 7}}, nil)

	reports, err := service.GetHealthCheckHistory(7)

	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, "abc123", reports[0].ID)
}

func TestService_ListBudgetPlans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlanRepo := repomocks.NewMockBudgetPlanRepository(ctrl)

	service := &service{
		cfg:      auditConfig(),
		planRepo: mockPlanRepo,
	}

	mockPlanRepo.EXPECT().
		GetByUserID(7).
		Return([]*domain.BudgetPlan{{ID: "plano1", UserID: 7, Name: "Plano Black Friday"}}, nil)

	plans, err := service.ListBudgetPlans(7)

	assert.NoError(t, err)
	assert.Len(t, plans, 1)
	assert.Equal(t, "Plano Black Friday", plans[0].Name)
}

func TestService_CreateBudgetPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlanRepo := repomocks.NewMockBudgetPlanRepository(ctrl)

	service := &service{
		cfg:      auditConfig(),
		planRepo: mockPlanRepo,
	}

	mockPlanRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(plan *domain.BudgetPlan) error {
			assert.Len(t, plan.ID, 6)
			assert.Equal(t, 7, plan.UserID)
			assert.Equal(t, 1000.0, plan.DailyAdBudget)
			return nil
		})

	plan, err := service.CreateBudgetPlan(&domain.BudgetPlan{
		UserID:         7,
		Name:           "Plano Black Friday",
		DailyAdBudget:  1000,
		RequiredOrders: 300,
		TargetROAS:     3,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, plan.ID)
}

func TestService_CreateBudgetPlan_ErroDePersistencia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlanRepo := repomocks.NewMockBudgetPlanRepository(ctrl)

	service := &service{
		cfg:      auditConfig(),
		planRepo: mockPlanRepo,
	}

	mockPlanRepo.EXPECT().
		Save(gomock.Any()).
		Return(errors.New("erro no banco de dados"))

	plan, err := service.CreateBudgetPlan(&domain.BudgetPlan{
		UserID:         7,
		Name:           "Plano Black Friday",
		DailyAdBudget:  1000,
		RequiredOrders: 300,
		TargetROAS:     3,
	})

	assert.Error(t, err)
	assert.Nil(t, plan)
}
