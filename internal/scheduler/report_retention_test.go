package scheduler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/backtrue/fbaudit-api/infrastructure/repository/mocks"
)

func TestReportRetentionService_cleanupOldReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockHealthCheckRepository)
		validate func(t *testing.T, service *ReportRetentionService)
	}{
		{
			name: "Remove relatórios mais antigos que o período de retenção",
			setup: func(repo *mocks.MockHealthCheckRepository) {
				repo.EXPECT().DeleteOlderThan(180).Return(int64(42), nil)
			},
			validate: func(t *testing.T, service *ReportRetentionService) {
				assert.False(t, service.lastRunCompletedAt.IsZero())
			},
		},
		{
			name: "Erro na remoção não marca a execução como concluída",
			setup: func(repo *mocks.MockHealthCheckRepository) {
				repo.EXPECT().DeleteOlderThan(180).Return(int64(0), errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, service *ReportRetentionService) {
				assert.True(t, service.lastRunCompletedAt.IsZero())
				assert.False(t, service.lastRunStartedAt.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockHealthCheckRepository(ctrl)
			tt.setup(mockRepo)

			service := &ReportRetentionService{
				config: ReportRetentionConfig{
					CronSchedule: "0 3 * * *",
					Days:         180,
					Enabled:      true,
				},
				reportRepo: mockRepo,
			}

			service.cleanupOldReports()
			tt.validate(t, service)
		})
	}
}

func TestReportRetentionService_cleanupJaEmAndamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockHealthCheckRepository(ctrl)
	// Nenhuma chamada ao repositório é esperada

	service := &ReportRetentionService{
		config: ReportRetentionConfig{
			Days:    180,
			Enabled: true,
		},
		reportRepo:     mockRepo,
		cleanupRunning: true,
	}

	service.cleanupOldReports()

	assert.True(t, service.lastRunCompletedAt.IsZero())
}

func TestReportRetentionService_GetStatus(t *testing.T) {
	service := &ReportRetentionService{
		config: ReportRetentionConfig{
			CronSchedule: "0 3 * * *",
			Days:         180,
			Enabled:      true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 3 * * *", status["cron"])
	assert.Equal(t, 180, status["retention_days"])
}
