package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/backtrue/fbaudit-api/infrastructure/repository"
	"github.com/backtrue/fbaudit-api/internal/config"
)

// ReportRetentionConfig representa a configuração do agendador de retenção de relatórios
type ReportRetentionConfig struct {
	CronSchedule string
	Days         int
	Enabled      bool
}

// ReportRetentionService gerencia a limpeza periódica de relatórios antigos de diagnóstico
type ReportRetentionService struct {
	scheduler          *gocron.Scheduler
	config             ReportRetentionConfig
	reportRepo         repository.HealthCheckRepository
	cleanupRunning     bool
	cleanupMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewReportRetentionService cria uma nova instância do serviço de retenção de relatórios
func NewReportRetentionService(
	reportRepo repository.HealthCheckRepository,
	appConfig *config.Config,
) *ReportRetentionService {
	retentionConfig := ReportRetentionConfig{
		CronSchedule: appConfig.ReportRetention.CronSchedule,
		Days:         appConfig.ReportRetention.Days,
		Enabled:      appConfig.ReportRetention.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.Days,
		"enabled":        retentionConfig.Enabled,
	}).Info("Configuração do agendador de retenção de relatórios carregada")

	return &ReportRetentionService{
		scheduler:      scheduler,
		config:         retentionConfig,
		reportRepo:     reportRepo,
		cleanupRunning: false,
	}
}

// Start inicia o agendador
func (s *ReportRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Retenção de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupOldReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// cleanupOldReports remove relatórios mais antigos que o período de retenção
func (s *ReportRetentionService) cleanupOldReports() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de relatórios já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	logrus.WithField("retention_days", s.config.Days).Info("Iniciando limpeza de relatórios antigos")

	removed, err := s.reportRepo.DeleteOlderThan(s.config.Days)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover relatórios antigos")
		return
	}

	logrus.WithFields(logrus.Fields{
		"removed":  removed,
		"duration": time.Since(startTime).String(),
	}).Info("Limpeza de relatórios concluída")

	s.lastRunCompletedAt = time.Now()
}

// TriggerManualCleanup inicia manualmente uma limpeza de relatórios
func (s *ReportRetentionService) TriggerManualCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de relatórios")
	go s.cleanupOldReports()
}

// GetStatus retorna o status atual do agendador
func (s *ReportRetentionService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"retention_days":        s.config.Days,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
