package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/backtrue/fbaudit-api/infrastructure/database/postgres"
	"github.com/backtrue/fbaudit-api/infrastructure/integrator/meta"
	"github.com/backtrue/fbaudit-api/infrastructure/integrator/meta/metaclient"
	"github.com/backtrue/fbaudit-api/infrastructure/integrator/openai"
	"github.com/backtrue/fbaudit-api/infrastructure/integrator/openai/openaiclient"
	"github.com/backtrue/fbaudit-api/infrastructure/repository"
	"github.com/backtrue/fbaudit-api/internal/api"
	"github.com/backtrue/fbaudit-api/internal/api/handler"
	"github.com/backtrue/fbaudit-api/internal/config"
	"github.com/backtrue/fbaudit-api/internal/scheduler"
	"github.com/backtrue/fbaudit-api/internal/usecases/auditing"
	"github.com/backtrue/fbaudit-api/internal/usecases/authenticating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	planRepo := repository.NewBudgetPlanRepository(pgConn)
	reportRepo := repository.NewHealthCheckRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	openaiClient := openaiclient.NewClient(cfg)
	openaiIntegrator := openai.New(cfg, openaiClient)

	auditor := auditing.New(cfg, metaIntegrator, openaiIntegrator, planRepo, reportRepo)

	// Inicializa o agendador de retenção de relatórios
	reportRetentionService := scheduler.NewReportRetentionService(reportRepo, cfg)
	if err := reportRetentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de relatórios")
	} else {
		logrus.Info("Agendador de retenção de relatórios iniciado com sucesso")
	}

	cronServices := handler.CronJobServices{
		ReportRetentionService: reportRetentionService,
	}

	server, err := api.New(cfg, auditor, authenticator, cronServices)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
