package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/backtrue/fbaudit-api/infrastructure/database/postgres"
	"github.com/backtrue/fbaudit-api/internal/domain"
	"github.com/backtrue/fbaudit-api/pkg/utils"
)

const healthChecksTable = "fb_health_checks"

type HealthCheckRepository interface {
	Save(report *domain.HealthCheckReport) (*domain.HealthCheckReport, error)
	GetByUserID(userID int, limit int) ([]*domain.HealthCheckReport, error)
	DeleteOlderThan(days int) (int64, error)
}

type healthCheckRepository struct {
	conn *postgres.Connection
}

func NewHealthCheckRepository(conn *postgres.Connection) HealthCheckRepository {
	return &healthCheckRepository{
		conn: conn,
	}
}

// Save persiste o relatório concluído. Métricas, metas e comparações são
// guardadas como JSONB.
func (r *healthCheckRepository) Save(report *domain.HealthCheckReport) (*domain.HealthCheckReport, error) {
	if report.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar o ID do relatório: %w", err)
		}
		report.ID = id
	}

	metricsJSON, err := json.Marshal(report.Metrics)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	targetsJSON, err := json.Marshal(report.Targets)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar metas para JSON: %w", err)
	}

	comparisonsJSON, err := json.Marshal(report.Comparisons)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar comparações para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert(healthChecksTable).
		Columns(
			"id", "user_id", "ad_account_id", "ad_account_name", "plan_id", "industry",
			"metrics", "targets", "comparisons", "data_start_date", "data_end_date",
		).
		Values(
			report.ID,
			report.UserID,
			report.AdAccountID,
			report.AdAccountName,
			report.PlanID,
			report.Industry,
			metricsJSON,
			targetsJSON,
			comparisonsJSON,
			utils.FormatDate(report.DataStartDate),
			utils.FormatDate(report.DataEndDate),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return report, nil
}

func (r *healthCheckRepository) GetByUserID(userID int, limit int) ([]*domain.HealthCheckReport, error) {
	query, args, err := squirrel.
		Select(
			"id", "user_id", "ad_account_id", "ad_account_name", "plan_id", "industry",
			"metrics", "targets", "comparisons", "data_start_date", "data_end_date", "created_at",
		).
		From(healthChecksTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.HealthCheckReport, 0)
	for rows.Next() {
		report, err := r.scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *healthCheckRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete(healthChecksTable).
		Where(squirrel.Lt{"created_at": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *healthCheckRepository) scanReport(rows *sql.Rows) (*domain.HealthCheckReport, error) {
	report := &domain.HealthCheckReport{}
	var metricsJSON, targetsJSON, comparisonsJSON []byte
	var startDateStr, endDateStr string

	err := rows.Scan(
		&report.ID,
		&report.UserID,
		&report.AdAccountID,
		&report.AdAccountName,
		&report.PlanID,
		&report.Industry,
		&metricsJSON,
		&targetsJSON,
		&comparisonsJSON,
		&startDateStr,
		&endDateStr,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	startDate, err := utils.ParseDate(startDateStr)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter data inicial: %w", err)
	}
	report.DataStartDate = *startDate

	endDate, err := utils.ParseDate(endDateStr)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter data final: %w", err)
	}
	report.DataEndDate = *endDate

	if metricsJSON != nil {
		report.Metrics = &domain.HealthCheckMetrics{}
		if err := json.Unmarshal(metricsJSON, report.Metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
	}

	if targetsJSON != nil {
		report.Targets = &domain.PlanTarget{}
		if err := json.Unmarshal(targetsJSON, report.Targets); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de metas: %w", err)
		}
	}

	if comparisonsJSON != nil {
		if err := json.Unmarshal(comparisonsJSON, &report.Comparisons); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de comparações: %w", err)
		}
	}

	return report, nil
}
