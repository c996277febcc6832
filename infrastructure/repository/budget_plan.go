package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/backtrue/fbaudit-api/infrastructure/database/postgres"
	"github.com/backtrue/fbaudit-api/internal/domain"
)

const budgetPlansTable = "budget_plans"

type BudgetPlanRepository interface {
	GetByID(planID string) (*domain.BudgetPlan, error)
	GetByUserID(userID int) ([]*domain.BudgetPlan, error)
	Save(plan *domain.BudgetPlan) error
}

type budgetPlanRepository struct {
	conn *postgres.Connection
}

func NewBudgetPlanRepository(conn *postgres.Connection) BudgetPlanRepository {
	return &budgetPlanRepository{
		conn: conn,
	}
}

// GetByID retorna nil sem erro quando o plano não existe. A tradução para
// erro de negócio fica com o caso de uso.
func (r *budgetPlanRepository) GetByID(planID string) (*domain.BudgetPlan, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "name", "daily_ad_budget", "required_orders", "target_roas", "created_at").
		From(budgetPlansTable).
		Where(squirrel.Eq{"id": planID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var plan domain.BudgetPlan
	err = r.conn.QueryRow(query, args...).Scan(
		&plan.ID,
		&plan.UserID,
		&plan.Name,
		&plan.DailyAdBudget,
		&plan.RequiredOrders,
		&plan.TargetROAS,
		&plan.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar plano: %w", err)
	}

	return &plan, nil
}

func (r *budgetPlanRepository) GetByUserID(userID int) ([]*domain.BudgetPlan, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "name", "daily_ad_budget", "required_orders", "target_roas", "created_at").
		From(budgetPlansTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
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

	plans := make([]*domain.BudgetPlan, 0)
	for rows.Next() {
		var plan domain.BudgetPlan
		if err := rows.Scan(
			&plan.ID,
			&plan.UserID,
			&plan.Name,
			&plan.DailyAdBudget,
			&plan.RequiredOrders,
			&plan.TargetROAS,
			&plan.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear plano: %w", err)
		}
		plans = append(plans, &plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return plans, nil
}

func (r *budgetPlanRepository) Save(plan *domain.BudgetPlan) error {
	query, args, err := squirrel.
		Insert(budgetPlansTable).
		Columns("id", "user_id", "name", "daily_ad_budget", "required_orders", "target_roas").
		Values(plan.ID, plan.UserID, plan.Name, plan.DailyAdBudget, plan.RequiredOrders, plan.TargetROAS).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar plano: %w", err)
	}

	return nil
}
