package domain

import (
	"time"

	"github.com/backtrue/fbaudit-api/pkg/utils"
	"github.com/pkg/errors"
)

// ErrPlanNotFound indica que o plano referenciado não existe.
var ErrPlanNotFound = errors.New("plano de orçamento não encontrado")

// ErrAccountWithoutData indica que a conta não retornou insights na janela
// analisada. O diagnóstico não prossegue sem os totais da conta.
var ErrAccountWithoutData = errors.New("conta de anúncio sem dados na janela analisada")

// BudgetPlan é o plano de orçamento do usuário usado como origem das metas.
type BudgetPlan struct {
	ID             string    `json:"id"`
	UserID         int       `json:"user_id"`
	Name           string    `json:"name"`
	DailyAdBudget  float64   `json:"daily_ad_budget"`
	RequiredOrders int       `json:"required_orders"`
	TargetROAS     float64   `json:"target_roas"`
	CreatedAt      time.Time `json:"created_at"`
}

// Targets deriva as metas por métrica do plano. As compras exigidas são
// diluídas em um mês comercial de 30 dias; a meta de CTR não vem do plano
// e é injetada pela configuração.
func (p *BudgetPlan) Targets(targetCTR float64) *PlanTarget {
	return &PlanTarget{
		DailySpend: p.DailyAdBudget,
		Purchases:  utils.RoundToInt(float64(p.RequiredOrders) / 30),
		ROAS:       p.TargetROAS,
		CTR:        targetCTR,
	}
}
