package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/backtrue/fbaudit-api/internal/domain"
	"github.com/backtrue/fbaudit-api/internal/usecases/auditing"
	"github.com/backtrue/fbaudit-api/pkg/apiErrors"
	"github.com/backtrue/fbaudit-api/pkg/middleware"
)

type BudgetPlanRequestBody struct {
	Name           string  `json:"name"`
	DailyAdBudget  float64 `json:"daily_ad_budget"`
	RequiredOrders int     `json:"required_orders"`
	TargetROAS     float64 `json:"target_roas"`
}

// CreateBudgetPlan persiste um novo plano de orçamento do usuário logado.
func CreateBudgetPlan(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var body BudgetPlanRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if body.Name == "" || body.DailyAdBudget <= 0 || body.RequiredOrders <= 0 || body.TargetROAS <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"name, daily_ad_budget, required_orders e target_roas são obrigatórios e positivos", nil)
			return
		}

		plan, err := service.CreateBudgetPlan(&domain.BudgetPlan{
			UserID:         userClaims.UserID,
			Name:           body.Name,
			DailyAdBudget:  body.DailyAdBudget,
			RequiredOrders: body.RequiredOrders,
			TargetROAS:     body.TargetROAS,
		})
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar plano de orçamento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(plan)
	}
}

// ListBudgetPlans retorna os planos de orçamento do usuário logado.
func ListBudgetPlans(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		plans, err := service.ListBudgetPlans(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar planos de orçamento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(plans)
	}
}
