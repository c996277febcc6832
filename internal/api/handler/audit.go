package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/backtrue/fbaudit-api/internal/domain"
	"github.com/backtrue/fbaudit-api/internal/usecases/auditing"
	"github.com/backtrue/fbaudit-api/pkg/apiErrors"
	"github.com/backtrue/fbaudit-api/pkg/middleware"
)

// MetaTokenHeader carrega o access token do Meta fornecido pela sessão do
// usuário no frontend. A API não guarda credenciais do Meta.
const MetaTokenHeader = "X-Meta-Access-Token"

type HealthCheckRequestBody struct {
	AdAccountID string `json:"ad_account_id"`
	PlanID      string `json:"plan_id"`
	Industry    string `json:"industry"`
}

// RunHealthCheck executa o diagnóstico da conta. Com ?stream=true a resposta
// sai como Server-Sent Events com o progresso; sem o parâmetro, a resposta é
// o resultado completo em JSON.
func RunHealthCheck(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		credential := r.Header.Get(MetaTokenHeader)
		if credential == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingMetaToken, "Header "+MetaTokenHeader+" é obrigatório", nil)
			return
		}

		var body HealthCheckRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if body.AdAccountID == "" || body.PlanID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ad_account_id e plan_id são obrigatórios", nil)
			return
		}

		request := &domain.HealthCheckRequest{
			UserID:      userClaims.UserID,
			AdAccountID: body.AdAccountID,
			PlanID:      body.PlanID,
			Industry:    body.Industry,
			Credential:  credential,
		}

		if r.URL.Query().Get("stream") == "true" {
			streamHealthCheck(w, r, service, request)
			return
		}

		result, err := service.RunHealthCheck(r.Context(), request, nil)
		if err != nil {
			writeHealthCheckError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// streamHealthCheck envia o progresso do diagnóstico como Server-Sent Events.
// Cada evento de progresso vira uma linha data; a conclusão e os erros também
// saem pelo stream, já que o status HTTP já foi enviado.
func streamHealthCheck(
	w http.ResponseWriter,
	r *http.Request,
	service auditing.Auditor,
	request *domain.HealthCheckRequest,
) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrStreamUnsupport, "Streaming não suportado pela conexão", nil)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	onProgress := func(event *domain.ProgressEvent) {
		writeSSEEvent(w, flusher, event)
	}

	// O diagnóstico segue até o fim mesmo se o cliente parar de consumir o
	// stream: a desconexão cancela o contexto da requisição, mas o relatório
	// ainda precisa ser concluído e persistido. Eventos após a desconexão
	// apenas deixam de ser lidos.
	result, err := service.RunHealthCheck(context.WithoutCancel(r.Context()), request, onProgress)
	if err != nil {
		logrus.WithError(err).Error("audit: streaming health check failed")
		writeSSEEvent(w, flusher, map[string]any{
			"type":    "error",
			"message": err.Error(),
		})
		return
	}

	writeSSEEvent(w, flusher, map[string]any{
		"type":   "complete",
		"report": result.Report,
	})
}

func writeSSEEvent(w http.ResponseWriter, flusher http.Flusher, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).Error("audit: failed to marshal sse event")
		return
	}

	fmt.Fprintf(w, "data: %s\n\n", data)
	flusher.Flush()
}

// GetHealthCheckHistory retorna os últimos diagnósticos do usuário logado.
func GetHealthCheckHistory(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		reports, err := service.GetHealthCheckHistory(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico de diagnósticos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reports)
	}
}

// ListAdAccounts lista as contas de anúncio ativas visíveis pela credencial.
func ListAdAccounts(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		credential := r.Header.Get(MetaTokenHeader)
		if credential == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingMetaToken, "Header "+MetaTokenHeader+" é obrigatório", nil)
			return
		}

		accounts, err := service.ListAdAccounts(r.Context(), credential)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar contas de anúncio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(accounts)
	}
}

func writeHealthCheckError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrPlanNotFound):
		apiErrors.WriteError(w, apiErrors.ErrPlanNotFound, "Plano de orçamento não encontrado", nil)

	case errors.Is(err, domain.ErrAccountWithoutData):
		apiErrors.WriteError(w, apiErrors.ErrAccountNoData, "A conta não tem dados na janela analisada", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao executar o diagnóstico", nil)
	}
}
