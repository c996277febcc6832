package auditing

import (
	"context"

	"github.com/backtrue/fbaudit-api/infrastructure/integrator/openai"
	"github.com/backtrue/fbaudit-api/internal/domain"
)

// InsightSource é a visão do caso de uso sobre o integrador do Meta.
type InsightSource interface {
	GetAccountMetrics(ctx context.Context, credential, accountID string) (*domain.AccountMetrics, error)
	GetAdSetConversions(ctx context.Context, credential, accountID string) ([]*domain.AdSetConversion, error)
	GetAdSetROAS(ctx context.Context, credential, accountID string) ([]*domain.AdSetROAS, error)
	GetAdOutboundStats(ctx context.Context, credential, accountID string) ([]*domain.AdOutboundStat, error)
	GetAdAccounts(ctx context.Context, credential string) ([]*domain.AdAccountSummary, error)
}

// Advisor é a visão do caso de uso sobre o integrador do modelo de linguagem.
type Advisor interface {
	Complete(ctx context.Context, request *openai.CompletionRequest) (string, error)
}
