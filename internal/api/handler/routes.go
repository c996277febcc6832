package handler

import (
	"net/http"

	"github.com/backtrue/fbaudit-api/internal/api/handler/router"
	"github.com/backtrue/fbaudit-api/internal/usecases/auditing"
	"github.com/backtrue/fbaudit-api/internal/usecases/authenticating"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Audit(service auditing.Auditor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/audit/health-check",
			Method:  http.MethodPost,
			Handler: RunHealthCheck(service),
		},
		{
			Path:    "/v1/audit/health-checks",
			Method:  http.MethodGet,
			Handler: GetHealthCheckHistory(service),
		},
		{
			Path:    "/v1/audit/accounts",
			Method:  http.MethodGet,
			Handler: ListAdAccounts(service),
		},
	}
}

func Plans(service auditing.Auditor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/plans",
			Method:  http.MethodPost,
			Handler: CreateBudgetPlan(service),
		},
		{
			Path:    "/v1/plans",
			Method:  http.MethodGet,
			Handler: ListBudgetPlans(service),
		},
	}
}

func Cron(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
