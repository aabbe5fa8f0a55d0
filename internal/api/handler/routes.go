package handler

import (
	"net/http"

	"github.com/mlourenci/despensa-api/internal/api/handler/router"
	"github.com/mlourenci/despensa-api/internal/usecases/analyzing"
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

// Analysis retorna as rotas das quatro análises do motor de consumo
func Analysis(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analysis/predictions",
			Method:  http.MethodGet,
			Handler: GetPredictions(service),
		},
		{
			Path:    "/v1/analysis/forgotten",
			Method:  http.MethodGet,
			Handler: GetForgottenItems(service),
		},
		{
			Path:    "/v1/analysis/changes",
			Method:  http.MethodGet,
			Handler: GetConsumptionChanges(service),
		},
		{
			Path:    "/v1/analysis/basket",
			Method:  http.MethodPost,
			Handler: CompareBasket(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/digest/run",
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
