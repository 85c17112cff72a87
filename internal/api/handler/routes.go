package handler

import (
	"net/http"

	"github.com/vfg2006/transaction-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/seeding"
)

// APIPrefix é o prefixo comum das rotas do painel
const APIPrefix = "/api"

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboard.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/transactions",
			Method:  http.MethodGet,
			Handler: ListTransactions(service),
		},
		{
			Path:    "/statistics",
			Method:  http.MethodGet,
			Handler: GetStatistics(service),
		},
		{
			Path:    "/bar-chart",
			Method:  http.MethodGet,
			Handler: GetBarChart(service),
		},
		{
			Path:    "/pie-chart",
			Method:  http.MethodGet,
			Handler: GetPieChart(service),
		},
		{
			Path:    "/combined-data",
			Method:  http.MethodGet,
			Handler: GetCombinedData(service),
		},
	}
}

func Seed(seeder seeding.Seeder, sync SeedSyncTrigger) []router.Route {
	return []router.Route{
		{
			Path:    "/init",
			Method:  http.MethodPost,
			Handler: InitDatabase(seeder),
		},
		{
			Path:    "/seed/status",
			Method:  http.MethodGet,
			Handler: GetSeedStatus(sync),
		},
		{
			Path:    "/seed/sync",
			Method:  http.MethodPost,
			Handler: RunSeedSync(sync),
		},
	}
}
