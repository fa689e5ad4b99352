package handler

import (
	"net/http"

	"github.com/vfg2006/sgf-sync-api/internal/api/handler/router"
	"github.com/vfg2006/sgf-sync-api/internal/scheduler"
	"github.com/vfg2006/sgf-sync-api/internal/usecases/reporting"
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

func Reports(service reporting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/processed-sales",
			Method:  http.MethodGet,
			Handler: GetProcessedSales(service),
		},
		{
			Path:    "/v1/reports/purchases",
			Method:  http.MethodGet,
			Handler: GetPurchases(service),
		},
		{
			Path:    "/v1/reports/products",
			Method:  http.MethodGet,
			Handler: GetProducts(service),
		},
		{
			Path:    "/v1/reports/sellers",
			Method:  http.MethodGet,
			Handler: GetSellers(service),
		},
		{
			Path:    "/v1/reports/suppliers",
			Method:  http.MethodGet,
			Handler: GetSuppliers(service),
		},
	}
}

func Sync(sched *scheduler.Scheduler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/run/:task",
			Method:  http.MethodPost,
			Handler: RunSyncTask(sched),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(sched),
		},
	}
}
