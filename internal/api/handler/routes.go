package handler

import (
	"net/http"

	"github.com/vfg2006/sales-insights-api/internal/api/handler/router"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sales(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/monthly-trends",
			Method:  http.MethodGet,
			Handler: GetMonthlyTrends(service),
		},
		{
			Path:    "/top-products",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service),
		},
		{
			Path:    "/region-distribution",
			Method:  http.MethodGet,
			Handler: GetRegionDistribution(service),
		},
		{
			Path:    "/price-correlation",
			Method:  http.MethodGet,
			Handler: GetPriceCorrelation(service),
		},
		{
			Path:    "/state-analysis",
			Method:  http.MethodGet,
			Handler: GetStateAnalysis(service),
		},
		{
			Path:    "/retailer-analysis",
			Method:  http.MethodGet,
			Handler: GetRetailerAnalysis(service),
		},
		{
			Path:    "/sales-method-analysis",
			Method:  http.MethodGet,
			Handler: GetSalesMethodAnalysis(service),
		},
		{
			Path:    "/filtered-data",
			Method:  http.MethodPost,
			Handler: GetFilteredData(service),
		},
		{
			Path:    "/debug-data",
			Method:  http.MethodGet,
			Handler: GetDebugData(service),
		},
	}
}

func Cache(cache CacheManager, warmup WarmupScheduler) []router.Route {
	return []router.Route{
		{
			Path:    "/cache/status",
			Method:  http.MethodGet,
			Handler: GetCacheStatus(cache, warmup),
		},
		{
			Path:    "/cache/refresh",
			Method:  http.MethodPost,
			Handler: RefreshCache(cache, warmup),
		},
	}
}
