package handler

import (
	"net/http"

	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

func GetSummary(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveQuery(w, r, "summary", func() (*domain.SummaryStatistics, error) {
			return service.GetSummary(r.Context())
		})
	})
}

func GetMonthlyTrends(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := parseOptionalInt(r, "year")
		if err != nil {
			logger.WithFields(log.Fields{
				"query": "monthly-trends",
				"error": err.Error(),
			}).Warn("sales: invalid year parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		serveQuery(w, r, "monthly-trends", func() (domain.MonthlyTrends, error) {
			return service.GetMonthlyTrends(r.Context(), year)
		})
	})
}

func GetTopProducts(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r, analyzing.DefaultTopProductsLimit)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"query": "top-products",
				"error": err.Error(),
			}).Warn("sales: invalid limit parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		serveQuery(w, r, "top-products", func() (*domain.TopProducts, error) {
			return service.GetTopProducts(r.Context(), limit)
		})
	})
}

func GetRegionDistribution(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveQuery(w, r, "region-distribution", func() (*domain.RegionDistribution, error) {
			return service.GetRegionDistribution(r.Context())
		})
	})
}

func GetPriceCorrelation(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveQuery(w, r, "price-correlation", func() (*domain.PriceCorrelation, error) {
			return service.GetPriceCorrelation(r.Context())
		})
	})
}

func GetStateAnalysis(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r, analyzing.DefaultStateAnalysisLimit)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"query": "state-analysis",
				"error": err.Error(),
			}).Warn("sales: invalid limit parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		serveQuery(w, r, "state-analysis", func() (*domain.StateAnalysis, error) {
			return service.GetStateAnalysis(r.Context(), limit)
		})
	})
}

func GetRetailerAnalysis(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveQuery(w, r, "retailer-analysis", func() (*domain.RetailerAnalysis, error) {
			return service.GetRetailerAnalysis(r.Context())
		})
	})
}

func GetSalesMethodAnalysis(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveQuery(w, r, "sales-method-analysis", func() (*domain.SalesMethodAnalysis, error) {
			return service.GetSalesMethodAnalysis(r.Context())
		})
	})
}

// GetFilteredData aceita {years, regions, products, retailers}; listas ausentes não filtram
func GetFilteredData(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := decodeFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"query": "filtered-data",
				"error": err.Error(),
			}).Warn("sales: invalid filter body")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"query":     "filtered-data",
			"years":     filters.Years,
			"regions":   filters.Regions,
			"products":  filters.Products,
			"retailers": filters.Retailers,
		}).Debug("sales: applying filters")

		serveQuery(w, r, "filtered-data", func() (*domain.FilteredData, error) {
			return service.GetFilteredData(r.Context(), filters)
		})
	})
}

func GetDebugData(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveQuery(w, r, "debug-data", func() (*domain.DebugData, error) {
			return service.GetDebugData(r.Context())
		})
	})
}
