package analyzing

import (
	"context"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// Analyzer expõe as visões agregadas sobre o dataset de vendas em cache
type Analyzer interface {
	// GetSummary resume a tabela inteira
	GetSummary(ctx context.Context) (*domain.SummaryStatistics, error)

	// GetMonthlyTrends agrega por ano e mês, opcionalmente restrito a um ano
	GetMonthlyTrends(ctx context.Context, year *int) (domain.MonthlyTrends, error)

	// GetTopProducts retorna os produtos com mais vendas
	GetTopProducts(ctx context.Context, limit int) (*domain.TopProducts, error)

	GetRegionDistribution(ctx context.Context) (*domain.RegionDistribution, error)
	GetPriceCorrelation(ctx context.Context) (*domain.PriceCorrelation, error)

	// GetStateAnalysis retorna os estados com mais vendas
	GetStateAnalysis(ctx context.Context, limit int) (*domain.StateAnalysis, error)

	GetRetailerAnalysis(ctx context.Context) (*domain.RetailerAnalysis, error)
	GetSalesMethodAnalysis(ctx context.Context) (*domain.SalesMethodAnalysis, error)

	// GetFilteredData retorna as linhas que atendem aos filtros
	GetFilteredData(ctx context.Context, filters domain.DataFilters) (*domain.FilteredData, error)

	// GetDebugData descreve o snapshot atual para diagnóstico
	GetDebugData(ctx context.Context) (*domain.DebugData, error)
}
