package analyzing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/loading"
)

// Service liga as consultas ao cache do dataset
type Service struct {
	tables loading.TableProvider
}

// NewService cria o serviço de análises a partir de um provedor de snapshots
func NewService(tables loading.TableProvider) Analyzer {
	return &Service{tables: tables}
}

// run obtém o snapshot e executa a consulta. Um panic dentro da consulta vira
// *domain.ProcessingError e não afeta o cache.
func run[T any](ctx context.Context, s *Service, query string, fn func(*loading.Snapshot) T) (result T, err error) {
	snapshot, err := s.tables.GetTable(ctx)
	if err != nil {
		return result, err
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			logrus.WithFields(logrus.Fields{
				"query": query,
				"panic": recovered,
			}).Error("analyzing: falha inesperada ao processar consulta")

			var zero T
			result = zero
			err = &domain.ProcessingError{Query: query, Err: fmt.Errorf("%v", recovered)}
		}
	}()

	return fn(snapshot), nil
}

func (s *Service) GetSummary(ctx context.Context) (*domain.SummaryStatistics, error) {
	return run(ctx, s, "summary", func(snapshot *loading.Snapshot) *domain.SummaryStatistics {
		return SummaryStatistics(snapshot.Records)
	})
}

func (s *Service) GetMonthlyTrends(ctx context.Context, year *int) (domain.MonthlyTrends, error) {
	return run(ctx, s, "monthly-trends", func(snapshot *loading.Snapshot) domain.MonthlyTrends {
		return MonthlyTrends(snapshot.Records, year)
	})
}

func (s *Service) GetTopProducts(ctx context.Context, limit int) (*domain.TopProducts, error) {
	return run(ctx, s, "top-products", func(snapshot *loading.Snapshot) *domain.TopProducts {
		return TopProducts(snapshot.Records, limit)
	})
}

func (s *Service) GetRegionDistribution(ctx context.Context) (*domain.RegionDistribution, error) {
	return run(ctx, s, "region-distribution", func(snapshot *loading.Snapshot) *domain.RegionDistribution {
		return RegionDistribution(snapshot.Records)
	})
}

func (s *Service) GetPriceCorrelation(ctx context.Context) (*domain.PriceCorrelation, error) {
	return run(ctx, s, "price-correlation", func(snapshot *loading.Snapshot) *domain.PriceCorrelation {
		return PriceCorrelation(snapshot.Records)
	})
}

func (s *Service) GetStateAnalysis(ctx context.Context, limit int) (*domain.StateAnalysis, error) {
	return run(ctx, s, "state-analysis", func(snapshot *loading.Snapshot) *domain.StateAnalysis {
		return StateAnalysis(snapshot.Records, limit)
	})
}

func (s *Service) GetRetailerAnalysis(ctx context.Context) (*domain.RetailerAnalysis, error) {
	return run(ctx, s, "retailer-analysis", func(snapshot *loading.Snapshot) *domain.RetailerAnalysis {
		return RetailerAnalysis(snapshot.Records)
	})
}

func (s *Service) GetSalesMethodAnalysis(ctx context.Context) (*domain.SalesMethodAnalysis, error) {
	return run(ctx, s, "sales-method-analysis", func(snapshot *loading.Snapshot) *domain.SalesMethodAnalysis {
		return SalesMethodAnalysis(snapshot.Records)
	})
}

func (s *Service) GetFilteredData(ctx context.Context, filters domain.DataFilters) (*domain.FilteredData, error) {
	return run(ctx, s, "filtered-data", func(snapshot *loading.Snapshot) *domain.FilteredData {
		return FilteredData(snapshot.Records, filters)
	})
}

func (s *Service) GetDebugData(ctx context.Context) (*domain.DebugData, error) {
	return run(ctx, s, "debug-data", func(snapshot *loading.Snapshot) *domain.DebugData {
		return DebugData(snapshot.Records, domain.SnapshotInfo{
			Version:     snapshot.Version,
			FetchedAt:   snapshot.FetchedAt.Format(time.RFC3339),
			DroppedRows: snapshot.Dropped,
		})
	})
}
