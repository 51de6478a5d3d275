package analyzing

import (
	"fmt"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// DefaultStateAnalysisLimit é o limite usado quando nenhum é informado
const DefaultStateAnalysisLimit = 15

// StateAnalysis classifica os estados por vendas dentro dos limites de varejo
func StateAnalysis(records []domain.SalesRecord, limit int) *domain.StateAnalysis {
	filtered := retailRecords(records)
	total := totalSales(filtered)

	groups := rankBySales(groupBy(filtered, func(r domain.SalesRecord) string {
		return r.State
	}), limit)

	states := make([]domain.StatePerformance, 0, len(groups))
	for _, g := range groups {
		states = append(states, domain.StatePerformance{
			State:           g.key,
			TotalSales:      g.sales,
			UnitsSold:       toCount(g.units),
			Region:          g.firstRegion,
			AvgPrice:        g.avgPrice(),
			Transactions:    g.count,
			SalesPercentage: percentage(g.sales, total),
			AvgPricePerUnit: safeDiv(g.sales, g.units),
		})
	}

	return &domain.StateAnalysis{
		States: states,
		Summary: domain.StateAnalysisSummary{
			TotalStatesAnalyzed: len(states),
			TotalSalesAll:       total,
			Analysis:            fmt.Sprintf("Análise de vendas dos %d principais estados", len(states)),
		},
	}
}
