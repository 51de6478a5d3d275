package analyzing

import (
	"fmt"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// DefaultTopProductsLimit é o limite usado quando nenhum é informado
const DefaultTopProductsLimit = 10

// TopProducts classifica os produtos por vendas dentro dos limites de varejo e calcula
// a participação dos N primeiros no total de vendas
func TopProducts(records []domain.SalesRecord, limit int) *domain.TopProducts {
	groups := groupBy(retailRecords(records), func(r domain.SalesRecord) string {
		return r.Product
	})
	top := rankBySales(groups, limit)

	totalSalesAll := 0.0
	for _, g := range groups {
		totalSalesAll += g.sales
	}

	topSales := 0.0
	products := make([]domain.ProductPerformance, 0, len(top))
	for _, g := range top {
		topSales += g.sales
		products = append(products, domain.ProductPerformance{
			Product:      g.key,
			TotalSales:   g.sales,
			UnitsSold:    toCount(g.units),
			AvgPrice:     g.avgPrice(),
			Transactions: g.count,
		})
	}

	share := percentage(topSales, totalSalesAll)

	return &domain.TopProducts{
		TopProducts: products,
		Summary: domain.TopProductsSummary{
			TotalProducts:         len(groups),
			TotalSalesAll:         totalSalesAll,
			TopProductsSales:      topSales,
			TopProductsPercentage: share,
			Analysis:              fmt.Sprintf("Top %d produtos representam %.1f%% do total de vendas", limit, share),
		},
	}
}
