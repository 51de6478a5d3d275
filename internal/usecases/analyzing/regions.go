package analyzing

import "github.com/vfg2006/sales-insights-api/internal/domain"

// RegionDistribution agrega a tabela inteira por região com a participação de cada uma nas vendas
func RegionDistribution(records []domain.SalesRecord) *domain.RegionDistribution {
	groups := groupBy(records, func(r domain.SalesRecord) string {
		return r.Region
	})

	total := 0.0
	for _, g := range groups {
		total += g.sales
	}

	dist := &domain.RegionDistribution{
		Regions:         make([]string, 0, len(groups)),
		Sales:           make([]float64, 0, len(groups)),
		Units:           make([]float64, 0, len(groups)),
		AvgPrice:        make([]float64, 0, len(groups)),
		Transactions:    make([]int, 0, len(groups)),
		SalesPercentage: make([]float64, 0, len(groups)),
	}

	for _, g := range groups {
		dist.Regions = append(dist.Regions, g.key)
		dist.Sales = append(dist.Sales, g.sales)
		dist.Units = append(dist.Units, g.units)
		dist.AvgPrice = append(dist.AvgPrice, g.avgPrice())
		dist.Transactions = append(dist.Transactions, g.count)
		dist.SalesPercentage = append(dist.SalesPercentage, percentage(g.sales, total))
	}

	return dist
}
