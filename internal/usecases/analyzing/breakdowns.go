package analyzing

import "github.com/vfg2006/sales-insights-api/internal/domain"

// breakdown é a forma comum das análises por varejista e por método de venda
type breakdown struct {
	keys         []string
	sales        []float64
	units        []float64
	avgPrice     []float64
	transactions []int
}

func breakdownBy(records []domain.SalesRecord, key func(domain.SalesRecord) string) breakdown {
	groups := groupBy(records, key)

	b := breakdown{
		keys:         make([]string, 0, len(groups)),
		sales:        make([]float64, 0, len(groups)),
		units:        make([]float64, 0, len(groups)),
		avgPrice:     make([]float64, 0, len(groups)),
		transactions: make([]int, 0, len(groups)),
	}
	for _, g := range groups {
		b.keys = append(b.keys, g.key)
		b.sales = append(b.sales, g.sales)
		b.units = append(b.units, g.units)
		b.avgPrice = append(b.avgPrice, g.avgPrice())
		b.transactions = append(b.transactions, g.count)
	}
	return b
}

func RetailerAnalysis(records []domain.SalesRecord) *domain.RetailerAnalysis {
	b := breakdownBy(records, func(r domain.SalesRecord) string { return r.Retailer })
	return &domain.RetailerAnalysis{
		Retailers:    b.keys,
		Sales:        b.sales,
		Units:        b.units,
		AvgPrice:     b.avgPrice,
		Transactions: b.transactions,
	}
}

func SalesMethodAnalysis(records []domain.SalesRecord) *domain.SalesMethodAnalysis {
	b := breakdownBy(records, func(r domain.SalesRecord) string { return r.SalesMethod })
	return &domain.SalesMethodAnalysis{
		Methods:      b.keys,
		Sales:        b.sales,
		Units:        b.units,
		AvgPrice:     b.avgPrice,
		Transactions: b.transactions,
	}
}
