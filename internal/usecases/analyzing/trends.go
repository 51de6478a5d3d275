package analyzing

import (
	"sort"
	"strconv"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

type yearMonth struct {
	year  int
	month int
}

// MonthlyTrends agrega vendas, unidades e preço médio por (ano, mês) dentro dos limites
// de varejo. Quando year é informado, apenas aquele ano é considerado.
func MonthlyTrends(records []domain.SalesRecord, year *int) domain.MonthlyTrends {
	filtered := filterRecords(records, func(r domain.SalesRecord) bool {
		if !r.WithinRetailBounds() {
			return false
		}
		return year == nil || r.Year == *year
	})

	index := make(map[yearMonth]*groupStats)
	keys := make([]yearMonth, 0)
	for _, r := range filtered {
		k := yearMonth{year: r.Year, month: r.Month}
		g, ok := index[k]
		if !ok {
			g = &groupStats{}
			index[k] = g
			keys = append(keys, k)
		}
		g.sales += r.TotalSales
		g.units += r.UnitsSold
		g.priceSum += r.PricePerUnit
		g.count++
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	trends := make(domain.MonthlyTrends)
	for _, k := range keys {
		label := strconv.Itoa(k.year)
		trend, ok := trends[label]
		if !ok {
			trend = &domain.MonthlyTrend{
				Months:   []int{},
				Sales:    []float64{},
				Units:    []float64{},
				AvgPrice: []float64{},
			}
			trends[label] = trend
		}

		g := index[k]
		trend.Months = append(trend.Months, k.month)
		trend.Sales = append(trend.Sales, g.sales)
		trend.Units = append(trend.Units, g.units)
		trend.AvgPrice = append(trend.AvgPrice, g.avgPrice())
	}

	return trends
}
