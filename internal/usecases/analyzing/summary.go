package analyzing

import (
	"sort"

	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

// SummaryStatistics resume a tabela inteira, sem filtros de outlier
func SummaryStatistics(records []domain.SalesRecord) *domain.SummaryStatistics {
	summary := &domain.SummaryStatistics{
		TotalRecords: len(records),
		DataPeriod:   domain.DataPeriod{Years: []int{}},
	}
	if len(records) == 0 {
		return summary
	}

	products := make(map[string]struct{})
	regions := make(map[string]struct{})
	retailers := make(map[string]struct{})
	states := make(map[string]struct{})

	var units, priceSum float64
	start, end := records[0].InvoiceDate, records[0].InvoiceDate

	for _, r := range records {
		summary.TotalSales += r.TotalSales
		units += r.UnitsSold
		priceSum += r.PricePerUnit

		products[r.Product] = struct{}{}
		regions[r.Region] = struct{}{}
		retailers[r.Retailer] = struct{}{}
		states[r.State] = struct{}{}

		if r.InvoiceDate.Before(start) {
			start = r.InvoiceDate
		}
		if r.InvoiceDate.After(end) {
			end = r.InvoiceDate
		}
	}

	summary.TotalUnits = toCount(units)
	summary.AvgPricePerUnit = safeDiv(priceSum, float64(len(records)))
	summary.UniqueProducts = len(products)
	summary.UniqueRegions = len(regions)
	summary.UniqueRetailers = len(retailers)
	summary.UniqueStates = len(states)
	summary.DataPeriod = domain.DataPeriod{
		StartDate: utils.FormatDate(start),
		EndDate:   utils.FormatDate(end),
		Years:     distinctYears(records),
	}

	return summary
}

func distinctYears(records []domain.SalesRecord) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, r := range records {
		if _, ok := seen[r.Year]; ok {
			continue
		}
		seen[r.Year] = struct{}{}
		years = append(years, r.Year)
	}
	sort.Ints(years)
	return years
}
