package analyzing

import (
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

const (
	filteredRowsLimit = 1000
	debugValuesLimit  = 20
	debugSampleRows   = 5
)

// FilteredData aplica os filtros de ano, região, produto e varejista e devolve
// as primeiras 1000 linhas encontradas junto com o total
func FilteredData(records []domain.SalesRecord, filters domain.DataFilters) *domain.FilteredData {
	matched := filterRecords(records, filters.Matches)

	limit := len(matched)
	if limit > filteredRowsLimit {
		limit = filteredRowsLimit
	}

	rows := make([]domain.Row, 0, limit)
	for _, r := range matched[:limit] {
		rows = append(rows, toRow(r))
	}

	return &domain.FilteredData{
		Rows:           rows,
		TotalRecords:   len(matched),
		AppliedFilters: filters.Applied(),
	}
}

// DebugData descreve o conteúdo do snapshot para diagnóstico
func DebugData(records []domain.SalesRecord, info domain.SnapshotInfo) *domain.DebugData {
	debug := &domain.DebugData{
		TotalRecords:       len(records),
		YearsAvailable:     distinctYears(records),
		RegionsAvailable:   distinctValues(records, 0, func(r domain.SalesRecord) string { return r.Region }),
		ProductsAvailable:  distinctValues(records, debugValuesLimit, func(r domain.SalesRecord) string { return r.Product }),
		RetailersAvailable: distinctValues(records, 0, func(r domain.SalesRecord) string { return r.Retailer }),
		StatesAvailable:    distinctValues(records, debugValuesLimit, func(r domain.SalesRecord) string { return r.State }),
		SampleData:         make([]domain.Row, 0, debugSampleRows),
		Snapshot:           info,
	}

	if len(records) > 0 {
		start, end := records[0].InvoiceDate, records[0].InvoiceDate
		for _, r := range records {
			if r.InvoiceDate.Before(start) {
				start = r.InvoiceDate
			}
			if r.InvoiceDate.After(end) {
				end = r.InvoiceDate
			}
		}
		startLabel, endLabel := utils.FormatDate(start), utils.FormatDate(end)
		debug.DateRange = domain.DateRange{Start: &startLabel, End: &endLabel}
	}

	for i := 0; i < len(records) && i < debugSampleRows; i++ {
		debug.SampleData = append(debug.SampleData, toRow(records[i]))
	}

	return debug
}

// distinctValues devolve os valores únicos na ordem em que aparecem; limit 0 não limita
func distinctValues(records []domain.SalesRecord, limit int, value func(domain.SalesRecord) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, r := range records {
		v := value(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
		if limit > 0 && len(values) == limit {
			break
		}
	}
	return values
}

// toRow converte o registro para o formato de linha usado nas respostas,
// com as colunas originais do CSV
func toRow(r domain.SalesRecord) domain.Row {
	row := domain.Row{
		domain.ColumnInvoiceDate:  utils.FormatDate(r.InvoiceDate),
		domain.ColumnProduct:      r.Product,
		domain.ColumnRegion:       r.Region,
		domain.ColumnRetailer:     r.Retailer,
		domain.ColumnSalesMethod:  r.SalesMethod,
		domain.ColumnState:        r.State,
		domain.ColumnPricePerUnit: r.PricePerUnit,
		domain.ColumnTotalSales:   r.TotalSales,
		domain.ColumnUnitsSold:    r.UnitsSold,
		domain.ColumnYear:         int64(r.Year),
		domain.ColumnMonth:        int64(r.Month),
	}

	for k, v := range r.Extra {
		row[k] = extraValue(v)
	}

	return row
}

// extraValue mantém colunas extras numéricas como número e as demais como texto
func extraValue(raw string) any {
	number, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return raw
	}
	return number
}
