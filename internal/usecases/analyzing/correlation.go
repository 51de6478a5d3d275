package analyzing

import (
	"math/rand"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

const (
	correlationSampleSize = 200
	correlationSampleSeed = 42
)

// PriceCorrelation calcula a correlação de Pearson entre preço por unidade e unidades vendidas,
// junto com uma amostra reproduzível de até 200 pontos para o gráfico de dispersão
func PriceCorrelation(records []domain.SalesRecord) *domain.PriceCorrelation {
	filtered := filterRecords(records, domain.SalesRecord.WithinPriceBounds)

	prices := make([]float64, len(filtered))
	units := make([]float64, len(filtered))
	for i, r := range filtered {
		prices[i] = r.PricePerUnit
		units[i] = r.UnitsSold
	}

	sample := sampleRecords(filtered, correlationSampleSize, correlationSampleSeed)

	result := &domain.PriceCorrelation{
		Correlation:    pearson(prices, units),
		PricePerUnit:   make([]float64, 0, len(sample)),
		UnitsSold:      make([]float64, 0, len(sample)),
		TotalSales:     make([]float64, 0, len(sample)),
		Products:       make([]string, 0, len(sample)),
		SampleSize:     len(sample),
		Interpretation: "Correlação de Pearson entre o preço por unidade e a quantidade de unidades vendidas",
	}

	for _, r := range sample {
		result.PricePerUnit = append(result.PricePerUnit, r.PricePerUnit)
		result.UnitsSold = append(result.UnitsSold, r.UnitsSold)
		result.TotalSales = append(result.TotalSales, r.TotalSales)
		result.Products = append(result.Products, r.Product)
	}

	return result
}

// sampleRecords sorteia até size registros sem reposição com semente fixa
func sampleRecords(records []domain.SalesRecord, size int, seed int64) []domain.SalesRecord {
	if size > len(records) {
		size = len(records)
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(records))

	sample := make([]domain.SalesRecord, 0, size)
	for _, idx := range perm[:size] {
		sample = append(sample, records[idx])
	}
	return sample
}
