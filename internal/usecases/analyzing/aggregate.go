package analyzing

import (
	"math"
	"sort"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// varianceEpsilon abaixo deste valor a série é considerada constante
const varianceEpsilon = 1e-9

// groupStats acumula as métricas de um grupo
type groupStats struct {
	key         string
	sales       float64
	units       float64
	priceSum    float64
	count       int
	firstRegion string
}

func (g *groupStats) avgPrice() float64 {
	return safeDiv(g.priceSum, float64(g.count))
}

// groupBy agrupa os registros pela chave e devolve os grupos em ordem crescente de chave
func groupBy(records []domain.SalesRecord, key func(domain.SalesRecord) string) []*groupStats {
	index := make(map[string]*groupStats)
	groups := make([]*groupStats, 0)

	for _, r := range records {
		k := key(r)
		g, ok := index[k]
		if !ok {
			g = &groupStats{key: k, firstRegion: r.Region}
			index[k] = g
			groups = append(groups, g)
		}
		g.sales += r.TotalSales
		g.units += r.UnitsSold
		g.priceSum += r.PricePerUnit
		g.count++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].key < groups[j].key
	})

	return groups
}

// rankBySales ordena os grupos por vendas decrescentes e corta no limite.
// Empates mantêm a ordem original.
func rankBySales(groups []*groupStats, limit int) []*groupStats {
	ranked := make([]*groupStats, len(groups))
	copy(ranked, groups)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].sales > ranked[j].sales
	})

	if limit < 0 {
		limit = 0
	}
	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// filterRecords devolve uma nova fatia apenas com os registros aceitos
func filterRecords(records []domain.SalesRecord, keep func(domain.SalesRecord) bool) []domain.SalesRecord {
	filtered := make([]domain.SalesRecord, 0, len(records))
	for _, r := range records {
		if keep(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func retailRecords(records []domain.SalesRecord) []domain.SalesRecord {
	return filterRecords(records, domain.SalesRecord.WithinRetailBounds)
}

func totalSales(records []domain.SalesRecord) float64 {
	total := 0.0
	for _, r := range records {
		total += r.TotalSales
	}
	return total
}

func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

func percentage(part, total float64) float64 {
	return safeDiv(part, total) * 100
}

func toCount(value float64) int64 {
	return int64(math.Round(value))
}

// pearson calcula o coeficiente de correlação de Pearson; séries degeneradas retornam 0
func pearson(x, y []float64) float64 {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0
	}

	var meanX, meanY float64
	for i := 0; i < n; i++ {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= float64(n)
	meanY /= float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX/float64(n) < varianceEpsilon || varY/float64(n) < varianceEpsilon {
		return 0
	}

	r := cov / math.Sqrt(varX*varY)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}
