package analyzing

import (
	"time"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// record monta um SalesRecord de teste a partir de uma data ISO
func record(date, product, region, retailer, method, state string, price, sales, units float64) domain.SalesRecord {
	invoiceDate, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}

	r := domain.NewSalesRecord(invoiceDate)
	r.Product = product
	r.Region = region
	r.Retailer = retailer
	r.SalesMethod = method
	r.State = state
	r.PricePerUnit = price
	r.TotalSales = sales
	r.UnitsSold = units
	return r
}

func sampleTable() []domain.SalesRecord {
	return []domain.SalesRecord{
		record("2020-01-05", "Men's Street Footwear", "Northeast", "Foot Locker", "In-store", "New York", 50, 5000, 100),
		record("2020-01-20", "Women's Apparel", "West", "Walmart", "Online", "California", 40, 2000, 50),
		record("2020-02-11", "Men's Athletic Footwear", "South", "Kohl's", "Outlet", "Texas", 45, 900, 20),
		record("2021-04-03", "Men's Street Footwear", "West", "Foot Locker", "Online", "California", 50, 500, 10),
		record("2021-04-17", "Women's Apparel", "West", "Amazon", "Online", "Washington", 60, 300, 5),
		record("2021-05-01", "Women's Apparel", "Northeast", "Walmart", "In-store", "New York", 55, 1100, 20),
		// outliers: fora dos limites de varejo
		record("2021-05-02", "Men's Apparel", "South", "Kohl's", "Outlet", "Texas", 500, 250000, 500),
		record("2021-05-03", "Men's Apparel", "South", "Kohl's", "Outlet", "Florida", 30, 0, 0),
	}
}
