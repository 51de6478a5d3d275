// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Nomes das colunas do dataset de vendas
const (
	ColumnInvoiceDate  = "Invoice Date"
	ColumnProduct      = "Product"
	ColumnRegion       = "Region"
	ColumnRetailer     = "Retailer"
	ColumnSalesMethod  = "Sales Method"
	ColumnState        = "State"
	ColumnPricePerUnit = "Price per Unit"
	ColumnTotalSales   = "Total Sales"
	ColumnUnitsSold    = "Units Sold"
	ColumnYear         = "Year"
	ColumnMonth        = "Month"
)

// RequiredColumns lista as colunas que o CSV precisa conter, na ordem em que são verificadas
var RequiredColumns = []string{
	ColumnInvoiceDate,
	ColumnProduct,
	ColumnRegion,
	ColumnRetailer,
	ColumnSalesMethod,
	ColumnState,
	ColumnPricePerUnit,
	ColumnTotalSales,
	ColumnUnitsSold,
}

// SalesRecord é uma linha de venda já validada e tipada
type SalesRecord struct {
	InvoiceDate  time.Time
	Year         int
	Month        int
	Product      string
	Region       string
	State        string
	Retailer     string
	SalesMethod  string
	PricePerUnit float64
	TotalSales   float64
	UnitsSold    float64

	// Extra guarda as demais colunas do CSV em texto bruto
	Extra map[string]string
}

// NewSalesRecord cria um registro derivando Year e Month da data da nota
func NewSalesRecord(invoiceDate time.Time) SalesRecord {
	return SalesRecord{
		InvoiceDate: invoiceDate,
		Year:        invoiceDate.Year(),
		Month:       int(invoiceDate.Month()),
	}
}

// WithinRetailBounds indica se a venda está dentro dos limites realistas para varejo
func (r SalesRecord) WithinRetailBounds() bool {
	return r.TotalSales > 0 && r.TotalSales < 100000 &&
		r.UnitsSold > 0 && r.UnitsSold < 1000
}

// WithinPriceBounds é o filtro usado pela correlação preço x unidades
func (r SalesRecord) WithinPriceBounds() bool {
	return r.PricePerUnit > 0 && r.PricePerUnit < 200 &&
		r.UnitsSold > 0 && r.UnitsSold < 1000
}
