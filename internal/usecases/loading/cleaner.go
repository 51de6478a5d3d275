package loading

import (
	"bytes"
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CleanResult é o resultado da validação e limpeza do CSV
type CleanResult struct {
	Records []domain.SalesRecord
	Dropped int
}

// Clean lê o CSV bruto, valida as colunas obrigatórias e converte as linhas em SalesRecord.
// Linhas com data ou valores numéricos inválidos são descartadas.
func Clean(raw []byte) (*CleanResult, error) {
	reader := csv.NewReader(transform.NewReader(
		bytes.NewReader(raw),
		unicode.BOMOverride(unicode.UTF8.NewDecoder()),
	))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &domain.SchemaError{Column: domain.RequiredColumns[0], Reason: "arquivo vazio"}
	}
	if err != nil {
		return nil, &domain.SchemaError{Reason: err.Error(), Err: err}
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		header[i] = name
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}

	for _, required := range domain.RequiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, &domain.SchemaError{Column: required}
		}
	}

	result := &CleanResult{Records: make([]domain.SalesRecord, 0)}

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &domain.SchemaError{Reason: err.Error(), Err: err}
		}

		row := rawRow{header: header, columns: columns, fields: fields}
		record, ok := row.toRecord()
		if !ok {
			result.Dropped++
			continue
		}
		result.Records = append(result.Records, record)
	}

	if result.Dropped > 0 {
		logrus.WithFields(logrus.Fields{
			"kept":    len(result.Records),
			"dropped": result.Dropped,
		}).Warn("loading: linhas inválidas descartadas durante a limpeza")
	}

	return result, nil
}

// rawRow é uma linha do CSV ainda sem tipos
type rawRow struct {
	header  []string
	columns map[string]int
	fields  []string
}

func (r rawRow) get(column string) string {
	idx, ok := r.columns[column]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return r.fields[idx]
}

// toRecord converte a linha e informa se ela deve ser mantida
func (r rawRow) toRecord() (domain.SalesRecord, bool) {
	invoiceDate, err := utils.ParseDayFirst(r.get(domain.ColumnInvoiceDate))
	price, priceOk := coerceNumber(r.get(domain.ColumnPricePerUnit))
	sales, salesOk := coerceNumber(r.get(domain.ColumnTotalSales))
	units, unitsOk := coerceNumber(r.get(domain.ColumnUnitsSold))

	if !keepRow(err == nil, priceOk, salesOk, unitsOk) {
		return domain.SalesRecord{}, false
	}

	record := domain.NewSalesRecord(invoiceDate)
	record.Product = strings.TrimSpace(r.get(domain.ColumnProduct))
	record.Region = strings.TrimSpace(r.get(domain.ColumnRegion))
	record.Retailer = strings.TrimSpace(r.get(domain.ColumnRetailer))
	record.SalesMethod = strings.TrimSpace(r.get(domain.ColumnSalesMethod))
	record.State = strings.TrimSpace(r.get(domain.ColumnState))
	record.PricePerUnit = price
	record.TotalSales = sales
	record.UnitsSold = units
	record.Extra = r.extra()

	return record, true
}

// extra devolve as colunas que não fazem parte do esquema obrigatório
func (r rawRow) extra() map[string]string {
	var extra map[string]string
	for i, name := range r.header {
		if name == "" || isKnownColumn(name) || r.columns[name] != i {
			continue
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		if i < len(r.fields) {
			extra[name] = r.fields[i]
		} else {
			extra[name] = ""
		}
	}
	return extra
}

func isKnownColumn(name string) bool {
	if name == domain.ColumnYear || name == domain.ColumnMonth {
		return true
	}
	for _, required := range domain.RequiredColumns {
		if name == required {
			return true
		}
	}
	return false
}

// keepRow é o único predicado que decide se uma linha entra no cache
func keepRow(dateOk, priceOk, salesOk, unitsOk bool) bool {
	return dateOk && priceOk && salesOk && unitsOk
}

// coerceNumber converte um valor em número; vazio, texto, NaN e infinito contam como ausentes
func coerceNumber(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	number, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, false
	}

	return number, true
}
