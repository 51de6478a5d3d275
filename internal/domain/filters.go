package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// DataFilters define os filtros aceitos pela consulta de dados filtrados.
// Listas vazias ou ausentes não filtram nada.
type DataFilters struct {
	Years     YearList `json:"years,omitempty"`
	Regions   []string `json:"regions,omitempty"`
	Products  []string `json:"products,omitempty"`
	Retailers []string `json:"retailers,omitempty"`

	// received guarda o corpo como foi enviado, para ser devolvido em applied_filters
	received map[string]any
}

func (f *DataFilters) UnmarshalJSON(data []byte) error {
	type plain DataFilters

	var decoded plain
	if err := jsoniter.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var received map[string]any
	if err := jsoniter.Unmarshal(data, &received); err != nil {
		return err
	}

	*f = DataFilters(decoded)
	f.received = received
	return nil
}

// Applied devolve os filtros como foram recebidos. Filtros montados em código
// devolvem apenas as listas preenchidas.
func (f DataFilters) Applied() map[string]any {
	if f.received != nil {
		return f.received
	}

	applied := make(map[string]any)
	if len(f.Years) > 0 {
		applied["years"] = []int(f.Years)
	}
	if len(f.Regions) > 0 {
		applied["regions"] = f.Regions
	}
	if len(f.Products) > 0 {
		applied["products"] = f.Products
	}
	if len(f.Retailers) > 0 {
		applied["retailers"] = f.Retailers
	}
	return applied
}

// Matches verifica se o registro atende todos os filtros informados
func (f DataFilters) Matches(r SalesRecord) bool {
	if len(f.Years) > 0 && !containsInt(f.Years, r.Year) {
		return false
	}
	if len(f.Regions) > 0 && !containsString(f.Regions, r.Region) {
		return false
	}
	if len(f.Products) > 0 && !containsString(f.Products, r.Product) {
		return false
	}
	if len(f.Retailers) > 0 && !containsString(f.Retailers, r.Retailer) {
		return false
	}
	return true
}

// YearList aceita anos como números ou strings numéricas no JSON
type YearList []int

func (y *YearList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*y = nil
		return nil
	}

	var raw []any
	if err := jsoniter.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("years: %w", err)
	}

	years := make(YearList, 0, len(raw))
	for _, v := range raw {
		switch value := v.(type) {
		case float64:
			if value != float64(int(value)) {
				return fmt.Errorf("years: valor inválido %v", value)
			}
			years = append(years, int(value))
		case string:
			year, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return fmt.Errorf("years: valor inválido %q", value)
			}
			years = append(years, year)
		default:
			return fmt.Errorf("years: tipo não suportado %T", v)
		}
	}

	*y = years
	return nil
}

func containsInt(values []int, target int) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
