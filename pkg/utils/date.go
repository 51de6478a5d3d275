package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos aceitos para datas de nota fiscal. Quando ambíguo, o dia vem antes do mês.
var dayFirstLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2/1/2006",
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
	"2/1/06",
	"2-1-2006",
	"2-1-06",
	"2.1.2006",
	"2006/1/2",
}

// Formatos mês/dia tentados só quando a leitura dia primeiro falha ("04/13/2021" = 13 de abril)
var monthFirstLayouts = []string{
	"1/2/2006",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"1/2/06",
	"1-2-2006",
	"1-2-06",
}

// ParseDayFirst interpreta uma data priorizando o formato dia/mês/ano ("03/04/2021" = 3 de abril).
// Datas que só fazem sentido como mês/dia, com o segundo campo maior que 12, são aceitas nesse formato.
func ParseDayFirst(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	if date, ok := parseWithLayouts(dayFirstLayouts, value); ok {
		return date, nil
	}
	if date, ok := parseWithLayouts(monthFirstLayouts, value); ok {
		return date, nil
	}

	return time.Time{}, fmt.Errorf("data em formato não reconhecido: %q", value)
}

func parseWithLayouts(layouts []string, value string) (time.Time, bool) {
	for _, layout := range layouts {
		date, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// FormatDate formata a data no padrão YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(time.DateOnly)
}
