package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDayFirst(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		hasError bool
	}{
		{name: "ISO", input: "2021-04-03", expected: time.Date(2021, 4, 3, 0, 0, 0, 0, time.UTC)},
		{name: "Dia antes do mês", input: "03/04/2021", expected: time.Date(2021, 4, 3, 0, 0, 0, 0, time.UTC)},
		{name: "Sem zeros à esquerda", input: "1/12/2020", expected: time.Date(2020, 12, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Ano com dois dígitos", input: "15/06/21", expected: time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Com hora", input: "2021-04-03 10:30:00", expected: time.Date(2021, 4, 3, 0, 0, 0, 0, time.UTC)},
		{name: "Com espaços", input: "  05-01-2020 ", expected: time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC)},
		{name: "Mês depois do dia quando o dia passa de 12", input: "04/13/2021", expected: time.Date(2021, 4, 13, 0, 0, 0, 0, time.UTC)},
		{name: "Mês depois do dia com hífen", input: "12-25-2020", expected: time.Date(2020, 12, 25, 0, 0, 0, 0, time.UTC)},
		{name: "Mês depois do dia com ano curto", input: "1/31/21", expected: time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC)},
		{name: "Nenhuma leitura possível", input: "13/13/2021", hasError: true},
		{name: "Dia inexistente", input: "31/02/2021", hasError: true},
		{name: "Vazio", input: "", hasError: true},
		{name: "Texto", input: "ontem", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDayFirst(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, date)
		})
	}
}
