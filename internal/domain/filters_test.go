package domain

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataFilters_Applied(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected map[string]any
		years    YearList
	}{
		{
			name:     "Lista vazia explícita",
			body:     `{"regions": []}`,
			expected: map[string]any{"regions": []any{}},
		},
		{
			name:     "Anos como texto",
			body:     `{"years": ["2020", 2021]}`,
			expected: map[string]any{"years": []any{"2020", 2021.0}},
			years:    YearList{2020, 2021},
		},
		{
			name:     "Objeto vazio",
			body:     `{}`,
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var filters DataFilters
			require.NoError(t, jsoniter.Unmarshal([]byte(tt.body), &filters))

			assert.Equal(t, tt.expected, filters.Applied())
			assert.Empty(t, filters.Regions)
			assert.Equal(t, tt.years, filters.Years)
		})
	}
}

func TestDataFilters_AppliedWithoutBody(t *testing.T) {
	filters := DataFilters{Regions: []string{"West"}, Years: YearList{2021}}

	assert.Equal(t, map[string]any{
		"regions": []string{"West"},
		"years":   []int{2021},
	}, filters.Applied())
	assert.Empty(t, DataFilters{}.Applied())
}

func TestDataFilters_InvalidYear(t *testing.T) {
	var filters DataFilters
	assert.Error(t, jsoniter.Unmarshal([]byte(`{"years": ["dois mil"]}`), &filters))
}
