package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type shapedChild struct {
	Date  time.Time `json:"date"`
	Count int32     `json:"count"`
}

type shapedParent struct {
	Name     string            `json:"name"`
	Price    float32           `json:"price"`
	Ratio    float64           `json:"ratio"`
	Active   bool              `json:"active"`
	Children []shapedChild     `json:"children"`
	Tags     map[string]uint16 `json:"tags"`
	Optional *string           `json:"optional,omitempty"`
	Hidden   string            `json:"-"`
	ByYear   map[int]float64   `json:"by_year"`
	internal string
}

func TestToTransport(t *testing.T) {
	input := shapedParent{
		Name:   "Men's Street Footwear",
		Price:  50,
		Ratio:  math.NaN(),
		Active: true,
		Children: []shapedChild{
			{Date: time.Date(2021, 4, 3, 15, 0, 0, 0, time.UTC), Count: 10},
		},
		Tags:     map[string]uint16{"units": 15},
		Hidden:   "secret",
		ByYear:   map[int]float64{2021: 800},
		internal: "x",
	}

	expected := map[string]any{
		"name":   "Men's Street Footwear",
		"price":  float64(50),
		"ratio":  nil,
		"active": true,
		"children": []any{
			map[string]any{"date": "2021-04-03", "count": int64(10)},
		},
		"tags":    map[string]any{"units": int64(15)},
		"by_year": map[string]any{"2021": float64(800)},
	}

	assert.Equal(t, expected, ToTransport(input))
}

func TestToTransport_Idempotent(t *testing.T) {
	values := []any{
		nil,
		"texto",
		42,
		3.5,
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		[]float64{1, 2, math.Inf(1)},
		map[string]any{"a": []int{1, 2}, "b": map[string]time.Time{"d": time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)}},
		shapedParent{Name: "x", Children: nil},
	}

	for _, v := range values {
		once := ToTransport(v)
		twice := ToTransport(once)
		assert.Equal(t, once, twice)
	}
}

func TestToTransport_NilSliceBecomesEmptyList(t *testing.T) {
	var values []string
	assert.Equal(t, []any{}, ToTransport(values))
}
