package utils

import (
	"math"
	"time"
)

// RoundTo arredonda para a quantidade de casas decimais informada. Valores não finitos viram 0.
func RoundTo(f float64, places int) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	scale := math.Pow(10, float64(places))
	return math.Round(f*scale) / scale
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	return RoundTo(f, 2)
}

// DurationSeconds converte a duração para segundos com duas casas
func DurationSeconds(d time.Duration) float64 {
	return RoundWithTwoDecimalPlace(d.Seconds())
}
