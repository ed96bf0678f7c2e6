package utils

import (
	"cmp"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

type Number interface {
	constraints.Float | constraints.Integer
}

func SumSlice[T Number](arr []T) (r T) {
	for i := range arr {
		r += arr[i]
	}
	return
}

func Argmax[T cmp.Ordered](arr []T) (argmax int) {
	for i := range arr {
		if cmp.Compare(arr[i], arr[argmax]) == 1 {
			argmax = i
		}
	}
	return
}

// LogSpace returns n points spanning [lo, hi] with uniform logarithmic
// spacing, endpoints included.
func LogSpace(lo, hi float64, n int) []float64 {
	return floats.LogSpan(make([]float64, n), lo, hi)
}
