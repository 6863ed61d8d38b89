package trait

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidWeightTable is returned for weight tables that are empty, contain
// negative or non-finite weights, or do not sum to a positive total.
var ErrInvalidWeightTable = errors.New("invalid weight table")

// Weighted pairs a category with its relative weight.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Categorical maps a gene value onto one of a fixed list of categories,
// deterministically. Each category owns a slice of [0, 1] proportional to
// its weight, in declaration order; a gene value v selects the first
// category whose cumulative threshold is >= v/255.
//
// The zero value has no categories and decodes every gene to the zero T.
type Categorical[T any] struct {
	values     []T
	thresholds []float64
}

// NewCategorical builds a decoder from an ordered weight table.
func NewCategorical[T any](table ...Weighted[T]) (Categorical[T], error) {
	if len(table) == 0 {
		return Categorical[T]{}, fmt.Errorf("%w: no entries", ErrInvalidWeightTable)
	}
	var total float64
	for i, e := range table {
		if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return Categorical[T]{}, fmt.Errorf("%w: entry %d has weight %v", ErrInvalidWeightTable, i, e.Weight)
		}
		total += e.Weight
	}
	if total <= 0 {
		return Categorical[T]{}, fmt.Errorf("%w: total weight %v", ErrInvalidWeightTable, total)
	}

	c := Categorical[T]{
		values:     make([]T, len(table)),
		thresholds: make([]float64, len(table)),
	}
	var running float64
	for i, e := range table {
		running += e.Weight
		c.values[i] = e.Value
		c.thresholds[i] = running / total
	}
	return c, nil
}

// MustCategorical is like [NewCategorical] but panics on error. It is meant
// for tables that are package-level constants.
func MustCategorical[T any](table ...Weighted[T]) Categorical[T] {
	c, err := NewCategorical(table...)
	if err != nil {
		panic(err)
	}
	return c
}

// BoolCategorical returns the two-way table {true: pTrue, false: 1-pTrue}.
// A gene value v decodes to true iff v/255 <= pTrue. pTrue must lie in
// [0, 1].
func BoolCategorical(pTrue float64) (Categorical[bool], error) {
	if pTrue < 0 || pTrue > 1 {
		return Categorical[bool]{}, fmt.Errorf("%w: probability %v", ErrInvalidWeightTable, pTrue)
	}
	return NewCategorical(
		Weighted[bool]{true, pTrue},
		Weighted[bool]{false, 1 - pTrue},
	)
}

// Decode returns the category selected by gene value v.
func (c Categorical[T]) Decode(v uint8) T {
	if len(c.values) == 0 {
		var zero T
		return zero
	}
	norm := float64(v) / 255
	for i, th := range c.thresholds {
		if norm <= th {
			return c.values[i]
		}
	}
	// Only reachable through rounding of the last threshold.
	return c.values[len(c.values)-1]
}

// Len returns the number of categories.
func (c Categorical[T]) Len() int { return len(c.values) }

// Thresholds returns the cumulative thresholds, one per category.
func (c Categorical[T]) Thresholds() []float64 {
	return append([]float64(nil), c.thresholds...)
}
