// Package trace records a full insertion-sort run as a replayable sequence
// of adjacent-shift steps and plays it back at a fixed stride per frame.
package trace

import "math/rand"

// DataSet is an ordered sequence of values, immutable once built.
type DataSet []float64

// NewRandomDataSet draws n values uniformly from [min, max).
func NewRandomDataSet(n int, min, max float64, rng *rand.Rand) DataSet {
	if n < 0 {
		n = 0
	}
	ds := make(DataSet, n)
	for i := range ds {
		ds[i] = min + rng.Float64()*(max-min)
	}
	return ds
}

// Max returns the largest value, or 0 for an empty set.
func (ds DataSet) Max() float64 {
	var m float64
	for i, v := range ds {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}

func (ds DataSet) clone() []float64 {
	c := make([]float64, len(ds))
	copy(c, ds)
	return c
}

// Step is one recorded shift: the post-shift array snapshot, the index of
// the element just shifted, and the sorted prefix [0, Sorted).
type Step struct {
	Values []float64
	Active int
	Sorted int
}

// Trace is the complete ordered step sequence of one sort run. It is built
// once and never mutated afterwards.
type Trace []Step

// Generate runs an in-place insertion sort over ds and records every
// adjacent shift. The final placement of the key into its resting slot is
// not a step, so an outer iteration whose key is already ordered records
// nothing. Deterministic for a given dataset.
func Generate(ds DataSet) Trace {
	arr := ds.clone()
	var steps Trace
	for i := 1; i < len(arr); i++ {
		key := arr[i]
		j := i - 1
		for j >= 0 && arr[j] > key {
			arr[j+1] = arr[j]
			snap := make([]float64, len(arr))
			copy(snap, arr)
			steps = append(steps, Step{Values: snap, Active: j, Sorted: i})
			j--
		}
		arr[j+1] = key
	}
	return steps
}

// Inversions counts pairs i < j with ds[i] > ds[j]. The trace length always
// equals this count, one shift per inversion.
func Inversions(ds DataSet) int {
	n := 0
	for i := 0; i < len(ds); i++ {
		for j := i + 1; j < len(ds); j++ {
			if ds[i] > ds[j] {
				n++
			}
		}
	}
	return n
}

// Sorted returns the reference-sorted copy of ds, the array every trace
// replay converges to.
func Sorted(ds DataSet) []float64 {
	arr := ds.clone()
	for i := 1; i < len(arr); i++ {
		key := arr[i]
		j := i - 1
		for j >= 0 && arr[j] > key {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = key
	}
	return arr
}
