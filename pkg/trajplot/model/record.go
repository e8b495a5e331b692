package model

import (
	"fmt"
	"sort"
)

// Record is one row of simulation output.
type Record struct {
	Step int
	Body int
	X    float64
	Y    float64
}

// Bodies groups records by body identifier.
type Bodies map[int][]Record

// Add appends rec to the series of its body.
func (b Bodies) Add(rec Record) {
	b[rec.Body] = append(b[rec.Body], rec)
}

// SortedIDs returns the body identifiers in ascending order.
func (b Bodies) SortedIDs() []int {
	ids := make([]int, 0, len(b))
	for id := range b {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	return ids
}

// Sort orders every series by step. Records sharing a step keep their input order.
func (b Bodies) Sort() {
	for _, recs := range b {
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Step < recs[j].Step
		})
	}
}

// Steps returns every distinct step, ascending.
func (b Bodies) Steps() []int {
	seen := make(map[int]struct{})
	steps := []int{}

	for _, recs := range b {
		for _, rec := range recs {
			if _, ok := seen[rec.Step]; ok {
				continue
			}

			seen[rec.Step] = struct{}{}

			steps = append(steps, rec.Step)
		}
	}

	sort.Ints(steps)

	return steps
}

// Pair is an ordered pair of body identifiers.
type Pair struct {
	A int
	B int
}

func (p Pair) String() string {
	return fmt.Sprintf("%d-%d", p.A, p.B)
}

// Less orders pairs by A then B.
func (p Pair) Less(other Pair) bool {
	if p.A != other.A {
		return p.A < other.A
	}

	return p.B < other.B
}

// DistanceSample is the distance between the two bodies of a pair at one step.
type DistanceSample struct {
	Step     int
	Distance float64
}

// PairSeries maps a pair to its distance samples, ordered by step.
type PairSeries map[Pair][]DistanceSample

// SortedPairs returns the pairs in ascending order.
func (ps PairSeries) SortedPairs() []Pair {
	pairs := make([]Pair, 0, len(ps))
	for p := range ps {
		pairs = append(pairs, p)
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Less(pairs[j])
	})

	return pairs
}
