// Package series derives the plotted series from loaded records.
//
// Trajectory mode plots every body's positions as they were recorded. Distance mode
// compares selected pairs of bodies and plots the euclidean distance between them at
// every step both bodies were sampled at.
package series

import (
	"math"

	"github.com/pkg/errors"

	"github.com/askiada/go-trajplot/pkg/trajplot/model"
)

// Trajectories returns a copy of bodies with every series ordered by step.
func Trajectories(bodies model.Bodies) model.Bodies {
	out := make(model.Bodies, len(bodies))
	for id, recs := range bodies {
		out[id] = append([]model.Record(nil), recs...)
	}

	out.Sort()

	return out
}

type position struct {
	x, y float64
}

// Distances computes the distance series of every pair chosen by sel.
// A pair without shared steps keeps an empty series.
func Distances(bodies model.Bodies, sel Selector) (model.PairSeries, error) {
	steps := bodies.Steps()
	if len(steps) == 0 {
		return nil, errors.Wrap(model.ErrEmptyData, "no step available")
	}

	lookups := make(map[int]map[int]position, len(bodies))
	for id, recs := range Trajectories(bodies) {
		lookup := make(map[int]position, len(recs))
		for _, rec := range recs {
			lookup[rec.Step] = position{x: rec.X, y: rec.Y}
		}

		lookups[id] = lookup
	}

	out := model.PairSeries{}
	total := 0

	for _, pair := range sel.Pairs(bodies) {
		samples := []model.DistanceSample{}
		a, b := lookups[pair.A], lookups[pair.B]

		for _, step := range steps {
			pa, okA := a[step]
			pb, okB := b[step]

			if !okA || !okB {
				continue
			}

			samples = append(samples, model.DistanceSample{
				Step:     step,
				Distance: math.Hypot(pa.x-pb.x, pa.y-pb.y),
			})
		}

		out[pair] = samples
		total += len(samples)
	}

	if total == 0 {
		return nil, errors.Wrap(model.ErrNoData, "no distance computed")
	}

	return out, nil
}
