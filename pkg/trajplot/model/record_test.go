package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-trajplot/pkg/trajplot/model"
)

func TestBodiesSortedIDs(t *testing.T) {
	t.Parallel()

	bodies := model.Bodies{}
	bodies.Add(model.Record{Step: 0, Body: 7})
	bodies.Add(model.Record{Step: 0, Body: 2})
	bodies.Add(model.Record{Step: 1, Body: 7})

	assert.Equal(t, []int{2, 7}, bodies.SortedIDs())
	assert.Len(t, bodies[7], 2)
}

func TestBodiesSortIsStable(t *testing.T) {
	t.Parallel()

	bodies := model.Bodies{
		0: {
			{Step: 2, X: 1},
			{Step: 0, X: 2},
			{Step: 2, X: 3},
			{Step: 1, X: 4},
		},
	}
	bodies.Sort()

	got := []float64{}
	for _, rec := range bodies[0] {
		got = append(got, rec.X)
	}

	assert.Equal(t, []float64{2, 4, 1, 3}, got)
}

func TestBodiesSteps(t *testing.T) {
	t.Parallel()

	bodies := model.Bodies{
		0: {{Step: 3}, {Step: 1}},
		1: {{Step: 1}, {Step: 2}},
	}

	assert.Equal(t, []int{1, 2, 3}, bodies.Steps())
	assert.Empty(t, model.Bodies{}.Steps())
}

func TestPairSeriesSortedPairs(t *testing.T) {
	t.Parallel()

	ps := model.PairSeries{
		{A: 1, B: 2}: nil,
		{A: 0, B: 2}: nil,
		{A: 0, B: 1}: nil,
	}

	assert.Equal(t, []model.Pair{{A: 0, B: 1}, {A: 0, B: 2}, {A: 1, B: 2}}, ps.SortedPairs())
	assert.Equal(t, "0-2", model.Pair{A: 0, B: 2}.String())
}
