// Package gravity integrates point masses under Newtonian gravity and writes their
// states in the step,body,x,y format the plotter reads.
package gravity

import (
	"context"
	"math"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	// G is the gravitational constant in SI units.
	G = 6.67430e-11
	// Softening keeps the force finite when two bodies get arbitrarily close.
	Softening = 1e-3
)

// Body is a point mass moving in the plane.
type Body struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	VX   float64 `yaml:"vx"`
	VY   float64 `yaml:"vy"`
	Mass float64 `yaml:"mass"`
}

// Step advances bodies by dt with gravitational constant g.
// Accelerations are computed from the current positions first, then velocities and
// positions are updated (semi-implicit Euler).
func Step(ctx context.Context, bodies []Body, dt, g float64) error {
	n := len(bodies)
	if n == 0 {
		return nil
	}

	acc := make([][2]float64, n)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(workers)

	// each worker owns the indexes congruent to its id, acc is written without locking
	for goIdx := 0; goIdx < workers; goIdx++ {
		localGoIdx := goIdx

		errGrp.Go(func() error {
			for i := localGoIdx; i < n; i += workers {
				if err := dCtx.Err(); err != nil {
					return errors.Wrapf(err, "worker %d", localGoIdx)
				}

				acc[i] = acceleration(bodies, i, g)
			}

			return nil
		})
	}

	err := errGrp.Wait()
	if err != nil {
		return errors.Wrap(err, "unable to compute accelerations")
	}

	for i := range bodies {
		bodies[i].VX += acc[i][0] * dt
		bodies[i].VY += acc[i][1] * dt
		bodies[i].X += bodies[i].VX * dt
		bodies[i].Y += bodies[i].VY * dt
	}

	return nil
}

func acceleration(bodies []Body, i int, g float64) [2]float64 {
	var ax, ay float64

	for j := range bodies {
		if i == j {
			continue
		}

		dx := bodies[j].X - bodies[i].X
		dy := bodies[j].Y - bodies[i].Y
		r2 := dx*dx + dy*dy + Softening*Softening
		invR := 1 / math.Sqrt(r2)
		factor := g * bodies[j].Mass * invR * invR * invR

		ax += factor * dx
		ay += factor * dy
	}

	return [2]float64{ax, ay}
}

// Momentum returns the total momentum of bodies.
func Momentum(bodies []Body) (float64, float64) {
	var px, py float64
	for _, b := range bodies {
		px += b.Mass * b.VX
		py += b.Mass * b.VY
	}

	return px, py
}
