package trajplot

import (
	"bytes"
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-trajplot/pkg/trajplot/drawer"
	"github.com/askiada/go-trajplot/pkg/trajplot/loader"
	"github.com/askiada/go-trajplot/pkg/trajplot/measure"
	"github.com/askiada/go-trajplot/pkg/trajplot/model"
	"github.com/askiada/go-trajplot/pkg/trajplot/series"
)

// Stage names, in run order.
const (
	StageLoad   = "load"
	StageSeries = "series"
	StageScene  = "scene"
	StageRender = "render"
	StageWrite  = "write"
)

// Plotter renders simulation output as a plot.
type Plotter struct {
	mode     Mode
	selector series.Selector
	config   drawer.Config
	drawer   drawer.Drawer
	measure  measure.Measure
}

// New creates a new plotter.
func New(opts ...Option) (*Plotter, error) {
	p := &Plotter{
		mode:     Trajectory,
		selector: series.AllPairs{},
		config:   drawer.DefaultConfig(),
		drawer:   drawer.NewSVGDrawer(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if _, err := ParseMode(string(p.mode)); err != nil {
		return nil, err
	}

	if p.selector == nil {
		return nil, errors.Wrap(model.ErrFormat, "pair selector must be set")
	}

	err := p.config.Validate()
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return p, nil
}

// Mode returns the plot mode.
func (p *Plotter) Mode() Mode {
	return p.mode
}

// Run loads inputPath and writes the plot to outputPath, replacing any existing file.
// outputPath is left untouched when loading or rendering fails.
func (p *Plotter) Run(ctx context.Context, inputPath, outputPath string) error {
	var bodies model.Bodies

	err := p.stage(ctx, StageLoad, func() error {
		var err error
		bodies, err = loader.Load(inputPath)

		return err
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	err = p.Render(ctx, bodies, &buf)
	if err != nil {
		return err
	}

	return p.stage(ctx, StageWrite, func() error {
		return writeFile(outputPath, buf.Bytes())
	})
}

// Render draws bodies to wrt.
func (p *Plotter) Render(ctx context.Context, bodies model.Bodies, wrt io.Writer) error {
	var scene drawer.Scene

	switch p.mode {
	case Distance:
		var pairs model.PairSeries

		err := p.stage(ctx, StageSeries, func() error {
			var err error
			pairs, err = series.Distances(bodies, p.selector)

			return err
		})
		if err != nil {
			return err
		}

		err = p.stage(ctx, StageScene, func() error {
			var err error
			scene, err = drawer.DistanceScene(pairs, p.config)

			return err
		})
		if err != nil {
			return err
		}
	default:
		var sorted model.Bodies

		err := p.stage(ctx, StageSeries, func() error {
			if len(bodies) == 0 {
				return errors.Wrap(model.ErrEmptyData, "no records")
			}

			sorted = series.Trajectories(bodies)

			return nil
		})
		if err != nil {
			return err
		}

		err = p.stage(ctx, StageScene, func() error {
			var err error
			scene, err = drawer.TrajectoryScene(sorted, p.config)

			return err
		})
		if err != nil {
			return err
		}
	}

	return p.stage(ctx, StageRender, func() error {
		return p.drawer.Draw(wrt, scene)
	})
}

func (p *Plotter) stage(ctx context.Context, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "%s stage", name)
	}

	start := time.Now()
	err := fn()

	if p.measure != nil {
		p.measure.AddMetric(name).AddDuration(time.Since(start))
	}

	if err != nil {
		return errors.Wrapf(err, "%s stage", name)
	}

	return nil
}

func writeFile(path string, content []byte) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(model.ErrIO, "unable to create %s: %v", path, err)
	}

	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = errors.Wrapf(model.ErrIO, "unable to close %s: %v", path, closeErr)
		}
	}()

	_, err = file.Write(content)
	if err != nil {
		return errors.Wrapf(model.ErrIO, "unable to write %s: %v", path, err)
	}

	return nil
}
