package trajplot

import (
	"github.com/askiada/go-trajplot/pkg/trajplot/drawer"
	"github.com/askiada/go-trajplot/pkg/trajplot/measure"
	"github.com/askiada/go-trajplot/pkg/trajplot/series"
)

// Option configures a Plotter.
type Option func(p *Plotter)

// WithMode sets the plot mode. Trajectory is the default.
func WithMode(mode Mode) Option {
	return func(p *Plotter) {
		p.mode = mode
	}
}

// WithSelector sets the pairs compared in distance mode. All pairs are compared by default.
func WithSelector(sel series.Selector) Option {
	return func(p *Plotter) {
		p.selector = sel
	}
}

// WithConfig sets the canvas, palette and framings.
func WithConfig(cfg drawer.Config) Option {
	return func(p *Plotter) {
		p.config = cfg
	}
}

// WithDrawer replaces the SVG drawer.
func WithDrawer(d drawer.Drawer) Option {
	return func(p *Plotter) {
		p.drawer = d
	}
}

// WithMeasure records the duration of every stage in msr.
func WithMeasure(msr measure.Measure) Option {
	return func(p *Plotter) {
		p.measure = msr
	}
}
