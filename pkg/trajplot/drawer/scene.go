package drawer

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/askiada/go-trajplot/pkg/trajplot/model"
	"github.com/askiada/go-trajplot/pkg/trajplot/series"
	"github.com/askiada/go-trajplot/pkg/trajplot/transform"
)

// Canvas and layout defaults.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultMargin = 30

	titleX, titleY     = 30, 20
	titleFontSize      = 14
	labelFontSize      = 12
	legendTop          = 30
	legendRowHeight    = 16
	xLabelX            = 30
	xLabelBottomOffset = 10
	yLabelX, yLabelY   = 10, 30
	yLabelRotate       = -90
	strokeWidth        = 2
	background         = "white"
)

// Framing holds the texts and legend placement of one plot mode.
type Framing struct {
	Title        string
	XLabel       string
	YLabel       string
	LegendPrefix string
	// LegendOffset is the distance of the legend column from the right edge of the canvas.
	LegendOffset int
	MarkerRadius int
}

// TrajectoryFraming frames body positions.
var TrajectoryFraming = Framing{
	Title:        "Gravity simulation",
	XLabel:       "x (m)",
	YLabel:       "y (m)",
	LegendPrefix: "body",
	LegendOffset: 150,
	MarkerRadius: 3,
}

// DistanceFraming frames pair distances over steps.
var DistanceFraming = Framing{
	Title:        "Inter-body distance vs time",
	XLabel:       "step",
	YLabel:       "distance (m)",
	LegendPrefix: "pair",
	LegendOffset: 240,
	MarkerRadius: 2,
}

// Config is the canvas geometry, palette and framings used to build scenes.
type Config struct {
	Width      int
	Height     int
	Margin     int
	Palette    Palette
	Trajectory Framing
	Distance   Framing
}

// DefaultConfig returns an 800x600 canvas with a 30px margin.
func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Margin:     DefaultMargin,
		Palette:    DefaultPalette,
		Trajectory: TrajectoryFraming,
		Distance:   DistanceFraming,
	}
}

// Validate reports a canvas too small to hold its margins or an empty palette.
func (c Config) Validate() error {
	if c.Width <= 2*c.Margin || c.Height <= 2*c.Margin {
		return errors.Wrapf(model.ErrFormat, "canvas %dx%d does not fit margin %d", c.Width, c.Height, c.Margin)
	}

	if c.Margin < 0 {
		return errors.Wrapf(model.ErrFormat, "negative margin %d", c.Margin)
	}

	if len(c.Palette) == 0 {
		return errors.Wrap(model.ErrFormat, "palette must not be empty")
	}

	return nil
}

type point struct {
	x, y float64
}

type plotted struct {
	label  string
	points []point
}

// TrajectoryScene draws the position of every body, in body order.
func TrajectoryScene(bodies model.Bodies, cfg Config) (Scene, error) {
	sorted := series.Trajectories(bodies)

	var (
		xs, ys []float64
		all    []plotted
	)

	for _, id := range sorted.SortedIDs() {
		s := plotted{label: cfg.Trajectory.LegendPrefix + " " + strconv.Itoa(id)}
		for _, rec := range sorted[id] {
			s.points = append(s.points, point{x: rec.X, y: rec.Y})
			xs = append(xs, rec.X)
			ys = append(ys, rec.Y)
		}

		all = append(all, s)
	}

	return buildScene(all, xs, ys, cfg.Trajectory, cfg)
}

// DistanceScene draws the distance of every pair over steps, in pair order.
func DistanceScene(pairs model.PairSeries, cfg Config) (Scene, error) {
	var (
		xs, ys []float64
		all    []plotted
	)

	for _, pair := range pairs.SortedPairs() {
		s := plotted{label: cfg.Distance.LegendPrefix + " " + pair.String()}
		for _, sample := range pairs[pair] {
			s.points = append(s.points, point{x: float64(sample.Step), y: sample.Distance})
			xs = append(xs, float64(sample.Step))
			ys = append(ys, sample.Distance)
		}

		all = append(all, s)
	}

	if len(ys) == 0 {
		return Scene{}, errors.Wrap(model.ErrNoData, "no distance to draw")
	}

	return buildScene(all, xs, ys, cfg.Distance, cfg)
}

func buildScene(all []plotted, xs, ys []float64, framing Framing, cfg Config) (Scene, error) {
	err := cfg.Validate()
	if err != nil {
		return Scene{}, err
	}

	frame, err := transform.NewFrame(xs, ys, float64(cfg.Width), float64(cfg.Height), float64(cfg.Margin))
	if err != nil {
		return Scene{}, errors.Wrap(err, "unable to fit canvas")
	}

	scene := Scene{Width: cfg.Width, Height: cfg.Height}
	scene.add(Rect{Width: cfg.Width, Height: cfg.Height, Fill: background})
	scene.add(Text{X: titleX, Y: titleY, Content: framing.Title, FontSize: titleFontSize})

	for i, s := range all {
		colour := cfg.Palette.Color(i)

		if len(s.points) > 0 {
			line := Polyline{Stroke: colour, StrokeWidth: strokeWidth}
			markers := make([]Primitive, 0, len(s.points))

			for _, pt := range s.points {
				px, py := frame.Point(pt.x, pt.y)
				line.X = append(line.X, px)
				line.Y = append(line.Y, py)
				markers = append(markers, Circle{X: px, Y: py, Radius: framing.MarkerRadius, Fill: colour})
			}

			scene.add(line)
			scene.Primitives = append(scene.Primitives, markers...)
		}

		scene.add(Text{
			X:        cfg.Width - framing.LegendOffset,
			Y:        legendTop + i*legendRowHeight,
			Content:  s.label,
			FontSize: labelFontSize,
			Fill:     colour,
		})
	}

	scene.add(Text{X: xLabelX, Y: cfg.Height - xLabelBottomOffset, Content: framing.XLabel, FontSize: labelFontSize})
	scene.add(Text{X: yLabelX, Y: yLabelY, Content: framing.YLabel, FontSize: labelFontSize, Rotate: yLabelRotate})

	return scene, nil
}
