// Package transform maps data-space values onto canvas pixels.
package transform

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-trajplot/pkg/trajplot/model"
)

// Padding is the fraction of the data span added on each side of the bounding box.
const Padding = 0.05

// Axis is a linear mapping from data values to pixels along one canvas dimension.
type Axis struct {
	Scale  float64
	Offset float64
	Min    float64
	Max    float64
}

// NewAxis fits the padded bounding box of values onto [margin, length-margin].
// An inverted axis maps the smallest value to length-margin, as pixel rows grow downward.
// A zero data span is replaced by 1.
func NewAxis(values []float64, length, margin float64, inverted bool) (Axis, error) {
	if len(values) == 0 {
		return Axis{}, errors.Wrap(model.ErrEmptyData, "no value to scale")
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}

		if v > hi {
			hi = v
		}
	}

	span := hi - lo
	if span == 0 {
		span = 1
	}

	lo -= span * Padding
	hi += span * Padding

	scale := (length - 2*margin) / (hi - lo)
	axis := Axis{Min: lo, Max: hi, Scale: scale, Offset: margin - lo*scale}

	if inverted {
		axis.Scale = -scale
		axis.Offset = length - margin + lo*scale
	}

	return axis, nil
}

// Map returns the pixel coordinate of v.
func (a Axis) Map(v float64) float64 {
	return a.Scale*v + a.Offset
}

// Pixel returns Map(v) truncated toward zero.
func (a Axis) Pixel(v float64) int {
	return int(a.Map(v))
}

// Frame pairs the horizontal and vertical axes of a canvas.
type Frame struct {
	X Axis
	Y Axis
}

// NewFrame builds a frame whose vertical axis is inverted.
func NewFrame(xs, ys []float64, width, height, margin float64) (Frame, error) {
	x, err := NewAxis(xs, width, margin, false)
	if err != nil {
		return Frame{}, errors.Wrap(err, "horizontal axis")
	}

	y, err := NewAxis(ys, height, margin, true)
	if err != nil {
		return Frame{}, errors.Wrap(err, "vertical axis")
	}

	return Frame{X: x, Y: y}, nil
}

// Point returns the pixel coordinates of (x, y).
func (f Frame) Point(x, y float64) (int, int) {
	return f.X.Pixel(x), f.Y.Pixel(y)
}
