package trajplot

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-trajplot/pkg/trajplot/model"
)

// Mode selects what a plot run draws.
type Mode string

const (
	// Trajectory draws body positions.
	Trajectory Mode = "trajectory"
	// Distance draws pair distances over steps.
	Distance Mode = "distance"
)

// ParseMode returns the mode named s.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case Trajectory, Distance:
		return m, nil
	default:
		return "", errors.Wrapf(model.ErrUnsupportedMode, "%q", s)
	}
}
