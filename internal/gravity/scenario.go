package gravity

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario is returned for a scenario that cannot be simulated.
var ErrInvalidScenario = errors.New("invalid scenario")

// Header is the first row written by Run.
var Header = []string{"step", "body", "x", "y", "vx", "vy"}

// Scenario describes a simulation run.
type Scenario struct {
	Bodies      []Body  `yaml:"bodies"`
	DT          float64 `yaml:"dt"`
	Steps       int     `yaml:"steps"`
	SampleEvery int     `yaml:"sample_every"`
	// G overrides the gravitational constant when non zero.
	G float64 `yaml:"g"`
}

// TwoBodyDemo is an Earth-like mass and a one tonne body in tangential motion 40000 km away.
func TwoBodyDemo() Scenario {
	return Scenario{
		Bodies: []Body{
			{Mass: 5.972e24},
			{X: 4.0e7, VY: 1200, Mass: 1.0e3},
		},
		DT:          1,
		Steps:       10,
		SampleEvery: 2,
	}
}

// LoadScenario reads a YAML scenario.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, errors.Wrapf(err, "unable to read scenario %s", path)
	}

	var sc Scenario

	err = yaml.Unmarshal(data, &sc)
	if err != nil {
		return Scenario{}, errors.Wrapf(ErrInvalidScenario, "%s: %v", path, err)
	}

	return sc, sc.Validate()
}

// Validate reports a scenario without bodies, steps or a positive time step.
func (sc Scenario) Validate() error {
	switch {
	case len(sc.Bodies) == 0:
		return errors.Wrap(ErrInvalidScenario, "no body")
	case sc.DT <= 0:
		return errors.Wrapf(ErrInvalidScenario, "dt %v must be positive", sc.DT)
	case sc.Steps <= 0:
		return errors.Wrapf(ErrInvalidScenario, "steps %d must be positive", sc.Steps)
	case sc.SampleEvery < 0:
		return errors.Wrapf(ErrInvalidScenario, "sample_every %d must not be negative", sc.SampleEvery)
	}

	return nil
}

// Run simulates sc and writes one row per body for every sampled step.
// Rows hold the state reached at the end of the step.
func Run(ctx context.Context, sc Scenario, wrt io.Writer) error {
	err := sc.Validate()
	if err != nil {
		return err
	}

	g := sc.G
	if g == 0 {
		g = G
	}

	every := sc.SampleEvery
	if every == 0 {
		every = 1
	}

	bodies := append([]Body(nil), sc.Bodies...)
	w := csv.NewWriter(wrt)

	err = w.Write(Header)
	if err != nil {
		return errors.Wrap(err, "unable to write header")
	}

	for step := 0; step < sc.Steps; step++ {
		err = Step(ctx, bodies, sc.DT, g)
		if err != nil {
			return errors.Wrapf(err, "step %d", step)
		}

		if step%every != 0 {
			continue
		}

		for id, b := range bodies {
			err = w.Write([]string{
				strconv.Itoa(step),
				strconv.Itoa(id),
				formatFloat(b.X),
				formatFloat(b.Y),
				formatFloat(b.VX),
				formatFloat(b.VY),
			})
			if err != nil {
				return errors.Wrapf(err, "unable to write step %d", step)
			}
		}
	}

	w.Flush()

	return errors.Wrap(w.Error(), "unable to flush rows")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
