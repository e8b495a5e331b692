// Command gravsim runs a planar N-body gravity simulation and writes the sampled
// states as CSV (step, body, x, y, vx, vy), the input format of trajplot.
//
// Without -scenario it runs a two body demo: an Earth-like mass and a one tonne
// body in tangential motion 40000 km away.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/pkg/errors"

	"github.com/askiada/go-trajplot/internal/gravity"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout)
	if err != nil {
		log.Printf("gravsim: %v", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("gravsim", flag.ContinueOnError)
	scenarioPath := fs.String("scenario", "", "YAML scenario (optional, defaults to the two body demo)")
	output := fs.String("o", "", "Output CSV path (defaults to stdout)")

	err := fs.Parse(args)
	if err != nil {
		return err
	}

	sc := gravity.TwoBodyDemo()
	if *scenarioPath != "" {
		sc, err = gravity.LoadScenario(*scenarioPath)
		if err != nil {
			return err
		}
	}

	if *output == "" {
		return gravity.Run(ctx, sc, stdout)
	}

	file, err := os.Create(*output)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", *output)
	}

	err = gravity.Run(ctx, sc, file)
	if err != nil {
		file.Close()

		return err
	}

	err = file.Close()
	if err != nil {
		return errors.Wrapf(err, "unable to close file %s", *output)
	}

	log.Printf("wrote %d steps of %d bodies to %s", sc.Steps, len(sc.Bodies), *output)

	return nil
}
