// Command trajplot renders simulation output (step, body, x, y) as an SVG plot.
//
// Usage:
//
//	trajplot [flags] data.csv
//
// Trajectory plots draw every body's path. Distance plots draw the distance between
// pairs of bodies over steps, for all pairs or the ones listed with -pairs "0-1,0-2".
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/askiada/go-trajplot/internal/config"
	"github.com/askiada/go-trajplot/pkg/trajplot"
	"github.com/askiada/go-trajplot/pkg/trajplot/drawer"
	"github.com/askiada/go-trajplot/pkg/trajplot/measure"
	"github.com/askiada/go-trajplot/pkg/trajplot/series"
	"github.com/askiada/go-trajplot/pkg/trajplot/stagegraph"
)

const defaultOutput = "trajectory.svg"

func main() {
	config.LoadEnv()
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	input   string
	output  string
	mode    string
	pairs   string
	config  string
	stages  string
	verbose bool
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	opts := options{}

	fs := flag.NewFlagSet("trajplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: trajplot [flags] <data.csv>\n\nFlags:\n")
		fs.PrintDefaults()
	}

	output := config.Getenv(config.EnvOut, defaultOutput)
	fs.StringVar(&opts.output, "out", output, "Output SVG path")
	fs.StringVar(&opts.output, "o", output, "Shorthand for -out")
	fs.StringVar(&opts.mode, "type", string(trajplot.Trajectory), "Plot type: trajectory or distance")
	fs.StringVar(&opts.mode, "t", string(trajplot.Trajectory), "Shorthand for -type")
	fs.StringVar(&opts.pairs, "pairs", series.AllPairsToken, "Pairs for distance (e.g. '0-1,0-2') or 'all'")
	fs.StringVar(&opts.config, "config", config.Getenv(config.EnvConfig, ""), "YAML style file (optional)")
	fs.StringVar(&opts.stages, "stages", "", "Write the stage graph of the run as DOT to this path (optional)")
	fs.BoolVar(&opts.verbose, "v", false, "Log the duration of every stage")

	// flags may follow the input path
	positional := []string{}

	err := fs.Parse(args)
	for err == nil && fs.NArg() > 0 {
		positional = append(positional, fs.Arg(0))
		err = fs.Parse(fs.Args()[1:])
	}

	if err != nil {
		return opts, err
	}

	if len(positional) != 1 {
		fs.Usage()

		return opts, errors.New("expected exactly one input file")
	}

	opts.input = positional[0]

	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "trajplot: ", 0)

	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	if err != nil {
		logger.Print(err)

		return 2
	}

	err = plot(ctx, opts, stdout, logger)
	if err != nil {
		logger.Print(err)

		return 1
	}

	return 0
}

func plot(ctx context.Context, opts options, stdout io.Writer, logger *log.Logger) error {
	mode, err := trajplot.ParseMode(opts.mode)
	if err != nil {
		return err
	}

	plotOpts := []trajplot.Option{trajplot.WithMode(mode)}

	if mode == trajplot.Distance {
		sel, err := series.ParseSelector(opts.pairs)
		if err != nil {
			return errors.Wrap(err, "invalid -pairs")
		}

		plotOpts = append(plotOpts, trajplot.WithSelector(sel))
	}

	cfg := drawer.DefaultConfig()
	if opts.config != "" {
		cfg, err = config.Load(opts.config)
		if err != nil {
			return err
		}
	}

	plotOpts = append(plotOpts, trajplot.WithConfig(cfg))

	var msr *measure.DefaultMeasure
	if opts.verbose || opts.stages != "" {
		msr = measure.NewDefaultMeasure()
		plotOpts = append(plotOpts, trajplot.WithMeasure(msr))
	}

	plotter, err := trajplot.New(plotOpts...)
	if err != nil {
		return err
	}

	err = plotter.Run(ctx, opts.input, opts.output)
	if err != nil {
		return err
	}

	if mode == trajplot.Distance {
		fmt.Fprintf(stdout, "Wrote distance SVG to %s\n", opts.output)
	} else {
		fmt.Fprintf(stdout, "Wrote SVG to %s\n", opts.output)
	}

	if msr == nil {
		return nil
	}

	if opts.verbose {
		for _, name := range msr.Names() {
			logger.Printf("stage %s: %s", name, measure.Round(msr.GetMetric(name).GetTotalDuration()))
		}
	}

	if opts.stages != "" {
		return writeStages(opts.stages, msr)
	}

	return nil
}

func writeStages(path string, msr measure.Measure) error {
	sg, err := stagegraph.New(msr)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", path)
	}
	defer file.Close()

	err = sg.Draw(file)
	if err != nil {
		return errors.Wrapf(err, "unable to draw stages to %s", path)
	}

	return nil
}
