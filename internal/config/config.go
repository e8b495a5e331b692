// Package config loads plot styling from YAML files and command defaults from the environment.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-trajplot/pkg/trajplot/drawer"
	"github.com/askiada/go-trajplot/pkg/trajplot/model"
)

// File mirrors the YAML layout. Zero values keep the defaults.
type File struct {
	Canvas struct {
		Width  int  `yaml:"width"`
		Height int  `yaml:"height"`
		Margin *int `yaml:"margin"`
	} `yaml:"canvas"`
	Palette    []string    `yaml:"palette"`
	Trajectory FramingFile `yaml:"trajectory"`
	Distance   FramingFile `yaml:"distance"`
}

// FramingFile overrides the texts of one plot mode.
type FramingFile struct {
	Title  string `yaml:"title"`
	XLabel string `yaml:"x_label"`
	YLabel string `yaml:"y_label"`
}

// Load reads the YAML file at path on top of drawer.DefaultConfig.
func Load(path string) (drawer.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return drawer.Config{}, errors.Wrapf(model.ErrIO, "unable to read config %s: %v", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return drawer.Config{}, errors.Wrapf(err, "config %s", path)
	}

	return cfg, nil
}

// Parse decodes YAML data on top of drawer.DefaultConfig. Unknown keys are rejected.
func Parse(data []byte) (drawer.Config, error) {
	cfg := drawer.DefaultConfig()

	var file File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(&file)
	if err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Wrapf(model.ErrFormat, "unable to decode yaml: %v", err)
	}

	if file.Canvas.Width != 0 {
		cfg.Width = file.Canvas.Width
	}

	if file.Canvas.Height != 0 {
		cfg.Height = file.Canvas.Height
	}

	if file.Canvas.Margin != nil {
		cfg.Margin = *file.Canvas.Margin
	}

	if len(file.Palette) > 0 {
		cfg.Palette, err = drawer.NewPalette(file.Palette...)
		if err != nil {
			return cfg, err
		}
	}

	cfg.Trajectory = file.Trajectory.apply(cfg.Trajectory)
	cfg.Distance = file.Distance.apply(cfg.Distance)

	return cfg, cfg.Validate()
}

func (f FramingFile) apply(framing drawer.Framing) drawer.Framing {
	if f.Title != "" {
		framing.Title = f.Title
	}

	if f.XLabel != "" {
		framing.XLabel = f.XLabel
	}

	if f.YLabel != "" {
		framing.YLabel = f.YLabel
	}

	return framing
}
