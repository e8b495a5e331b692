package model

import "github.com/pkg/errors"

var (
	// ErrFormat is returned when an input row, a column or a pair token cannot be parsed.
	ErrFormat = errors.New("format error")
	// ErrEmptyData is returned when there is nothing to load or no step to compare.
	ErrEmptyData = errors.New("empty data")
	// ErrNoData is returned when the derived series hold no value to scale against.
	ErrNoData = errors.New("no data")
	// ErrUnsupportedMode is returned for a plot type other than trajectory or distance.
	ErrUnsupportedMode = errors.New("unsupported plot type")
	// ErrIO is returned when a file cannot be opened, read or written.
	ErrIO = errors.New("io error")
)
