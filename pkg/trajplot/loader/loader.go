// Package loader reads simulation output into records grouped by body.
package loader

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-trajplot/pkg/trajplot/model"
)

// Required columns of the input header.
const (
	ColumnStep = "step"
	ColumnBody = "body"
	ColumnX    = "x"
	ColumnY    = "y"
)

var requiredColumns = []string{ColumnStep, ColumnBody, ColumnX, ColumnY}

// Load opens path and reads it with Read.
func Load(path string) (model.Bodies, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(model.ErrIO, "unable to open %s: %v", path, err)
	}
	defer file.Close()

	bodies, err := Read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load %s", path)
	}

	return bodies, nil
}

// Read parses delimited rows with a step, body, x, y header.
// Other columns are ignored. The first malformed row aborts the whole read.
func Read(r io.Reader) (model.Bodies, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.Wrap(model.ErrEmptyData, "no header")
	}

	if err != nil {
		return nil, errors.Wrapf(model.ErrFormat, "unable to read header: %v", err)
	}

	columns, err := columnIndexes(header)
	if err != nil {
		return nil, err
	}

	bodies := model.Bodies{}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, errors.Wrapf(model.ErrFormat, "unable to read row: %v", err)
		}

		line, _ := reader.FieldPos(0)

		rec, err := parseRecord(row, columns)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}

		bodies.Add(rec)
	}

	if len(bodies) == 0 {
		return nil, errors.Wrap(model.ErrEmptyData, "no records")
	}

	return bodies, nil
}

func columnIndexes(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))

	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, errors.Wrapf(model.ErrFormat, "missing column %q", name)
		}
	}

	return columns, nil
}

func parseRecord(row []string, columns map[string]int) (model.Record, error) {
	field := func(name string) (string, error) {
		idx := columns[name]
		if idx >= len(row) {
			return "", errors.Wrapf(model.ErrFormat, "missing field %q", name)
		}

		return strings.TrimSpace(row[idx]), nil
	}

	var (
		rec model.Record
		err error
	)

	rec.Step, err = parseInt(field, ColumnStep)
	if err != nil {
		return rec, err
	}

	rec.Body, err = parseInt(field, ColumnBody)
	if err != nil {
		return rec, err
	}

	rec.X, err = parseFloat(field, ColumnX)
	if err != nil {
		return rec, err
	}

	rec.Y, err = parseFloat(field, ColumnY)
	if err != nil {
		return rec, err
	}

	return rec, nil
}

func parseInt(field func(string) (string, error), name string) (int, error) {
	raw, err := field(name)
	if err != nil {
		return 0, err
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(model.ErrFormat, "column %q: %q is not an integer", name, raw)
	}

	return v, nil
}

func parseFloat(field func(string) (string, error), name string) (float64, error) {
	raw, err := field(name)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(model.ErrFormat, "column %q: %q is not a number", name, raw)
	}

	return v, nil
}
