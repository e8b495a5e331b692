package drawer

import (
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-trajplot/pkg/trajplot/model"
)

// Palette is an ordered list of hex colour tokens reused cyclically.
type Palette []string

// DefaultPalette is the colour cycle used when no other is configured.
var DefaultPalette = Palette{
	"#e41a1c",
	"#377eb8",
	"#4daf4a",
	"#984ea3",
	"#ff7f00",
	"#a65628",
	"#f781bf",
	"#999999",
}

// NewPalette parses every token (hex, rgb() or rgba() notation) and normalises it to hex.
func NewPalette(tokens ...string) (Palette, error) {
	if len(tokens) == 0 {
		return nil, errors.Wrap(model.ErrFormat, "palette must not be empty")
	}

	palette := make(Palette, 0, len(tokens))

	for _, token := range tokens {
		colour, err := colors.Parse(token)
		if err != nil {
			return nil, errors.Wrapf(model.ErrFormat, "colour %q: %v", token, err)
		}

		palette = append(palette, colour.ToHEX().String())
	}

	return palette, nil
}

// Color returns the colour of the series at index i.
func (p Palette) Color(i int) string {
	return p[i%len(p)]
}
