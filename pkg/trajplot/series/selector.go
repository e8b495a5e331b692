package series

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-trajplot/pkg/trajplot/model"
)

// AllPairsToken selects every unordered pair of observed bodies.
const AllPairsToken = "all"

// Selector chooses the body pairs compared in distance mode.
// It is implemented by AllPairs and ExplicitPairs only.
type Selector interface {
	// Pairs returns the selected pairs given the observed bodies.
	Pairs(bodies model.Bodies) []model.Pair
	selector()
}

// AllPairs selects every unordered pair (a, b) with a < b among the observed bodies.
type AllPairs struct{}

// Pairs implements Selector.
func (AllPairs) Pairs(bodies model.Bodies) []model.Pair {
	ids := bodies.SortedIDs()
	pairs := []model.Pair{}

	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			pairs = append(pairs, model.Pair{A: ids[i], B: ids[j]})
		}
	}

	return pairs
}

func (AllPairs) selector() {}

// ExplicitPairs selects the listed pairs, whether or not their bodies exist.
type ExplicitPairs struct {
	List []model.Pair
}

// Pairs implements Selector. Duplicates are dropped and the result is sorted.
func (e ExplicitPairs) Pairs(model.Bodies) []model.Pair {
	seen := make(map[model.Pair]struct{}, len(e.List))
	pairs := make([]model.Pair, 0, len(e.List))

	for _, p := range e.List {
		if _, ok := seen[p]; ok {
			continue
		}

		seen[p] = struct{}{}

		pairs = append(pairs, p)
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Less(pairs[j])
	})

	return pairs
}

func (ExplicitPairs) selector() {}

// ParseSelector parses "all" or a comma separated list of "a-b" tokens such as "0-1,0-2".
func ParseSelector(raw string) (Selector, error) {
	raw = strings.TrimSpace(raw)
	if raw == AllPairsToken {
		return AllPairs{}, nil
	}

	tokens := strings.Split(raw, ",")
	pairs := make([]model.Pair, 0, len(tokens))

	for _, token := range tokens {
		pair, err := parsePair(token)
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, pair)
	}

	return ExplicitPairs{List: pairs}, nil
}

func parsePair(token string) (model.Pair, error) {
	parts := strings.Split(strings.TrimSpace(token), "-")
	if len(parts) != 2 {
		return model.Pair{}, errors.Wrapf(model.ErrFormat, "pair %q: want a-b", token)
	}

	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return model.Pair{}, errors.Wrapf(model.ErrFormat, "pair %q: %q is not a body id", token, parts[0])
	}

	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Pair{}, errors.Wrapf(model.ErrFormat, "pair %q: %q is not a body id", token, parts[1])
	}

	return model.Pair{A: a, B: b}, nil
}
