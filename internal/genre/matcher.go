package genre

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"marquee/internal/logging"
	"marquee/internal/textutil"
)

// Algorithm names a similarity measure.
type Algorithm string

const (
	// AlgorithmRatio scores 2*M/T over difflib-style matching blocks.
	AlgorithmRatio Algorithm = "ratio"
	// AlgorithmJaroWinkler favours strings sharing a prefix.
	AlgorithmJaroWinkler Algorithm = "jaro-winkler"
	// AlgorithmLevenshtein scores 1 - distance/max(len(a), len(b)).
	AlgorithmLevenshtein Algorithm = "levenshtein"
)

const (
	// DefaultCutoff is the minimum similarity a genre needs to be accepted.
	DefaultCutoff = 0.5
	// DefaultMaxResults is the number of candidates BestMatch considers.
	DefaultMaxResults = 1
)

// ErrInvalidOptions reports matcher options outside their allowed range.
var ErrInvalidOptions = errors.New("invalid genre matcher options")

// ParseAlgorithm converts a configuration value to an Algorithm.
func ParseAlgorithm(value string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(value))) {
	case "", AlgorithmRatio:
		return AlgorithmRatio, nil
	case AlgorithmJaroWinkler:
		return AlgorithmJaroWinkler, nil
	case AlgorithmLevenshtein:
		return AlgorithmLevenshtein, nil
	default:
		return "", fmt.Errorf("%w: unknown algorithm %q", ErrInvalidOptions, value)
	}
}

// Options controls candidate scoring and selection.
type Options struct {
	Cutoff     float64
	MaxResults int
	Algorithm  Algorithm
}

// DefaultOptions returns cutoff 0.5, a single result, and the ratio measure.
func DefaultOptions() Options {
	return Options{
		Cutoff:     DefaultCutoff,
		MaxResults: DefaultMaxResults,
		Algorithm:  AlgorithmRatio,
	}
}

// Validate checks that the cutoff lies in [0, 1] and the algorithm is known.
func (o Options) Validate() error {
	if o.Cutoff < 0 || o.Cutoff > 1 {
		return fmt.Errorf("%w: cutoff must be in [0, 1], got %v", ErrInvalidOptions, o.Cutoff)
	}
	if o.MaxResults < 0 {
		return fmt.Errorf("%w: max results must not be negative, got %d", ErrInvalidOptions, o.MaxResults)
	}
	if _, err := ParseAlgorithm(string(o.Algorithm)); err != nil {
		return err
	}
	return nil
}

// Match is a known genre scored against a query. Genre is the folded form.
type Match struct {
	Genre string  `json:"genre"`
	Score float64 `json:"score"`
}

// Matcher scores queries against a set of known genres.
type Matcher struct {
	opts   Options
	logger *slog.Logger
}

// NewMatcher validates opts and returns a Matcher. A nil logger discards output.
func NewMatcher(opts Options, logger *slog.Logger) (*Matcher, error) {
	if opts.Algorithm == "" {
		opts.Algorithm = AlgorithmRatio
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Matcher{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "genre"),
	}, nil
}

// Options returns the matcher configuration.
func (m *Matcher) Options() Options {
	return m.opts
}

// BestMatch returns the known genre most similar to query, or false when no
// candidate reaches the cutoff.
func (m *Matcher) BestMatch(query string, known []string) (Match, bool) {
	ranked := m.rank(query, known, 1)
	if len(ranked) == 0 {
		return Match{}, false
	}
	return ranked[0], true
}

// Rank returns every candidate at or above the cutoff, best first, truncated
// to the configured MaxResults (zero keeps all).
func (m *Matcher) Rank(query string, known []string) []Match {
	return m.rank(query, known, m.opts.MaxResults)
}

func (m *Matcher) rank(query string, known []string, limit int) []Match {
	folded := textutil.Fold(strings.TrimSpace(query))
	candidates := Distinct(known)

	matches := make([]Match, 0, len(candidates))
	for _, candidate := range candidates {
		score := Similarity(candidate, folded, m.opts.Algorithm)
		m.logger.Debug("genre candidate scored",
			logging.String("query", folded),
			logging.String("candidate", candidate),
			logging.Float64("score", score),
			logging.Float64("cutoff", m.opts.Cutoff))
		if score >= m.opts.Cutoff {
			matches = append(matches, Match{Genre: candidate, Score: score})
		}
	}

	sortMatches(matches)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Distinct folds genres and removes duplicates and empty values, sorted
// ascending. Surrounding whitespace is part of a genre.
func Distinct(genres []string) []string {
	seen := make(map[string]struct{}, len(genres))
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		folded := textutil.Fold(g)
		if folded == "" {
			continue
		}
		if _, ok := seen[folded]; ok {
			continue
		}
		seen[folded] = struct{}{}
		out = append(out, folded)
	}
	sort.Strings(out)
	return out
}

func sortMatches(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Genre < matches[j].Genre
	})
}
