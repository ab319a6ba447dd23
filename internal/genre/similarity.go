package genre

import (
	"math"

	"github.com/hbollon/go-edlib"
	"github.com/pmezard/go-difflib/difflib"
)

// Ratio returns 2*M/T where M is the number of characters in the matching
// blocks found between candidate and query and T their combined rune length.
// Blocks are found the way difflib's SequenceMatcher finds them, longest
// contiguous run first, so the score depends on argument order. Two empty
// strings are identical.
func Ratio(candidate, query string) float64 {
	return difflib.NewMatcher(splitChars(candidate), splitChars(query)).Ratio()
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}

// Similarity scores a known candidate against a query in [0, 1] using algo.
// Unknown algorithms fall back to Ratio.
func Similarity(candidate, query string, algo Algorithm) float64 {
	if candidate == query {
		return 1
	}
	if candidate == "" || query == "" {
		return 0
	}

	var score float64
	switch algo {
	case AlgorithmJaroWinkler:
		score = float64(edlib.JaroWinklerSimilarity(candidate, query))
	case AlgorithmLevenshtein:
		sim, err := edlib.StringsSimilarity(candidate, query, edlib.Levenshtein)
		if err != nil {
			return 0
		}
		score = float64(sim)
	default:
		score = Ratio(candidate, query)
	}

	if math.IsNaN(score) {
		return 0
	}
	return math.Max(0, math.Min(1, score))
}
