package genre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher(t *testing.T, opts Options) *Matcher {
	t.Helper()
	m, err := NewMatcher(opts, nil)
	require.NoError(t, err)
	return m
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		query     string
		want      float64
	}{
		{name: "identical", candidate: "drama", query: "drama", want: 1},
		{name: "both empty", candidate: "", query: "", want: 1},
		{name: "one empty", candidate: "drama", query: "", want: 0},
		{name: "missing hyphen", candidate: "sci-fi", query: "scifi", want: 10.0 / 11.0},
		{name: "disjoint", candidate: "drama", query: "xyz123", want: 0},
		{name: "shared suffix", candidate: "animation", query: "action", want: 10.0 / 15.0},
		// The longest block "c" anchors the match, leaving only "e" to its right.
		{name: "scattered letters", candidate: "crime", query: "romance", want: 4.0 / 12.0},
		{name: "single block each side", candidate: "history", query: "biography", want: 4.0 / 16.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.candidate, tt.query), 1e-9)
		})
	}
}

func TestRatioDependsOnArgumentOrder(t *testing.T) {
	assert.InDelta(t, 0.25, Ratio("tide", "diet"), 1e-9)
	assert.InDelta(t, 0.5, Ratio("diet", "tide"), 1e-9)
}

func TestBestMatchRejectsScatteredLetters(t *testing.T) {
	m := newTestMatcher(t, DefaultOptions())

	_, ok := m.BestMatch("romance", []string{"Crime"})
	assert.False(t, ok)

	_, ok = m.BestMatch("biography", []string{"History"})
	assert.False(t, ok)
}

func TestBestMatch(t *testing.T) {
	m := newTestMatcher(t, DefaultOptions())
	known := []string{"Sci-Fi", "Drama"}

	tests := []struct {
		name      string
		query     string
		wantGenre string
		wantOK    bool
	}{
		{name: "typo without hyphen", query: "scifi", wantGenre: "sci-fi", wantOK: true},
		{name: "exact different case", query: "DRAMA", wantGenre: "drama", wantOK: true},
		{name: "surrounding whitespace", query: "  drama ", wantGenre: "drama", wantOK: true},
		{name: "no similar genre", query: "xyz123", wantOK: false},
		{name: "empty query", query: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, ok := m.BestMatch(tt.query, known)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantGenre, match.Genre)
				assert.GreaterOrEqual(t, match.Score, DefaultCutoff)
			}
		})
	}
}

func TestBestMatchNoKnownGenres(t *testing.T) {
	m := newTestMatcher(t, DefaultOptions())
	_, ok := m.BestMatch("drama", nil)
	assert.False(t, ok)
}

func TestBestMatchCutoffIsInclusive(t *testing.T) {
	// "ab" vs "ax": one matching character, ratio 2/4 = 0.5
	m := newTestMatcher(t, DefaultOptions())
	match, ok := m.BestMatch("ab", []string{"ax"})
	require.True(t, ok)
	assert.Equal(t, "ax", match.Genre)
	assert.InDelta(t, 0.5, match.Score, 1e-9)
}

func TestBestMatchTieBreaksLexicographically(t *testing.T) {
	m := newTestMatcher(t, DefaultOptions())
	// "ab" scores 0.8 against both "abx" and "aby".
	match, ok := m.BestMatch("ab", []string{"aby", "abx"})
	require.True(t, ok)
	assert.Equal(t, "abx", match.Genre)

	match, ok = m.BestMatch("ab", []string{"abx", "aby"})
	require.True(t, ok)
	assert.Equal(t, "abx", match.Genre, "order of known genres must not matter")
}

func TestBestMatchPrefersHigherScore(t *testing.T) {
	m := newTestMatcher(t, DefaultOptions())
	match, ok := m.BestMatch("comdy", []string{"Drama", "Comedy", "Romantic Comedy"})
	require.True(t, ok)
	assert.Equal(t, "comedy", match.Genre)
}

func TestRankOrdersAndTruncates(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxResults = 2
	opts.Cutoff = 0.3
	m := newTestMatcher(t, opts)

	ranked := m.Rank("drama", []string{"Dramedy", "Drama", "Documentary", "Horror"})
	require.Len(t, ranked, 2)
	assert.Equal(t, "drama", ranked[0].Genre)
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-9)
	assert.Equal(t, "dramedy", ranked[1].Genre)
}

func TestRankZeroMaxResultsKeepsAll(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxResults = 0
	opts.Cutoff = 0.01
	m := newTestMatcher(t, opts)

	ranked := m.Rank("drama", []string{"Dramedy", "Drama", "Melodrama"})
	assert.Len(t, ranked, 3)
}

func TestAlternativeAlgorithms(t *testing.T) {
	for _, algo := range []Algorithm{AlgorithmJaroWinkler, AlgorithmLevenshtein} {
		t.Run(string(algo), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Algorithm = algo
			m := newTestMatcher(t, opts)

			match, ok := m.BestMatch("scifi", []string{"Sci-Fi", "Drama"})
			require.True(t, ok)
			assert.Equal(t, "sci-fi", match.Genre)
		})
	}
}

func TestNewMatcherRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "negative cutoff", opts: Options{Cutoff: -0.1, MaxResults: 1, Algorithm: AlgorithmRatio}},
		{name: "cutoff above one", opts: Options{Cutoff: 1.1, MaxResults: 1, Algorithm: AlgorithmRatio}},
		{name: "negative results", opts: Options{Cutoff: 0.5, MaxResults: -1, Algorithm: AlgorithmRatio}},
		{name: "unknown algorithm", opts: Options{Cutoff: 0.5, MaxResults: 1, Algorithm: "soundex"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMatcher(tt.opts, nil)
			require.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	algo, err := ParseAlgorithm(" Jaro-Winkler ")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmJaroWinkler, algo)

	algo, err = ParseAlgorithm("")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmRatio, algo)

	_, err = ParseAlgorithm("metaphone")
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestDistinct(t *testing.T) {
	got := Distinct([]string{"Sci-Fi", "drama", "SCI-FI", "", "Drama ", "action"})
	assert.Equal(t, []string{"action", "drama", "drama ", "sci-fi"}, got)
}
