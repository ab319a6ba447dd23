package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMovieInput(t *testing.T) {
	t.Parallel()

	movie, err := ParseMovieInput(MovieInput{Title: " Alien ", Genre: "Sci-Fi", Year: " 1979 ", Rating: "8.5\n"})
	require.NoError(t, err)
	assert.Equal(t, " Alien ", movie.Title, "title is stored as typed")
	assert.Equal(t, "Sci-Fi", movie.Genre)
	assert.Equal(t, 1979, movie.Year)
	assert.InDelta(t, 8.5, movie.Rating, 1e-9)
	assert.NotNil(t, movie.Reviews)
	assert.Empty(t, movie.Reviews)
}

func TestParseMovieInputKeepsLooseness(t *testing.T) {
	t.Parallel()

	// Empty title and genre, out-of-range rating and implausible year are accepted.
	movie, err := ParseMovieInput(MovieInput{Title: "", Genre: "", Year: "-3", Rating: "42"})
	require.NoError(t, err)
	assert.Equal(t, -3, movie.Year)
	assert.InDelta(t, 42.0, movie.Rating, 1e-9)
}

func TestParseMovieInputErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     MovieInput
		field  string
		reason string
	}{
		{"year text", MovieInput{Year: "soon", Rating: "7"}, "year", `must be an integer, got "soon"`},
		{"year empty", MovieInput{Year: "", Rating: "7"}, "year", `must be an integer, got ""`},
		{"rating text", MovieInput{Year: "2001", Rating: "good"}, "rating", `must be a number, got "good"`},
		{"rating infinite", MovieInput{Year: "2001", Rating: "-Inf"}, "rating", `must be a number, got "-Inf"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseMovieInput(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.reason, verr.Reason)
			assert.Equal(t, tt.field+" "+tt.reason, err.Error())
		})
	}
}

func TestParseReviewInput(t *testing.T) {
	t.Parallel()

	sub, err := ParseReviewInput(ReviewInput{Title: " Inception\t", Rating: " 9.5 ", Review: "  mind-bending "})
	require.NoError(t, err)
	assert.Equal(t, "Inception", sub.Title)
	assert.Equal(t, Review{Rating: 9.5, Review: "mind-bending"}, sub.Review)
}

func TestParseReviewInputRequiresAllFields(t *testing.T) {
	t.Parallel()

	_, err := ParseReviewInput(ReviewInput{Title: "", Rating: "", Review: ""})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
	assert.Equal(t, "title is required", err.Error())

	_, err = ParseReviewInput(ReviewInput{Title: "Inception", Rating: "x", Review: "ok"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "rating", verr.Field)
}

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	ioErr := error(&IOError{Op: "write", Path: "/tmp/movies.json", Err: cause})
	assert.ErrorIs(t, ioErr, ErrIO)
	assert.ErrorIs(t, ioErr, cause)
	assert.Equal(t, "write catalog file /tmp/movies.json: disk full", ioErr.Error())

	corrupt := error(&CorruptDataError{Path: "/tmp/movies.json", Err: cause})
	assert.ErrorIs(t, corrupt, ErrCorruptData)
	assert.NotErrorIs(t, corrupt, ErrIO)

	movie := error(&NotFoundError{Kind: KindMovie, Key: "Tenet"})
	assert.ErrorIs(t, movie, ErrNotFound)
	assert.Equal(t, `movie "Tenet" not found`, movie.Error())

	genreErr := error(&NotFoundError{Kind: KindGenre, Key: "xyz"})
	assert.Equal(t, `no close match found for genre "xyz"`, genreErr.Error())
}
