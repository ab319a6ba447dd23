package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"marquee/internal/genre"
	"marquee/internal/logging"
	"marquee/internal/textutil"
)

// DefaultRecommendThreshold is the minimum rating Recommend uses when none is configured.
const DefaultRecommendThreshold = 8.0

const jsonIndent = "    "

// Options configures a Store. Zero values select the OS filesystem, a no-op
// logger and a matcher with default options.
type Options struct {
	Fs      afero.Fs
	Logger  *slog.Logger
	Matcher *genre.Matcher
}

// GenreResult is the outcome of a successful genre lookup. Matched is the folded
// known genre the query resolved to.
type GenreResult struct {
	Query   string  `json:"query"`
	Matched string  `json:"matched"`
	Score   float64 `json:"score"`
	Movies  Catalog `json:"movies"`
}

// Store owns the in-memory catalog and its backing file.
type Store struct {
	path    string
	fs      afero.Fs
	logger  *slog.Logger
	matcher *genre.Matcher
	movies  Catalog
}

// Open loads the catalog at path. A missing or empty file yields an empty catalog.
func Open(path string, opts Options) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, &ValidationError{Field: "data_file", Reason: "is required"}
	}
	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	logger := logging.NewComponentLogger(opts.Logger, "catalog")
	matcher := opts.Matcher
	if matcher == nil {
		var err error
		matcher, err = genre.NewMatcher(genre.DefaultOptions(), opts.Logger)
		if err != nil {
			return nil, err
		}
	}

	movies, err := Load(fsys, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded",
		logging.String(logging.FieldPath, path),
		logging.Int(logging.FieldCount, len(movies)))

	return &Store{
		path:    path,
		fs:      fsys,
		logger:  logger,
		matcher: matcher,
		movies:  movies,
	}, nil
}

// Path returns the catalog file location.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of movies in the catalog.
func (s *Store) Len() int {
	return len(s.movies)
}

// AddMovie appends a movie with no reviews and persists the catalog. When the
// save fails the append is undone and an *IOError is returned.
func (s *Store) AddMovie(title, genreName string, year int, rating float64) (Movie, error) {
	if !isFinite(rating) {
		return Movie{}, &ValidationError{Field: "rating", Reason: "must be a finite number"}
	}
	movie := Movie{
		Title:   title,
		Genre:   genreName,
		Year:    year,
		Rating:  rating,
		Reviews: []Review{},
	}

	n := len(s.movies)
	s.movies = append(s.movies, movie)
	if err := s.persist(); err != nil {
		s.movies = s.movies[:n]
		logging.WarnWithContext(s.logger, "movie not added", "catalog_save_failed",
			logging.String(logging.FieldTitle, title),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check permissions on the data file directory"),
			logging.String(logging.FieldImpact, "catalog left unchanged"))
		return Movie{}, err
	}

	s.logger.Info("movie added",
		logging.String(logging.FieldTitle, title),
		logging.String(logging.FieldGenre, genreName),
		logging.Int("year", year),
		logging.Float64("rating", rating))
	return movie.clone(), nil
}

// AddMovieInput validates raw form text and adds the resulting movie.
func (s *Store) AddMovieInput(in MovieInput) (Movie, error) {
	movie, err := ParseMovieInput(in)
	if err != nil {
		return Movie{}, err
	}
	return s.AddMovie(movie.Title, movie.Genre, movie.Year, movie.Rating)
}

// AddReview appends a review to the first movie whose title matches title
// case-insensitively, then persists. Title and text are trimmed and must not be empty.
func (s *Store) AddReview(title string, rating float64, text string) (Movie, error) {
	title = strings.TrimSpace(title)
	text = strings.TrimSpace(text)
	switch {
	case title == "":
		return Movie{}, &ValidationError{Field: "title", Reason: "is required"}
	case text == "":
		return Movie{}, &ValidationError{Field: "review", Reason: "is required"}
	}
	if !isFinite(rating) {
		return Movie{}, &ValidationError{Field: "rating", Reason: "must be a finite number"}
	}

	idx := s.indexOfTitle(title)
	if idx < 0 {
		s.logger.Debug("review target not found", logging.String(logging.FieldTitle, title))
		return Movie{}, &NotFoundError{Kind: KindMovie, Key: title}
	}

	prev := s.movies[idx].Reviews
	s.movies[idx].Reviews = append(prev, Review{Rating: rating, Review: text})
	if err := s.persist(); err != nil {
		s.movies[idx].Reviews = prev
		logging.WarnWithContext(s.logger, "review not added", "catalog_save_failed",
			logging.String(logging.FieldTitle, s.movies[idx].Title),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check permissions on the data file directory"),
			logging.String(logging.FieldImpact, "catalog left unchanged"))
		return Movie{}, err
	}

	s.logger.Info("review added",
		logging.String(logging.FieldTitle, s.movies[idx].Title),
		logging.Float64("rating", rating),
		logging.Int("review_count", len(s.movies[idx].Reviews)))
	return s.movies[idx].clone(), nil
}

// AddReviewInput validates raw form text and adds the resulting review.
func (s *Store) AddReviewInput(in ReviewInput) (Movie, error) {
	sub, err := ParseReviewInput(in)
	if err != nil {
		return Movie{}, err
	}
	return s.AddReview(sub.Title, sub.Review.Rating, sub.Review.Review)
}

// ListAll returns a deep copy of the catalog in insertion order.
func (s *Store) ListAll() Catalog {
	return s.movies.Clone()
}

// Recommend returns movies rated at or above threshold in insertion order.
func (s *Store) Recommend(threshold float64) Catalog {
	out := Catalog{}
	for _, movie := range s.movies {
		if movie.Rating >= threshold {
			out = append(out, movie.clone())
		}
	}
	return out
}

// Genres returns the distinct folded genres in the catalog, sorted.
func (s *Store) Genres() []string {
	return genre.Distinct(s.movies.Genres())
}

// RankGenres scores every known genre against query using the store's matcher.
func (s *Store) RankGenres(query string) ([]genre.Match, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &ValidationError{Field: "genre", Reason: "is required"}
	}
	return s.matcher.Rank(query, s.movies.Genres()), nil
}

// FilterByGenre resolves query to the closest known genre and returns the movies
// in that genre in insertion order. An empty query is a *ValidationError; no
// genre above the matcher's cutoff is a *NotFoundError.
func (s *Store) FilterByGenre(query string) (GenreResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return GenreResult{}, &ValidationError{Field: "genre", Reason: "is required"}
	}

	match, ok := s.matcher.BestMatch(query, s.movies.Genres())
	if !ok {
		s.logger.Debug("no genre match", logging.String(logging.FieldGenre, query))
		return GenreResult{}, &NotFoundError{Kind: KindGenre, Key: query}
	}

	movies := Catalog{}
	for _, movie := range s.movies {
		if textutil.Fold(movie.Genre) == match.Genre {
			movies = append(movies, movie.clone())
		}
	}
	s.logger.Debug("genre matched",
		logging.String(logging.FieldGenre, query),
		logging.String("matched", match.Genre),
		logging.Float64("score", match.Score),
		logging.Int(logging.FieldCount, len(movies)))
	return GenreResult{Query: query, Matched: match.Genre, Score: match.Score, Movies: movies}, nil
}

func (s *Store) indexOfTitle(title string) int {
	for i, movie := range s.movies {
		if textutil.EqualFold(movie.Title, title) {
			return i
		}
	}
	return -1
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (s *Store) persist() error {
	return Save(s.fs, s.path, s.movies)
}

// Load reads the catalog at path from fsys. A missing or empty file is an empty
// catalog. Undecodable content is a *CorruptDataError; other read failures are
// an *IOError.
func Load(fsys afero.Fs, path string) (Catalog, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Catalog{}, nil
		}
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Catalog{}, nil
	}

	var movies Catalog
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, &CorruptDataError{Path: path, Err: err}
	}
	return movies.normalize(), nil
}

// Save writes movies to path, replacing the previous content atomically via a
// temporary file and rename.
func Save(fsys afero.Fs, path string, movies Catalog) error {
	data, err := Encode(movies)
	if err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return &IOError{Op: "create directory for", Path: path, Err: err}
		}
	}

	tmpPath := path + ".tmp"
	if err := afero.WriteFile(fsys, tmpPath, data, 0o644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := fsys.Rename(tmpPath, path); err != nil {
		_ = fsys.Remove(tmpPath)
		return &IOError{Op: "replace", Path: path, Err: err}
	}
	return nil
}

// Encode renders movies in the persisted layout: a JSON array indented with four
// spaces, reviews always present, no trailing newline.
func Encode(movies Catalog) ([]byte, error) {
	movies = movies.Clone().normalize()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(movies); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
