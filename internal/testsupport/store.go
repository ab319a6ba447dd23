package testsupport

import (
	"testing"

	"marquee/internal/catalog"
	"marquee/internal/config"
)

// WriteCatalog persists movies to the config's data file.
func WriteCatalog(t testing.TB, cfg *config.Config, movies catalog.Catalog) {
	t.Helper()

	data, err := catalog.Encode(movies)
	if err != nil {
		t.Fatalf("encode catalog: %v", err)
	}
	WriteFile(t, cfg.Paths.DataFile, string(data))
}

// MustOpenStore opens the catalog at the config's data file on the OS filesystem.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg.Paths.DataFile, catalog.Options{})
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	return store
}

// Movie builds a catalog entry with no reviews.
func Movie(title, genre string, year int, rating float64) catalog.Movie {
	return catalog.Movie{Title: title, Genre: genre, Year: year, Rating: rating, Reviews: []catalog.Review{}}
}
