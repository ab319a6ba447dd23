package export

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "modernc.org/sqlite"

	"marquee/internal/catalog"
)

//go:embed schema.sql
var schemaSQL string

// WriteSQLite creates a fresh database at path holding movies and their reviews.
// Positions preserve catalog and review order.
func WriteSQLite(ctx context.Context, path string, movies catalog.Catalog) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove previous export: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("apply pragma: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	if err := insertMovies(ctx, tx, movies); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

func insertMovies(ctx context.Context, tx *sql.Tx, movies catalog.Catalog) error {
	for i, movie := range movies {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO movies (position, title, genre, year, rating) VALUES (?, ?, ?, ?, ?)`,
			i, movie.Title, movie.Genre, movie.Year, movie.Rating,
		)
		if err != nil {
			return fmt.Errorf("insert movie %q: %w", movie.Title, err)
		}
		movieID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("movie id for %q: %w", movie.Title, err)
		}
		for j, review := range movie.Reviews {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO reviews (movie_id, position, rating, review) VALUES (?, ?, ?, ?)`,
				movieID, j, review.Rating, review.Review,
			); err != nil {
				return fmt.Errorf("insert review for %q: %w", movie.Title, err)
			}
		}
	}
	return nil
}
