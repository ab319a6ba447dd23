// Package export writes a catalog snapshot to other formats: the canonical JSON
// layout, a flat CSV of movies, or a SQLite database with movies and reviews
// tables.
package export
