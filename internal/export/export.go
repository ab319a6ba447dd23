package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"marquee/internal/catalog"
)

// Format names an export target.
type Format string

const (
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// ErrUnknownFormat reports an export format other than json, csv or sqlite.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatJSON, FormatCSV, FormatSQLite}
}

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case FormatJSON, FormatCSV, FormatSQLite:
		return f, nil
	case "db", "sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w %q (want %s)", ErrUnknownFormat, value, formatList())
	}
}

func formatList() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// ToFile writes movies to path in the requested format, replacing any existing file.
func ToFile(ctx context.Context, format Format, path string, movies catalog.Catalog) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("export path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}

	switch format {
	case FormatSQLite:
		return WriteSQLite(ctx, path, movies)
	case FormatJSON, FormatCSV:
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		if err := To(file, format, movies); err != nil {
			_ = file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("close export file: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// To streams movies to w. SQLite needs a file path and is rejected here.
func To(w io.Writer, format Format, movies catalog.Catalog) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, movies)
	case FormatCSV:
		return WriteCSV(w, movies)
	case FormatSQLite:
		return errors.New("sqlite export requires an output file")
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// WriteJSON writes movies in the same layout as the catalog file.
func WriteJSON(w io.Writer, movies catalog.Catalog) error {
	data, err := catalog.Encode(movies)
	if err != nil {
		return fmt.Errorf("encode json export: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json export: %w", err)
	}
	return nil
}
