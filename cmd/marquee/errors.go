package main

import (
	"errors"
	"fmt"

	"marquee/internal/catalog"
)

// describeError turns catalog errors into the messages shown to the user.
func describeError(err error) string {
	var (
		validation *catalog.ValidationError
		notFound   *catalog.NotFoundError
		corrupt    *catalog.CorruptDataError
		ioErr      *catalog.IOError
	)
	switch {
	case errors.As(err, &validation):
		return "Invalid input: " + validation.Error()
	case errors.As(err, &notFound):
		if notFound.Kind == catalog.KindGenre {
			return fmt.Sprintf("No close match found for genre '%s'", notFound.Key)
		}
		return "Movie not found!"
	case errors.As(err, &corrupt):
		return fmt.Sprintf("Catalog file %s is unreadable: %v", corrupt.Path, corrupt.Err)
	case errors.As(err, &ioErr):
		return fmt.Sprintf("Could not %s catalog file %s: %v", ioErr.Op, ioErr.Path, ioErr.Err)
	default:
		return err.Error()
	}
}
