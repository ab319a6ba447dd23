package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("not found")
	// ErrCorruptData matches every *CorruptDataError.
	ErrCorruptData = errors.New("corrupt catalog data")
	// ErrIO matches every *IOError.
	ErrIO = errors.New("catalog i/o failed")
)

// ValidationError reports user input that could not be converted or is missing.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + " " + e.Reason
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundKind names what a lookup was searching for.
type NotFoundKind string

const (
	KindMovie NotFoundKind = "movie"
	KindGenre NotFoundKind = "genre"
)

// NotFoundError reports a lookup with no result: a movie title with no case-insensitive
// match, or a genre query with no known genre above the similarity cutoff.
type NotFoundError struct {
	Kind NotFoundKind
	Key  string
}

func (e *NotFoundError) Error() string {
	if e.Kind == KindGenre {
		return fmt.Sprintf("no close match found for genre %q", e.Key)
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// CorruptDataError reports a catalog file that exists but cannot be decoded.
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("catalog file %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

func (e *CorruptDataError) Is(target error) bool { return target == ErrCorruptData }

// IOError reports a filesystem failure while reading or writing the catalog file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s catalog file %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }
