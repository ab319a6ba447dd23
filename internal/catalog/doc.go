// Package catalog owns the movie catalog: the ordered list of movies with their
// reviews and the JSON file it is persisted to.
//
// A Store loads the file once when opened and rewrites it in full after every
// mutation. Mutations that fail to persist are rolled back so the in-memory
// catalog always mirrors the last successful save. Raw text input from the CLI
// is converted through ParseMovieInput and ParseReviewInput, which return either
// a fully typed value or a *ValidationError.
//
// Errors are typed (ValidationError, NotFoundError, CorruptDataError, IOError)
// and match the ErrValidation, ErrNotFound, ErrCorruptData and ErrIO sentinels
// through errors.Is.
package catalog
