package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MovieInput is the raw text a user supplies to add a movie.
type MovieInput struct {
	Title  string `json:"title"`
	Genre  string `json:"genre"`
	Year   string `json:"year" validate:"int_text"`
	Rating string `json:"rating" validate:"float_text"`
}

// ReviewInput is the raw text a user supplies to review a movie.
type ReviewInput struct {
	Title  string `json:"title" validate:"required"`
	Rating string `json:"rating" validate:"required,float_text"`
	Review string `json:"review" validate:"required"`
}

// ReviewSubmission is a validated review addressed to a movie title.
type ReviewSubmission struct {
	Title  string
	Review Review
}

var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("int_text", validateIntText)
	_ = v.RegisterValidation("float_text", validateFloatText)
	return v
}

// ParseMovieInput converts raw form text into a Movie with no reviews. Year must
// parse as an integer and rating as a finite number; surrounding whitespace is
// ignored for both. Title and genre are kept exactly as typed.
func ParseMovieInput(in MovieInput) (Movie, error) {
	if err := validateInput(in); err != nil {
		return Movie{}, err
	}
	year, _ := parseInt(in.Year)
	rating, _ := parseFloat(in.Rating)
	return Movie{
		Title:   in.Title,
		Genre:   in.Genre,
		Year:    year,
		Rating:  rating,
		Reviews: []Review{},
	}, nil
}

// ParseReviewInput trims every field, requires all three to be non-empty, and
// requires the rating to be a finite number.
func ParseReviewInput(in ReviewInput) (ReviewSubmission, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Rating = strings.TrimSpace(in.Rating)
	in.Review = strings.TrimSpace(in.Review)
	if err := validateInput(in); err != nil {
		return ReviewSubmission{}, err
	}
	rating, _ := parseFloat(in.Rating)
	return ReviewSubmission{
		Title:  in.Title,
		Review: Review{Rating: rating, Review: in.Review},
	}, nil
}

func validateInput(in any) error {
	err := inputValidator.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate input: %w", err)
	}
	return newValidationError(fieldErrs[0])
}

func newValidationError(fe validator.FieldError) *ValidationError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: field, Reason: "is required"}
	case "int_text":
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be an integer, got %q", fe.Value())}
	case "float_text":
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be a number, got %q", fe.Value())}
	default:
		return &ValidationError{Field: field, Reason: fmt.Sprintf("failed %s validation", fe.Tag())}
	}
}

func validateIntText(fl validator.FieldLevel) bool {
	_, err := parseInt(fl.Field().String())
	return err == nil
}

func validateFloatText(fl validator.FieldLevel) bool {
	_, err := parseFloat(fl.Field().String())
	return err == nil
}

func parseInt(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value))
}

// parseFloat rejects NaN and infinities, which the JSON file cannot represent.
func parseFloat(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}
	if !isFinite(f) {
		return 0, fmt.Errorf("non-finite value %q", value)
	}
	return f, nil
}
