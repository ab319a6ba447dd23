package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"marquee/internal/catalog"
)

// MovieRow is one CSV line. Reviews are summarized rather than nested.
type MovieRow struct {
	Title        string  `csv:"title"`
	Genre        string  `csv:"genre"`
	Year         int     `csv:"year"`
	Rating       float64 `csv:"rating"`
	ReviewCount  int     `csv:"review_count"`
	ReviewRating float64 `csv:"review_rating_avg"`
}

// Rows flattens movies into CSV rows in catalog order.
func Rows(movies catalog.Catalog) []*MovieRow {
	rows := make([]*MovieRow, 0, len(movies))
	for _, movie := range movies {
		row := &MovieRow{
			Title:       movie.Title,
			Genre:       movie.Genre,
			Year:        movie.Year,
			Rating:      movie.Rating,
			ReviewCount: len(movie.Reviews),
		}
		if n := len(movie.Reviews); n > 0 {
			var sum float64
			for _, review := range movie.Reviews {
				sum += review.Rating
			}
			row.ReviewRating = sum / float64(n)
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteCSV writes a header line followed by one row per movie.
func WriteCSV(w io.Writer, movies catalog.Catalog) error {
	if err := gocsv.Marshal(Rows(movies), w); err != nil {
		return fmt.Errorf("write csv export: %w", err)
	}
	return nil
}
