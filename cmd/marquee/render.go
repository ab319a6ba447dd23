package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"marquee/internal/catalog"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiBlue  = "\033[34m"
	ansiRed   = "\033[31m"
)

const noMoviesMessage = "No movies found"

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBold + ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderMovies writes a heading, a table of movies, and a table of their reviews.
func renderMovies(out io.Writer, heading string, movies catalog.Catalog) {
	colorize := shouldColorize(out)
	for _, line := range renderSectionHeader(heading, colorize) {
		fmt.Fprintln(out, line)
	}

	if len(movies) == 0 {
		msg := noMoviesMessage
		if colorize {
			msg = ansiRed + msg + ansiReset
		}
		fmt.Fprintln(out, msg)
		return
	}

	rows := make([][]string, 0, len(movies))
	reviewRows := make([][]string, 0)
	for i, movie := range movies {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			movie.Title,
			strconv.Itoa(movie.Year),
			movie.Genre,
			formatRating(movie.Rating),
			strconv.Itoa(len(movie.Reviews)),
		})
		for _, review := range movie.Reviews {
			reviewRows = append(reviewRows, []string{
				fmt.Sprintf("%s (%d)", movie.Title, movie.Year),
				formatRating(review.Rating),
				review.Review,
			})
		}
	}
	fmt.Fprintln(out, renderTable(tableSpec{
		headers: []string{"#", "Title", "Year", "Genre", "Rating", "Reviews"},
		rows:    rows,
		aligns:  []columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignRight, alignRight},
		footer:  []string{"", fmt.Sprintf("%d movie%s", len(movies), plural(len(movies)))},
	}))

	if len(reviewRows) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderTable(tableSpec{
		headers: []string{"Movie", "Rating", "Review"},
		rows:    reviewRows,
		aligns:  []columnAlignment{alignLeft, alignRight, alignLeft},
	}))
}

// formatRating prints whole ratings with one decimal ("8.0") and keeps others exact.
func formatRating(rating float64) string {
	s := strconv.FormatFloat(rating, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
