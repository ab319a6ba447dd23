package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/genre"
	"marquee/internal/textutil"
)

type genreCount struct {
	Genre  string `json:"genre"`
	Movies int    `json:"movies"`
}

func newGenresCommand(ctx *commandContext) *cobra.Command {
	var query string
	var limit int

	cmd := &cobra.Command{
		Use:   "genres",
		Short: "List known genres, or score them against a query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd, false, func(store *catalog.Store) error {
				if cmd.Flags().Changed("query") {
					ranked, err := store.RankGenres(query)
					if err != nil {
						return err
					}
					if limit > 0 && len(ranked) > limit {
						ranked = ranked[:limit]
					}
					return renderRanked(cmd, ctx, query, ranked)
				}
				return renderGenreCounts(cmd, ctx, countGenres(store))
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Score known genres against this text")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum matches to show with --query (0 shows all)")
	return cmd
}

func countGenres(store *catalog.Store) []genreCount {
	counts := make(map[string]int)
	for _, movie := range store.ListAll() {
		counts[textutil.Fold(movie.Genre)]++
	}
	genres := store.Genres()
	out := make([]genreCount, 0, len(genres))
	for _, g := range genres {
		out = append(out, genreCount{Genre: g, Movies: counts[g]})
	}
	return out
}

func renderGenreCounts(cmd *cobra.Command, ctx *commandContext, counts []genreCount) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, counts)
	}
	out := cmd.OutOrStdout()
	if len(counts) == 0 {
		fmt.Fprintln(out, "No genres in catalog")
		return nil
	}
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{textutil.TitleCase(c.Genre), strconv.Itoa(c.Movies)})
	}
	fmt.Fprintln(out, renderTable(tableSpec{
		headers: []string{"Genre", "Movies"},
		rows:    rows,
		aligns:  []columnAlignment{alignLeft, alignRight},
	}))
	return nil
}

func renderRanked(cmd *cobra.Command, ctx *commandContext, query string, ranked []genre.Match) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, ranked)
	}
	out := cmd.OutOrStdout()
	if len(ranked) == 0 {
		fmt.Fprintf(out, "No close match found for genre '%s'\n", query)
		return nil
	}
	rows := make([][]string, 0, len(ranked))
	for _, m := range ranked {
		rows = append(rows, []string{textutil.TitleCase(m.Genre), strconv.FormatFloat(m.Score, 'f', 3, 64)})
	}
	fmt.Fprintln(out, renderTable(tableSpec{
		headers: []string{"Genre", "Score"},
		rows:    rows,
		aligns:  []columnAlignment{alignLeft, alignRight},
	}))
	return nil
}
