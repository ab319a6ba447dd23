package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/textutil"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var in catalog.MovieInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a movie to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd, true, func(store *catalog.Store) error {
				movie, err := store.AddMovieInput(in)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, movie)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Movie added successfully! %s (%d)\n", movie.Title, movie.Year)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Movie title")
	cmd.Flags().StringVar(&in.Genre, "genre", "", "Movie genre")
	cmd.Flags().StringVar(&in.Year, "year", "", "Release year")
	cmd.Flags().StringVar(&in.Rating, "rating", "", "Your rating (1-10)")
	return cmd
}

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every movie in the catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd, false, func(store *catalog.Store) error {
				movies := store.ListAll()
				if ctx.jsonOutput() {
					return writeJSON(cmd, movies)
				}
				renderMovies(cmd.OutOrStdout(), "All Movies", movies)
				return nil
			})
		},
	}
}

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var minRating float64

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "List movies rated at or above a threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			threshold := cfg.Catalog.RecommendThreshold
			if cmd.Flags().Changed("min") {
				threshold = minRating
			}
			return ctx.withStore(cmd, false, func(store *catalog.Store) error {
				movies := store.Recommend(threshold)
				if ctx.jsonOutput() {
					return writeJSON(cmd, movies)
				}
				renderMovies(cmd.OutOrStdout(), fmt.Sprintf("Recommended Movies (rating >= %s)", formatRating(threshold)), movies)
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&minRating, "min", catalog.DefaultRecommendThreshold, "Minimum rating (defaults to catalog.recommend_threshold)")
	return cmd
}

func newGenreCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "genre <query>",
		Short: "List movies in the genre closest to the query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return ctx.withStore(cmd, false, func(store *catalog.Store) error {
				result, err := store.FilterByGenre(query)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, result)
				}
				heading := fmt.Sprintf("Movies in '%s' Genre", textutil.TitleCase(result.Matched))
				renderMovies(cmd.OutOrStdout(), heading, result.Movies)
				return nil
			})
		},
	}
}

func newReviewCommand(ctx *commandContext) *cobra.Command {
	var in catalog.ReviewInput

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Rate and review a movie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd, true, func(store *catalog.Store) error {
				movie, err := store.AddReviewInput(in)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, movie)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Review added successfully! %s now has %d review%s\n",
					movie.Title, len(movie.Reviews), plural(len(movie.Reviews)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Title of the movie to review (case-insensitive)")
	cmd.Flags().StringVar(&in.Rating, "rating", "", "Your rating (1-10)")
	cmd.Flags().StringVar(&in.Review, "text", "", "Review text")
	return cmd
}
