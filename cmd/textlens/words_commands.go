package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"textlens/internal/service"
	"textlens/internal/session"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show headline statistics of the occurrence table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dashboard, err := ctx.dashboard(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			summary, err := dashboard.Summary(cmd.Context())
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}
			rows := [][]string{
				{"Unique words", strconv.Itoa(summary.UniqueWords)},
				{"Total occurrences", strconv.Itoa(summary.TotalOccurrences)},
				{"Line range", fmt.Sprintf("%d-%d", summary.MinLine, summary.MaxLine)},
				{"Most frequent word", fmt.Sprintf("%s (%d)", summary.TopWord, summary.TopFrequency)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
}

func newTopCommand(ctx *commandContext) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "List the most frequent words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dashboard, err := ctx.dashboard(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			words, err := dashboard.TopWords(cmd.Context(), n)
			if err != nil {
				return fmt.Errorf("top words: %w", err)
			}
			rows := make([][]string, 0, len(words))
			for i, w := range words {
				rows = append(rows, []string{strconv.Itoa(i + 1), w.Word, strconv.Itoa(w.Frequency)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Word", "Frequency"}, rows,
				[]columnAlignment{alignRight, alignLeft, alignRight},
			))
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "number", "n", 20, "Number of words to show")
	return cmd
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var page int
	var pageSize int
	var targetsOnly bool
	var category string

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Find occurrences of words containing a term",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var term string
			if len(args) == 1 {
				term = strings.TrimSpace(args[0])
			}
			if term == "" && !targetsOnly && category == "" {
				return fmt.Errorf("search needs a term, --targets or --category")
			}
			state, err := session.State{ID: "cli", Page: 1, LastSearch: term}.WithPageSize(pageSize)
			if err != nil {
				return err
			}
			state = state.WithPage(page)

			dashboard, err := ctx.dashboard(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			result, err := dashboard.Search(cmd.Context(), service.SearchRequest{
				State:       state,
				Term:        term,
				TargetsOnly: targetsOnly,
				Category:    category,
			})
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}

			out := cmd.OutOrStdout()
			if result.Notice != "" {
				fmt.Fprintln(out, result.Notice)
			}
			if len(result.Rows) == 0 {
				return nil
			}
			rows := make([][]string, 0, len(result.Rows))
			for _, r := range result.Rows {
				rows = append(rows, []string{r.Word, strconv.Itoa(r.Frequency), strconv.Itoa(r.LineNumber), r.LineContent})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Word", "Frequency", "Line", "Text"}, rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "Page %d of %d (%d rows)\n", result.Page, result.TotalPages, result.Total)
			return nil
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page to show")
	cmd.Flags().IntVar(&pageSize, "page-size", 25, fmt.Sprintf("Rows per page, one of %v", session.PageSizes))
	cmd.Flags().BoolVar(&targetsOnly, "targets", false, "Only match words on the target list")
	cmd.Flags().StringVar(&category, "category", "", "Only match target words of this category")
	return cmd
}
