package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"textlens/internal/chart"
	"textlens/internal/themes"
)

func themeArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one theme (%s)", strings.Join(themes.Names(), ", "))
	}
	return nil
}

func newDistributionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:       "distribution <theme>",
		Short:     "Show where each word list's theme words fall in the text",
		Args:      themeArgs,
		ValidArgs: themes.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			dashboard, err := ctx.dashboard(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			result, err := dashboard.Distribution(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("distribution: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s words across %d tokens\n", result.Title, result.TotalTokens)

			lanes := result.Lanes
			if result.Target != nil {
				lanes = append(lanes, *result.Target)
			}
			rows := make([][]string, 0, len(lanes))
			for _, lane := range lanes {
				rows = append(rows, laneRow(lane))
			}
			fmt.Fprintln(out, renderTable(
				[]string{"List", "Hits", "First", "Last", "Mean", "P95"}, rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
			))

			if len(result.Boundaries) > 0 {
				bounds := make([][]string, 0, len(result.Boundaries))
				for _, b := range result.Boundaries {
					bounds = append(bounds, []string{b.Label, formatPosition(b.X), b.Marker})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Boundary", "Position", "Marker"}, bounds,
					[]columnAlignment{alignLeft, alignRight, alignLeft},
				))
			}
			if result.Overlap != nil {
				fmt.Fprintf(out, "Words in every list: %d\n", result.Overlap.All)
			}
			printNotices(out, result.Notices)
			return nil
		},
	}
}

func newOverlapCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:       "overlap <theme>",
		Short:     "Compare the word lists of a theme",
		Args:      themeArgs,
		ValidArgs: themes.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			dashboard, err := ctx.dashboard(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			result, err := dashboard.Overlap(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("overlap: %w", err)
			}

			out := cmd.OutOrStdout()
			sizes := make([][]string, 0, len(result.Sets))
			for _, s := range result.Sets {
				sizes = append(sizes, []string{s.Label, strconv.Itoa(s.Words)})
			}
			fmt.Fprintln(out, renderTable([]string{"List", "Words"}, sizes, []columnAlignment{alignLeft, alignRight}))

			pairs := make([][]string, 0, len(result.Overlap.Pairs)+1)
			for _, p := range result.Overlap.Pairs {
				pairs = append(pairs, []string{p.A + " & " + p.B, strconv.Itoa(p.Count)})
			}
			pairs = append(pairs, []string{"All lists", strconv.Itoa(result.Overlap.All)})
			fmt.Fprintln(out, renderTable([]string{"Lists", "Shared words"}, pairs, []columnAlignment{alignLeft, alignRight}))
			printNotices(out, result.Notices)
			return nil
		},
	}
}

func newComparisonCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "comparison",
		Short: "List which word lists contain each target word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dashboard, err := ctx.dashboard(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			result, err := dashboard.Comparison(cmd.Context())
			if err != nil {
				return fmt.Errorf("comparison: %w", err)
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(result.Rows))
			for _, r := range result.Rows {
				sources := "-"
				if len(r.Sources) > 0 {
					sources = strings.Join(r.Sources, ", ")
				}
				rows = append(rows, []string{r.Word, sources})
			}
			fmt.Fprintln(out, renderTable([]string{"Target word", "Found in"}, rows, nil))
			printNotices(out, result.Notices)
			return nil
		},
	}
}

func laneRow(lane chart.Lane) []string {
	if lane.Stats.Count == 0 {
		return []string{lane.Label, "0", "-", "-", "-", "-"}
	}
	return []string{
		lane.Label,
		strconv.Itoa(lane.Stats.Count),
		formatPosition(lane.Stats.First),
		formatPosition(lane.Stats.Last),
		formatPosition(lane.Stats.Mean),
		formatPosition(lane.Stats.P95),
	}
}

func formatPosition(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func printNotices(out io.Writer, notices []string) {
	for _, n := range notices {
		fmt.Fprintf(out, "note: %s\n", n)
	}
}
