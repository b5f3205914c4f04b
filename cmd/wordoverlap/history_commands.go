package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wordoverlap/internal/history"
	"wordoverlap/internal/logging"
	"wordoverlap/internal/wordcount"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or clear recorded comparisons",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))

	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent comparisons, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if limit < 0 {
				return fmt.Errorf("--limit must be >= 0, got %d", limit)
			}

			var (
				entries []history.Entry
				total   int
				dbPath  string
			)
			if err := ctx.withHistory(cmd.Context(), func(store *history.Store) error {
				var err error
				if entries, err = store.List(cmd.Context(), limit); err != nil {
					return err
				}
				dbPath = store.Path()
				total, err = store.Count(cmd.Context())
				return err
			}); err != nil {
				return err
			}

			if outputFormat(cfg, jsonOut) == "json" {
				if entries == nil {
					entries = []history.Entry{}
				}
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No comparisons recorded")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				result := wordcount.NoMatch
				if e.Matched {
					result = displayWord(e.Word)
				}
				rows = append(rows, []string{
					e.CreatedAt.Local().Format(time.DateTime),
					e.Policy,
					result,
					fmt.Sprintf("%d", e.Count),
					preview(e.First),
					preview(e.Second),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]tableColumn{
					textColumn("When"),
					textColumn("Policy"),
					textColumn("Result"),
					countColumn("Count"),
					textColumn("Text 1"),
					textColumn("Text 2"),
				},
				rows,
			))
			fmt.Fprintf(out, "Showing %d of %d comparisons in %s\n", len(entries), total, dbPath)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of comparisons to show (0 shows all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded comparison",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewComponentLogger(ctx.loggerFor(cmd), "history")

			var (
				removed int64
				dbPath  string
			)
			if err := ctx.withHistory(cmd.Context(), func(store *history.Store) error {
				var err error
				dbPath = store.Path()
				removed, err = store.Clear(cmd.Context())
				return err
			}); err != nil {
				return err
			}
			logger.Info("history cleared", logging.Int64("removed", removed), logging.String("path", dbPath))

			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d comparisons from %s\n", removed, dbPath)
			return nil
		},
	}
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one recorded comparison in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			id := strings.TrimSpace(args[0])

			var entry *history.Entry
			if err := ctx.withHistory(cmd.Context(), func(store *history.Store) error {
				var err error
				entry, err = store.Get(cmd.Context(), id)
				return err
			}); err != nil {
				return err
			}
			if entry == nil {
				return fmt.Errorf("no comparison with id %q (see `wordoverlap history list`)", id)
			}

			if outputFormat(cfg, jsonOut) == "json" {
				return writeJSON(cmd, entry)
			}

			result := wordcount.NoMatch
			if entry.Matched {
				result = fmt.Sprintf("%s (%d)", displayWord(entry.Word), entry.Count)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:         %s\n", entry.ID)
			fmt.Fprintf(out, "When:       %s\n", entry.CreatedAt.Local().Format(time.DateTime))
			fmt.Fprintf(out, "Policy:     %s (fold case: %s, stem: %s)\n", entry.Policy, yesNo(entry.FoldCase), yesNo(entry.Stem))
			fmt.Fprintf(out, "Result:     %s\n", result)
			fmt.Fprintf(out, "Similarity: %s\n", formatSimilarity(entry.Similarity))
			fmt.Fprintf(out, "Text 1:     %s\n", strconv.Quote(entry.First))
			fmt.Fprintf(out, "Text 2:     %s\n", strconv.Quote(entry.Second))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
