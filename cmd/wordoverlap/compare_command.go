package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"wordoverlap/internal/config"
	"wordoverlap/internal/history"
	"wordoverlap/internal/logging"
	"wordoverlap/internal/textsource"
	"wordoverlap/internal/wordcount"
)

type compareJSON struct {
	Result     string            `json:"result"`
	Word       string            `json:"word,omitempty"`
	Count      int               `json:"count"`
	Matched    bool              `json:"matched"`
	Policy     string            `json:"policy"`
	FoldCase   bool              `json:"fold_case"`
	Stem       bool              `json:"stem"`
	Similarity float64           `json:"similarity"`
	Collective []wordcount.Entry `json:"collective"`
	HistoryID  string            `json:"history_id,omitempty"`
}

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var (
		tokens    tokenizerFlags
		fromFiles bool
		details   bool
		jsonOut   bool
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "compare TEXT1 TEXT2",
		Short: "Report the most frequent word the two texts share",
		Long: "Split both texts into words, count them, keep the words that occur in both, " +
			"and print the one with the highest combined count (\"" + wordcount.NoMatch + "\" when none).",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.NewComponentLogger(ctx.loggerFor(cmd), "compare")

			opts, err := tokens.options(cmd, cfg)
			if err != nil {
				return err
			}

			reader := textsource.NewReader(cmd.InOrStdin())
			texts := make([]string, len(args))
			for i, arg := range args {
				texts[i], err = reader.Read(arg, fromFiles)
				if err != nil {
					return err
				}
			}

			comparison := wordcount.Compare(texts[0], texts[1], opts)
			logger.Debug("comparison complete",
				logging.String(logging.FieldPolicy, opts.Policy.String()),
				logging.Group("words",
					logging.Int("first", comparison.First.Total()),
					logging.Int("second", comparison.Second.Total()),
					logging.Int("shared", len(comparison.Collective)),
				),
				logging.Bool("matched", comparison.Result.Matched),
			)

			var historyID string
			if cfg.History.Enabled && !noHistory {
				historyID = recordComparison(cmd.Context(), ctx, cfg, logger, texts, comparison)
			}

			switch format := outputFormat(cfg, jsonOut); {
			case format == "json":
				return writeJSON(cmd, compareJSON{
					Result:     comparison.Result.String(),
					Word:       comparison.Result.Word,
					Count:      comparison.Result.Count,
					Matched:    comparison.Result.Matched,
					Policy:     opts.Policy.String(),
					FoldCase:   opts.FoldCase,
					Stem:       opts.Stem,
					Similarity: comparison.Similarity(),
					Collective: wordcount.Ranked(comparison.Collective),
					HistoryID:  historyID,
				})
			case details || format == "table":
				colorize := shouldColorize(cfg.Output.Color, cmd.OutOrStdout())
				fmt.Fprint(cmd.OutOrStdout(), renderComparison(comparison, colorize))
				return nil
			default:
				fmt.Fprintln(cmd.OutOrStdout(), comparison.Result.String())
				return nil
			}
		},
	}

	tokens.register(cmd)
	cmd.Flags().BoolVar(&fromFiles, "files", false, "Treat arguments as file paths (\"-\" reads standard input)")
	cmd.Flags().BoolVar(&details, "details", false, "Show the shared-word table and similarity")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this comparison in the history database")
	return cmd
}

// recordComparison stores the comparison and prunes old entries. Failures are
// logged and never fail the command.
func recordComparison(ctx context.Context, cc *commandContext, cfg *config.Config, logger *slog.Logger, texts []string, c wordcount.Comparison) string {
	if ctx == nil {
		ctx = context.Background()
	}
	var id string
	err := cc.withHistory(ctx, func(store *history.Store) error {
		entry, err := store.Record(ctx, history.Entry{
			SessionID:  cc.sessionID,
			Policy:     c.Options.Policy.String(),
			FoldCase:   c.Options.FoldCase,
			Stem:       c.Options.Stem,
			First:      texts[0],
			Second:     texts[1],
			Matched:    c.Result.Matched,
			Word:       c.Result.Word,
			Count:      c.Result.Count,
			Similarity: c.Similarity(),
		})
		if err != nil {
			return err
		}
		id = entry.ID
		if pruned, err := store.Prune(ctx, cfg.History.MaxEntries); err != nil {
			return err
		} else if pruned > 0 {
			logger.Debug("history pruned", logging.Int64("removed", pruned))
		}
		return nil
	})
	if err != nil {
		hint := "check history.path permissions or pass --no-history"
		if errors.Is(err, history.ErrSchemaMismatch) {
			hint = "remove the history database to recreate it"
		}
		logging.WarnWithContext(logger, "comparison not recorded", "history_write_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, hint),
			logging.String(logging.FieldImpact, "history list will not include this comparison"),
		)
		return ""
	}
	return id
}

func renderComparison(c wordcount.Comparison, colorize bool) string {
	var b strings.Builder

	result := c.Result.String()
	if c.Result.Matched {
		result = paint(displayWord(c.Result.Word), ansiGreen, colorize)
		result = fmt.Sprintf("%s (%d)", result, c.Result.Count)
	} else {
		result = paint(result, ansiYellow, colorize)
	}
	fmt.Fprintf(&b, "%s %s\n", paint("Result:", ansiBold, colorize), result)
	fmt.Fprintf(&b, "%s %s\n", paint("Policy:", ansiBold, colorize), c.Options.Policy)
	fmt.Fprintf(&b, "%s %s  %s %s\n",
		paint("Fold case:", ansiBold, colorize), yesNo(c.Options.FoldCase),
		paint("Stem:", ansiBold, colorize), yesNo(c.Options.Stem))
	fmt.Fprintf(&b, "%s %s\n", paint("Similarity:", ansiBold, colorize), formatSimilarity(c.Similarity()))

	if len(c.Collective) == 0 {
		return b.String()
	}

	ranked := wordcount.Ranked(c.Collective)
	rows := make([][]string, 0, len(ranked))
	for _, entry := range ranked {
		rows = append(rows, []string{
			displayWord(entry.Word),
			fmt.Sprintf("%d", c.First[entry.Word]),
			fmt.Sprintf("%d", c.Second[entry.Word]),
			fmt.Sprintf("%d", entry.Count),
		})
	}
	b.WriteString(renderTable(
		[]tableColumn{textColumn("Word"), countColumn("Text 1"), countColumn("Text 2"), countColumn("Total")},
		rows,
	))
	b.WriteString("\n")
	return b.String()
}
