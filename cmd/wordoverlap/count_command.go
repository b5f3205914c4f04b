package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordoverlap/internal/logging"
	"wordoverlap/internal/textsource"
	"wordoverlap/internal/wordcount"
)

type countJSON struct {
	Policy   string            `json:"policy"`
	Tokens   int               `json:"tokens"`
	Distinct int               `json:"distinct"`
	Entries  []wordcount.Entry `json:"entries"`
}

func newCountCommand(ctx *commandContext) *cobra.Command {
	var (
		tokens    tokenizerFlags
		fromFiles bool
		limit     int
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "count TEXT",
		Short: "Show the word frequency table of one text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if limit < 0 {
				return fmt.Errorf("--limit must be >= 0, got %d", limit)
			}
			logger := logging.NewComponentLogger(ctx.loggerFor(cmd), "count")

			opts, err := tokens.options(cmd, cfg)
			if err != nil {
				return err
			}
			text, err := textsource.Read(args[0], fromFiles, cmd.InOrStdin())
			if err != nil {
				return err
			}

			table := wordcount.Count(wordcount.Tokens(text, opts))
			ranked := wordcount.Ranked(table)
			total := table.Total()
			if limit > 0 && len(ranked) > limit {
				ranked = ranked[:limit]
			}
			logger.Debug("count complete",
				logging.String(logging.FieldPolicy, opts.Policy.String()),
				logging.Int("tokens", total),
				logging.Int("distinct", len(table)),
			)

			out := cmd.OutOrStdout()
			switch outputFormat(cfg, jsonOut) {
			case "json":
				return writeJSON(cmd, countJSON{
					Policy:   opts.Policy.String(),
					Tokens:   total,
					Distinct: len(table),
					Entries:  ranked,
				})
			case "table":
				if len(ranked) == 0 {
					fmt.Fprintln(out, "No words found")
					return nil
				}
				rows := make([][]string, 0, len(ranked))
				for _, entry := range ranked {
					rows = append(rows, []string{
						displayWord(entry.Word),
						fmt.Sprintf("%d", entry.Count),
						formatShare(entry.Count, total),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]tableColumn{textColumn("Word"), countColumn("Count"), countColumn("Share")},
					rows,
				))
				fmt.Fprintf(out, "%d words, %d distinct\n", total, len(table))
				return nil
			default:
				for _, entry := range ranked {
					fmt.Fprintf(out, "%d\t%s\n", entry.Count, displayWord(entry.Word))
				}
				return nil
			}
		},
	}

	tokens.register(cmd)
	cmd.Flags().BoolVar(&fromFiles, "files", false, "Treat the argument as a file path (\"-\" reads standard input)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many words (0 shows all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
