package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/numo-sh/numo/internal/cli/config"
	"github.com/numo-sh/numo/internal/state"
	"github.com/spf13/cobra"
)

// HistoryOptions holds options for the history command.
type HistoryOptions struct {
	Limit   int
	Session string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	opts := &HistoryOptions{}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently evaluated expressions",
		Long: `List the most recent entries from the evaluation history,
newest first. History is recorded by eval, run, repl and serve unless
disabled with --no-history.`,
		Example: `  # The last 20 entries
  numo history

  # More entries, as JSON
  numo history --limit 100 --output json

  # Entries from one session
  numo history --session 6e1f0c0a-...`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := getConfig()
			logger := config.GetLogger(cmd.Context())

			if cfg.NoHistory || cfg.HistoryPath == "" {
				return fmt.Errorf("history is disabled")
			}

			store := openHistoryStore(cfg, logger)
			if store == nil {
				return fmt.Errorf("failed to open history database at %s", cfg.HistoryPath)
			}
			defer func() { _ = store.Close() }()

			entries, err := store.Recent(opts.Limit, opts.Session)
			if err != nil {
				return fmt.Errorf("failed to read history: %w", err)
			}

			return renderEntries(cmd, entries, cfg.OutputFormat)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "Maximum number of entries to show")
	cmd.Flags().StringVar(&opts.Session, "session", "", "Show entries from one session only")

	return cmd
}

func renderEntries(cmd *cobra.Command, entries []state.Entry, format string) error {
	w := cmd.OutOrStdout()

	switch format {
	case "json":
		type entryOutput struct {
			SessionID   string    `json:"session_id"`
			Input       string    `json:"input"`
			Resolver    string    `json:"resolver,omitempty"`
			Output      string    `json:"output,omitempty"`
			FailureKind string    `json:"failure_kind,omitempty"`
			CreatedAt   time.Time `json:"created_at"`
		}
		outputs := make([]entryOutput, len(entries))
		for i, e := range entries {
			outputs[i] = entryOutput{
				SessionID:   e.SessionID,
				Input:       e.Input,
				Resolver:    e.Resolver,
				Output:      e.Output,
				FailureKind: e.FailureKind,
				CreatedAt:   e.CreatedAt,
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(outputs)

	case "csv":
		_, _ = fmt.Fprintln(w, "created_at,input,resolver,output,failure_kind")
		for _, e := range entries {
			fields := []string{
				e.CreatedAt.Format(time.RFC3339),
				escapeCSV(e.Input),
				e.Resolver,
				escapeCSV(e.Output),
				e.FailureKind,
			}
			_, _ = fmt.Fprintln(w, strings.Join(fields, ","))
		}
		return nil

	default:
		if len(entries) == 0 {
			_, _ = fmt.Fprintln(w, "(no history)")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"When", "Input", "Result"})

		for _, e := range entries {
			result := e.Output
			if e.FailureKind != "" {
				result = "error: " + e.FailureKind
			}
			t.AppendRow(table.Row{e.CreatedAt.Format("2006-01-02 15:04:05"), e.Input, result})
		}

		t.Render()
		return nil
	}
}
