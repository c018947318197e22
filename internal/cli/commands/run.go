package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/numo-sh/numo/internal/engine"
	"github.com/numo-sh/numo/pkg/expr"
	"github.com/spf13/cobra"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	Watch bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Evaluate expressions from a file",
		Long: `Read a file with one expression per line and evaluate it as a batch.

Blank lines and lines starting with # are skipped. Each run starts
from an empty variable environment; within a run, later lines can use
variables assigned by earlier lines.

With --watch the file is re-evaluated whenever it changes.`,
		Example: `  # Evaluate a batch file
  numo run budget.numo

  # Re-evaluate on every save
  numo run budget.numo --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			path := args[0]
			if opts.Watch {
				return watchFile(cmd, cc, path)
			}

			failed, err := runFile(cmd, cc, path)
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d expressions failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-evaluate when the file changes")

	return cmd
}

// runFile evaluates one batch file and renders the results. Returns the
// number of failed expressions.
func runFile(cmd *cobra.Command, cc *CommandContext, path string) (int, error) {
	lines, err := readExpressions(path)
	if err != nil {
		return 0, err
	}

	sessionID := cc.BeginSession("run")

	env := expr.NewEnv()
	results := make([]engine.Result, len(lines))
	for i, input := range lines {
		results[i] = cc.Engine.CalculateOne(cmd.Context(), input, env)
		cc.Record(sessionID, results[i])
	}

	if err := renderResults(cmd.OutOrStdout(), results, cc.Cfg.OutputFormat); err != nil {
		return 0, err
	}

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	return failed, nil
}

// readExpressions reads the batch file, skipping blank lines and comments.
func readExpressions(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// watchFile evaluates the file, then re-evaluates it on every write until
// the context is cancelled. Failures in individual expressions never stop
// the watch loop.
func watchFile(cmd *cobra.Command, cc *CommandContext, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory, not the file: editors that save via rename
	// replace the inode and a file watch would go stale.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	evaluate := func() {
		if _, err := runFile(cmd, cc, abs); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}

	evaluate()
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl-C to stop)\n", path)

	ctx := cmd.Context()

	// Debounce timer
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if eventAbs, err := filepath.Abs(event.Name); err != nil || eventAbs != abs {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				if ctxErr := contextErr(ctx); ctxErr != nil {
					return
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s changed, re-evaluating\n", path)
				evaluate()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cc.Logger.Error("watcher error", "error", err)
		}
	}
}

func contextErr(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
