package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/numo-sh/numo/pkg/expr"
	"github.com/numo-sh/numo/pkg/lang"
	"github.com/numo-sh/numo/pkg/units"
	"github.com/spf13/cobra"
)

// REPL output styles.
var (
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

// NewREPLCommand creates the repl command.
func NewREPLCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Long: `Start an interactive prompt that evaluates expressions as you type.

Variables assigned during the session stay available until you exit.
Type .help at the prompt for the session commands.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return runREPL(cmd, cc, version)
		},
	}
	return cmd
}

func runREPL(cmd *cobra.Command, cc *CommandContext, version string) error {
	ctx := cmd.Context()

	// Readline keeps its own plain-text input history, separate from the
	// SQLite result history.
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".numo", "repl_history")
		_ = os.MkdirAll(filepath.Dir(historyFile), 0750)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "numo> ",
		HistoryFile:     historyFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize session: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, bannerStyle.Render(fmt.Sprintf("numo v%s", version)))
	_, _ = fmt.Fprintln(out, mutedStyle.Render("Type .help for commands, .quit to exit"))
	_, _ = fmt.Fprintln(out)

	sessionID := cc.BeginSession("repl")
	env := expr.NewEnv()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(cmd, env, line); quit {
				break
			}
			continue
		}

		res := cc.Engine.CalculateOne(ctx, line, env)
		cc.Record(sessionID, res)

		if res.OK() {
			_, _ = fmt.Fprintln(out, resultStyle.Render(res.Output))
		} else {
			_, _ = fmt.Fprintln(out, errorStyle.Render("error: "+res.Err.Error()))
		}
	}

	return nil
}

// handleDotCommand runs a session command and reports whether the REPL
// should exit.
func handleDotCommand(cmd *cobra.Command, env *expr.Env, line string) bool {
	out := cmd.OutOrStdout()
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(out)

	case ".vars":
		names := env.Names()
		if len(names) == 0 {
			_, _ = fmt.Fprintln(out, mutedStyle.Render("(no variables)"))
			return false
		}
		for _, name := range names {
			v, _ := env.Get(name)
			_, _ = fmt.Fprintf(out, "%s = %s\n", name, formatREPLValue(v))
		}

	case ".clear":
		fmt.Print("\033[H\033[2J")

	case ".units":
		for _, name := range units.Names() {
			_, _ = fmt.Fprintln(out, name)
		}

	case ".langs":
		for _, name := range lang.Names() {
			_, _ = fmt.Fprintln(out, name)
		}

	default:
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(),
			errorStyle.Render(fmt.Sprintf("Unknown command: %s (type .help for commands)", command)))
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .vars           List the variables assigned this session
  .units          List the known unit names
  .langs          List the known translation languages
  .clear          Clear the screen
  .quit / .exit   Exit the session

Tips:
  - Assign with x = 5 (or x := 5), then use x in later expressions
  - Convert with "10 km to miles" or "100 usd to eur"
  - Translate with "hello world in spanish"
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

func formatREPLValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// newREPLCompleter builds tab completion over dot-commands, functions and
// unit names.
func newREPLCompleter() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem(".help"),
		readline.PcItem(".vars"),
		readline.PcItem(".units"),
		readline.PcItem(".langs"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	}
	for _, name := range expr.BuiltinNames() {
		items = append(items, readline.PcItem(name))
	}
	for _, name := range units.Names() {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}
