// Package cli provides the command-line interface for numo.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/numo-sh/numo/internal/cli/commands"
	"github.com/numo-sh/numo/internal/cli/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "numo [expression...]",
		Short: "numo - smart expression calculator",
		Long: `numo evaluates free-text expressions: arithmetic with variables,
unit conversion, currency conversion and natural-language translation.

Each input runs through a fixed chain of resolvers; the first resolver
whose grammar matches decides the result.`,
		Example: `  # Evaluate expressions directly
  numo "2 + 3 * 4" "10 km to miles"

  # Pipe a batch through stdin
  echo "100 usd to eur" | numo

  # Start an interactive session
  numo repl`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			// Load configuration with CLI flag overrides
			var err error
			cfg, err = config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			// Build the logger: verbose gets debug-level text on stderr,
			// otherwise logs are discarded
			var logger *slog.Logger
			if cfg.Verbose {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
			} else {
				logger = slog.New(slog.DiscardHandler)
			}

			// Store config and logger in context
			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, config.LoggerKey(), logger)
			cmd.SetContext(ctx)

			// Print config file used (if verbose)
			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}

			return nil
		},
		// Bare invocation evaluates the arguments; with no arguments it
		// starts a REPL on a terminal or reads a batch from stdin.
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return runEvalArgs(cmd, args)
			}
			if commands.IsTerminal() {
				return runDefaultREPL(cmd)
			}
			return runStdinBatch(cmd)
		},
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./numo.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (plain|table|json|csv)")
	rootCmd.PersistentFlags().Bool("no-history", false, "Do not record evaluation history")
	rootCmd.PersistentFlags().String("history-path", "", "Path to the history database")
	rootCmd.PersistentFlags().String("rates-endpoint", "", "Exchange rate API endpoint")
	rootCmd.PersistentFlags().String("translate-endpoint", "", "Translation API endpoint")
	rootCmd.PersistentFlags().Int("http-timeout", 0, "HTTP timeout for providers in seconds")

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"plain", "table", "json", "csv"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewEvalCommand())
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewREPLCommand(Version))
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewHistoryCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	// Return default config if none in context
	return &config.Config{
		HistoryPath:  config.DefaultHistoryFile,
		HTTPTimeout:  config.DefaultHTTPTimeout,
		OutputFormat: config.DefaultOutput,
		Serve:        config.ServeConfig{Port: config.DefaultServePort},
	}
}

// runEvalArgs dispatches a bare "numo <expr>..." invocation to eval.
func runEvalArgs(cmd *cobra.Command, args []string) error {
	eval := commands.NewEvalCommand()
	eval.SetContext(cmd.Context())
	eval.SetOut(cmd.OutOrStdout())
	eval.SetErr(cmd.ErrOrStderr())
	return eval.RunE(eval, args)
}

// runDefaultREPL starts the interactive session when numo is invoked with
// no arguments on a terminal.
func runDefaultREPL(cmd *cobra.Command) error {
	repl := commands.NewREPLCommand(Version)
	repl.SetContext(cmd.Context())
	repl.SetOut(cmd.OutOrStdout())
	repl.SetErr(cmd.ErrOrStderr())
	return repl.RunE(repl, nil)
}

// runStdinBatch evaluates one expression per stdin line, for piped input.
func runStdinBatch(cmd *cobra.Command) error {
	var exprs []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		exprs = append(exprs, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(exprs) == 0 {
		return cmd.Help()
	}
	return runEvalArgs(cmd, exprs)
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for numo.

To load completions:

Bash:
  $ source <(numo completion bash)

Zsh:
  $ numo completion zsh > "${fpath[1]}/_numo"

Fish:
  $ numo completion fish | source

PowerShell:
  PS> numo completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
