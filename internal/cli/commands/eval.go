package commands

import (
	"fmt"

	"github.com/numo-sh/numo/internal/engine"
	"github.com/numo-sh/numo/pkg/expr"
	"github.com/spf13/cobra"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate one or more expressions",
		Long: `Evaluate expressions and print their results.

All expressions share one variable environment, so later expressions
can use variables assigned by earlier ones.`,
		Example: `  # Plain arithmetic
  numo eval "2 + 3 * 4"

  # Variables carry across expressions
  numo eval "x = 5" "x * 2"

  # Unit and currency conversion
  numo eval "10 km to miles" "100 usd to eur"

  # Translation
  numo eval "hello world in spanish"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			sessionID := cc.BeginSession("eval")

			env := expr.NewEnv()
			results := make([]engine.Result, len(args))
			for i, input := range args {
				results[i] = cc.Engine.CalculateOne(cmd.Context(), input, env)
				cc.Record(sessionID, results[i])
			}

			if err := renderResults(cmd.OutOrStdout(), results, cc.Cfg.OutputFormat); err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if !r.OK() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(results))
			}
			return nil
		},
	}
	return cmd
}
