package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/noether/internal/harness"
)

// checkOutput is the JSON payload for one scenario result.
type checkOutput struct {
	Name     string   `json:"name"`
	Passed   bool     `json:"passed"`
	Failures []string `json:"failures,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <scenarios-dir>",
		Short: "Run YAML conformance scenarios",
		Long: `Check loads every scenario file in the directory, solves each one,
and verifies the expected values or error kind plus the monotonicity
and idempotence properties. Any failure exits with code 3.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := harness.LoadDir(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load scenarios", err)
			}

			results := harness.RunAll(scenarios)

			var outputs []checkOutput
			failed := 0
			for _, r := range results {
				outputs = append(outputs, checkOutput{
					Name:     r.Scenario.Name,
					Passed:   r.Passed(),
					Failures: r.Failures,
				})
				if !r.Passed() {
					failed++
				}
			}

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if out.JSON() {
				if err := out.Success(outputs); err != nil {
					return err
				}
			} else {
				w := cmd.OutOrStdout()
				for _, o := range outputs {
					if o.Passed {
						fmt.Fprintf(w, "PASS %s\n", o.Name)
						continue
					}
					fmt.Fprintf(w, "FAIL %s\n", o.Name)
					for _, f := range o.Failures {
						fmt.Fprintf(w, "     %s\n", f)
					}
				}
				fmt.Fprintf(w, "%d scenarios, %d failed\n", len(outputs), failed)
			}

			if failed > 0 {
				return NewExitError(ExitCheckFailure,
					fmt.Sprintf("%d of %d scenarios failed", failed, len(outputs)))
			}
			return nil
		},
	}
}
