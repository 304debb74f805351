package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/noether/internal/store"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database string
}

// traceOutput is the JSON payload for one recorded trace.
type traceOutput struct {
	SolveID string               `json:"solve_id"`
	Domain  string               `json:"domain"`
	Firings []store.FiringRecord `json:"firings"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace <solve-id>",
		Short: "Print the recorded firing trace of one solve",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(opts.Database)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to open database", err)
			}
			defer st.Close()

			rec, err := st.GetSolve(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("no recorded solve with id %q", args[0]))
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read solve", err)
			}

			firings, err := st.ListFirings(cmd.Context(), rec.ID)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read trace", err)
			}

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			if out.JSON() {
				return out.Success(traceOutput{
					SolveID: rec.ID,
					Domain:  rec.Domain,
					Firings: firings,
				})
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "solve %s (%s)\n", rec.ID, rec.Domain)
			if rec.ErrorKind != "" {
				fmt.Fprintf(w, "error (%s): %s\n", rec.ErrorKind, rec.ErrorMsg)
			}
			for _, f := range firings {
				fmt.Fprintf(w, "  pass %d: %s => %s = %s\n", f.Pass, f.Equation, f.Symbol, formatValue(f.Value))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the history database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}
