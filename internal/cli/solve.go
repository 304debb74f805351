package cli

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/noether/internal/store"
	"github.com/roach88/noether/physics"
	"github.com/roach88/noether/solver"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Database string
}

// solveOutput is the JSON payload for one solve.
type solveOutput struct {
	Domain  string             `json:"domain"`
	Values  map[string]float64 `json:"values"`
	Trace   []solver.Firing    `json:"trace"`
	Passes  int                `json:"passes"`
	SolveID string             `json:"solve_id,omitempty"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <domain> <sym=val>...",
		Short: "Solve one domain from known quantities",
		Long: `Solve derives every quantity the domain's equations can reach from
the given knowns. Values are SI; angles above 2*pi in magnitude are
read as degrees. With --db, the solve (including failures) is recorded.`,
		Example: `  noether solve kinematics u=0 a=5 t=10
  noether solve circular m=3 v=4 r=2 --db history.db
  noether solve light n1=1.5 n2=1 theta1=50 --format json`,
		Args: minArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "record the solve in this SQLite database")
	return cmd
}

func runSolve(cmd *cobra.Command, opts *SolveOptions, args []string) error {
	domain, ok := physics.ParseDomain(args[0])
	if !ok {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("unknown domain %q (see noether domains)", args[0]))
	}

	inputs, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}

	res, solveErr := solver.SolveWithTrace(domain, inputs)

	var solveID string
	if opts.Database != "" {
		solveID, err = recordSolve(cmd, opts.Database, domain, inputs, res, solveErr)
		if err != nil {
			return err
		}
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if solveErr != nil {
		if out.JSON() {
			if err := out.Failure(solveErr.Error()); err != nil {
				return err
			}
		}
		return WrapExitError(ExitCommandError, "solve failed", solveErr)
	}

	if out.JSON() {
		return out.Success(solveOutput{
			Domain:  domain.String(),
			Values:  res.Values,
			Trace:   res.Trace,
			Passes:  res.Passes,
			SolveID: solveID,
		})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "domain: %s (%d passes)\n", domain, res.Passes)
	if opts.Verbose {
		for _, f := range res.Trace {
			fmt.Fprintf(w, "  pass %d: %s => %s = %s\n", f.Pass, f.Equation, f.Symbol, formatValue(f.Value))
		}
	}
	for _, name := range schemaOrderedNames(domain, res.Values) {
		fmt.Fprintf(w, "%s = %s\n", name, formatValue(res.Values[name]))
	}
	return nil
}

// recordSolve persists one solve outcome, successful or not.
func recordSolve(cmd *cobra.Command, path string, domain physics.Domain, inputs map[string]float64, res *solver.Result, solveErr error) (string, error) {
	st, err := store.Open(path)
	if err != nil {
		return "", WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	rec := store.SolveRecord{
		Domain: domain.String(),
		Inputs: inputs,
	}
	var trace []solver.Firing
	if solveErr != nil {
		rec.ErrorKind = solver.ErrorKind(solveErr)
		rec.ErrorMsg = solveErr.Error()
	} else {
		rec.Outputs = res.Values
		trace = res.Trace
	}

	id, err := st.RecordSolve(cmd.Context(), rec, trace)
	if err != nil {
		return "", WrapExitError(ExitCommandError, "failed to record solve", err)
	}
	slog.Info("solve recorded", "id", id, "domain", domain)
	return id, nil
}

// parseAssignments parses sym=val arguments into an input map.
func parseAssignments(args []string) (map[string]float64, error) {
	inputs := make(map[string]float64, len(args))
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, NewExitError(ExitUsage,
				fmt.Sprintf("invalid argument %q: want sym=val", arg))
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, NewExitError(ExitUsage,
				fmt.Sprintf("invalid value for %s: %q is not a number", name, raw))
		}
		if _, dup := inputs[name]; dup {
			return nil, NewExitError(ExitUsage,
				fmt.Sprintf("duplicate assignment for %s", name))
		}
		inputs[name] = v
	}
	return inputs, nil
}

// schemaOrderedNames returns m's keys in schema declaration order.
func schemaOrderedNames(domain physics.Domain, m map[string]float64) []string {
	out := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	if schema, ok := physics.SchemaFor(domain); ok {
		for _, sym := range schema.Symbols() {
			name := schema.NameOf(sym)
			if _, present := m[name]; present {
				out = append(out, name)
				seen[name] = true
			}
		}
	}
	var rest []string
	for name := range m {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
