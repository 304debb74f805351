package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/noether/internal/rules"
	"github.com/roach88/noether/physics"
)

// ruleInfo is the JSON payload for one rule.
type ruleInfo struct {
	Output   string `json:"output"`
	Equation string `json:"equation"`
	Guarded  bool   `json:"guarded"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules <domain>",
		Short: "Print a domain's equation table in evaluation order",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, ok := physics.ParseDomain(args[0])
			if !ok {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("unknown domain %q (see noether domains)", args[0]))
			}
			table, ok := rules.TableFor(domain)
			if !ok {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("no rule table for domain %s", domain))
			}
			schema, _ := physics.SchemaFor(domain)

			infos := make([]ruleInfo, 0, len(table.Rules))
			for i := range table.Rules {
				r := &table.Rules[i]
				infos = append(infos, ruleInfo{
					Output:   schema.NameOf(r.Output),
					Equation: r.Equation,
					Guarded:  r.Guard != nil,
				})
			}

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if out.JSON() {
				return out.Success(infos)
			}
			for i, info := range infos {
				guard := ""
				if info.Guarded {
					guard = "  [guarded]"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s%s\n", i+1, info.Equation, guard)
			}
			return nil
		},
	}
}
