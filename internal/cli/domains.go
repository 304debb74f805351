package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/noether/physics"
)

// domainInfo is the JSON payload for one domain.
type domainInfo struct {
	Name      string   `json:"name"`
	Symbols   []string `json:"symbols"`
	MinKnowns int      `json:"min_knowns"`
}

// NewDomainsCommand creates the domains command.
func NewDomainsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "List solvable domains and their symbols",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]domainInfo, 0, len(physics.Domains()))
			for _, d := range physics.Domains() {
				schema, ok := physics.SchemaFor(d)
				if !ok {
					continue
				}
				names := make([]string, 0, len(schema.Symbols()))
				for _, sym := range schema.Symbols() {
					names = append(names, schema.NameOf(sym))
				}
				infos = append(infos, domainInfo{
					Name:      d.String(),
					Symbols:   names,
					MinKnowns: schema.MinKnowns(),
				})
			}

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if out.JSON() {
				return out.Success(infos)
			}
			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%-17s %s\n", info.Name, strings.Join(info.Symbols, ", "))
			}
			return nil
		},
	}
}
