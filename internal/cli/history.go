package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/noether/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database   string
	Domain     string
	ErrorsOnly bool
	Limit      int
}

// historyRow is the JSON payload for one recorded solve.
type historyRow struct {
	ID        string             `json:"id"`
	Domain    string             `json:"domain"`
	CreatedAt time.Time          `json:"created_at"`
	Inputs    map[string]float64 `json:"inputs"`
	Outputs   map[string]float64 `json:"outputs,omitempty"`
	ErrorKind string             `json:"error_kind,omitempty"`
	ErrorMsg  string             `json:"error_msg,omitempty"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded solves, newest first",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(opts.Database)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to open database", err)
			}
			defer st.Close()

			recs, err := st.ListSolves(cmd.Context(), store.Filter{
				Domain:     opts.Domain,
				ErrorsOnly: opts.ErrorsOnly,
				Limit:      opts.Limit,
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to list solves", err)
			}

			rows := make([]historyRow, 0, len(recs))
			for _, rec := range recs {
				rows = append(rows, historyRow{
					ID:        rec.ID,
					Domain:    rec.Domain,
					CreatedAt: rec.CreatedAt,
					Inputs:    rec.Inputs,
					Outputs:   rec.Outputs,
					ErrorKind: rec.ErrorKind,
					ErrorMsg:  rec.ErrorMsg,
				})
			}

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			if out.JSON() {
				return out.Success(rows)
			}
			w := cmd.OutOrStdout()
			for _, row := range rows {
				status := "ok"
				if row.ErrorKind != "" {
					status = row.ErrorKind
				}
				fmt.Fprintf(w, "%s  %s  %-17s %s\n",
					row.ID, row.CreatedAt.Format(time.RFC3339), row.Domain, status)
			}
			fmt.Fprintf(w, "%d solves\n", len(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the history database (required)")
	cmd.Flags().StringVar(&opts.Domain, "domain", "", "only show solves for this domain")
	cmd.Flags().BoolVar(&opts.ErrorsOnly, "errors-only", false, "only show failed solves")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "cap the number of rows (0 = no cap)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}
