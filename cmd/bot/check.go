package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	checkFrom   int64
	checkDryRun bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a single poll iteration and report what happened",
	Long: `check runs one fetch/validate/interpret/notify iteration and exits.

With --from the iteration starts from the given Unix timestamp using throwaway
state, leaving the configured state backend untouched. With --dry-run the
message is printed instead of being sent to Telegram.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		a, err := setup(cmd.Context(), setupOptions{
			dryRun:  checkDryRun,
			from:    checkFrom,
			fromSet: cmd.Flags().Changed("from"),
			out:     out,
		})
		if err != nil {
			return err
		}
		defer a.Close()

		outcome := a.agent.Poll(cmd.Context())
		fmt.Fprintf(out, "cycle:    %s\n", outcome.CycleID)
		fmt.Fprintf(out, "cursor:   %d\n", outcome.Cursor)
		fmt.Fprintf(out, "message:  %q\n", outcome.Message)
		fmt.Fprintf(out, "notified: %t\n", outcome.Notified)
		if outcome.Err != nil {
			return fmt.Errorf("poll failed: %w", outcome.Err)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().Int64Var(&checkFrom, "from", 0, "Unix timestamp to poll from (default: saved state or now)")
	checkCmd.Flags().BoolVar(&checkDryRun, "dry-run", false, "print the message instead of sending it")
}
