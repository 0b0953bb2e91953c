// Command homework-bot watches the Practicum homework status API and reports
// review status changes to a Telegram chat.
//
// Usage:
//
//	homework-bot run                     # poll forever
//	homework-bot check --dry-run         # one poll, print the message instead of sending it
//	homework-bot version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set at build time: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "homework-bot",
	Short: "Telegram notifications about homework review status",
	Long: `homework-bot polls the homework status API every few minutes and sends
a Telegram message when the review status of the latest homework changes.

Configuration is read from the environment (and an optional .env file):
  PRACTICUM_TOKEN, TELEGRAM_TOKEN, TELEGRAM_CHAT_ID   required
  POLL_SCHEDULE     cron spec, default "@every 600s"
  STATE_BACKEND     memory | postgres | redis`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "homework-bot %s (commit %s)\n", version, commit)
	},
}

func init() {
	rootCmd.AddCommand(runCmd, checkCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
