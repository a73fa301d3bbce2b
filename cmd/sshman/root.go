package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// RootFlags holds the persistent flag values. It is created in run()
// and threaded into every subcommand so no command reads global state.
type RootFlags struct {
	ConfigPath string
	FormatStr  string
	Debug      bool
}

// NewRootCommand creates the root command.
func NewRootCommand(flags *RootFlags) *cobra.Command {
	root := &cobra.Command{
		Use:           "sshman",
		Short:         "Manage SSH config entries from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// --format > SSHMAN_FORMAT > auto
			if !cmd.Flags().Changed("format") {
				if env := os.Getenv("SSHMAN_FORMAT"); env != "" {
					flags.FormatStr = env
				}
			}
		},
	}

	root.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "SSH config file path; default: $SSHMAN_CONFIG or $HOME/.ssh/config")
	root.PersistentFlags().StringVarP(&flags.FormatStr, "format", "f", "auto", "Output format: json|yaml|table|csv|auto")
	root.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging on stderr")

	return root
}
