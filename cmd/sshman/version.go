package main

import (
	"github.com/spf13/cobra"

	"github.com/mkrenz/sshman/internal/app"
	"github.com/mkrenz/sshman/internal/output"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(a *app.App, flags *RootFlags, w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, oe := parseOutputFormat(flags.FormatStr)
			if oe != nil {
				return oe
			}
			return w.WriteOK(format, a.VersionInfo())
		},
	}
}
