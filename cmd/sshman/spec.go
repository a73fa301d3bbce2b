package main

import (
	"github.com/spf13/cobra"

	"github.com/mkrenz/sshman/internal/app"
	"github.com/mkrenz/sshman/internal/output"
)

// NewSpecCommand creates the spec command.
func NewSpecCommand(a *app.App, flags *RootFlags, w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "spec",
		Short: "Export tool spec for scripts and agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, oe := parseOutputFormat(flags.FormatStr)
			if oe != nil {
				return oe
			}
			return w.WriteOK(format, a.BuildSpec())
		},
	}
}
