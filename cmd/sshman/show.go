package main

import (
	"github.com/spf13/cobra"

	"github.com/mkrenz/sshman/internal/hosts"
	"github.com/mkrenz/sshman/internal/output"
)

// NewShowCommand creates the show command.
func NewShowCommand(flags *RootFlags, w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "show HOST",
		Short: "Show one entry in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(flags, w, args[0])
		},
	}
}

func runShow(flags *RootFlags, w *output.Writer, host string) error {
	format, oe := parseOutputFormat(flags.FormatStr)
	if oe != nil {
		return oe
	}
	f, path, oe := loadFile(flags, newLogger(flags))
	if oe != nil {
		return oe
	}
	entry, oe := hosts.Show(f, host)
	if oe != nil {
		return oe
	}
	return w.WriteOK(format, output.HostDetail{ConfigPath: path, Entry: entry})
}
