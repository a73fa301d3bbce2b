package main

import (
	"github.com/spf13/cobra"

	"github.com/mkrenz/sshman/internal/hosts"
	"github.com/mkrenz/sshman/internal/output"
)

// NewListCommand creates the list command.
func NewListCommand(flags *RootFlags, w *output.Writer) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all SSH config entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(flags, w, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include the IdentityFile column")
	return cmd
}

func runList(flags *RootFlags, w *output.Writer, verbose bool) error {
	format, oe := parseOutputFormat(flags.FormatStr)
	if oe != nil {
		return oe
	}
	f, path, oe := loadFile(flags, newLogger(flags))
	if oe != nil {
		return oe
	}

	rows := output.NewHostRows(hosts.List(f))
	if format == output.FormatTable && len(rows) == 0 {
		return w.WriteText(output.Notice("No SSH entries found."))
	}
	return w.WriteOK(format, output.HostList{
		ConfigPath: path,
		Hosts:      rows,
		Title:      "SSH Config Entries",
		Verbose:    verbose,
	})
}
