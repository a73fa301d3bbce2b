package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkrenz/sshman/internal/hosts"
	"github.com/mkrenz/sshman/internal/output"
	"github.com/mkrenz/sshman/internal/sshconf"
)

// NewAddCommand creates the add command.
func NewAddCommand(flags *RootFlags, w *output.Writer) *cobra.Command {
	var identityFile string
	cmd := &cobra.Command{
		Use:   "add HOST HOSTNAME USER PORT",
		Short: "Add a new SSH config entry",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(flags, w, args, identityFile)
		},
	}
	cmd.Flags().StringVar(&identityFile, "identity-file", "", "Path to the private key file")
	return cmd
}

func runAdd(flags *RootFlags, w *output.Writer, args []string, identityFile string) error {
	format, oe := parseOutputFormat(flags.FormatStr)
	if oe != nil {
		return oe
	}
	port, oe := hosts.ParsePort(args[3])
	if oe != nil {
		return oe
	}

	logger := newLogger(flags)
	f, path, oe := loadFile(flags, logger)
	if oe != nil {
		return oe
	}

	entry := sshconf.Entry{
		Host:         args[0],
		Hostname:     args[1],
		User:         args[2],
		Port:         port,
		IdentityFile: identityFile,
	}
	updated, oe := hosts.Add(f, entry)
	if oe != nil {
		return oe
	}
	if oe := saveFile(path, updated, logger); oe != nil {
		return oe
	}

	if format == output.FormatTable {
		return w.WriteText(output.Success(fmt.Sprintf("Host '%s' added successfully.", entry.Host)))
	}
	return w.WriteOK(format, output.Result{Action: "add", Host: entry.Host, ConfigPath: path})
}
