package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkrenz/sshman/internal/hosts"
	"github.com/mkrenz/sshman/internal/output"
)

// NewEditCommand creates the edit command.
func NewEditCommand(flags *RootFlags, w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "edit HOST FIELD VALUE",
		Short: "Edit one field of an entry (hostname, user, port, identityfile)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(flags, w, args[0], args[1], args[2])
		},
	}
}

func runEdit(flags *RootFlags, w *output.Writer, host, field, value string) error {
	format, oe := parseOutputFormat(flags.FormatStr)
	if oe != nil {
		return oe
	}
	logger := newLogger(flags)
	f, path, oe := loadFile(flags, logger)
	if oe != nil {
		return oe
	}
	updated, oe := hosts.Edit(f, host, field, value)
	if oe != nil {
		return oe
	}
	if oe := saveFile(path, updated, logger); oe != nil {
		return oe
	}

	if format == output.FormatTable {
		return w.WriteText(output.Success(fmt.Sprintf("Host '%s' updated successfully. Field '%s' set to '%s'.", host, field, value)))
	}
	return w.WriteOK(format, output.Result{Action: "edit", Host: host, Field: field, Value: value, ConfigPath: path})
}
