package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkrenz/sshman/internal/hosts"
	"github.com/mkrenz/sshman/internal/output"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(flags *RootFlags, w *output.Writer) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete HOST",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(flags, w, args[0], yes, cmd.InOrStdin())
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func runDelete(flags *RootFlags, w *output.Writer, host string, yes bool, stdin io.Reader) error {
	format, oe := parseOutputFormat(flags.FormatStr)
	if oe != nil {
		return oe
	}
	logger := newLogger(flags)
	f, path, oe := loadFile(flags, logger)
	if oe != nil {
		return oe
	}

	// not-found surfaces before the prompt
	if _, oe := hosts.Show(f, host); oe != nil {
		return oe
	}

	if !yes && !confirm(w, stdin, fmt.Sprintf("Are you sure you want to delete host '%s'? (y/n): ", host)) {
		if format == output.FormatTable {
			return w.WriteText(output.Notice("Deletion canceled."))
		}
		return w.WriteOK(format, output.Result{Action: "delete", Host: host, Canceled: true, ConfigPath: path})
	}

	updated, oe := hosts.Delete(f, host)
	if oe != nil {
		return oe
	}
	if oe := saveFile(path, updated, logger); oe != nil {
		return oe
	}

	if format == output.FormatTable {
		return w.WriteText(output.Success(fmt.Sprintf("Host '%s' deleted successfully.", host)))
	}
	return w.WriteOK(format, output.Result{Action: "delete", Host: host, ConfigPath: path})
}

// confirm prompts for a y/n answer; anything but y (or EOF) declines.
// The prompt goes to stderr so stdout carries nothing but the result.
func confirm(w *output.Writer, stdin io.Reader, prompt string) bool {
	fmt.Fprint(w.Err, prompt)
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
