package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkrenz/sshman/internal/hosts"
	"github.com/mkrenz/sshman/internal/output"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(flags *RootFlags, w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Search entries by host or hostname",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(flags, w, args[0])
		},
	}
}

func runSearch(flags *RootFlags, w *output.Writer, query string) error {
	format, oe := parseOutputFormat(flags.FormatStr)
	if oe != nil {
		return oe
	}
	f, path, oe := loadFile(flags, newLogger(flags))
	if oe != nil {
		return oe
	}

	rows := output.NewHostRows(hosts.Search(f, query))
	if format == output.FormatTable && len(rows) == 0 {
		return w.WriteText(output.Notice(fmt.Sprintf("No matches found for query: %s", query)))
	}
	return w.WriteOK(format, output.HostList{
		ConfigPath: path,
		Hosts:      rows,
		Title:      fmt.Sprintf("Search Results for '%s'", query),
	})
}
