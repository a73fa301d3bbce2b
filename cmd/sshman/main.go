package main

import (
	"os"

	"github.com/mkrenz/sshman/internal/app"
	"github.com/mkrenz/sshman/internal/errors"
	"github.com/mkrenz/sshman/internal/output"
)

func main() {
	os.Exit(run())
}

func run() int {
	a := app.New(version, commit, date)
	w := output.New(os.Stdout, os.Stderr)

	flags := &RootFlags{}
	root := NewRootCommand(flags)

	root.AddCommand(
		NewAddCommand(flags, &w),
		NewListCommand(flags, &w),
		NewSearchCommand(flags, &w),
		NewShowCommand(flags, &w),
		NewEditCommand(flags, &w),
		NewDeleteCommand(flags, &w),
		NewVersionCommand(&a, flags, &w),
		NewSpecCommand(&a, flags, &w),
		NewMCPCommand(flags),
	)

	if err := root.Execute(); err != nil {
		oe := normalizeErr(err)
		format := resolveFormatForError(flags.FormatStr)
		_ = w.WriteError(format, oe)
		return int(errors.ExitCodeFor(oe.Code))
	}
	return int(errors.ExitOK)
}
