package app

import (
	"github.com/mkrenz/sshman/internal/config"
	"github.com/mkrenz/sshman/internal/errors"
	"github.com/mkrenz/sshman/internal/output"
	"github.com/mkrenz/sshman/internal/spec"
)

type App struct {
	Version string
	Commit  string
	Date    string
}

func New(version, commit, date string) App {
	return App{Version: version, Commit: commit, Date: date}
}

func (a App) BuildSpec() spec.Spec {
	globalFlags := []spec.FlagSpec{
		{Name: "config", Env: config.EnvPath, Default: "", Description: "SSH config file path; default: $HOME/.ssh/config"},
		{Name: "format", Shorthand: "f", Env: "SSHMAN_FORMAT", Default: "auto", Description: "Output format: json|yaml|table|csv|auto"},
		{Name: "debug", Default: "false", Description: "Enable debug logging on stderr"},
	}
	return spec.Spec{
		SchemaVersion: output.SchemaVersion,
		Commands: []spec.CommandSpec{
			{
				Name:        "add",
				Description: "Add a new SSH config entry",
				Args:        []string{"host", "hostname", "user", "port"},
				Flags: append([]spec.FlagSpec{
					{Name: "identity-file", Default: "", Description: "Path to the private key file"},
				}, globalFlags...),
			},
			{
				Name:        "list",
				Description: "List all SSH config entries",
				Flags: append([]spec.FlagSpec{
					{Name: "verbose", Shorthand: "v", Default: "false", Description: "Include the IdentityFile column"},
				}, globalFlags...),
			},
			{
				Name:        "search",
				Description: "Search entries by host or hostname",
				Args:        []string{"query"},
				Flags:       globalFlags,
			},
			{
				Name:        "show",
				Description: "Show one entry in detail",
				Args:        []string{"host"},
				Flags:       globalFlags,
			},
			{
				Name:        "edit",
				Description: "Edit one field of an entry",
				Args:        []string{"host", "field", "value"},
				Flags:       globalFlags,
			},
			{
				Name:        "delete",
				Description: "Delete an entry",
				Args:        []string{"host"},
				Flags: append([]spec.FlagSpec{
					{Name: "yes", Shorthand: "y", Default: "false", Description: "Skip the confirmation prompt"},
				}, globalFlags...),
			},
			{
				Name:        "mcp server",
				Description: "Start a read-only MCP server over the SSH config",
				Flags: append([]spec.FlagSpec{
					{Name: "transport", Env: "SSHMAN_MCP_TRANSPORT", Default: "stdio", Description: "MCP transport: stdio|streamable_http"},
					{Name: "http-addr", Env: "SSHMAN_MCP_HTTP_ADDR", Default: "127.0.0.1:8787", Description: "Streamable HTTP listen address"},
					{Name: "http-auth-token", Env: "SSHMAN_MCP_HTTP_AUTH_TOKEN", Default: "", Description: "Streamable HTTP auth token"},
				}, globalFlags...),
			},
			{
				Name:        "version",
				Description: "Print version information",
				Flags:       globalFlags,
			},
			{
				Name:        "spec",
				Description: "Export tool spec for scripts and agents",
				Flags:       globalFlags,
			},
		},
		ErrorCodes: errors.AllCodes(),
	}
}

type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

func (a App) VersionInfo() VersionInfo {
	return VersionInfo{Version: a.Version, Commit: a.Commit, Date: a.Date}
}
