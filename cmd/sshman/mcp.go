package main

import (
	"context"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/mkrenz/sshman/internal/config"
	"github.com/mkrenz/sshman/internal/errors"
	mcp_pkg "github.com/mkrenz/sshman/internal/mcp"
)

// NewMCPCommand creates the MCP command group.
func NewMCPCommand(flags *RootFlags) *cobra.Command {
	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP (Model Context Protocol) server commands",
	}

	mcpCmd.AddCommand(newMCPServerCommand(flags))

	return mcpCmd
}

type mcpServerOptions struct {
	transport     string
	httpAddr      string
	httpAuthToken string
}

func newMCPServerCommand(flags *RootFlags) *cobra.Command {
	opts := &mcpServerOptions{}
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start a read-only MCP server over the SSH config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMCPServer(flags, opts)
		},
	}
	cmd.Flags().StringVar(&opts.transport, "transport", "", "MCP transport: stdio|streamable_http (default stdio; env SSHMAN_MCP_TRANSPORT)")
	cmd.Flags().StringVar(&opts.httpAddr, "http-addr", "", "Streamable HTTP listen address (default 127.0.0.1:8787; env SSHMAN_MCP_HTTP_ADDR)")
	cmd.Flags().StringVar(&opts.httpAuthToken, "http-auth-token", "", "Streamable HTTP auth token (env SSHMAN_MCP_HTTP_AUTH_TOKEN)")
	return cmd
}

func runMCPServer(flags *RootFlags, opts *mcpServerOptions) error {
	path, oe := config.Resolve(config.Options{
		CLIPath: flags.ConfigPath,
		EnvPath: os.Getenv(config.EnvPath),
	})
	if oe != nil {
		return oe
	}

	server, err := mcp_pkg.CreateServer(version, path)
	if err != nil {
		return errors.AsOrWrap(err)
	}

	resolved, oe := resolveMCPServerOptions(opts)
	if oe != nil {
		return oe
	}

	switch resolved.transport {
	case mcp_pkg.TransportStdio:
		return server.Run(context.Background(), &mcp.StdioTransport{})
	case mcp_pkg.TransportStreamableHTTP:
		handler, err := mcp_pkg.NewStreamableHTTPHandler(server, resolved.httpAuthToken)
		if err != nil {
			return errors.AsOrWrap(err)
		}
		httpServer := &http.Server{
			Addr:    resolved.httpAddr,
			Handler: handler,
		}
		return httpServer.ListenAndServe()
	default:
		return errors.New(errors.CodeUsage, "invalid mcp transport", map[string]any{"transport": resolved.transport})
	}
}

// resolveMCPServerOptions merges flag and environment values: flag > env > default.
func resolveMCPServerOptions(opts *mcpServerOptions) (mcpServerOptions, *errors.OpError) {
	resolved := mcpServerOptions{
		transport:     firstNonEmpty(opts.transport, os.Getenv("SSHMAN_MCP_TRANSPORT"), mcp_pkg.TransportStdio),
		httpAddr:      firstNonEmpty(opts.httpAddr, os.Getenv("SSHMAN_MCP_HTTP_ADDR"), "127.0.0.1:8787"),
		httpAuthToken: firstNonEmpty(opts.httpAuthToken, os.Getenv("SSHMAN_MCP_HTTP_AUTH_TOKEN")),
	}
	if resolved.transport != mcp_pkg.TransportStdio && resolved.transport != mcp_pkg.TransportStreamableHTTP {
		return mcpServerOptions{}, errors.New(errors.CodeUsage, "invalid mcp transport", map[string]any{"transport": resolved.transport})
	}
	if resolved.transport == mcp_pkg.TransportStreamableHTTP && resolved.httpAuthToken == "" {
		return mcpServerOptions{}, errors.New(errors.CodeUsage, "streamable http transport requires auth token", nil)
	}
	return resolved, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
