// Package mcp exposes the read-only host operations as MCP tools so AI
// assistants can inspect the SSH config without being able to edit it.
package mcp

import (
	"context"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mkrenz/sshman/internal/errors"
	"github.com/mkrenz/sshman/internal/hosts"
	"github.com/mkrenz/sshman/internal/output"
	"github.com/mkrenz/sshman/internal/sshconf"
)

// HostSearchInput is the input for the host_search tool.
type HostSearchInput struct {
	Query string `json:"query" jsonschema:"Substring matched against host and hostname"`
}

// HostShowInput is the input for the host_show tool.
type HostShowInput struct {
	Host string `json:"host" jsonschema:"Host alias to show"`
}

// ToolHandler serves the host tools. The config file is re-read on every
// call, matching the CLI's load-per-invocation model.
type ToolHandler struct {
	path string
}

func NewToolHandler(path string) *ToolHandler {
	return &ToolHandler{path: path}
}

// RegisterTools registers all tools with the MCP server.
func (h *ToolHandler) RegisterTools(server *mcp.Server) {
	mcp.AddTool[struct{}, any](server, &mcp.Tool{
		Name:        "host_list",
		Description: "List all SSH config entries",
	}, h.HostList)

	searchSchema := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"query"},
		Properties: map[string]*jsonschema.Schema{
			"query": {
				Type:        "string",
				Description: "Substring matched case-insensitively against host and hostname; empty matches all",
			},
		},
	}
	server.AddTool(&mcp.Tool{
		Name:        "host_search",
		Description: "Search SSH config entries by host or hostname",
		InputSchema: searchSchema,
	}, h.hostSearchHandler)

	showSchema := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"host"},
		Properties: map[string]*jsonschema.Schema{
			"host": {
				Type:        "string",
				Description: "Host alias to show",
			},
		},
	}
	server.AddTool(&mcp.Tool{
		Name:        "host_show",
		Description: "Show one SSH config entry in detail",
		InputSchema: showSchema,
	}, h.hostShowHandler)
}

// HostList lists all entries.
func (h *ToolHandler) HostList(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	f, oe := sshconf.Load(h.path)
	if oe != nil {
		return h.errorResult(oe), nil, nil
	}
	return h.dataResult(map[string]any{
		"config_path": h.path,
		"hosts":       output.NewHostRows(hosts.List(f)),
	}), nil, nil
}

func (h *ToolHandler) hostSearchHandler(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input HostSearchInput
	if err := json.Unmarshal(req.Params.Arguments, &input); err != nil {
		return h.errorResult(errors.Wrap(errors.CodeUsage, "invalid input", nil, err)), nil
	}
	result, _, err := h.HostSearch(ctx, req, input)
	return result, err
}

// HostSearch searches entries by host or hostname.
func (h *ToolHandler) HostSearch(ctx context.Context, req *mcp.CallToolRequest, input HostSearchInput) (*mcp.CallToolResult, any, error) {
	f, oe := sshconf.Load(h.path)
	if oe != nil {
		return h.errorResult(oe), nil, nil
	}
	return h.dataResult(map[string]any{
		"config_path": h.path,
		"query":       input.Query,
		"hosts":       output.NewHostRows(hosts.Search(f, input.Query)),
	}), nil, nil
}

func (h *ToolHandler) hostShowHandler(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input HostShowInput
	if err := json.Unmarshal(req.Params.Arguments, &input); err != nil {
		return h.errorResult(errors.Wrap(errors.CodeUsage, "invalid input", nil, err)), nil
	}
	result, _, err := h.HostShow(ctx, req, input)
	return result, err
}

// HostShow shows one entry in detail.
func (h *ToolHandler) HostShow(ctx context.Context, req *mcp.CallToolRequest, input HostShowInput) (*mcp.CallToolResult, any, error) {
	if input.Host == "" {
		return h.errorResult(errors.New(errors.CodeUsage, "host is required", nil)), nil, nil
	}
	f, oe := sshconf.Load(h.path)
	if oe != nil {
		return h.errorResult(oe), nil, nil
	}
	entry, oe := hosts.Show(f, input.Host)
	if oe != nil {
		return h.errorResult(oe), nil, nil
	}
	return h.dataResult(map[string]any{
		"config_path": h.path,
		"entry":       entry,
	}), nil, nil
}

// dataResult wraps data in the ok envelope as JSON text content.
func (h *ToolHandler) dataResult(data any) *mcp.CallToolResult {
	env := map[string]any{
		"ok":             true,
		"schema_version": output.SchemaVersion,
		"data":           data,
	}
	jsonData, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return h.errorResult(errors.Wrap(errors.CodeInternal, "failed to marshal result", nil, err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(jsonData)},
		},
	}
}

// errorResult wraps a failure in the error envelope as JSON text content.
func (h *ToolHandler) errorResult(err error) *mcp.CallToolResult {
	oe := errors.AsOrWrap(err)
	env := map[string]any{
		"ok":             false,
		"schema_version": output.SchemaVersion,
		"error": map[string]any{
			"code":    oe.Code,
			"message": oe.Message,
			"details": oe.Details,
		},
	}
	jsonData, _ := json.MarshalIndent(env, "", "  ")
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(jsonData)},
		},
	}
}

// CreateServer creates the MCP server with all host tools registered.
func CreateServer(version, path string) (*mcp.Server, error) {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "sshman",
		Version: version,
	}, nil)

	handler := NewToolHandler(path)
	handler.RegisterTools(server)

	return server, nil
}
