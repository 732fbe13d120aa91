package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/edvin/minio-lite-admin/internal/model"
)

const (
	ToolGetServerInfo  = "get_server_info"
	ToolGetDataUsage   = "get_data_usage"
	ToolListAccessKeys = "list_access_keys"
)

var toolNames = []string{ToolGetServerInfo, ToolGetDataUsage, ToolListAccessKeys}

func knownTool(name string) bool {
	return slices.Contains(toolNames, name)
}

// Source is the read-only part of the admin API the tools expose.
type Source interface {
	ServerInfo(ctx context.Context) (*model.ServerInfo, error)
	DataUsage(ctx context.Context) (*model.DataUsage, error)
	AccessKeys(ctx context.Context, opts model.AccessKeysOptions) (*model.AccessKeysResponse, error)
}

// BuildTools returns the enabled tools, each backed by src.
func BuildTools(src Source, cfg *Config, logger zerolog.Logger) []server.ServerTool {
	h := &toolHandler{src: src, logger: logger}

	all := []server.ServerTool{
		{
			Tool: mcp.NewTool(ToolGetServerInfo,
				mcp.WithDescription(describe(cfg, ToolGetServerInfo, "Get the MinIO deployment mode, region and deployment ID.")),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithIdempotentHintAnnotation(true),
			),
			Handler: h.serverInfo,
		},
		{
			Tool: mcp.NewTool(ToolGetDataUsage,
				mcp.WithDescription(describe(cfg, ToolGetDataUsage, "Get cluster capacity, usage percentage, disk states and object and bucket counts.")),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithIdempotentHintAnnotation(true),
			),
			Handler: h.dataUsage,
		},
		{
			Tool: mcp.NewTool(ToolListAccessKeys,
				mcp.WithDescription(describe(cfg, ToolListAccessKeys, "List users, service accounts and STS keys, optionally filtered by type and parent user.")),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithIdempotentHintAnnotation(true),
				mcp.WithString("type",
					mcp.Description("Key type filter"),
					mcp.Enum(model.KeyFilterAll, model.KeyFilterUsers, model.KeyFilterServiceAccounts, model.KeyFilterSTS),
				),
				mcp.WithString("user",
					mcp.Description("Only keys belonging to this user"),
				),
			),
			Handler: h.listAccessKeys,
		},
	}

	tools := make([]server.ServerTool, 0, len(all))
	for _, t := range all {
		if cfg.Overrides[t.Tool.Name].Disabled {
			continue
		}
		tools = append(tools, t)
	}
	return tools
}

func describe(cfg *Config, name, fallback string) string {
	if d := cfg.Overrides[name].Description; d != "" {
		return d
	}
	return fallback
}

type toolHandler struct {
	src    Source
	logger zerolog.Logger
}

func (h *toolHandler) serverInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := h.src.ServerInfo(ctx)
	return h.result(req, info, err)
}

func (h *toolHandler) dataUsage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	usage, err := h.src.DataUsage(ctx)
	return h.result(req, usage, err)
}

func (h *toolHandler) listAccessKeys(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := model.AccessKeysOptions{
		Type: req.GetString("type", ""),
		User: req.GetString("user", ""),
	}
	if opts.Type != "" && !model.ValidKeyFilter(opts.Type) {
		return mcp.NewToolResultError(fmt.Sprintf("invalid type %q: must be one of all, users, serviceAccounts, sts", opts.Type)), nil
	}
	keys, err := h.src.AccessKeys(ctx, opts)
	return h.result(req, keys, err)
}

// result renders v as JSON text. API failures become tool errors so the
// calling agent sees them; they are not protocol errors.
func (h *toolHandler) result(req mcp.CallToolRequest, v any, err error) (*mcp.CallToolResult, error) {
	h.logger.Debug().
		Str("tool", req.Params.Name).
		Err(err).
		Msg("MCP tool call")

	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("API request failed: %s", err)), nil
	}
	body, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %s", err)), nil
	}
	return mcp.NewToolResultText(string(body)), nil
}
