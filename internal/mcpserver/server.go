// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes formshape capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formshape/formshape"
)

const serverInstructions = `formshape MCP server — inspects JSON Schema documents, discovers types by category, extracts standalone form-renderer-safe schemas, and validates generated documents against the renderer contract.

Configuration: All defaults are configurable via FORMSHAPE_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- FORMSHAPE_CACHE_FILE_TTL (default: 15m) — cache TTL for local file schemas
- FORMSHAPE_CACHE_URL_TTL (default: 5m) — cache TTL for URL-fetched schemas
- FORMSHAPE_CACHE_ENABLED (default: true) — disable schema caching entirely
- FORMSHAPE_LIST_LIMIT (default: 100) — default result limit for definition listings
- FORMSHAPE_MAX_INLINE_SIZE (default: 10485760) — maximum inline content size in bytes
- FORMSHAPE_ALLOW_PRIVATE_IPS (default: false) — allow URL inputs that resolve to private IPs

Caching: Parsed documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		schemaCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "formshape", Version: formshape.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect_schema",
		Description: "Parse a JSON Schema document and return a structural summary: dialect, source format, title, definition/reference/enum counts, nesting depth, and the names in the $defs table. Use offset/limit to paginate through definition names on large documents. Default limit is configurable via FORMSHAPE_LIST_LIMIT (default 100).",
	}, handleInspectSchema)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "discover_types",
		Description: "Resolve the categories of a generation config against a schema document's $defs table. Returns per category the matching type names with display names and derived descriptions, in deterministic order. Use category to restrict output to a single category key.",
	}, handleDiscoverTypes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_type",
		Description: "Extract a single named type from a schema document's $defs table into a standalone form-renderer-safe schema. The result carries only transitively referenced definitions, normalized enums, and derived titles. Pass config to apply its overrides and field descriptions. Returns the rendered document plus the definition closure and a change count.",
	}, handleExtractType)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_preview",
		Description: "Dry-run a full generation: resolve every category in the config, extract each discovered type, and return the file names and index contents that a real run would write. Never touches the filesystem. Use this to preview output layout and catch missing types before running the generate command.",
	}, handleGeneratePreview)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_document",
		Description: "Check a standalone schema document against the form renderer contract: every $ref resolves in the document's own $defs, no unevaluatedProperties, only standard format values, and no additionalProperties: false on an immediate oneOf/anyOf member. Warnings flag string enums that were never promoted to labeled choices; set no_warnings to suppress them.",
	}, handleValidateDocument)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
