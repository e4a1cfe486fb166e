// Package mcptools serves the catalog as Model Context Protocol tools, so that
// language-model clients can look up rules content over stdio.
package mcptools

import (
	"context"
	"errors"
	"io"
	stdlog "log"

	"github.com/TJurijs/5esrd-api/catalog"
	"github.com/TJurijs/5esrd-api/markup"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

const ServerName = "5esrd-api"

const instructions = `Rules content from the 5th edition System Reference Document (SRD 5.2).
Use the search_* tools to find entries by partial name or filter, then the get_* tools for full details.
Not-found answers carry an "error" field and, when something similar exists, "suggestions".
Descriptions are plain text. Use expand_markup for any {@tag ...} markup found elsewhere.`

// NewServer builds an MCP server exposing every tool of NewTools.
func NewServer(cat *catalog.Catalog, expander *markup.Expander, version string) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	s.AddTools(NewTools(cat, expander).List()...)

	return s
}

// Serve speaks MCP on in and out until ctx is done or in is closed.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(stdlog.New(log.Logger, "mcp: ", 0))

	log.Info().Str("server", ServerName).Msg("MCP server listening on stdio")

	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
