package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/adapters/mcp"
)

// ServeMCP runs the MCP server over stdio or SSE.
func ServeMCP(ctx context.Context, opts MCPOptions) error {
	if opts.Transport != "stdio" && opts.Transport != "sse" {
		return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", opts.Transport)
	}

	session, err := OpenSession(opts.EngineOptions)
	if err != nil {
		return err
	}
	defer session.Close()

	srv := mcp.NewServer(session.Engine, turing.Version, session.Logger)

	switch opts.Transport {
	case "stdio":
		session.Logger.Info("starting MCP server (stdio)")
		return srv.ServeStdio()
	default:
		session.Logger.Info("starting MCP server (SSE)", "port", opts.Port)
		if err := srv.ServeSSE(ctx, opts.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
