// Copyright 2026 The Icudash Authors
// SPDX-License-Identifier: MIT

// Package mcpserver exposes a dashboard session as MCP tools.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/icudash/internal/term"
)

// New creates a new MCP server with icudash's tools registered against sess.
func New(version string, sess *term.Session) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "icudash",
		Title:   "icudash: ICU Metrics Dashboard",
		Version: version,
	}, nil)

	registerTools(server, &toolset{sess: sess})
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, sess *term.Session, transport mcp.Transport) error {
	server := New(version, sess)
	return server.Run(ctx, transport)
}
