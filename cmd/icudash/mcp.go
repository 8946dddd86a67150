// Copyright 2026 The Icudash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/davetashner/icudash/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running icudash as an MCP server, exposing one dashboard session to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout over one dashboard session, exposing:
  - snapshot:      Show the dashboard as currently displayed
  - set_filters:   Change the date range and/or unit
  - drill_down:    Narrow to one acuity level or admission source
  - reset_filters: Clear the drill-down

The dashboard is loaded once at startup. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		sess := newSession(settings)
		if err := sess.Dashboard.Start(cmd.Context()); err != nil {
			slog.Warn("initial dashboard load failed", "error", err)
		}
		return mcpserver.Run(cmd.Context(), Version, sess, &mcp.StdioTransport{})
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
