package mcpserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/icudash/internal/dashboard"
	"github.com/davetashner/icudash/internal/filter"
	"github.com/davetashner/icudash/internal/redact"
	"github.com/davetashner/icudash/internal/term"
)

// SnapshotInput is the input schema for the snapshot tool.
type SnapshotInput struct {
	Refresh bool   `json:"refresh,omitempty" jsonschema:"Fetch fresh data with the current filters before answering"`
	Format  string `json:"format,omitempty" jsonschema:"Output format: json or text (default: json)"`
}

// SetFiltersInput is the input schema for the set_filters tool.
type SetFiltersInput struct {
	DateRange string `json:"date_range,omitempty" jsonschema:"Date range: Last 7 Days, Last 30 Days or All Time"`
	Unit      string `json:"unit,omitempty" jsonschema:"ICU unit name, or All ICU Units"`
}

// DrillDownInput is the input schema for the drill_down tool.
type DrillDownInput struct {
	Key   string `json:"key" jsonschema:"Drill-down key: acuity_level or admission_source"`
	Value string `json:"value" jsonschema:"Chart label to narrow to, e.g. Critical or ER"`
}

// ResetInput is the input schema for the reset_filters tool.
type ResetInput struct{}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// toolset holds the session every tool operates on.
type toolset struct {
	sess *term.Session
}

// registerTools adds all icudash tools to the MCP server.
func registerTools(server *mcp.Server, t *toolset) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "snapshot",
		Description: "Show the ICU dashboard as currently displayed: KPIs, chart data, patient details, active filters, and any error panel.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, t.handleSnapshot)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_filters",
		Description: "Change the date range and/or unit dropdowns. Clears any drill-down and reloads the dashboard.",
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, t.handleSetFilters)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "drill_down",
		Description: "Narrow the dashboard to one acuity level or admission source, as clicking a chart segment would. Replaces any previous drill-down.",
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, t.handleDrillDown)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "reset_filters",
		Description: "Clear the drill-down and reload the dashboard with the current dropdown values.",
		Annotations: &mcp.ToolAnnotations{
			IdempotentHint:  true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, t.handleReset)
}

func (t *toolset) handleSnapshot(ctx context.Context, _ *mcp.CallToolRequest, input SnapshotInput) (*mcp.CallToolResult, any, error) {
	format := strings.ToLower(strings.TrimSpace(input.Format))
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "text" {
		return nil, nil, fmt.Errorf("unsupported format %q (supported: json, text)", input.Format)
	}

	if input.Refresh {
		if err := refreshed(t.sess.Dashboard.Refresh(ctx)); err != nil {
			return nil, nil, err
		}
	}

	var buf bytes.Buffer
	if format == "text" {
		if err := t.sess.Render(&buf); err != nil {
			return nil, nil, fmt.Errorf("rendering failed: %w", err)
		}
	} else if err := t.sess.Snapshot().WriteJSON(&buf); err != nil {
		return nil, nil, fmt.Errorf("encoding failed: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
	}, nil, nil
}

func (t *toolset) handleSetFilters(ctx context.Context, _ *mcp.CallToolRequest, input SetFiltersInput) (*mcp.CallToolResult, any, error) {
	dateRange := strings.TrimSpace(input.DateRange)
	unit := strings.TrimSpace(input.Unit)
	if dateRange == "" && unit == "" {
		return nil, nil, errors.New("at least one of date_range or unit is required")
	}
	if dateRange != "" && !slices.Contains(filter.DateRanges, dateRange) {
		return nil, nil, fmt.Errorf("unknown date_range %q (supported: %s)", dateRange, strings.Join(filter.DateRanges, ", "))
	}

	if err := refreshed(t.sess.SetFilters(ctx, dateRange, unit)); err != nil {
		return nil, nil, err
	}
	return t.snapshotResult()
}

func (t *toolset) handleDrillDown(ctx context.Context, _ *mcp.CallToolRequest, input DrillDownInput) (*mcp.CallToolResult, any, error) {
	if !filter.IsDrillDownKey(input.Key) {
		return nil, nil, fmt.Errorf("unknown drill-down key %q (supported: %s, %s)", input.Key, filter.KeyAcuityLevel, filter.KeyAdmissionSource)
	}
	if input.Value == "" {
		return nil, nil, errors.New("value is required")
	}

	if err := refreshed(t.sess.Dashboard.Router().DrillDown(ctx, input.Key, input.Value)); err != nil {
		return nil, nil, err
	}
	return t.snapshotResult()
}

func (t *toolset) handleReset(ctx context.Context, _ *mcp.CallToolRequest, _ ResetInput) (*mcp.CallToolResult, any, error) {
	if err := refreshed(t.sess.Dashboard.ResetFilters(ctx)); err != nil {
		return nil, nil, err
	}
	return t.snapshotResult()
}

func (t *toolset) snapshotResult() (*mcp.CallToolResult, any, error) {
	var buf bytes.Buffer
	if err := t.sess.Snapshot().WriteJSON(&buf); err != nil {
		return nil, nil, fmt.Errorf("encoding failed: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
	}, nil, nil
}

// refreshed maps a refresh outcome to a tool error. A superseded refresh is
// not an error: the newer one owns the screen.
func refreshed(err error) error {
	switch {
	case err == nil, errors.Is(err, dashboard.ErrSuperseded):
		return nil
	case errors.Is(err, dashboard.ErrReloadRequired):
		return errors.New("dashboard failed earlier and must be reloaded; restart the MCP server")
	default:
		slog.Debug("mcp refresh failed", "error", err)
		return fmt.Errorf("dashboard refresh failed: %s", redact.String(err.Error()))
	}
}
