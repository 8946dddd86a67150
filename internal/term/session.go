package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/davetashner/icudash/internal/dashboard"
	"github.com/davetashner/icudash/internal/fetch"
	"github.com/davetashner/icudash/internal/filter"
	"github.com/davetashner/icudash/internal/page"
	"github.com/davetashner/icudash/internal/view"
)

// Session is one dashboard running on a terminal screen.
type Session struct {
	Screen    *Screen
	Dashboard *dashboard.Dashboard
}

// NewSession wires a dashboard over a fresh screen whose dropdowns start at
// base.
func NewSession(f fetch.Fetcher, base filter.Base, opts dashboard.Options) *Session {
	s := NewScreen(base)
	return &Session{
		Screen:    s,
		Dashboard: dashboard.New(s.Page, s.Renderer, f, opts),
	}
}

// SetDateRange selects a date range and refreshes.
func (s *Session) SetDateRange(ctx context.Context, v string) error {
	return s.SetFilters(ctx, v, "")
}

// SetUnit selects a unit and refreshes.
func (s *Session) SetUnit(ctx context.Context, v string) error {
	return s.SetFilters(ctx, "", v)
}

// SetFilters changes either dropdown (empty leaves it as is) and refreshes
// once. The drill-down is cleared.
func (s *Session) SetFilters(ctx context.Context, dateRange, unit string) error {
	if dateRange != "" {
		if err := s.Screen.Page.SetValue(page.DateRangeFilter, dateRange); err != nil {
			return controlErr(err)
		}
	}
	if unit != "" {
		if err := s.Screen.Page.SetValue(page.UnitFilter, unit); err != nil {
			return controlErr(err)
		}
	}
	return s.Dashboard.DropdownChanged(ctx)
}

// Click clicks segment index of the named chart ("census", "acuity" or
// "admission"), as a pointer would.
func (s *Session) Click(ctx context.Context, chart string, index int) error {
	canvas, ok := chartCanvas(chart)
	if !ok {
		return fmt.Errorf("unknown chart %q (want census, acuity or admission)", chart)
	}
	if !s.Screen.Page.Has(canvas) {
		return fmt.Errorf("chart %q is not on screen: %w", chart, page.ErrElementNotFound)
	}
	w := s.Screen.Renderer.Widget(canvas)
	if w == nil {
		return fmt.Errorf("chart %q has not been drawn yet", chart)
	}
	if !w.Clickable() {
		return fmt.Errorf("chart %q does not support drill-down", chart)
	}
	w.Click(ctx, view.ClickEvent{X: index})
	return nil
}

// Render draws the screen with the current drill-down.
func (s *Session) Render(w io.Writer) error {
	ov, _ := s.Dashboard.State().Override()
	return s.Screen.Render(w, ov)
}

func chartCanvas(name string) (page.ID, bool) {
	for _, c := range chartSections {
		if chartName(c.id) == strings.ToLower(name) {
			return c.id, true
		}
	}
	return "", false
}

func controlErr(err error) error {
	if errors.Is(err, page.ErrElementNotFound) {
		return fmt.Errorf("%w: %w", dashboard.ErrReloadRequired, err)
	}
	return err
}
