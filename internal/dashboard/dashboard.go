// Copyright 2026 The Icudash Authors
// SPDX-License-Identifier: MIT

// Package dashboard sequences a refresh: it reads the filter controls and the
// drill-down override, fetches aggregated data, and applies the result to the
// views, or replaces the surface with an error panel on failure.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/davetashner/icudash/internal/fetch"
	"github.com/davetashner/icudash/internal/filter"
	"github.com/davetashner/icudash/internal/page"
	"github.com/davetashner/icudash/internal/view"
)

// LastUpdatedLayout formats the "last updated" display.
const LastUpdatedLayout = "15:04:05"

// ErrSuperseded is returned by Refresh when a later refresh was issued before
// this one completed. Its result was discarded.
var ErrSuperseded = errors.New("refresh superseded by a newer request")

// ErrReloadRequired is returned when the filter controls are gone because the
// error panel replaced the whole surface.
var ErrReloadRequired = errors.New("dashboard must be reloaded")

// Options configures a Dashboard.
type Options struct {
	// ErrorRegion is where the error panel mounts. Empty means the whole
	// surface (page.Container).
	ErrorRegion page.ID

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Dashboard owns the filter state and the views of one page session.
type Dashboard struct {
	page    page.Page
	fetcher fetch.Fetcher
	state   *filter.State
	now     func() time.Time

	kpis     *view.KPIView
	charts   *view.ChartView
	table    *view.TableView
	errPanel *view.ErrorPanel
	router   *Router

	// seq is the number of the latest issued refresh.
	seq atomic.Uint64
	// applyMu serializes applying results to the page.
	applyMu sync.Mutex
}

// New wires a Dashboard over p, drawing charts with r and fetching with f.
func New(p page.Page, r view.Renderer, f fetch.Fetcher, opts Options) *Dashboard {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	d := &Dashboard{
		page:     p,
		fetcher:  f,
		state:    filter.NewState(),
		now:      now,
		kpis:     view.NewKPIView(p),
		table:    view.NewTableView(p),
		errPanel: view.NewErrorPanel(p, opts.ErrorRegion),
	}
	d.router = &Router{state: d.state, refresh: d.Refresh}
	d.charts = view.NewChartView(r, d.router)
	return d
}

// State returns the dashboard's filter state.
func (d *Dashboard) State() *filter.State { return d.state }

// Router returns the drill-down router chart clicks are sent to.
func (d *Dashboard) Router() *Router { return d.router }

// Charts returns the chart view, for delivering clicks to its widgets.
func (d *Dashboard) Charts() *view.ChartView { return d.charts }

// Start performs the initial load. No drill-down is active.
func (d *Dashboard) Start(ctx context.Context) error {
	return d.Refresh(ctx)
}

// DropdownChanged handles a change of either dropdown: the drill-down is
// cleared before the next query is built.
func (d *Dashboard) DropdownChanged(ctx context.Context) error {
	d.state.Reset()
	return d.Refresh(ctx)
}

// ResetFilters handles the reset control.
func (d *Dashboard) ResetFilters(ctx context.Context) error {
	d.state.Reset()
	return d.Refresh(ctx)
}

// Refresh fetches data for the current filters and applies it. Refreshes may
// overlap; only the most recently issued one is applied, and any result that
// completes after a newer refresh was issued is discarded with ErrSuperseded.
//
// Fetch failures, and results the views cannot take, are shown in the error
// panel and returned.
func (d *Dashboard) Refresh(ctx context.Context) error {
	seq := d.seq.Add(1)

	base, err := d.readBase()
	if err != nil {
		return err
	}
	ov, _ := d.state.Override()
	q := filter.Build(base, ov)

	res, fetchErr := d.fetcher.Fetch(ctx, q)

	d.applyMu.Lock()
	defer d.applyMu.Unlock()

	if latest := d.seq.Load(); seq != latest {
		slog.Debug("discarding stale dashboard result", "seq", seq, "latest", latest, "query", q.String())
		return ErrSuperseded
	}

	if fetchErr != nil {
		slog.Warn("dashboard refresh failed", "kind", fetch.Kind(fetchErr), "query", q.String(), "error", fetchErr)
		return d.fail(fetchErr)
	}

	if err := d.apply(res); err != nil {
		err = fmt.Errorf("applying dashboard data: %w", err)
		slog.Warn("dashboard refresh failed", "query", q.String(), "error", err)
		return d.fail(err)
	}
	slog.Debug("dashboard refreshed", "seq", seq, "query", q.String())
	return nil
}

// fail shows err in the error panel and returns it. Callers must hold
// applyMu.
func (d *Dashboard) fail(err error) error {
	if perr := d.errPanel.Show(err); perr != nil {
		return errors.Join(err, fmt.Errorf("showing error panel: %w", perr))
	}
	return err
}

// readBase reads both dropdowns.
func (d *Dashboard) readBase() (filter.Base, error) {
	dateRange, err := d.page.Value(page.DateRangeFilter)
	if err != nil {
		return filter.Base{}, controlErr(err)
	}
	unit, err := d.page.Value(page.UnitFilter)
	if err != nil {
		return filter.Base{}, controlErr(err)
	}
	return filter.Base{DateRange: dateRange, Unit: unit}, nil
}

func controlErr(err error) error {
	if errors.Is(err, page.ErrElementNotFound) {
		return fmt.Errorf("%w: %w", ErrReloadRequired, err)
	}
	return err
}

// apply dispatches res to the views. Charts go first so that a widget that
// cannot be built leaves the text and table untouched. Callers must hold
// applyMu.
func (d *Dashboard) apply(res *fetch.Result) error {
	if err := d.charts.Update(res.Charts); err != nil {
		return err
	}
	if err := d.errPanel.Clear(); err != nil {
		return err
	}
	if err := d.kpis.Update(res.KPIs); err != nil {
		return err
	}
	if err := d.table.Update(res.PatientDetails); err != nil {
		return err
	}
	return d.page.SetText(page.LastUpdated, d.now().Format(LastUpdatedLayout))
}
