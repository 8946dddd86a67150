// Copyright 2026 The Icudash Authors
// SPDX-License-Identifier: MIT

package view

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/davetashner/icudash/internal/fetch"
	"github.com/davetashner/icudash/internal/filter"
	"github.com/davetashner/icudash/internal/page"
)

// ChartType selects how a widget draws its data.
type ChartType string

// Chart types used by the dashboard.
const (
	ChartLine     ChartType = "line"
	ChartBar      ChartType = "bar"
	ChartDoughnut ChartType = "doughnut"
)

// ClickEvent is a pointer click on a chart widget, in the widget's own
// coordinates. For category charts X is the category position.
type ClickEvent struct {
	X, Y int
}

// ClickHandler receives clicks on a widget.
type ClickHandler func(ctx context.Context, ev ClickEvent)

// ChartOptions are a widget's presentation options.
type ChartOptions struct {
	// IndexAxis is "y" for horizontal bars, empty otherwise.
	IndexAxis string
	OnClick   ClickHandler
}

// ChartConfig describes a widget at construction time.
type ChartConfig struct {
	Type    ChartType
	Data    fetch.ChartData
	Options ChartOptions
}

// HitOptions selects how a click is resolved to chart elements.
type HitOptions struct {
	Mode      string // "nearest"
	Intersect bool
}

// Element is one data point or segment hit by a click.
type Element struct {
	DatasetIndex int
	Index        int
}

// Widget is one rendered chart, mutated in place across refreshes.
type Widget interface {
	Data() fetch.ChartData
	SetData(data fetch.ChartData)
	SetOptions(opts ChartOptions)
	// Update redraws the widget from its current data and options.
	Update()
	// ElementsAt returns the elements under ev.
	ElementsAt(ev ClickEvent, opts HitOptions) []Element
}

// Renderer constructs widgets on chart-hosting elements.
type Renderer interface {
	NewWidget(canvas page.ID, cfg ChartConfig) (Widget, error)
}

// DrillDowner narrows the dashboard to one category of one dimension.
type DrillDowner interface {
	DrillDown(ctx context.Context, key, label string) error
}

// drillDownKeys maps a chart's identity (its canvas id prefix) to the filter
// key a click on it sets.
var drillDownKeys = map[string]string{
	"acuity":    filter.KeyAcuityLevel,
	"admission": filter.KeyAdmissionSource,
}

// DrillDownKey returns the filter key for clicks on canvas, if any.
func DrillDownKey(canvas page.ID) (string, bool) {
	identity, _, _ := strings.Cut(string(canvas), "-")
	key, ok := drillDownKeys[identity]
	return key, ok
}

// clickHit is the hit test used for drill-down clicks.
var clickHit = HitOptions{Mode: "nearest", Intersect: true}

// ChartView keeps one widget handle per chart slot and updates them in place.
type ChartView struct {
	renderer Renderer
	router   DrillDowner

	mu      sync.Mutex
	handles map[page.ID]Widget
}

// NewChartView returns a ChartView with no widgets yet.
func NewChartView(r Renderer, router DrillDowner) *ChartView {
	return &ChartView{
		renderer: r,
		router:   router,
		handles:  make(map[page.ID]Widget),
	}
}

// Update applies charts to the three slots. Existing widgets get their data
// and options replaced and are redrawn; missing ones are constructed.
func (v *ChartView) Update(charts fetch.Charts) error {
	slots := []struct {
		canvas page.ID
		cfg    ChartConfig
	}{
		{page.CensusChart, ChartConfig{Type: ChartLine, Data: charts.CensusOverTime}},
		{page.AcuityChart, ChartConfig{
			Type:    ChartBar,
			Data:    charts.AcuityLevels,
			Options: ChartOptions{IndexAxis: "y", OnClick: v.clickHandler(page.AcuityChart)},
		}},
		{page.AdmissionChart, ChartConfig{
			Type:    ChartDoughnut,
			Data:    charts.AdmissionSource,
			Options: ChartOptions{OnClick: v.clickHandler(page.AdmissionChart)},
		}},
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	for _, s := range slots {
		if w, ok := v.handles[s.canvas]; ok {
			w.SetData(s.cfg.Data)
			w.SetOptions(s.cfg.Options)
			w.Update()
			continue
		}
		w, err := v.renderer.NewWidget(s.canvas, s.cfg)
		if err != nil {
			return fmt.Errorf("creating %s: %w", s.canvas, err)
		}
		v.handles[s.canvas] = w
	}
	return nil
}

// Widget returns the handle for canvas, or nil before the first update.
func (v *ChartView) Widget(canvas page.ID) Widget {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.handles[canvas]
}

func (v *ChartView) clickHandler(canvas page.ID) ClickHandler {
	return func(ctx context.Context, ev ClickEvent) {
		v.click(ctx, canvas, ev)
	}
}

// click resolves a click on canvas to a category label and drills down on it.
// Clicks that miss every element, or land on a chart without a drill-down
// dimension, do nothing.
func (v *ChartView) click(ctx context.Context, canvas page.ID, ev ClickEvent) {
	w := v.Widget(canvas)
	if w == nil {
		return
	}
	hits := w.ElementsAt(ev, clickHit)
	if len(hits) == 0 {
		return
	}
	labels := w.Data().Labels
	idx := hits[0].Index
	if idx < 0 || idx >= len(labels) {
		return
	}
	key, ok := DrillDownKey(canvas)
	if !ok {
		return
	}
	if err := v.router.DrillDown(ctx, key, labels[idx]); err != nil {
		slog.Debug("drill-down refresh failed", "chart", canvas, "error", err)
	}
}
