package view

import (
	"context"
	"sync"

	"github.com/davetashner/icudash/internal/fetch"
	"github.com/davetashner/icudash/internal/page"
)

// fakeWidget records updates and resolves clicks by X position.
type fakeWidget struct {
	canvas  page.ID
	typ     ChartType
	data    fetch.ChartData
	opts    ChartOptions
	updates int
}

func (w *fakeWidget) Data() fetch.ChartData        { return w.data }
func (w *fakeWidget) SetData(d fetch.ChartData)    { w.data = d }
func (w *fakeWidget) SetOptions(opts ChartOptions) { w.opts = opts }
func (w *fakeWidget) Update()                      { w.updates++ }

func (w *fakeWidget) ElementsAt(ev ClickEvent, _ HitOptions) []Element {
	if ev.X < 0 || ev.X >= len(w.data.Labels) {
		return nil
	}
	return []Element{{Index: ev.X}}
}

// click simulates a pointer click delivered to the widget's handler.
func (w *fakeWidget) click(ctx context.Context, x int) {
	if w.opts.OnClick != nil {
		w.opts.OnClick(ctx, ClickEvent{X: x})
	}
}

type fakeRenderer struct {
	created []*fakeWidget
}

func (r *fakeRenderer) NewWidget(canvas page.ID, cfg ChartConfig) (Widget, error) {
	w := &fakeWidget{canvas: canvas, typ: cfg.Type, data: cfg.Data, opts: cfg.Options}
	r.created = append(r.created, w)
	return w, nil
}

type drillCall struct {
	key, label string
}

type fakeRouter struct {
	mu    sync.Mutex
	calls []drillCall
}

func (r *fakeRouter) DrillDown(_ context.Context, key, label string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, drillCall{key, label})
	return nil
}

func sampleCharts() fetch.Charts {
	return fetch.Charts{
		CensusOverTime:  fetch.ChartData{Labels: []string{"Jan 01", "Jan 02"}, Datasets: []fetch.Dataset{{Label: "Patient Census", Data: []float64{40, 41}}}},
		AcuityLevels:    fetch.ChartData{Labels: []string{"Low", "High", "Critical"}, Datasets: []fetch.Dataset{{Data: []float64{10, 20, 11}}}},
		AdmissionSource: fetch.ChartData{Labels: []string{"ER", "OR", "Transfer"}, Datasets: []fetch.Dataset{{Data: []float64{20, 15, 6}}}},
	}
}
