package term

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/davetashner/icudash/internal/fetch"
	"github.com/davetashner/icudash/internal/page"
	"github.com/davetashner/icudash/internal/view"
)

const barWidth = 30

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Compile-time checks.
var (
	_ view.Renderer = (*Renderer)(nil)
	_ view.Widget   = (*Chart)(nil)
)

// Renderer draws chart widgets as text.
type Renderer struct {
	mu      sync.Mutex
	widgets map[page.ID]*Chart
}

// NewRenderer returns a Renderer with no widgets.
func NewRenderer() *Renderer {
	return &Renderer{widgets: make(map[page.ID]*Chart)}
}

// NewWidget constructs and draws a widget on canvas.
func (r *Renderer) NewWidget(canvas page.ID, cfg view.ChartConfig) (view.Widget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.widgets[canvas]; exists {
		return nil, fmt.Errorf("canvas %s is already in use", canvas)
	}
	c := &Chart{canvas: canvas, typ: cfg.Type, data: cfg.Data, opts: cfg.Options}
	c.Update()
	r.widgets[canvas] = c
	return c, nil
}

// Widget returns the widget drawn on canvas, or nil.
func (r *Renderer) Widget(canvas page.ID) *Chart {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.widgets[canvas]
}

// Chart is a text chart widget. Data and options are replaced in place and
// take effect on the next Update.
type Chart struct {
	mu     sync.Mutex
	canvas page.ID
	typ    view.ChartType
	data   fetch.ChartData
	opts   view.ChartOptions
	frame  []string
	draws  int
}

// Data returns the widget's current data.
func (c *Chart) Data() fetch.ChartData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

// SetData replaces the data without redrawing.
func (c *Chart) SetData(data fetch.ChartData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = data
}

// SetOptions replaces the options without redrawing.
func (c *Chart) SetOptions(opts view.ChartOptions) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts = opts
}

// Update redraws the frame.
func (c *Chart) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.typ {
	case view.ChartLine:
		c.frame = drawLine(c.data)
	case view.ChartDoughnut:
		c.frame = drawShares(c.data)
	default:
		c.frame = drawBars(c.data)
	}
	c.draws++
}

// Draws returns how many times the widget has been drawn.
func (c *Chart) Draws() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draws
}

// Clickable reports whether the widget has a click handler.
func (c *Chart) Clickable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opts.OnClick != nil
}

// ElementsAt resolves a click to the category at ev.X. In intersect mode the
// click must land on an existing category; otherwise it snaps to the nearest.
func (c *Chart) ElementsAt(ev view.ClickEvent, opts view.HitOptions) []view.Element {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.data.Labels)
	if n == 0 {
		return nil
	}
	idx := ev.X
	if idx < 0 || idx >= n {
		if opts.Intersect {
			return nil
		}
		idx = min(max(idx, 0), n-1)
	}
	return []view.Element{{DatasetIndex: 0, Index: idx}}
}

// Click delivers a click to the widget's handler, if it has one.
func (c *Chart) Click(ctx context.Context, ev view.ClickEvent) {
	c.mu.Lock()
	handler := c.opts.OnClick
	c.mu.Unlock()
	if handler != nil {
		handler(ctx, ev)
	}
}

// Render writes the last drawn frame.
func (c *Chart) Render(w io.Writer) error {
	c.mu.Lock()
	frame := append([]string(nil), c.frame...)
	clickable := c.opts.OnClick != nil
	c.mu.Unlock()

	if len(frame) == 0 {
		frame = []string{colorFaint.Sprint("(no data)")}
	}
	for _, line := range frame {
		if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
			return fmt.Errorf("render %s: %w", c.canvas, err)
		}
	}
	if clickable {
		if _, err := fmt.Fprintf(w, "  %s\n", colorFaint.Sprintf("click <%s> <n> to drill down", chartName(c.canvas))); err != nil {
			return fmt.Errorf("render %s: %w", c.canvas, err)
		}
	}
	return nil
}

// chartName is the short name used to address a chart in commands.
func chartName(canvas page.ID) string {
	name, _, _ := strings.Cut(string(canvas), "-")
	return name
}

func firstSeries(data fetch.ChartData) []float64 {
	if len(data.Datasets) == 0 {
		return nil
	}
	return data.Datasets[0].Data
}

func valueAt(series []float64, i int) float64 {
	if i < len(series) {
		return series[i]
	}
	return 0
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func labelWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		w = max(w, len(l))
	}
	return w
}

// drawBars draws one horizontal bar per category.
func drawBars(data fetch.ChartData) []string {
	series := firstSeries(data)
	peak := 0.0
	for i := range data.Labels {
		peak = max(peak, valueAt(series, i))
	}
	lw := labelWidth(data.Labels)
	lines := make([]string, 0, len(data.Labels))
	for i, label := range data.Labels {
		v := valueAt(series, i)
		n := 0
		if peak > 0 {
			n = int(math.Round(v / peak * barWidth))
		}
		lines = append(lines, fmt.Sprintf("[%d] %-*s %s %s",
			i, lw, label, colorCyan.Sprint(strings.Repeat("█", n)), formatValue(v)))
	}
	return lines
}

// drawShares draws each category's share of the total.
func drawShares(data fetch.ChartData) []string {
	series := firstSeries(data)
	total := 0.0
	for i := range data.Labels {
		total += valueAt(series, i)
	}
	lw := labelWidth(data.Labels)
	lines := make([]string, 0, len(data.Labels))
	for i, label := range data.Labels {
		v := valueAt(series, i)
		pct := 0.0
		if total > 0 {
			pct = v / total * 100
		}
		n := int(math.Round(pct / 100 * barWidth))
		lines = append(lines, fmt.Sprintf("[%d] %-*s %s %s (%.0f%%)",
			i, lw, label, colorCyan.Sprint(strings.Repeat("●", n)), formatValue(v), pct))
	}
	return lines
}

// drawLine draws each dataset as a sparkline over the time labels.
func drawLine(data fetch.ChartData) []string {
	if len(data.Labels) == 0 {
		return nil
	}
	names := make([]string, len(data.Datasets))
	for i, ds := range data.Datasets {
		names[i] = ds.Label
		if names[i] == "" {
			names[i] = fmt.Sprintf("series %d", i+1)
		}
	}
	lw := labelWidth(names)

	lines := []string{colorFaint.Sprintf("%s .. %s", data.Labels[0], data.Labels[len(data.Labels)-1])}
	for i, ds := range data.Datasets {
		lines = append(lines, fmt.Sprintf("%-*s %s", lw, names[i], sparkline(ds.Data)))
	}
	return lines
}

func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	var b strings.Builder
	for _, v := range values {
		i := len(sparkBlocks) - 1
		if hi > lo {
			i = int((v - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		b.WriteRune(sparkBlocks[i])
	}
	return fmt.Sprintf("%s  %s..%s", b.String(), formatValue(lo), formatValue(hi))
}
