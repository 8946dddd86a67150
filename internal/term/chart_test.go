package term

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/icudash/internal/fetch"
	"github.com/davetashner/icudash/internal/page"
	"github.com/davetashner/icudash/internal/view"
)

func acuityData() fetch.ChartData {
	return fetch.ChartData{
		Labels:   []string{"Low", "High", "Critical"},
		Datasets: []fetch.Dataset{{Label: "Patient Count", Data: []float64{10, 20, 5}}},
	}
}

func TestRenderer_NewWidgetDraws(t *testing.T) {
	r := NewRenderer()
	w, err := r.NewWidget(page.AcuityChart, view.ChartConfig{Type: view.ChartBar, Data: acuityData()})
	require.NoError(t, err)

	c := w.(*Chart)
	assert.Equal(t, 1, c.Draws())
	assert.Same(t, c, r.Widget(page.AcuityChart))

	_, err = r.NewWidget(page.AcuityChart, view.ChartConfig{Type: view.ChartBar})
	assert.Error(t, err)
}

func TestChart_SetDataTakesEffectOnUpdate(t *testing.T) {
	r := NewRenderer()
	w, err := r.NewWidget(page.AcuityChart, view.ChartConfig{Type: view.ChartBar, Data: acuityData()})
	require.NoError(t, err)
	c := w.(*Chart)

	c.SetData(fetch.ChartData{Labels: []string{"Septic"}, Datasets: []fetch.Dataset{{Data: []float64{3}}}})
	var before bytes.Buffer
	require.NoError(t, c.Render(&before))
	assert.Contains(t, before.String(), "Critical")

	c.Update()
	var after bytes.Buffer
	require.NoError(t, c.Render(&after))
	assert.Contains(t, after.String(), "Septic")
	assert.NotContains(t, after.String(), "Critical")
	assert.Equal(t, 2, c.Draws())
}

func TestChart_ElementsAt(t *testing.T) {
	c := &Chart{data: acuityData()}

	assert.Equal(t, []view.Element{{Index: 2}}, c.ElementsAt(view.ClickEvent{X: 2}, view.HitOptions{Mode: "nearest", Intersect: true}))
	assert.Empty(t, c.ElementsAt(view.ClickEvent{X: 3}, view.HitOptions{Mode: "nearest", Intersect: true}))
	assert.Equal(t, []view.Element{{Index: 2}}, c.ElementsAt(view.ClickEvent{X: 9}, view.HitOptions{Mode: "nearest"}))
	assert.Empty(t, (&Chart{}).ElementsAt(view.ClickEvent{}, view.HitOptions{}))
}

func TestChart_ClickWithoutHandler(t *testing.T) {
	c := &Chart{data: acuityData()}
	assert.False(t, c.Clickable())
	c.Click(context.Background(), view.ClickEvent{X: 0})
}

func TestChart_ClickInvokesHandler(t *testing.T) {
	var got view.ClickEvent
	c := &Chart{data: acuityData(), opts: view.ChartOptions{OnClick: func(_ context.Context, ev view.ClickEvent) {
		got = ev
	}}}
	c.Click(context.Background(), view.ClickEvent{X: 1})
	assert.Equal(t, 1, got.X)
}

func TestDrawShares(t *testing.T) {
	lines := drawShares(fetch.ChartData{
		Labels:   []string{"ER", "OR"},
		Datasets: []fetch.Dataset{{Data: []float64{3, 1}}},
	})
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[0] ER")
	assert.Contains(t, lines[0], "(75%)")
	assert.Contains(t, lines[1], "(25%)")
}

func TestDrawLine(t *testing.T) {
	lines := drawLine(fetch.ChartData{
		Labels: []string{"Jan 01", "Jan 02", "Jan 03"},
		Datasets: []fetch.Dataset{
			{Label: "Patient Census", Data: []float64{1, 5, 9}},
			{Label: "Bed Availability", Data: []float64{50, 50, 50}},
		},
	})
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Jan 01 .. Jan 03")
	assert.Contains(t, lines[1], "▁▄█")
	assert.Contains(t, lines[2], "███  50..50")
}

func TestDrawBars_MissingValues(t *testing.T) {
	lines := drawBars(fetch.ChartData{Labels: []string{"Low", "High"}})
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "High")
}
