package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/icudash/internal/testable"
)

func runWatch(t *testing.T, url, script string) string {
	t.Helper()
	cmd, stdout, _ := newTestCmd()
	cmd.SetIn(strings.NewReader(script))
	cmd.SetArgs([]string{"watch", "--endpoint", url, "--no-color"})
	require.NoError(t, cmd.Execute())
	return stdout.String()
}

func TestWatch_DrillDownAndDropdown(t *testing.T) {
	agg, url := isolate(t)

	out := runWatch(t, url, "wait\nclick acuity 2\nwait\nunit MICU\nwait\nquit\n")

	require.Equal(t, 3, agg.Requests())
	assert.False(t, agg.Queries[0].Has("acuity_level"))
	assert.Equal(t, "Critical", agg.Queries[1].Get("acuity_level"))
	assert.Equal(t, "MICU", agg.Queries[2].Get("unit"))
	assert.False(t, agg.Queries[2].Has("acuity_level"), "changing a dropdown clears the drill-down")

	assert.Contains(t, out, "Drill-down: acuity_level=Critical")
	assert.Contains(t, out, "Unit: MICU")
}

func TestWatch_MultiWordArguments(t *testing.T) {
	agg, url := isolate(t)

	runWatch(t, url, "wait\ndate Last 7 Days\nwait\nunit Cardiac ICU\n")

	q := agg.LastQuery()
	assert.Equal(t, "Last 7 Days", q.Get("date_range"))
	assert.Equal(t, "Cardiac ICU", q.Get("unit"))
}

func TestWatch_ResetAndRefresh(t *testing.T) {
	agg, url := isolate(t)

	runWatch(t, url, "wait\nclick admission 0\nwait\nreset\nwait\nrefresh\nwait\nquit\n")

	require.Equal(t, 4, agg.Requests())
	assert.Equal(t, "ER", agg.Queries[1].Get("admission_source"))
	assert.False(t, agg.Queries[2].Has("admission_source"))
	assert.False(t, agg.Queries[3].Has("admission_source"))
}

func TestWatch_CommandErrors(t *testing.T) {
	_, url := isolate(t)

	out := runWatch(t, url, "wait\nbogus\nclick acuity\nclick acuity x\nclick census 0\nwait\ndate\nhelp\nquit\n")

	assert.Contains(t, out, `unknown command "bogus"`)
	assert.Contains(t, out, "usage: click <chart> <n>")
	assert.Contains(t, out, "segment must be a number")
	assert.Contains(t, out, "does not support drill-down")
	assert.Contains(t, out, "usage: date <range>")
	assert.Contains(t, out, "commands:")
}

func TestWatch_ErrorPanelRequiresReload(t *testing.T) {
	agg, url := isolate(t)
	agg.Enqueue(testable.Reply{Status: http.StatusBadGateway, Body: "upstream down"})

	out := runWatch(t, url, "wait\nunit MICU\nwait\nquit\n")

	assert.Contains(t, out, "load failed: aggregation endpoint returned status 502")
	assert.Contains(t, out, "Error Loading Dashboard")
	assert.Contains(t, out, "restart icudash")
	assert.Equal(t, 1, agg.Requests())
}

func TestWatch_EOFEndsSession(t *testing.T) {
	agg, url := isolate(t)

	out := runWatch(t, url, "")

	assert.Equal(t, 1, agg.Requests())
	assert.Contains(t, out, "82%")
}
