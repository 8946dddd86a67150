package term

import (
	"encoding/json"
	"io"

	"github.com/davetashner/icudash/internal/fetch"
	"github.com/davetashner/icudash/internal/page"
)

// Snapshot is a machine-readable copy of what the screen shows.
type Snapshot struct {
	DateRange   string                     `json:"date_range,omitempty"`
	Unit        string                     `json:"unit,omitempty"`
	DrillDown   *DrillDown                 `json:"drill_down,omitempty"`
	LastUpdated string                     `json:"last_updated,omitempty"`
	KPIs        map[string]string          `json:"kpis,omitempty"`
	Charts      map[string]fetch.ChartData `json:"charts,omitempty"`
	Patients    [][]string                 `json:"patient_details,omitempty"`
	Error       *ErrorInfo                 `json:"error,omitempty"`
}

// DrillDown is the active chart selection.
type DrillDown struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ErrorInfo is a mounted error panel. Recoverable is false when the panel
// replaced the whole surface.
type ErrorInfo struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	Recoverable bool   `json:"recoverable"`
}

var snapshotKPIs = map[page.ID]string{
	page.BedOccupancy:          "bed_occupancy",
	page.PatientCensus:         "patient_census",
	page.VentilatorUtilization: "ventilator_utilization",
	page.AvgLOS:                "avg_los",
}

var snapshotCharts = map[page.ID]string{
	page.CensusChart:    "census_over_time",
	page.AcuityChart:    "acuity_levels",
	page.AdmissionChart: "admission_source",
}

// Snapshot captures the session's current screen.
func (s *Session) Snapshot() Snapshot {
	p := s.Screen.Page
	var snap Snapshot
	if region, panel, ok := p.Panel(); ok {
		snap.Error = &ErrorInfo{Title: panel.Title, Message: panel.Message, Recoverable: region != page.Container}
		if region == page.Container {
			return snap
		}
	}

	snap.DateRange, _ = p.Value(page.DateRangeFilter)
	snap.Unit, _ = p.Value(page.UnitFilter)
	if ov, ok := s.Dashboard.State().Override(); ok {
		snap.DrillDown = &DrillDown{Key: ov.Key, Value: ov.Value}
	}
	snap.LastUpdated = p.Text(page.LastUpdated)
	if snap.Error != nil {
		return snap
	}

	for id, name := range snapshotKPIs {
		if text := p.Text(id); text != "" {
			if snap.KPIs == nil {
				snap.KPIs = make(map[string]string)
			}
			snap.KPIs[name] = text
		}
	}
	for id, name := range snapshotCharts {
		if w := s.Screen.Renderer.Widget(id); w != nil {
			if snap.Charts == nil {
				snap.Charts = make(map[string]fetch.ChartData)
			}
			snap.Charts[name] = w.Data()
		}
	}
	snap.Patients = p.Rows(page.PatientDetailsBody)
	return snap
}

// WriteJSON writes snap as indented JSON.
func (snap Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
