// Copyright 2026 The Icudash Authors
// SPDX-License-Identifier: MIT

// Package fetch retrieves aggregated dashboard data from the aggregation
// endpoint and classifies its failures.
package fetch

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Result is the payload of one refresh cycle.
type Result struct {
	KPIs           KPIs         `json:"kpis"`
	Charts         Charts       `json:"charts"`
	PatientDetails []PatientRow `json:"patient_details"`
	Error          string       `json:"error,omitempty"`
}

// KPIs holds the four summary metrics.
type KPIs struct {
	BedOccupancy          Scalar `json:"bed_occupancy"`
	PatientCensus         Scalar `json:"patient_census"`
	VentilatorUtilization Scalar `json:"ventilator_utilization"`
	AvgLOS                Scalar `json:"avg_los"`
}

// Charts holds the three chart data blocks.
type Charts struct {
	CensusOverTime  ChartData `json:"census_over_time"`
	AcuityLevels    ChartData `json:"acuity_levels"`
	AdmissionSource ChartData `json:"admission_source"`
}

// ChartData is one chart's labels and datasets.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one data series. Presentation keys (colors, dashes, fill) are
// kept verbatim in Style for the renderer.
type Dataset struct {
	Label string
	Data  []float64
	Style map[string]json.RawMessage
}

// UnmarshalJSON splits label and data from the presentation keys.
func (d *Dataset) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*d = Dataset{}
	if v, ok := raw["label"]; ok {
		if err := json.Unmarshal(v, &d.Label); err != nil {
			return err
		}
		delete(raw, "label")
	}
	if v, ok := raw["data"]; ok {
		if err := json.Unmarshal(v, &d.Data); err != nil {
			return err
		}
		delete(raw, "data")
	}
	if len(raw) > 0 {
		d.Style = raw
	}
	return nil
}

// MarshalJSON writes the dataset back in the endpoint's shape.
func (d Dataset) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Style)+2)
	for k, v := range d.Style {
		out[k] = v
	}
	if d.Label != "" {
		out["label"] = d.Label
	}
	data := d.Data
	if data == nil {
		data = []float64{}
	}
	out["data"] = data
	return json.Marshal(out)
}

// PatientRow is one record of the detail table.
type PatientRow struct {
	PatientID        Scalar `json:"PatientID"`
	Unit             Scalar `json:"Unit"`
	LengthOfStay     Scalar `json:"LengthOfStay"`
	AcuityLevel      Scalar `json:"AcuityLevel"`
	VentilatorStatus Scalar `json:"VentilatorStatus"`
}

// Fields returns the five displayed fields in column order.
func (r PatientRow) Fields() []string {
	return []string{
		r.PatientID.String(),
		r.Unit.String(),
		r.LengthOfStay.String(),
		r.AcuityLevel.String(),
		r.VentilatorStatus.String(),
	}
}

// Scalar is a JSON number or string kept in its wire form.
type Scalar json.RawMessage

// String returns the value as display text: strings unquoted, numbers as sent.
func (s Scalar) String() string {
	b := bytes.TrimSpace([]byte(s))
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return ""
	}
	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err == nil {
			return str
		}
	}
	return string(b)
}

// Number builds a Scalar from a float, mostly for tests and fixtures.
func Number(f float64) Scalar {
	return Scalar(strconv.FormatFloat(f, 'f', -1, 64))
}

// Text builds a Scalar from a string.
func Text(s string) Scalar {
	b, _ := json.Marshal(s)
	return Scalar(b)
}

// MarshalJSON writes the raw value, or null when empty.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return []byte(s), nil
}

// UnmarshalJSON stores a copy of the raw value.
func (s *Scalar) UnmarshalJSON(b []byte) error {
	*s = append((*s)[:0], b...)
	return nil
}
