// Package view writes fetched dashboard data onto a page: summary counters,
// chart widgets, the patient table, and the error panel.
package view

import (
	"github.com/davetashner/icudash/internal/fetch"
	"github.com/davetashner/icudash/internal/page"
)

// KPIView writes the four summary metrics to their display targets.
type KPIView struct {
	page page.Page
}

// NewKPIView returns a KPIView writing to p.
func NewKPIView(p page.Page) *KPIView {
	return &KPIView{page: p}
}

// Update writes each metric with its unit suffix. Values are not validated.
func (v *KPIView) Update(k fetch.KPIs) error {
	targets := []struct {
		id     page.ID
		value  fetch.Scalar
		suffix string
	}{
		{page.BedOccupancy, k.BedOccupancy, "%"},
		{page.PatientCensus, k.PatientCensus, ""},
		{page.VentilatorUtilization, k.VentilatorUtilization, "%"},
		{page.AvgLOS, k.AvgLOS, ""},
	}
	for _, t := range targets {
		if err := v.page.SetText(t.id, t.value.String()+t.suffix); err != nil {
			return err
		}
	}
	return nil
}
