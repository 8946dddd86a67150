// Copyright 2026 The Icudash Authors
// SPDX-License-Identifier: MIT

// Package term is the terminal rendering of the dashboard: an in-memory page
// drawn as text, and chart widgets drawn as bars and sparklines.
package term

import (
	"fmt"
	"io"

	"github.com/davetashner/icudash/internal/filter"
	"github.com/davetashner/icudash/internal/page"
)

// Screen is a terminal dashboard surface.
type Screen struct {
	Page     *page.Memory
	Renderer *Renderer
}

// NewScreen returns a blank screen whose dropdowns start at base.
func NewScreen(base filter.Base) *Screen {
	return &Screen{
		Page:     page.NewMemory(base.DateRange, base.Unit),
		Renderer: NewRenderer(),
	}
}

var kpiColumns = []struct {
	id    page.ID
	title string
}{
	{page.BedOccupancy, "Bed Occupancy"},
	{page.PatientCensus, "Patient Census"},
	{page.VentilatorUtilization, "Ventilator Utilization"},
	{page.AvgLOS, "Avg Length of Stay"},
}

var chartSections = []struct {
	id    page.ID
	title string
}{
	{page.CensusChart, "Patient Census Over Time"},
	{page.AcuityChart, "Patient Acuity Levels"},
	{page.AdmissionChart, "Admission Source"},
}

// Render draws the screen. ov is shown as the active drill-down.
func (s *Screen) Render(w io.Writer, ov filter.Override) error {
	region, panel, hasPanel := s.Page.Panel()
	if hasPanel && region == page.Container {
		return renderPanel(w, panel)
	}

	dateRange, _ := s.Page.Value(page.DateRangeFilter)
	unit, _ := s.Page.Value(page.UnitFilter)
	drill := "none"
	if !ov.IsZero() {
		drill = ov.Key + "=" + ov.Value
	}
	if _, err := fmt.Fprintf(w, "%s  %s\n  Date range: %s   Unit: %s   Drill-down: %s\n\n",
		SectionTitle("ICU Dashboard"),
		colorFaint.Sprintf("last updated %s", orDash(s.Page.Text(page.LastUpdated))),
		dateRange, unit, drill); err != nil {
		return fmt.Errorf("render header: %w", err)
	}

	if hasPanel {
		return renderPanel(w, panel)
	}

	kpis := make([]Column, len(kpiColumns))
	values := make([]string, len(kpiColumns))
	for i, k := range kpiColumns {
		kpis[i] = Column{Header: k.title}
		values[i] = orDash(s.Page.Text(k.id))
	}
	tbl := NewTable(kpis...)
	tbl.AddRow(values...)
	if err := tbl.Render(w); err != nil {
		return err
	}

	for _, c := range chartSections {
		if _, err := fmt.Fprintf(w, "\n%s\n", SectionTitle(c.title)); err != nil {
			return fmt.Errorf("render charts: %w", err)
		}
		chart := s.Renderer.Widget(c.id)
		if chart == nil {
			if _, err := fmt.Fprintf(w, "  %s\n", colorFaint.Sprint("(loading)")); err != nil {
				return fmt.Errorf("render charts: %w", err)
			}
			continue
		}
		if err := chart.Render(w); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", SectionTitle("Patient Details")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	patients := NewTable(
		Column{Header: "Patient ID"},
		Column{Header: "Unit"},
		Column{Header: "Length of Stay", Align: AlignRight},
		Column{Header: "Acuity Level", Color: ColorAcuity},
		Column{Header: "Ventilator", Color: ColorVentilator},
	).EmptyMessage("no patients match the current filters")
	patients.SetRows(s.Page.Rows(page.PatientDetailsBody))
	return patients.Render(w)
}

func renderPanel(w io.Writer, p page.Panel) error {
	if _, err := fmt.Fprintf(w, "%s\n  %s\n", colorAlert.Sprint(p.Title), colorRed.Sprint(p.Message)); err != nil {
		return fmt.Errorf("render error panel: %w", err)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
