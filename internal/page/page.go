// Copyright 2026 The Icudash Authors
// SPDX-License-Identifier: MIT

// Package page defines the dashboard's fixed element identifiers and the
// surface the views write to.
package page

import "errors"

// ID identifies one element of the dashboard surface.
type ID string

// Element identifiers. These are a fixed naming contract shared with the
// markup that hosts the dashboard.
const (
	DateRangeFilter ID = "date-range-filter"
	UnitFilter      ID = "unit-filter"
	ResetButton     ID = "reset-filters-btn"

	BedOccupancy          ID = "bed-occupancy"
	PatientCensus         ID = "patient-census"
	VentilatorUtilization ID = "ventilator-utilization"
	AvgLOS                ID = "avg-los"

	CensusChart    ID = "census-chart"
	AcuityChart    ID = "acuity-chart"
	AdmissionChart ID = "admission-chart"

	PatientDetailsBody ID = "patient-details-body"
	LastUpdated        ID = "last-updated-time"

	// Container is the whole dashboard surface, filter controls included.
	Container ID = "dashboard-container"
	// Content is the region below the filter controls.
	Content ID = "dashboard-content"
)

// ErrElementNotFound is returned when an element is absent from the surface,
// typically because a panel was mounted over its region.
var ErrElementNotFound = errors.New("element not found")

// Panel is a message block mounted in place of a region's contents.
type Panel struct {
	Title   string
	Message string
}

// Page is the surface the dashboard reads controls from and writes into.
type Page interface {
	// Value returns the current value of a control.
	Value(id ID) (string, error)

	// SetText replaces the text content of an element.
	SetText(id ID, text string) error

	// SetRows discards all rows of a table body and renders rows instead.
	SetRows(id ID, rows [][]string) error

	// Mount replaces everything inside region with panel. Elements inside the
	// region stop existing until the region is unmounted.
	Mount(region ID, panel Panel) error

	// Unmount removes a mounted panel and restores the region's elements.
	Unmount(region ID) error
}
