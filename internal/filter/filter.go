// Copyright 2026 The Icudash Authors
// SPDX-License-Identifier: MIT

// Package filter holds the dashboard's filter state and builds the query
// parameters sent to the aggregation endpoint.
package filter

import "sync"

// Filter keys understood by the aggregation endpoint.
const (
	KeyDateRange       = "date_range"
	KeyUnit            = "unit"
	KeyAcuityLevel     = "acuity_level"
	KeyAdmissionSource = "admission_source"
)

// Default base filter values, matching the dropdowns' initial selections.
const (
	DefaultDateRange = "Last 30 Days"
	DefaultUnit      = "All ICU Units"
)

// DateRanges lists the date range options offered by the date dropdown.
var DateRanges = []string{"Last 7 Days", "Last 30 Days", "All Time"}

// Base holds the two always-present dropdown selections.
type Base struct {
	DateRange string
	Unit      string
}

// DefaultBase returns the dropdowns' initial selections.
func DefaultBase() Base {
	return Base{DateRange: DefaultDateRange, Unit: DefaultUnit}
}

// Override is a single drill-down filter pair. The zero value means no
// drill-down is active.
type Override struct {
	Key   string
	Value string
}

// IsZero reports whether no drill-down is set.
func (o Override) IsZero() bool { return o.Key == "" }

// IsDrillDownKey reports whether key may be used as a drill-down override.
func IsDrillDownKey(key string) bool {
	return key == KeyAcuityLevel || key == KeyAdmissionSource
}

// State holds the active drill-down override. At most one override is
// active; SetOverride always replaces, never merges.
type State struct {
	mu       sync.RWMutex
	override Override
}

// NewState returns a State with no override.
func NewState() *State {
	return &State{}
}

// Reset clears the override.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.override = Override{}
}

// SetOverride replaces the override with the single pair key=value.
func (s *State) SetOverride(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.override = Override{Key: key, Value: value}
}

// Override returns the current override and whether one is set.
func (s *State) Override() (Override, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.override, !s.override.IsZero()
}
