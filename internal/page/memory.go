package page

import (
	"fmt"
	"sync"
)

// layout maps each element to its enclosing region.
var layout = map[ID]ID{
	DateRangeFilter: Container,
	UnitFilter:      Container,
	ResetButton:     Container,
	LastUpdated:     Container,
	Content:         Container,

	BedOccupancy:          Content,
	PatientCensus:         Content,
	VentilatorUtilization: Content,
	AvgLOS:                Content,
	CensusChart:           Content,
	AcuityChart:           Content,
	AdmissionChart:        Content,
	PatientDetailsBody:    Content,
}

// Compile-time check that Memory implements Page.
var _ Page = (*Memory)(nil)

// Memory is an in-process dashboard surface. It is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	values map[ID]string
	texts  map[ID]string
	rows   map[ID][][]string
	panels map[ID]Panel
}

// NewMemory returns a surface whose dropdowns hold the given initial values.
func NewMemory(dateRange, unit string) *Memory {
	return &Memory{
		values: map[ID]string{
			DateRangeFilter: dateRange,
			UnitFilter:      unit,
		},
		texts:  make(map[ID]string),
		rows:   make(map[ID][][]string),
		panels: make(map[ID]Panel),
	}
}

// within reports whether id sits inside region, directly or transitively.
func within(id, region ID) bool {
	for cur, ok := layout[id]; ok; cur, ok = layout[cur] {
		if cur == region {
			return true
		}
	}
	return false
}

// present reports whether id exists. Callers must hold mu.
func (m *Memory) present(id ID) bool {
	if id != Container {
		if _, known := layout[id]; !known {
			return false
		}
	}
	for region := range m.panels {
		if within(id, region) {
			return false
		}
	}
	return true
}

// Has reports whether id currently exists on the surface.
func (m *Memory) Has(id ID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.present(id)
}

// Value returns the value of a dropdown control.
func (m *Memory) Value(id ID) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[id]
	if !ok || !m.present(id) {
		return "", fmt.Errorf("%s: %w", id, ErrElementNotFound)
	}
	return v, nil
}

// SetValue changes a dropdown's selection, as a user would.
func (m *Memory) SetValue(id ID, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[id]; !ok || !m.present(id) {
		return fmt.Errorf("%s: %w", id, ErrElementNotFound)
	}
	m.values[id] = value
	return nil
}

// SetText replaces an element's text.
func (m *Memory) SetText(id ID, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.present(id) {
		return fmt.Errorf("%s: %w", id, ErrElementNotFound)
	}
	m.texts[id] = text
	return nil
}

// Text returns an element's text; absent elements have no text.
func (m *Memory) Text(id ID) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.present(id) {
		return ""
	}
	return m.texts[id]
}

// SetRows replaces every row of a table body.
func (m *Memory) SetRows(id ID, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.present(id) {
		return fmt.Errorf("%s: %w", id, ErrElementNotFound)
	}
	cp := make([][]string, len(rows))
	for i, r := range rows {
		cp[i] = append([]string(nil), r...)
	}
	m.rows[id] = cp
	return nil
}

// Rows returns a copy of a table body's rows.
func (m *Memory) Rows(id ID) [][]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.present(id) {
		return nil
	}
	src := m.rows[id]
	out := make([][]string, len(src))
	for i, r := range src {
		out[i] = append([]string(nil), r...)
	}
	return out
}

// Mount replaces region's contents with panel. Text and rows inside the
// region are discarded.
func (m *Memory) Mount(region ID, panel Panel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.present(region) {
		return fmt.Errorf("%s: %w", region, ErrElementNotFound)
	}
	for id := range m.texts {
		if within(id, region) {
			delete(m.texts, id)
		}
	}
	for id := range m.rows {
		if within(id, region) {
			delete(m.rows, id)
		}
	}
	m.panels[region] = panel
	return nil
}

// Unmount removes region's panel. Restored elements start out empty.
func (m *Memory) Unmount(region ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.panels[region]; !ok {
		return nil
	}
	if !m.present(region) {
		return fmt.Errorf("%s: %w", region, ErrElementNotFound)
	}
	delete(m.panels, region)
	return nil
}

// Panel returns the outermost mounted panel, if any.
func (m *Memory) Panel() (ID, Panel, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.panels[Container]; ok {
		return Container, p, true
	}
	if p, ok := m.panels[Content]; ok {
		return Content, p, true
	}
	return "", Panel{}, false
}
