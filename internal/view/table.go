package view

import (
	"github.com/davetashner/icudash/internal/fetch"
	"github.com/davetashner/icudash/internal/page"
)

// TableView renders the patient detail rows.
type TableView struct {
	page page.Page
}

// NewTableView returns a TableView writing to p.
func NewTableView(p page.Page) *TableView {
	return &TableView{page: p}
}

// Update discards the rendered rows and renders patients in order.
func (v *TableView) Update(patients []fetch.PatientRow) error {
	rows := make([][]string, len(patients))
	for i, p := range patients {
		rows[i] = p.Fields()
	}
	return v.page.SetRows(page.PatientDetailsBody, rows)
}
