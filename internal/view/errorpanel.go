package view

import (
	"github.com/davetashner/icudash/internal/page"
	"github.com/davetashner/icudash/internal/redact"
)

// ErrorPanelTitle heads the panel shown when a refresh fails.
const ErrorPanelTitle = "Error Loading Dashboard"

// ErrorPanel replaces a region of the page with a failure message.
//
// Mounted on page.Container (the default) it also removes the filter
// controls, so the session cannot recover without a reload. Mounted on
// page.Content the controls survive and the next successful refresh clears it.
type ErrorPanel struct {
	page  page.Page
	mount page.ID
}

// NewErrorPanel returns a panel mounted over region; an empty region means
// page.Container.
func NewErrorPanel(p page.Page, region page.ID) *ErrorPanel {
	if region == "" {
		region = page.Container
	}
	return &ErrorPanel{page: p, mount: region}
}

// Region returns the element the panel mounts over.
func (e *ErrorPanel) Region() page.ID { return e.mount }

// Recoverable reports whether the filter controls survive the panel.
func (e *ErrorPanel) Recoverable() bool { return e.mount != page.Container }

// Show mounts the panel with err's message.
func (e *ErrorPanel) Show(err error) error {
	return e.page.Mount(e.mount, page.Panel{
		Title:   ErrorPanelTitle,
		Message: redact.String(err.Error()),
	})
}

// Clear removes a recoverable panel. It is a no-op for the full-surface panel.
func (e *ErrorPanel) Clear() error {
	if !e.Recoverable() {
		return nil
	}
	return e.page.Unmount(e.mount)
}
