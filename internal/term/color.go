// Copyright 2026 The Icudash Authors
// SPDX-License-Identifier: MIT

package term

import (
	"strings"

	"github.com/fatih/color"
)

// Shared color printers.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorCyan   = color.New(color.FgCyan)
	colorBold   = color.New(color.Bold)
	colorFaint  = color.New(color.Faint)
	colorAlert  = color.New(color.FgRed, color.Bold)
)

// SetColor enables or disables colored output for the whole process.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// ColorAcuity colors acuity levels by severity.
func ColorAcuity(val string) string {
	switch strings.ToLower(val) {
	case "critical":
		return colorRed.Sprint(val)
	case "high":
		return colorYellow.Sprint(val)
	case "low", "medium":
		return colorGreen.Sprint(val)
	default:
		return val
	}
}

// ColorVentilator highlights ventilated patients.
func ColorVentilator(val string) string {
	switch strings.ToLower(val) {
	case "yes", "true", "on":
		return colorYellow.Sprint(val)
	default:
		return val
	}
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}
