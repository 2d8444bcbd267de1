// Package ui holds terminal styling helpers for ecnctl's list output.
package ui

import "fmt"

// ANSI256 color codes.
const (
	colorHeader = 74  // blue, profile name headers
	colorMuted  = 245 // medium gray, summary lines
)

var noColor bool

// RenderHeader returns s styled as a profile header (blue).
func RenderHeader(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorHeader, s)
}

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorMuted, s)
}

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}
