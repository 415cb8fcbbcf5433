// Package output renders CLI results for terminals, scripts and agents.
//
// In auto mode the renderer prints styled text when stdout is a terminal
// and Markdown otherwise, so piped output stays free of ANSI codes.
package output

import "strings"

// Mode selects how results are rendered.
type Mode string

// OutputMode is an alias kept for call sites that read better with it.
type OutputMode = Mode

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
	ModeYAML     Mode = "yaml"
	ModeDebug    Mode = "debug"
	ModeTable    Mode = "table"
)

// ParseMode converts a configuration value to a Mode.
// Unknown values fall back to ModeAuto.
func ParseMode(s string) Mode {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeText, ModeMarkdown, ModeJSON, ModeYAML, ModeDebug, ModeTable:
		return m
	default:
		return ModeAuto
	}
}

// Structured reports whether the mode emits machine-readable documents.
func (m Mode) Structured() bool {
	return m == ModeJSON || m == ModeYAML || m == ModeDebug
}
