package doctranslator

import (
	"fmt"
	"strings"
)

// WarningCategory classifies non-fatal issues reported while shaping a
// document.
type WarningCategory int

const (
	// WarningShapingFallback marks a run that could not be shaped and was
	// left in its original, unshaped form.
	WarningShapingFallback WarningCategory = iota
)

func (c WarningCategory) String() string {
	switch c {
	case WarningShapingFallback:
		return "ShapingFallback"
	default:
		return "Unknown"
	}
}

// Warning describes one non-fatal issue encountered during document
// shaping. Warnings never abort processing; they exist so callers can
// surface degraded output for telemetry or logging.
type Warning struct {
	Category WarningCategory

	// Page is the 1-indexed page number the issue occurred on, 0 if the
	// issue is not tied to a page.
	Page int

	Message string
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("[%s] page %d: %s", w.Category, w.Page, w.Message)
	}
	return fmt.Sprintf("[%s] %s", w.Category, w.Message)
}

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
