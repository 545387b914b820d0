// Package doctranslator wires Arabic text shaping into the PDF translation
// pipeline's document model.
//
// Basic usage, shaping a single translated string:
//
//	shaped := doctranslator.ShapeText("السلام", "en-ar")
//
// Shaping a whole intermediate document before typesetting:
//
//	warnings := doctranslator.ShapeDocument(doc, "en-ar")
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", doctranslator.FormatWarnings(warnings))
//	}
//
// The three Apply adapters mirror the pipeline's integration points: a
// plain string, a paragraph-level unicode buffer and a composition-level
// unicode buffer. All of them no-op when the run is not Arabic and only
// write back when shaping actually changed the text, so re-running a stage
// over an already-shaped document is harmless.
//
// For lower-level control (private engines, fault injection, alternative
// shaping backends) use the shaping package directly.
package doctranslator

import (
	"github.com/Taha493/doc-translator/shaping"
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns a trace sink for the integration layer namespace.
func tracer() tracing.Trace {
	return tracing.Select("doctranslator")
}

// ShapeText shapes text with the process-wide engine if langCode denotes
// Arabic, returning it unchanged otherwise.
func ShapeText(text, langCode string) string {
	return ApplyToText(shaping.Default(), text, langCode)
}
