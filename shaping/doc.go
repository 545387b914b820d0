// Package shaping turns logical-order Arabic text into display-ready text
// for a typesetter that places glyphs left to right.
//
// The central type is [Engine], a facade over two external capabilities:
// a [Reshaper] performing contextual letter-form substitution and a
// [Reorderer] applying the Unicode Bidirectional Algorithm with a forced
// right-to-left base direction. The engine normalizes input to NFKC first,
// so text that upstream translators already emitted in presentation forms
// is folded back to base letters and shaping stays idempotent.
//
// Shaping never fails hard. Any error from the external capabilities is
// contained at the engine boundary: the caller gets the original text back,
// flagged as a fallback in [Result], and a warning is traced. Results are
// memoized in a bounded LRU cache shared by all callers of an engine, so
// repeated runs of the same text are shaped exactly once.
//
// Most of the pipeline uses the process-wide engine returned by [Default];
// tests and diagnostic tools construct private engines with [New] or
// [NewWith].
package shaping

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns a trace sink for the shaping package namespace.
func tracer() tracing.Trace {
	return tracing.Select("doctranslator.shaping")
}
