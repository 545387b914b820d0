package shaping

import (
	"fmt"
	"sync"

	"github.com/Taha493/doc-translator/script"
)

// Result is the outcome of shaping one text run. Shaping fails soft: when
// the external reshape or reorder capability errors, Text carries the
// original input unchanged, Fallback is true and Err records the cause.
// Callers that only want usable text can ignore everything but Text;
// callers doing telemetry can count fallbacks without any error handling
// being forced on the main path.
type Result struct {
	Text     string
	Fallback bool
	Err      error
}

// Engine shapes Arabic text runs for display. It owns an immutable Config,
// the reshape/reorder capabilities and a bounded result cache, and is safe
// for concurrent use from any number of pipeline workers.
type Engine struct {
	cfg       Config
	reshaper  Reshaper
	reorderer Reorderer
	cache     *shapeCache
}

// New creates an engine with the default garabic reshaper and the
// right-to-left bidi reorderer.
func New(cfg Config) *Engine {
	return NewWith(cfg, newGarabicReshaper(cfg), newRTLReorderer())
}

// NewWith creates an engine with explicit capability implementations.
// It is the constructor used by tests (fault injection) and by callers
// with an alternative shaping backend.
func NewWith(cfg Config, reshaper Reshaper, reorderer Reorderer) *Engine {
	return &Engine{
		cfg:       cfg,
		reshaper:  reshaper,
		reorderer: reorderer,
		cache:     newShapeCache(DefaultCacheSize),
	}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide engine, constructing it with
// DefaultConfig on first use. All pipeline stages share this instance so
// identical runs are shaped once and the cache is effective across
// documents.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New(DefaultConfig())
	})
	return defaultEngine
}

// Shape transforms text into display order if it contains Arabic-range
// code points, returning it unchanged otherwise. The zero-cost paths
// (empty input, no Arabic runes) bypass the cache entirely.
func (e *Engine) Shape(text string) Result {
	if text == "" {
		return Result{Text: text}
	}
	if !script.ContainsArabic(text) {
		return Result{Text: text}
	}

	if cached, ok := e.cache.get(text); ok {
		return cached
	}

	res := e.shape(text)
	e.cache.put(text, res)
	return res
}

// shape runs the normalize -> reshape -> reorder pipeline. No cache lock
// is held here; concurrent misses for the same text compute identical
// results and the last insert wins.
func (e *Engine) shape(text string) Result {
	normalized := Normalize(text)

	reshaped, err := e.reshaper.Reshape(normalized)
	if err != nil {
		tracer().Errorf("arabic reshaping failed for text %q: %v", text, err)
		return Result{Text: text, Fallback: true, Err: fmt.Errorf("reshape: %w", err)}
	}

	ordered, err := e.reorderer.Reorder(reshaped)
	if err != nil {
		tracer().Errorf("bidi reordering failed for text %q: %v", text, err)
		return Result{Text: text, Fallback: true, Err: fmt.Errorf("reorder: %w", err)}
	}

	return Result{Text: ordered}
}

// ShapeText is Shape for callers that only need the text.
func (e *Engine) ShapeText(text string) string {
	return e.Shape(text).Text
}

// ShapeAny is a defensive entry point for dynamic callers that may hold a
// non-string value where text is expected. Strings are shaped normally,
// nil becomes the empty string, and anything else is coerced to its
// fmt representation (with a warning) before shaping.
func (e *Engine) ShapeAny(v any) string {
	switch t := v.(type) {
	case string:
		return e.ShapeText(t)
	case nil:
		return ""
	default:
		tracer().Infof("non-string value passed to Arabic shaper: %T", v)
		return e.ShapeText(fmt.Sprint(t))
	}
}

// CacheLen reports how many results are currently memoized.
func (e *Engine) CacheLen() int {
	return e.cache.len()
}
