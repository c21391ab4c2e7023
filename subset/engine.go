package subset

import (
	"log/slog"

	"github.com/signadot/subset/eval"
	"github.com/signadot/subset/value"
)

// Predicates evaluates a computed index against a container, yielding a
// mask with one entry per element (per row for tables).
type Predicates interface {
	Mask(v value.Value, src string) ([]bool, error)
}

// Engine holds the lookup policy shared by all extraction operators. The
// zero policy is: partial name matching on, dimension drop on, silent
// misses, strict mask recycling.
type Engine struct {
	exact   bool
	drop    bool
	strict  bool
	lenient bool

	log   *slog.Logger
	preds Predicates
}

type Option func(*Engine)

// ExactMatch disables partial (unique prefix) name matching.
func ExactMatch(v bool) Option {
	return func(e *Engine) { e.exact = v }
}

// Drop sets the default dimension drop policy for array extraction.
func Drop(v bool) Option {
	return func(e *Engine) { e.drop = v }
}

// Strict makes single-element lookups report misses as errors instead of
// missing results.
func Strict(v bool) Option {
	return func(e *Engine) { e.strict = v }
}

// LenientRecycle lets masks whose length does not divide the target length
// recycle anyway, logging a warning, instead of failing.
func LenientRecycle(v bool) Option {
	return func(e *Engine) { e.lenient = v }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

func WithPredicates(p Predicates) Option {
	return func(e *Engine) { e.preds = p }
}

func New(opts ...Option) *Engine {
	e := &Engine{drop: true}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = slog.New(slog.DiscardHandler)
	}
	if e.preds == nil {
		e.preds = eval.NewCompiler(eval.DefaultCacheSize)
	}
	return e
}

var defaultEngine = New()

// Default returns an engine with the default policy.
func Default() *Engine { return defaultEngine }
