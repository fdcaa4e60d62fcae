package alttex

// Renderer turns math payloads, tables and whole documents into alt text. It holds no per-call state and
// can be shared between goroutines as long as its Reporter can.
type Renderer struct {
	symbols    *SymbolTable
	specials   Specials
	reporter   Reporter
	translator *Translator
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSymbols sets the command to phrase table, the embedded default table is used otherwise.
func WithSymbols(symbols *SymbolTable) Option {
	return func(r *Renderer) {
		r.symbols = symbols
	}
}

// WithSpecials replaces the phrases of the single character operators.
func WithSpecials(specials Specials) Option {
	return func(r *Renderer) {
		r.specials = specials
	}
}

// WithReporter sets where unknown command diagnostics go.
func WithReporter(reporter Reporter) Option {
	return func(r *Renderer) {
		r.reporter = reporter
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{reporter: Discard}
	for _, opt := range opts {
		opt(r)
	}

	if r.symbols == nil {
		r.symbols = DefaultSymbols()
	}

	if r.specials == nil {
		r.specials = DefaultSpecials()
	}

	if r.reporter == nil {
		r.reporter = Discard
	}

	r.translator = NewTranslator(r.symbols, r.reporter)

	return r
}

// With returns a copy of the renderer with extra options applied.
func (r *Renderer) With(opts ...Option) *Renderer {
	return New(append([]Option{WithSymbols(r.symbols), WithSpecials(r.specials), WithReporter(r.reporter)}, opts...)...)
}

func (r *Renderer) Symbols() *SymbolTable {
	return r.symbols
}
