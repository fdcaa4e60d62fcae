package alttex

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Reporter receives non-fatal diagnostics produced while rendering.
type Reporter interface {
	UnknownCommand(name string)
}

type discard struct{}

func (discard) UnknownCommand(string) {}

// Discard drops every diagnostic.
var Discard Reporter = discard{}

// CollectReporter remembers unknown commands in the order they were first seen.
type CollectReporter struct {
	mu    sync.Mutex
	seen  map[string]bool
	names []string
}

func (c *CollectReporter) UnknownCommand(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seen == nil {
		c.seen = map[string]bool{}
	}

	if c.seen[name] {
		return
	}

	c.seen[name] = true
	c.names = append(c.names, name)
}

// Unknown returns the collected command names.
func (c *CollectReporter) Unknown() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.names...)
}

// SlogReporter logs unknown commands as warnings, with the closest known command when there is one.
type SlogReporter struct {
	Logger  *slog.Logger
	Symbols *SymbolTable
}

func NewSlogReporter(logger *slog.Logger, symbols *SymbolTable) *SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogReporter{Logger: logger, Symbols: symbols}
}

func (r *SlogReporter) UnknownCommand(name string) {
	attrs := []slog.Attr{slog.String("command", name)}
	if s := Suggest(name, r.Symbols); s != "" {
		attrs = append(attrs, slog.String("suggestion", s))
	}

	r.Logger.LogAttrs(context.Background(), slog.LevelWarn, "command not in symbol table", attrs...)
}

// Suggest finds the known command closest to name, or an empty string.
func Suggest(name string, symbols *SymbolTable) string {
	if name == "" || symbols.Len() == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(name, symbols.Names())
	if len(ranks) == 0 {
		return ""
	}

	sort.Stable(ranks)
	return ranks[0].Target
}

type reporters []Reporter

func (rs reporters) UnknownCommand(name string) {
	for _, r := range rs {
		r.UnknownCommand(name)
	}
}

// Reporters fans diagnostics out to every non-nil reporter.
func Reporters(rs ...Reporter) Reporter {
	var out reporters
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}

	return out
}
