package alttex

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
)

//go:embed symbols.csv
var defaultSymbols string

// SymbolTable maps command names (without the leading backslash) to spoken phrases.
type SymbolTable struct {
	phrases map[string]string
}

// NewSymbolTable builds a table from two parallel sequences, for duplicate names the first entry wins.
func NewSymbolTable(names, phrases []string) (*SymbolTable, error) {
	if len(names) != len(phrases) {
		return nil, fmt.Errorf("symbol table needs the same number of names and phrases, got %d and %d", len(names), len(phrases))
	}

	t := &SymbolTable{phrases: make(map[string]string, len(names))}
	for i, name := range names {
		if _, ok := t.phrases[name]; ok {
			continue
		}

		t.phrases[name] = phrases[i]
	}

	return t, nil
}

// LoadSymbolTable reads two column CSV: command name and phrase, rows with less than two columns are ignored.
func LoadSymbolTable(r io.Reader) (*SymbolTable, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to read symbol table: %w", err)
	}

	var names, phrases []string
	for _, record := range records {
		if len(record) < 2 || record[0] == "" {
			continue
		}

		names = append(names, strings.TrimPrefix(record[0], "\\"))
		phrases = append(phrases, record[1])
	}

	return NewSymbolTable(names, phrases)
}

// DefaultSymbols returns the symbol table shipped with the package.
func DefaultSymbols() *SymbolTable {
	t, err := LoadSymbolTable(strings.NewReader(defaultSymbols))
	if err != nil {
		panic(err)
	}

	return t
}

func (t *SymbolTable) Phrase(name string) (string, bool) {
	if t == nil {
		return "", false
	}

	p, ok := t.phrases[name]
	return p, ok
}

func (t *SymbolTable) Has(name string) bool {
	_, ok := t.Phrase(name)
	return ok
}

func (t *SymbolTable) Len() int {
	if t == nil {
		return 0
	}

	return len(t.phrases)
}

// Names returns all command names in lexical order.
func (t *SymbolTable) Names() []string {
	if t == nil {
		return nil
	}

	names := make([]string, 0, len(t.phrases))
	for name := range t.phrases {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Specials maps single operator characters to their default phrase.
type Specials map[string]string

func DefaultSpecials() Specials {
	return Specials{
		"_": " subscript ",
		"^": " superscript ",
		">": " greater than ",
		"<": " less than ",
		"-": " minus ",
		"/": " over ",
		"!": " factorial ",
		"|": " vertical bar ",
	}
}

func (s Specials) Has(char byte) bool {
	_, ok := s[string(char)]
	return ok
}

func (s Specials) Phrase(char byte) string {
	if p, ok := s[string(char)]; ok {
		return p
	}

	return string(char)
}
