package alttex

import (
	"regexp"
	"sort"
	"strings"
)

var of = regexp.MustCompile(`\bof\b`)

// Translator turns commands into phrases using a symbol table.
type Translator struct {
	symbols  *SymbolTable
	reporter Reporter
}

func NewTranslator(symbols *SymbolTable, reporter Reporter) *Translator {
	if reporter == nil {
		reporter = Discard
	}

	return &Translator{symbols: symbols, reporter: reporter}
}

// Commands returns names of all commands in s in order of appearance: a run of letters following a
// backslash or one of the escaped characters { } : , %
func Commands(s string) (names []string) {
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			continue
		}

		if strings.IndexByte("{}:,%", s[i+1]) >= 0 {
			names = append(names, s[i+1:i+2])
			i++
			continue
		}

		j := i + 1
		for j < len(s) && isLetter(s[j]) {
			j++
		}

		if j > i+1 {
			names = append(names, s[i+1:j])
		}

		i = j - 1
	}

	return
}

// Lookup resolves names in the symbol table. Commands which never speak resolve to an empty phrase,
// unknown ones are reported and left out of the result.
func (t *Translator) Lookup(names ...string) map[string]string {
	phrases := map[string]string{}
	for _, name := range names {
		if _, ok := phrases[name]; ok {
			continue
		}

		if Categorize(name).Silent() {
			phrases[name] = ""
			continue
		}

		phrase, ok := t.symbols.Phrase(name)
		if !ok {
			t.reporter.UnknownCommand(name)
			continue
		}

		phrases[name] = phrase
	}

	return phrases
}

// Phrase translates a single command, an unknown command is reported and spoken by its name. When raised
// is set the command is followed by a superscript.
func (t *Translator) Phrase(name string, raised bool) string {
	phrase, ok := t.Lookup(name)[name]
	if !ok {
		return name
	}

	if raised && Categorize(name) == Trigonometric {
		return of.ReplaceAllString(phrase, "")
	}

	return phrase
}

// Phrases looks up every command in text. A trigonometric function raised to a power loses its "of",
// so that \sin^2 x reads "sine superscript 2 x".
func (t *Translator) Phrases(text string) map[string]string {
	phrases := t.Lookup(Commands(text)...)

	for name, phrase := range phrases {
		if Categorize(name) != Trigonometric {
			continue
		}

		if pos := strings.Index(text, "\\"+name); pos >= 0 {
			if next := pos + len(name) + 1; next < len(text) && text[next] == '^' {
				phrases[name] = of.ReplaceAllString(phrase, "")
			}
		}
	}

	return phrases
}

// Translate replaces all known commands in text by their phrases.
func (t *Translator) Translate(text string) string {
	return Substitute(text, t.Phrases(text))
}

// Substitute replaces commands of phrases in one pass, longest name first, and removes remaining
// backslashes.
func Substitute(text string, phrases map[string]string) string {
	names := make([]string, 0, len(phrases))
	for name := range phrases {
		names = append(names, name)
	}

	sort.SliceStable(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}

		return names[i] < names[j]
	})

	pairs := make([]string, 0, 2*len(names)+2)
	for _, name := range names {
		pairs = append(pairs, "\\"+name, " "+phrases[name]+" ")
	}

	pairs = append(pairs, "\\", " ")

	return strings.NewReplacer(pairs...).Replace(text)
}

// Replace substitutes every special character in text by its phrase.
func (s Specials) Replace(text string) string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}

		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, s[k])
	}

	return strings.NewReplacer(pairs...).Replace(text)
}
