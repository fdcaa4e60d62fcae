package alttex

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Class binds a token kind to the pattern recognising it. Patterns must not contain capturing groups.
type Class struct {
	Kind    Kind
	Pattern string
}

// Table is an ordered list of token classes, when several classes match at the same position the
// earliest class in the table wins.
type Table struct {
	classes []Class
	re      *regexp.Regexp
}

// NewTable compiles classes into a single alternation, Go regexp is leftmost-first, so the order of
// classes is the priority order.
func NewTable(classes ...Class) (*Table, error) {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		parts = append(parts, "("+c.Pattern+")")
	}

	re, err := regexp.Compile(strings.Join(parts, "|"))
	if err != nil {
		return nil, fmt.Errorf("unable to compile token table: %w", err)
	}

	if re.NumSubexp() != len(classes) {
		return nil, fmt.Errorf("token table patterns must not contain capturing groups")
	}

	return &Table{classes: classes, re: re}, nil
}

func MustTable(classes ...Class) *Table {
	t, err := NewTable(classes...)
	if err != nil {
		panic(err)
	}

	return t
}

// Classes returns the table in priority order.
func (t *Table) Classes() []Class {
	return append([]Class(nil), t.classes...)
}

// MathTable classifies a math payload.
var MathTable = MustTable(
	Class{Kind: NumberKind, Pattern: `\d+(?:\.\d*)?`},
	Class{Kind: IdentifierKind, Pattern: `[A-Za-z]+`},
	Class{Kind: OperatorKind, Pattern: `[_^><\-/!|]`},
	Class{Kind: OpenBraceKind, Pattern: `\\\{`},
	Class{Kind: CloseBraceKind, Pattern: `\\\}`},
	Class{Kind: ColonKind, Pattern: `\\:`},
	Class{Kind: BracketKind, Pattern: `[()\[\]]`},
	Class{Kind: FractionKind, Pattern: `\\d?frac`},
	Class{Kind: GroupKind, Pattern: `\{.*?\}`},
	Class{Kind: ColumnSeparatorKind, Pattern: `&`},
	Class{Kind: RowSeparatorKind, Pattern: `\\\\`},
	Class{Kind: CommandKind, Pattern: `\\(?:[A-Za-z]+|.)?`},
	Class{Kind: OtherKind, Pattern: `.`},
)

// DocumentTable classifies a whole document.
var DocumentTable = MustTable(
	Class{Kind: NumberKind, Pattern: `\d+(?:\.\d*)?`},
	Class{Kind: NewlineKind, Pattern: `\n`},
	Class{Kind: SpaceKind, Pattern: `[ \t]+`},
	Class{Kind: WordKind, Pattern: `[A-Za-z]+`},
	Class{Kind: MathKind, Pattern: `\$\$.*?\$\$`},
	Class{Kind: MathKind, Pattern: `\$.*?\$`},
	Class{Kind: MathKind, Pattern: `\\begin\{math\}.*?\\end\{math\}`},
	Class{Kind: MathKind, Pattern: `\\\(.*?\\\)`},
	Class{Kind: MathKind, Pattern: `\\\[.*?\\\]`},
	Class{Kind: EquationKind, Pattern: `\\begin\{equation\*?\}`},
	Class{Kind: AlignKind, Pattern: `\\begin\{align\*?\}`},
	Class{Kind: TabularKind, Pattern: `\\begin\{tabular\}`},
	Class{Kind: OtherKind, Pattern: `.`},
)

// Tokenizer lazily splits input into tokens, characters no class matches are skipped.
type Tokenizer struct {
	table *Table
	input string
	pos   int
}

func NewTokenizer(table *Table, input string) *Tokenizer {
	return &Tokenizer{table: table, input: input}
}

// Token returns the next token or io.EOF when input is exhausted.
func (l *Tokenizer) Token() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{}, io.EOF
	}

	m := l.table.re.FindStringSubmatchIndex(l.input[l.pos:])
	if m == nil {
		l.pos = len(l.input)
		return Token{}, io.EOF
	}

	kind := InvalidKind
	for i := range l.table.classes {
		if m[2*(i+1)] >= 0 {
			kind = l.table.classes[i].Kind
			break
		}
	}

	start, end := l.pos+m[0], l.pos+m[1]
	l.pos = end

	return Token{Kind: kind, Text: l.input[start:end], Start: start, End: end}, nil
}

// Seek moves the tokenizer to the given offset.
func (l *Tokenizer) Seek(offset int) {
	l.pos = min(max(offset, 0), len(l.input))
}

// Tokenize reads all tokens of input.
func Tokenize(table *Table, input string) (tokens []Token) {
	l := NewTokenizer(table, input)
	for {
		t, err := l.Token()
		if err != nil {
			return
		}

		tokens = append(tokens, t)
	}
}
