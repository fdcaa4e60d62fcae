package alttex

import (
	"strings"
	"unicode"
)

// arrays lists environments whose cells are separated by & and rows by \\
var arrays = map[string]bool{
	"array":   true,
	"matrix":  true,
	"pmatrix": true,
	"bmatrix": true,
	"vmatrix": true,
	"Vmatrix": true,
	"cases":   true,
}

// attachment tracks whether tokens still belong to the innermost command, e.g. the bounds of \sum or the
// argument of \sqrt
type attachment int

const (
	detached attachment = iota
	attached            // after the command or one of its arguments
	bound               // after _ or ^, the next token is the bound
	optional            // inside [...] right after the command
)

// equation holds the state of a single payload rendering.
type equation struct {
	*Renderer

	input    string
	out      Accumulator
	commands CommandStack
	envs     EnvironmentStack
	skip     consumed
	scope    attachment
	last     Token
}

func (r *Renderer) newEquation(input string) *equation {
	return &equation{Renderer: r, input: input}
}

// Equation renders a math payload, the text between math delimiters, into a phrase.
func (r *Renderer) Equation(payload string) string {
	e := r.newEquation(payload)
	e.render()

	return e.out.String()
}

func (e *equation) render() {
	tokens := NewTokenizer(MathTable, e.input)
	for {
		tok, err := tokens.Token()
		if err != nil {
			return
		}

		if e.skip.covers(tok.Start) {
			continue
		}

		argument := e.scope == bound || e.scope == optional
		if !e.attach(tok) {
			e.close()
		}

		e.token(tok, argument)

		if !isBlank(tok.Text) {
			e.last = tok
		}
	}
}

// attach reports whether tok still belongs to the scope of the open command and advances the scope.
func (e *equation) attach(tok Token) bool {
	switch e.scope {
	case detached:
		return false
	case optional:
		if tok.Kind == BracketKind && tok.Text == "]" {
			e.scope = attached
		}

		return true
	case bound:
		if !isBlank(tok.Text) {
			e.scope = attached
		}

		return true
	}

	switch {
	case isBlank(tok.Text), tok.Kind == GroupKind:
		return true
	case tok.Kind == OperatorKind && (tok.Text == "_" || tok.Text == "^"):
		e.scope = bound
		return true
	case tok.Kind == BracketKind && tok.Text == "[":
		e.scope = optional
		return true
	}

	return false
}

func (e *equation) open(name string) {
	e.commands.Push(name)
	e.scope = attached
}

func (e *equation) close() {
	if e.scope == detached {
		return
	}

	e.commands.Pop()
	e.scope = detached
}

func (e *equation) token(tok Token, argument bool) {
	switch tok.Kind {
	case NumberKind, BracketKind:
		e.out.Add(tok.Text)
	case IdentifierKind:
		e.identifier(tok)
	case OperatorKind:
		if tok.Text == "_" && Categorize(e.commands.Top()) == Limit {
			return
		}

		e.out.Add(e.operator(e.input, tok.Start))
	case OpenBraceKind, CloseBraceKind:
		e.out.Add(e.brace(tok.Text[1:]))
	case ColonKind:
	case FractionKind:
		e.fraction(tok, argument)
	case GroupKind:
		e.group(tok)
	case ColumnSeparatorKind:
		if e.envs.InArray() {
			e.out.Add("for")
		}
	case RowSeparatorKind:
		if e.envs.InArray() {
			e.out.Add("and")
		} else {
			e.out.Add(" \n\n newline ")
		}
	case CommandKind:
		e.command(tok, argument)
	case OtherKind:
		if top := e.commands.Top(); top != "" && strings.Contains(top, tok.Text) {
			return
		}

		e.out.Add(tok.Text)
	}
}

func (e *equation) identifier(tok Token) {
	if e.symbols.Has(tok.Text) && tok.Text == e.commands.Top() {
		return
	}

	if e.before(tok.Start) == '^' && len(tok.Text) > 1 {
		for _, letter := range tok.Text {
			e.out.Add(uppercase(string(letter)))
		}

		return
	}

	if len(tok.Text) == 1 {
		e.out.Add(uppercase(tok.Text))
		return
	}

	e.out.Add(tok.Text)
}

// operator resolves the phrase of the special character s[i] using the active command and the characters
// around it. Lookups past either end of s fall back to the default phrase.
func (e *equation) operator(s string, i int) string {
	char := s[i]
	category := Categorize(e.commands.Top())

	switch {
	case category == BigOperator && char == '^':
		if e.commands.Raised() {
			return "superscript"
		}

		e.commands.Raise()
		return "to"
	case category == BigOperator && char == '_':
		if e.commands.Raised() || pairedBound(s, i) {
			return "from"
		}

		return "over"
	case category == BigOperator:
		return e.specials.Phrase(char)
	case char == '^' && strings.Contains(s[i+1:min(i+8, len(s))], "prime"):
		return ""
	case category == Logarithm && char == '_':
		return "base"
	case char == '_' && i > 0 && s[i-1] == '|':
		return ""
	case char == '|' && i+1 < len(s) && s[i+1] == '_':
		return "evaluated at"
	}

	return e.specials.Phrase(char)
}

// pairedBound reports whether the lower bound starting after s[i] is followed by an upper bound.
func pairedBound(s string, i int) bool {
	end := argumentEnd(s, i+1)
	return end < len(s) && s[end] == '^'
}

// argumentEnd returns offset just past the argument starting at start: a brace group, a command or a
// single character.
func argumentEnd(s string, start int) int {
	if start >= len(s) {
		return len(s)
	}

	switch s[start] {
	case '{':
		if span, ok := NextBalanced(s, start); ok {
			return span.End
		}

		return len(s)
	case '\\':
		end := start + 1
		for end < len(s) && isLetter(s[end]) {
			end++
		}

		if end == start+1 && end < len(s) {
			end++
		}

		return end
	}

	return start + 1
}

func (e *equation) brace(char string) string {
	if phrase, ok := e.symbols.Phrase(char); ok {
		return phrase
	}

	return char
}

func (e *equation) fraction(tok Token, argument bool) {
	if !argument {
		e.open("frac")
	}

	first, ok := nextArgument(e.input, tok.End)
	if !ok {
		e.out.Add(e.translator.Phrase(tok.Text[1:], false))
		return
	}

	num := join(e.walk(ParseGroup(first.Content)))

	second, ok := nextArgument(e.input, first.End)
	if !ok {
		e.out.Add("fraction with numerator " + num + " end fraction")
		e.skip.mark(tok.End, first.End)
		return
	}

	den := join(e.walk(ParseGroup(second.Content)))

	e.out.Add(fraction(num, den))
	e.skip.mark(tok.End, second.End)
}

// nextArgument returns the argument following offset, blanks skipped: a balanced brace group, a command
// or a single character.
func nextArgument(s string, offset int) (Span, bool) {
	start := skipBlanks(s, offset)
	if start >= len(s) {
		return Span{}, false
	}

	if s[start] == '{' {
		return NextBalanced(s, start)
	}

	end := argumentEnd(s, start)
	return Span{Content: s[start:end], End: end}, true
}

// fraction reads short numerators and denominators as "a over b", everything else in the long form.
func fraction(num, den string) string {
	if len(num) < 3 && len(den) < 3 {
		return num + " over " + den + " end fraction"
	}

	return "fraction with numerator " + num + " and denominator " + den + " end fraction"
}

func (e *equation) group(tok Token) {
	top := e.commands.Top()
	category := Categorize(top)

	if category == Administrative || tok.Text == "{equation}" {
		return
	}

	arg := tok.Text[1 : len(tok.Text)-1]
	if arrays[arg] {
		e.environment(tok, arg, top == "end")
		return
	}

	prev := e.before(tok.Start)
	wrap := prev == '^' || prev == '_' || category == Radical

	if wrap {
		e.out.Add("(")
	}

	switch {
	case strings.Contains(arg, "{"):
		span, ok := NextBalanced(e.input, tok.Start)
		if !ok {
			e.out.Add(e.leaf(arg))
			break
		}

		e.out.Add(e.walk(ParseGroup(span.Content))...)
		e.skip.mark(tok.End, span.End)
	case category == Accent:
		e.out.InsertBeforeLast(e.translator.Translate(arg))
	default:
		e.out.Add(e.specials.Replace(e.translator.Translate(arg)))
	}

	if wrap {
		e.out.Add(")")
	}
}

func (e *equation) environment(tok Token, name string, end bool) {
	if end {
		e.out.Add(" End " + name + " environment. ")
		e.envs.Pop(name)
		return
	}

	e.envs.Push(name)
	e.out.Add(" Begin " + name + " environment. ")

	// array carries a column spec which has nothing to say
	if name == "array" && e.after(tok.End) == '{' {
		if spec, ok := NextBalanced(e.input, tok.End); ok {
			e.skip.mark(tok.End, spec.End)
		}
	}
}

func (e *equation) command(tok Token, argument bool) {
	name := tok.Text[1:]
	if name == "" {
		return
	}

	if !argument {
		e.open(name)
	}

	if Categorize(name).Silent() {
		return
	}

	if name == "prime" && e.last.Kind == OperatorKind && e.last.Text == "^" {
		e.out.Retract()
	}

	e.out.Add(e.translator.Phrase(name, e.after(tok.End) == '^'))
}

func (e *equation) before(offset int) byte {
	if offset <= 0 || offset > len(e.input) {
		return 0
	}

	return e.input[offset-1]
}

func (e *equation) after(offset int) byte {
	if offset < 0 || offset >= len(e.input) {
		return 0
	}

	return e.input[offset]
}

// uppercase tags every capital letter of s.
func uppercase(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsUpper(r) {
			b.WriteString(" uppercase ")
			b.WriteRune(r)
			b.WriteString(" ")
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
