package alttex

import "fmt"

type Kind int

const (
	InvalidKind Kind = iota

	// math payload tokens
	NumberKind
	IdentifierKind
	OperatorKind
	OpenBraceKind
	CloseBraceKind
	ColonKind
	BracketKind
	FractionKind
	GroupKind
	ColumnSeparatorKind
	RowSeparatorKind
	CommandKind
	OtherKind

	// document tokens
	NewlineKind
	SpaceKind
	WordKind
	MathKind
	EquationKind
	AlignKind
	TabularKind
)

var kindNames = map[Kind]string{
	InvalidKind:         "invalid",
	NumberKind:          "number",
	IdentifierKind:      "identifier",
	OperatorKind:        "operator",
	OpenBraceKind:       "open brace",
	CloseBraceKind:      "close brace",
	ColonKind:           "colon",
	BracketKind:         "bracket",
	FractionKind:        "fraction",
	GroupKind:           "group",
	ColumnSeparatorKind: "column separator",
	RowSeparatorKind:    "row separator",
	CommandKind:         "command",
	OtherKind:           "other",
	NewlineKind:         "newline",
	SpaceKind:           "space",
	WordKind:            "word",
	MathKind:            "math",
	EquationKind:        "equation",
	AlignKind:           "align",
	TabularKind:         "tabular",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Token is a classified slice of the input, Start and End are byte offsets into the original string.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q [%d:%d]", t.Kind, t.Text, t.Start, t.End)
}
