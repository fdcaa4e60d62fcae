package alttex

// Category groups commands by how they influence rendering.
type Category int

const (
	Translatable Category = iota
	Structural
	Administrative
	BigOperator
	Accent
	Fraction
	Radical
	Limit
	Logarithm
	Trigonometric
)

var categories = map[string]Category{
	"left":      Structural,
	"right":     Structural,
	"rm":        Structural,
	"begin":     Structural,
	"end":       Structural,
	"text":      Structural,
	"nonumber":  Structural,
	"textbf":    Structural,
	"textit":    Structural,
	"emph":      Structural,
	"underline": Structural,
	"quad":      Structural,
	"qquad":     Structural,
	",":         Structural,
	":":         Structural,
	";":         Structural,
	"!":         Structural,
	" ":         Structural,

	"label":  Administrative,
	"hspace": Administrative,

	"sum":  BigOperator,
	"int":  BigOperator,
	"prod": BigOperator,

	"dot":  Accent,
	"ddot": Accent,
	"hat":  Accent,

	"frac":  Fraction,
	"dfrac": Fraction,

	"sqrt": Radical,
	"lim":  Limit,
	"log":  Logarithm,

	"sin":    Trigonometric,
	"cos":    Trigonometric,
	"tan":    Trigonometric,
	"arcsin": Trigonometric,
	"arccos": Trigonometric,
	"arctan": Trigonometric,
	"sinh":   Trigonometric,
	"cosh":   Trigonometric,
	"tanh":   Trigonometric,
	"cot":    Trigonometric,
	"sec":    Trigonometric,
	"coth":   Trigonometric,
}

// Categorize returns category of a command name given without the backslash.
func Categorize(name string) Category {
	if c, ok := categories[name]; ok {
		return c
	}

	return Translatable
}

// Silent reports whether commands of this category never produce a phrase of their own.
func (c Category) Silent() bool {
	return c == Structural || c == Administrative
}

func (c Category) String() string {
	switch c {
	case Structural:
		return "structural"
	case Administrative:
		return "administrative"
	case BigOperator:
		return "big operator"
	case Accent:
		return "accent"
	case Fraction:
		return "fraction"
	case Radical:
		return "radical"
	case Limit:
		return "limit"
	case Logarithm:
		return "logarithm"
	case Trigonometric:
		return "trigonometric"
	default:
		return "translatable"
	}
}
