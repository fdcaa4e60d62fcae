package alttex_test

import (
	"testing"

	alttex "github.com/NicholaCharlton/AltTeX-Personal"
)

func TestGroup(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		render string
	}{
		{
			name:   "spaced superscript group gets parentheses",
			input:  "{x^{n + 1}}",
			render: "x superscript ( n + 1 )",
		},
		{
			name:   "single word superscript group does not",
			input:  "{x^{n+1}}",
			render: "x superscript n+1",
		},
		{
			name:   "superscript wraps a plain word",
			input:  "{x^ ab}",
			render: "x superscript ( ab )",
		},
		{
			name:   "subscript never wraps a plain word",
			input:  "{x_ ab}",
			render: "x subscript ab",
		},
		{
			name:   "subscript wraps a group",
			input:  "{a_ {i + 1}}",
			render: "a subscript ( i + 1 )",
		},
		{
			name:   "square root wraps next sibling",
			input:  `\sqrt{x} y`,
			render: "square root of ( x ) y",
		},
		{
			name:   "short fraction",
			input:  `\frac{1}{2}`,
			render: "1 over 2 end fraction",
		},
		{
			name:   "long fraction",
			input:  `\dfrac{a + b}{c}`,
			render: "fraction with numerator a + b and denominator c end fraction",
		},
		{
			name:   "fraction with a prefix",
			input:  `2\frac{1}{2}`,
			render: "2 1 over 2 end fraction",
		},
		{
			name:   "fraction with a glued command argument",
			input:  `{\frac\pi 2}`,
			render: "pi over 2 end fraction",
		},
		{
			name:   "fraction with glued arguments",
			input:  `{\frac\alpha\beta}`,
			render: "fraction with numerator alpha and denominator beta end fraction",
		},
		{
			name:   "glued digits and trailing text",
			input:  `\frac12x`,
			render: "1 over 2 end fraction x",
		},
		{
			name:   "fraction missing an argument",
			input:  `\frac{a}`,
			render: "fraction a",
		},
		{
			name:   "capitals are tagged",
			input:  "{A + b}",
			render: "uppercase A + b",
		},
		{
			name:   "text is read literally",
			input:  `\text{if } x`,
			render: "if x",
		},
		{
			name:   "nested levels",
			input:  "{a^{b^{c d}}}",
			render: "a superscript ( b superscript ( c d ) )",
		},
	}

	renderer := alttex.New()

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := renderer.Group(tc.input)

			if got != tc.render {
				t.Errorf("Rendered group does not match:\nWANT:\n  %#v\nGOT:\n  %#v\n", tc.render, got)
			}
		})
	}
}
