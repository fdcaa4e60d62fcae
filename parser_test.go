package alttex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	alttex "github.com/NicholaCharlton/AltTeX-Personal"
)

func TestParser(t *testing.T) {
	group := func(children ...*alttex.Node) *alttex.Node {
		return &alttex.Node{Kind: alttex.GroupNode, Children: children}
	}

	text := func(t string) *alttex.Node {
		return &alttex.Node{Kind: alttex.TextNode, Data: t}
	}

	tt := []struct {
		name   string
		input  string
		output *alttex.Node
	}{
		{
			name:   "words",
			input:  "a + b",
			output: group(text("a"), text("+"), text("b")),
		},
		{
			name:   "single group is unwrapped",
			input:  "{x^{n + 1}}",
			output: group(text("x^"), group(text("n"), text("+"), text("1"))),
		},
		{
			name:   "command followed by groups",
			input:  `\frac{a}{b}`,
			output: group(text(`\frac`), group(text("a")), group(text("b"))),
		},
		{
			name:   "escaped braces stay in the word",
			input:  `\{x\} y`,
			output: group(text(`\{x\}`), text("y")),
		},
		{
			name:   "unclosed group ends with input",
			input:  "a {b c",
			output: group(text("a"), group(text("b"), text("c"))),
		},
		{
			name:   "stray closing brace is dropped",
			input:  "a } b",
			output: group(text("a"), text("b")),
		},
		{
			name:   "sibling groups are not unwrapped",
			input:  "{a}{b}",
			output: group(group(text("a")), group(text("b"))),
		},
		{
			name:   "empty input",
			input:  "",
			output: group(),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := alttex.ParseGroup(tc.input)

			if diff := cmp.Diff(tc.output, got); diff != "" {
				t.Errorf("Group tree does not match (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNode(t *testing.T) {
	tree := alttex.ParseGroup(`x^ {n + 1} \sqrt`)
	children := tree.Children

	if !children[0].EndsWith('^') {
		t.Errorf("%q must end with ^", children[0].Data)
	}

	if got := children[1].Size(); got != 3 {
		t.Errorf("Group size: want 3, got %d", got)
	}

	if !children[2].Is("sqrt") {
		t.Errorf("%q must be \\sqrt", children[2].Data)
	}

	if got := alttex.String(tree); got != `x^ {n + 1} \sqrt` {
		t.Errorf("Unexpected source: %q", got)
	}
}
