package alttex

import "strings"

// Group renders brace delimited text, such as a fraction argument, into a phrase.
func (r *Renderer) Group(s string) string {
	return join(r.newEquation(s).walk(ParseGroup(s)))
}

// walk renders children of a group in a scope of their own, commands met inside do not outlive the group.
func (e *equation) walk(group *Node) (out []string) {
	defer e.commands.Scope()()

	children := group.Children
	for i := 0; i < len(children); i++ {
		child, rest := children[i], children[i+1:]

		switch {
		case child.Is("text") && len(rest) > 0 && rest[0].Kind == GroupNode:
			out = append(out, String(rest[0]))
			i++
			continue
		case child.Is("sqrt") && len(rest) > 0:
			out = append(out, e.leaf(child.Data))
			out = append(out, e.parenthesize(rest[0])...)
			i++
			continue
		case isFraction(child):
			prefix, operands, tail := splitFraction(child.Data)

			need := 2 - len(operands)
			if need > len(rest) {
				break
			}

			operands = append(operands, rest[:need]...)

			if prefix != "" {
				out = append(out, e.leaf(prefix))
			}

			e.commands.Push("frac")
			num, den := join(e.node(operands[0])), join(e.node(operands[1]))
			e.commands.Pop()

			out = append(out, fraction(num, den))

			if tail != "" {
				out = append(out, e.leaf(tail))
			}

			i += need
			continue
		}

		out = append(out, e.node(child)...)

		if len(rest) > 0 && wrapsNext(child, rest[0]) {
			out = append(out, e.parenthesize(rest[0])...)
			i++
		}
	}

	return
}

func (e *equation) node(n *Node) []string {
	if n.Kind == GroupNode {
		return e.walk(n)
	}

	return []string{e.leaf(n.Data)}
}

func (e *equation) parenthesize(n *Node) []string {
	return append(append([]string{"("}, e.node(n)...), ")")
}

// wrapsNext reports whether the bound following a sub or superscript gets parentheses. The condition reads
// as (ends with ^) || (ends with _ && next is a group), so a superscript also wraps a plain word of two or
// more characters while a subscript never does.
func wrapsNext(n, next *Node) bool {
	if n.EndsWith('^') || n.EndsWith('_') && next.Kind == GroupNode {
		return next.Size() >= 2
	}

	return false
}

func isFraction(n *Node) bool {
	return n.Kind == TextNode && (strings.Contains(n.Data, "\\frac") || strings.Contains(n.Data, "\\dfrac"))
}

// splitFraction cuts a word holding a fraction command into the part in front of it, up to two bare
// arguments glued to the command (as in \frac12 or \frac\pi2) and whatever follows them.
func splitFraction(word string) (prefix string, operands []*Node, tail string) {
	i, name := strings.Index(word, "\\frac"), len("\\frac")
	if j := strings.Index(word, "\\dfrac"); j >= 0 && (i < 0 || j < i) {
		i, name = j, len("\\dfrac")
	}

	if i < 0 {
		return word, nil, ""
	}

	tail = word[i+name:]
	for len(operands) < 2 && tail != "" {
		end := argumentEnd(tail, 0)
		operands = append(operands, &Node{Kind: TextNode, Data: tail[:end]})
		tail = tail[end:]
	}

	return word[:i], operands, tail
}

// leaf renders a single word: commands are translated and operators resolved in context, plain words get
// capitals tagged and operators replaced by their default phrase.
func (e *equation) leaf(word string) string {
	if len(Commands(word)) == 0 {
		return e.specials.Replace(uppercase(word))
	}

	text := e.translator.Translate(word)

	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if e.specials.Has(text[i]) {
			b.WriteString(" " + e.operator(text, i) + " ")
			continue
		}

		b.WriteByte(text[i])
	}

	return b.String()
}
