package alttex

// Parser builds a group tree out of brace delimited text. Words are separated by whitespace and braces,
// escaped braces \{ and \} stay part of the word. Unclosed groups end with the input and stray closing
// braces are dropped.
type Parser struct {
	input string
	pos   int
}

func NewParser(input string) *Parser {
	return &Parser{input: input}
}

// ParseGroup parses s, when s is a single group its content becomes the root.
func ParseGroup(s string) *Node {
	return NewParser(s).Parse()
}

func (p *Parser) Parse() *Node {
	children := p.sequence(false)
	if len(children) == 1 && children[0].Kind == GroupNode {
		return children[0]
	}

	return &Node{Kind: GroupNode, Children: children}
}

// sequence reads nodes until the closing brace of the current group (when nested) or the end of input
func (p *Parser) sequence(nested bool) (children []*Node) {
	for p.pos < len(p.input) {
		char := p.input[p.pos]

		switch {
		case char == '{':
			p.pos++
			children = append(children, &Node{Kind: GroupNode, Children: p.sequence(true)})
		case char == '}':
			p.pos++
			if nested {
				return
			}
		case isSpace(char):
			p.pos++
		default:
			children = append(children, p.word())
		}
	}

	return
}

// word reads sequence of characters up to a space or an unescaped brace
func (p *Parser) word() *Node {
	start := p.pos
	for p.pos < len(p.input) {
		char := p.input[p.pos]

		if char == '\\' && p.pos+1 < len(p.input) && (p.input[p.pos+1] == '{' || p.input[p.pos+1] == '}') {
			p.pos += 2
			continue
		}

		if char == '{' || char == '}' || isSpace(char) {
			break
		}

		p.pos++
	}

	return &Node{Kind: TextNode, Data: p.input[start:p.pos]}
}
