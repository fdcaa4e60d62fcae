package alttex

type NodeKind int

const (
	TextNode NodeKind = iota
	GroupNode
)

// Node is an element of a brace group tree: a whitespace separated word or a {...} group.
type Node struct {
	Kind     NodeKind
	Data     string
	Children []*Node
}

// Size is the number of characters of a word or the number of children of a group.
func (n *Node) Size() int {
	if n.Kind == TextNode {
		return len(n.Data)
	}

	return len(n.Children)
}

// EndsWith reports whether a word ends with char, or a group ends with a word consisting of char only.
func (n *Node) EndsWith(char byte) bool {
	if n.Kind == TextNode {
		return len(n.Data) > 0 && n.Data[len(n.Data)-1] == char
	}

	if len(n.Children) == 0 {
		return false
	}

	last := n.Children[len(n.Children)-1]
	return last.Kind == TextNode && last.Data == string(char)
}

// Is reports whether node is a word equal to the given command.
func (n *Node) Is(command string) bool {
	return n.Kind == TextNode && n.Data == "\\"+command
}
