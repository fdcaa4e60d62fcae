package alttex

import "strings"

// String writes group tree back as LaTeX source. Words inside a group are separated by a single space.
func String(node *Node) string {
	if node == nil {
		return ""
	}

	if node.Kind == TextNode {
		return node.Data
	}

	parts := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		if child.Kind == GroupNode {
			parts = append(parts, "{"+String(child)+"}")
			continue
		}

		parts = append(parts, child.Data)
	}

	return strings.Join(parts, " ")
}
