package alttex

// Span is the shortest brace-balanced substring starting at some offset, End is the offset just past it.
type Span struct {
	Content string
	End     int
}

var pairs = map[byte]byte{'(': ')', '{': '}', '[': ']'}

// Balanced reports whether curly braces in s are properly nested, other characters are ignored.
func Balanced(s string) bool {
	var braces []byte
	for i := 0; i < len(s); i++ {
		if s[i] == '{' || s[i] == '}' {
			braces = append(braces, s[i])
		}
	}

	if len(braces)%2 != 0 {
		return false
	}

	var stack []byte
	for _, char := range braces {
		if _, ok := pairs[char]; ok {
			stack = append(stack, char)
			continue
		}

		if len(stack) == 0 {
			return false
		}

		open := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if pairs[open] != char {
			return false
		}
	}

	return len(stack) == 0
}

// NextBalanced grows a window from start one character at a time and returns the first window which is
// balanced. It returns false if the input ends before balance is reached.
func NextBalanced(s string, start int) (Span, bool) {
	if start < 0 || start >= len(s) {
		return Span{}, false
	}

	for end := start + 1; end <= len(s); end++ {
		if Balanced(s[start:end]) {
			return Span{Content: s[start:end], End: end}, true
		}
	}

	return Span{}, false
}
