package alttex

import "strings"

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// isBlank reports whether s is empty or whitespace only
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// skipBlanks moves offset past spaces and tabs, newlines are not skipped
func skipBlanks(s string, offset int) int {
	for offset < len(s) && (s[offset] == ' ' || s[offset] == '\t') {
		offset++
	}

	return offset
}

func skipSpaces(s string, offset int) int {
	for offset < len(s) && isSpace(s[offset]) {
		offset++
	}

	return offset
}
