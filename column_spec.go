package alttex

import (
	"regexp"
	"strconv"
	"strings"
)

var whitespaces = regexp.MustCompile("[ \n\t\r]+")

const maxColumns = 256

type ColumnSpec struct {
	BorderLeft  bool   // column should have left border
	BorderRight bool   // column should have right border
	Align       string // column alignment: c, l, r, X or p, m, b for paragraph columns
	Width       string // width of paragraph columns
}

// ColumnSpecs parses column spec in tabular environment, *{n}{...} repetitions are expanded and @{}, !{},
// >{} and <{} decorations ignored.
func ColumnSpecs(raw string) (spec []ColumnSpec) {
	raw = expandColumns(whitespaces.ReplaceAllString(raw, "")) // remove all spaces since they don't have any meaning

	for pos := 0; pos < len(raw); pos++ {
		char := raw[pos]

		switch char {
		case '@', '!', '>', '<':
			if arg, ok := NextBalanced(raw, pos+1); ok {
				pos = arg.End - 1
			}
		case 'c', 'l', 'r', 'X':
			spec = append(spec, ColumnSpec{
				BorderLeft:  pos > 0 && raw[pos-1] == '|',
				BorderRight: pos < len(raw)-1 && raw[pos+1] == '|',
				Align:       string(char),
			})
		case 'p', 'm', 'b':
			column := ColumnSpec{BorderLeft: pos > 0 && raw[pos-1] == '|', Align: string(char)}
			if arg, ok := NextBalanced(raw, pos+1); ok && raw[pos+1] == '{' {
				column.Width = inner(arg.Content)
				pos = arg.End - 1
			}

			column.BorderRight = pos < len(raw)-1 && raw[pos+1] == '|'
			spec = append(spec, column)
		}
	}

	return
}

// expandColumns replaces *{n}{cols} by n copies of cols
func expandColumns(raw string) string {
	for {
		pos := strings.Index(raw, "*{")
		if pos < 0 {
			return raw
		}

		count, ok := NextBalanced(raw, pos+1)
		if !ok || count.End >= len(raw) || raw[count.End] != '{' {
			return raw[:pos] + raw[pos+1:]
		}

		cols, ok := NextBalanced(raw, count.End)
		if !ok {
			return raw[:pos] + raw[pos+1:]
		}

		n, err := strconv.Atoi(inner(count.Content))
		if err != nil || n < 0 || n > maxColumns {
			n = 1
		}

		raw = raw[:pos] + strings.Repeat(inner(cols.Content), n) + raw[cols.End:]
	}
}

// inner strips the outer braces of a group
func inner(group string) string {
	if len(group) >= 2 && group[0] == '{' && group[len(group)-1] == '}' {
		return group[1 : len(group)-1]
	}

	return group
}
