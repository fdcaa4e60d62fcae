package alttex

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	hline   = regexp.MustCompile(`\\hline`)
	rules   = regexp.MustCompile(`\\hline|\\cline\{[^}]*\}`)
	spacing = regexp.MustCompile(`^\s*\[[^\]]*\]`)
	braces  = strings.NewReplacer("{", "", "}", "")
)

// Table renders the body of a tabular environment, the text between \begin{tabular} and \end{tabular}.
// Rows without a column separator are skipped.
func (r *Renderer) Table(body string) string {
	spec, rest := columnGroup(body)

	var phrase strings.Builder
	fmt.Fprintf(&phrase, "Table with %d columns and %d rows.", len(ColumnSpecs(spec)), strings.Count(body, `\\`))

	var rows []string
	for _, segment := range segments(rest) {
		if pos := strings.Index(segment, "\n\n"); pos >= 0 {
			segment = segment[pos+2:]
		}

		lines := strings.Split(segment, `\\`)
		for _, line := range lines[:len(lines)-1] {
			if !strings.Contains(line, "&") {
				continue
			}

			var cells []string
			for _, cell := range strings.Split(rules.ReplaceAllString(spacing.ReplaceAllString(line, ""), ""), "&") {
				cells = append(cells, r.cell(cell))
			}

			rows = append(rows, strings.Join(cells, " and "))
		}
	}

	for _, row := range rows {
		phrase.WriteString(" ")
		phrase.WriteString(row)
		phrase.WriteString(" next row")
	}

	return strings.TrimSuffix(phrase.String(), " next row")
}

// columnGroup splits off the column spec, skipping an optional [pos] argument in front of it.
func columnGroup(body string) (spec string, rest string) {
	pos := skipSpaces(body, 0)
	if pos < len(body) && body[pos] == '[' {
		if end := strings.IndexByte(body[pos:], ']'); end >= 0 {
			pos = skipSpaces(body, pos+end+1)
		}
	}

	if pos >= len(body) || body[pos] != '{' {
		return "", body
	}

	group, ok := NextBalanced(body, pos)
	if !ok {
		return "", body
	}

	return inner(group.Content), body[group.End:]
}

// segments cuts the body at horizontal rules, a body with less than two rules is a single segment.
func segments(body string) []string {
	ends := hline.FindAllStringIndex(body, -1)
	if len(ends) < 2 {
		return []string{body}
	}

	var out []string
	for i := 0; i+1 < len(ends); i++ {
		out = append(out, body[ends[i][1]:ends[i+1][1]])
	}

	return out
}

// cell renders one table cell: math is read out, remaining commands are translated and grouping braces
// dropped.
func (r *Renderer) cell(text string) string {
	text = r.translator.Translate(r.inline(strings.TrimSpace(text)))
	return join([]string{braces.Replace(text)})
}

// inline replaces every math payload in text by its phrase.
func (r *Renderer) inline(text string) string {
	for _, d := range delimiters {
		text = d.ReplaceAllStringFunc(text, func(m string) string {
			payload := d.FindStringSubmatch(m)[1]
			if payload == "" {
				return m
			}

			return r.Equation(payload)
		})
	}

	return text
}
