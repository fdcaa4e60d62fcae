package alttex

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoDocumentBegin is returned when there is no place to declare the todonotes package.
var ErrNoDocumentBegin = errors.New("document has no \\begin{document}")

const todoPackage = "\\usepackage[color=white, bordercolor=black]{todonotes}\n"

// delimiters capture the payload of inline math
var delimiters = []*regexp.Regexp{
	regexp.MustCompile(`\$\$(.*?)\$\$`),
	regexp.MustCompile(`\$(.*?)\$`),
	regexp.MustCompile(`\\begin\{math\}(.*?)\\end\{math\}`),
	regexp.MustCompile(`\\\((.*?)\\\)`),
	regexp.MustCompile(`\\\[(.*?)\\\]`),
}

var digits = regexp.MustCompile(`^[0-9]+$`)

// Annotate wraps a phrase into the note inserted after math and tables.
func Annotate(phrase string) string {
	return "\\todo[inline]{begin alt text " + phrase + " end alt text}"
}

// Document inserts alt text after every math payload, equation, align and tabular environment of doc. The
// original markup is kept as is. An environment without its end marker is left as plain text.
func (r *Renderer) Document(doc string) string {
	var out strings.Builder
	out.Grow(len(doc))

	tokens := NewTokenizer(DocumentTable, doc)
	for {
		tok, err := tokens.Token()
		if err != nil {
			break
		}

		switch tok.Kind {
		case MathKind:
			if tok.Start > 0 && doc[tok.Start-1] == '\\' && tok.Text[0] == '$' {
				// escaped dollar sign
				out.WriteByte('$')
				tokens.Seek(tok.Start + 1)
				continue
			}

			out.WriteString(tok.Text)

			payload := mathPayload(tok.Text)
			if payload == "" || digits.MatchString(payload) {
				continue
			}

			out.WriteString(Annotate(r.Equation(payload)))
		case EquationKind, AlignKind, TabularKind:
			end := "\\end{" + environmentName(tok.Text) + "}"

			pos := strings.Index(doc[tok.End:], end)
			if pos < 0 {
				out.WriteString(tok.Text)
				continue
			}

			body := doc[tok.End : tok.End+pos]
			stop := tok.End + pos + len(end)

			out.WriteString(doc[tok.Start:stop])

			if tok.Kind == TabularKind {
				out.WriteString(Annotate(r.Table(body)))
			} else {
				out.WriteString(Annotate(r.Equation(body)))
			}

			tokens.Seek(stop)
		default:
			out.WriteString(tok.Text)
		}
	}

	return out.String()
}

// mathPayload strips delimiters of an inline math token
func mathPayload(text string) string {
	for _, d := range delimiters {
		if m := d.FindStringSubmatch(text); m != nil && len(m[0]) == len(text) {
			return m[1]
		}
	}

	return ""
}

// environmentName extracts name out of \begin{name}
func environmentName(begin string) string {
	start := strings.IndexByte(begin, '{')
	end := strings.LastIndexByte(begin, '}')
	if start < 0 || end <= start {
		return ""
	}

	return begin[start+1 : end]
}

// IncludeTodoPackage declares the todonotes package right before \begin{document}, unless the document
// already uses it.
func IncludeTodoPackage(doc string) (string, error) {
	if strings.Contains(doc, "{todonotes}") {
		return doc, nil
	}

	pos := strings.Index(doc, "\\begin{document}")
	if pos < 0 {
		return doc, ErrNoDocumentBegin
	}

	return doc[:pos] + todoPackage + doc[pos:], nil
}
