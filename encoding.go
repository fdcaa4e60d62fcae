package alttex

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Decode reads a document as UTF-8. A UTF-8 or UTF-16 byte order mark selects the encoding and is dropped,
// invalid sequences become U+FFFD and the text is normalized to NFC, so that composed and decomposed
// accents in the source compare equal.
func Decode(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())

	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", fmt.Errorf("unable to decode document: %w", err)
	}

	return norm.NFC.String(string(data)), nil
}
