package portal

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/charmap"
)

// Option is one decoded <option> tag: the portal's internal identifier plus
// its raw (re-encoded) label.
type Option struct {
	Code string
	Text string
}

// The portal sometimes serialises closing tags as `<\/option>` with a literal
// backslash. Repaired before HTML parsing.
var brokenCloseRe = regexp.MustCompile(`<\\\s*/\s*`)

// ExtractOptions parses the named field's optList HTML fragment into options,
// preserving document order. Options with an empty value attribute are
// skipped. A missing field yields an empty, non-error result.
func ExtractOptions(payload *Payload, fldName string) ([]Option, error) {
	fld := payload.Find(fldName)
	if fld == nil {
		return nil, nil
	}

	html := brokenCloseRe.ReplaceAllString(fld.OptList, "</")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<select>" + html + "</select>"))
	if err != nil {
		return nil, err
	}

	var opts []Option
	doc.Find("option").Each(func(_ int, sel *goquery.Selection) {
		value := strings.TrimSpace(sel.AttrOr("value", ""))
		if value == "" {
			return
		}
		opts = append(opts, Option{Code: value, Text: NormalizeText(sel.Text())})
	})
	return opts, nil
}

// NormalizeText reinterprets a string decoded as Latin-1 back into UTF-8.
// The portal serves UTF-8 Spanish text mislabeled as ISO-8859-1, so after the
// body-level Latin-1 decode every multi-byte sequence surfaces as mojibake;
// re-encoding the code points as bytes and reading them as UTF-8 restores the
// original text. Falls back to the trimmed input when the round trip is not
// possible.
func NormalizeText(s string) string {
	raw, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil || !utf8.ValidString(raw) {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(raw)
}
