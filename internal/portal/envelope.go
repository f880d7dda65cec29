package portal

import (
	"encoding/json"
	"regexp"
	"strings"

	appErrors "github.com/udecupos/udecupos-api/pkg/errors"
)

// The portal answers ajax calls with a JavaScript statement of the form
//
//	var res = '<escaped payload>';
//
// where the payload, once unescaped, is JSON. There is no public API; this
// envelope is the only wire format the portal speaks.

var envelopeRe = regexp.MustCompile(`var\s+res\s*=\s*'([\s\S]*?)';`)

// Field describes one form field refreshed by an ajax call.
type Field struct {
	Row      string `json:"row"`
	FldName  string `json:"fldName"`
	FldType  string `json:"fldType"`
	NumLinha string `json:"numLinha"`
	OptList  string `json:"optList"`
}

// Payload is the decoded envelope body.
type Payload struct {
	FldList []Field `json:"fldList"`
}

// DecodeEnvelope extracts and parses the JSON payload embedded in a portal
// response body (already decoded from Latin-1 to text).
//
// The escape reversal order is fixed and intentionally lossy for stray
// backslashes; it mirrors what the portal's own client-side code does. A
// leading colon before the JSON body is an observed portal quirk and is
// stripped defensively.
func DecodeEnvelope(body string) (*Payload, error) {
	m := envelopeRe.FindStringSubmatch(body)
	if m == nil {
		return nil, appErrors.ErrMalformedEnvelope
	}

	txt := unescapeJSLiteral(m[1])
	txt = strings.TrimSpace(txt)
	if strings.HasPrefix(txt, ":") {
		txt = strings.TrimSpace(txt[1:])
	}

	var payload Payload
	if err := json.Unmarshal([]byte(txt), &payload); err != nil {
		return nil, appErrors.InvalidPayload(err, txt)
	}
	return &payload, nil
}

// unescapeJSLiteral reverses single-quoted JavaScript string escaping. The
// replacements are sequential, not single-pass: `\\n` becomes `\n` on the
// first pass and a newline on the second, matching the portal contract.
func unescapeJSLiteral(s string) string {
	s = strings.ReplaceAll(s, `\\`, `\`)
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\r`, "\r")
	s = strings.ReplaceAll(s, `\t`, "\t")
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\'`, "'")
	return s
}

// Find returns the field descriptor named fldName, or nil when the payload
// does not carry it. Absence is a valid "no data" outcome, not an error.
func (p *Payload) Find(fldName string) *Field {
	if p == nil {
		return nil
	}
	for i := range p.FldList {
		if p.FldList[i].FldName == fldName {
			return &p.FldList[i]
		}
	}
	return nil
}
