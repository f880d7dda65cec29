package timetable

import (
	"fmt"
	"unicode/utf16"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Style is the resolved visual treatment of one event, shared by every
// export format so a subject keeps its color across PNG, XLSX and PDF.
type Style struct {
	Fill   string `json:"fill"`
	Border string `json:"border"`
	Text   string `json:"text"`
}

// Palette holds the fixed subject colors, indexed by hash.
var Palette = []string{
	"#60a5fa", "#f59e0b", "#34d399", "#f472b6",
	"#a78bfa", "#f87171", "#22d3ee", "#84cc16",
}

// HashString computes a polynomial hash with base 31 over the string's
// UTF-16 code units, wrapping in 32 bits. Stable across runs so colors
// never shuffle between requests.
func HashString(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}
	return h
}

func absHash(s string) int {
	h := HashString(s)
	if h < 0 {
		h = -h
	}
	return int(h)
}

// PaletteColor picks the palette entry for a subject key.
func PaletteColor(materiaKey string) string {
	return Palette[absHash(materiaKey)%len(Palette)]
}

// PastelFill derives a soft background and border from an event identity,
// spreading hues over the full wheel.
func PastelFill(id, title string) (fill, border string) {
	hue := float64(absHash(id+title) % 360)
	fill = hslHex(hue, 0.70, 0.88)
	border = hslHex(hue, 0.55, 0.70)
	return fill, border
}

// MonoFill derives a grayscale background and border for printer-friendly
// output, varying lightness per subject so adjacent blocks stay separable.
func MonoFill(materiaKey string) (fill, border string) {
	l := 82 + absHash(materiaKey)%10
	bl := l - 18
	if bl < 55 {
		bl = 55
	}
	fill = hslHex(0, 0, float64(l)/100)
	border = hslHex(0, 0, float64(bl)/100)
	return fill, border
}

func hslHex(h, s, l float64) string {
	return colorful.Hsl(h, s, l).Hex()
}

// ResolveStyle computes an event's colors from its identity and the display
// options, unless the override already pinned a fill.
func ResolveStyle(id, title, materiaKey string, pastel, monochrome bool, override *Style) Style {
	if override != nil && override.Fill != "" {
		st := *override
		if st.Border == "" {
			st.Border = st.Fill
		}
		if st.Text == "" {
			st.Text = "#1f2937"
		}
		return st
	}

	switch {
	case monochrome:
		fill, border := MonoFill(materiaKey)
		return Style{Fill: fill, Border: border, Text: "#111827"}
	case pastel:
		fill, border := PastelFill(id, title)
		return Style{Fill: fill, Border: border, Text: "#1f2937"}
	default:
		fill := PaletteColor(materiaKey)
		return Style{Fill: fill, Border: darken(fill), Text: "#ffffff"}
	}
}

func darken(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	l -= 0.15
	if l < 0 {
		l = 0
	}
	return colorful.Hsl(h, s, l).Hex()
}

// HexRGB splits a #rrggbb string into byte components for raster drawing.
func HexRGB(hex string) (r, g, b uint8, err error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("color %q: %w", hex, err)
	}
	cr, cg, cb := c.RGB255()
	return cr, cg, cb, nil
}
