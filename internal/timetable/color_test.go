package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashStringStable(t *testing.T) {
	assert.Equal(t, HashString("2024A|12|CALCULO"), HashString("2024A|12|CALCULO"))
	assert.NotEqual(t, HashString("a"), HashString("b"))
}

func TestHashStringKnownValues(t *testing.T) {
	// Base-31 polynomial over UTF-16 code units.
	assert.Equal(t, int32(97), HashString("a"))
	assert.Equal(t, int32(97*31+98), HashString("ab"))
}

func TestPaletteColorMembership(t *testing.T) {
	c := PaletteColor("2024A|12|CALCULO")
	assert.Contains(t, Palette, c)
	assert.Equal(t, c, PaletteColor("2024A|12|CALCULO"))
}

func TestResolveStyleModes(t *testing.T) {
	def := ResolveStyle("id", "title", "mk", false, false, nil)
	assert.Contains(t, Palette, def.Fill)

	pastel := ResolveStyle("id", "title", "mk", true, false, nil)
	assert.NotEmpty(t, pastel.Fill)
	assert.NotEqual(t, def.Fill, pastel.Fill)

	mono := ResolveStyle("id", "title", "mk", false, true, nil)
	assert.Equal(t, mono.Fill[1:3], mono.Fill[3:5])
	assert.Equal(t, mono.Fill[3:5], mono.Fill[5:7])
}

func TestResolveStyleOverrideWins(t *testing.T) {
	ov := &Style{Fill: "#123456"}
	st := ResolveStyle("id", "title", "mk", false, false, ov)
	assert.Equal(t, "#123456", st.Fill)
	assert.Equal(t, "#123456", st.Border)
	assert.NotEmpty(t, st.Text)
}

func TestOverridesPrecedence(t *testing.T) {
	o := &StyleOverrides{
		Events:   map[string]Style{"e1": {Fill: "#111111"}},
		Subjects: map[string]Style{"m1": {Fill: "#222222"}},
	}

	assert.Equal(t, "#111111", o.Resolve("e1", "m1").Fill)
	assert.Equal(t, "#222222", o.Resolve("e2", "m1").Fill)
	assert.Nil(t, o.Resolve("e2", "m2"))

	var none *StyleOverrides
	assert.Nil(t, none.Resolve("e1", "m1"))
}
