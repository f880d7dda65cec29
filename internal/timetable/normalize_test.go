package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeTrailingMeridiemWraparound(t *testing.T) {
	// "9 - 1PM" means 9AM to 1PM: a PM range that would run backwards
	// really starts in the morning.
	start, end, ok := Range("9", "1", "Lunes: 9-1PM", "PM")
	require.True(t, ok)
	assert.Equal(t, 540, start)
	assert.Equal(t, 780, end)
}

func TestRangePlainPM(t *testing.T) {
	start, end, ok := Range("2", "4", "Martes: 2-4PM", "PM")
	require.True(t, ok)
	assert.Equal(t, 840, start)
	assert.Equal(t, 960, end)
}

func TestRangeAMWraparound(t *testing.T) {
	// "11 - 1AM" crossing noon: the end is really PM.
	start, end, ok := Range("11", "1", "Lunes: 11-1AM", "AM")
	require.True(t, ok)
	assert.Equal(t, 660, start)
	assert.Equal(t, 780, end)
}

func TestRangeWraparoundBeatsDurationHint(t *testing.T) {
	// "9 - 1PM (4 horas)" is still 9AM to 1PM: the duration hint is only
	// consulted when the wraparound fix leaves the range backwards.
	start, end, ok := Range("9", "1", "Lunes: 9-1PM (4 horas)", "PM")
	require.True(t, ok)
	assert.Equal(t, 540, start)
	assert.Equal(t, 780, end)
}

func TestRangeDurationHint(t *testing.T) {
	start, end, ok := Range("10", "10", "Sábado: 10-10 (2 horas)", "")
	require.True(t, ok)
	assert.Equal(t, 600, start)
	assert.Equal(t, 720, end)
}

func TestRangeDurationHintLiteralBackwards(t *testing.T) {
	start, end, ok := Range("10", "8", "Taller (3 horas)", "")
	require.True(t, ok)
	assert.Equal(t, 600, start)
	assert.Equal(t, 780, end)
}

func TestRangeBothMeridiemsInLabel(t *testing.T) {
	start, end, ok := Range("", "", "10:30 AM - 12:15 PM", "")
	require.True(t, ok)
	assert.Equal(t, 630, start)
	assert.Equal(t, 735, end)
}

func TestRangeEndMeridiemOnly(t *testing.T) {
	start, end, ok := Range("", "", "11 - 1 PM", "")
	require.True(t, ok)
	assert.Equal(t, 660, start)
	assert.Equal(t, 780, end)
}

func TestRangeLiteralFallback(t *testing.T) {
	start, end, ok := Range("14", "16", "", "")
	require.True(t, ok)
	assert.Equal(t, 840, start)
	assert.Equal(t, 960, end)
}

func TestRangeUnresolvable(t *testing.T) {
	_, _, ok := Range("", "", "sin horas", "")
	assert.False(t, ok)
}

func TestMinutesToLabel(t *testing.T) {
	assert.Equal(t, "9AM", MinutesToLabel(540))
	assert.Equal(t, "1PM", MinutesToLabel(780))
	assert.Equal(t, "12PM", MinutesToLabel(720))
	assert.Equal(t, "12AM", MinutesToLabel(0))
	assert.Equal(t, "9:30AM", MinutesToLabel(570))
}
