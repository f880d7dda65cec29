package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udecupos/udecupos-api/internal/models"
)

func testSelection() Selection {
	return Selection{
		Periodo:      "77",
		Programa:     "12",
		Materia:      "900",
		MateriaLabel: "CALCULO I",
		Modalidad:    "TEORICA",
		Grupo: models.Grupo{
			Codigo:    "10",
			Grupo:     "1",
			Ocupacion: "15/20",
			Docentes:  "PEREZ",
			ParsedSlots: []models.Slot{
				{Dia: "Lunes", Desde: "10", Hasta: "11", AmPm: "AM", Aula: "A204", Label: "Lunes: 10-11AM (A204)"},
				{Dia: "Lunes", Desde: "11", Hasta: "12", AmPm: "PM", Aula: "A204", Label: "Lunes: 11-12PM (A204)"},
			},
		},
	}
}

func TestBuildEvents(t *testing.T) {
	events := BuildEvents([]Selection{testSelection()}, BuildOptions{})

	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, "Lunes", ev.Dia)
	assert.Equal(t, 600, ev.StartMin)
	assert.Equal(t, 720, ev.EndMin)
	assert.Equal(t, "CALCULO I", ev.Title)
	assert.Equal(t, "G1 T", ev.Subtitle)
	assert.Equal(t, "A204", ev.Location)
	assert.Equal(t, "77|12|900", ev.MateriaKey)
	assert.Equal(t, "77|12|900|TEORICA|10-Lunes-10-12", ev.ID)
	assert.Contains(t, Palette, ev.Style.Fill)
}

func TestBuildEventsModalityLetter(t *testing.T) {
	sel := testSelection()
	sel.Modalidad = "PRÁCTICA"
	events := BuildEvents([]Selection{sel}, BuildOptions{})
	require.Len(t, events, 1)
	assert.Equal(t, "G1 P", events[0].Subtitle)

	sel.Modalidad = "LABORATORIO"
	events = BuildEvents([]Selection{sel}, BuildOptions{})
	assert.Equal(t, "G1 P", events[0].Subtitle)

	sel.Modalidad = "OTRA"
	events = BuildEvents([]Selection{sel}, BuildOptions{})
	assert.Equal(t, "G1", events[0].Subtitle)
}

func TestBuildEventsFallbackTitle(t *testing.T) {
	sel := testSelection()
	sel.MateriaLabel = ""
	events := BuildEvents([]Selection{sel}, BuildOptions{})
	require.Len(t, events, 1)
	assert.Equal(t, "900", events[0].Title)
}

func TestBuildEventsOverrideApplied(t *testing.T) {
	sel := testSelection()
	events := BuildEvents([]Selection{sel}, BuildOptions{
		Overrides: &StyleOverrides{Subjects: map[string]Style{"77|12|900": {Fill: "#abcdef"}}},
	})
	require.Len(t, events, 1)
	assert.Equal(t, "#abcdef", events[0].Style.Fill)
}

func TestBuildEventsDropsBackwardRanges(t *testing.T) {
	sel := testSelection()
	sel.Grupo.ParsedSlots = []models.Slot{
		{Dia: "Lunes", Desde: "x", Hasta: "y", AmPm: "", Label: "sin horas"},
	}
	events := BuildEvents([]Selection{sel}, BuildOptions{})
	assert.Empty(t, events)
}
