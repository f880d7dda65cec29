package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udecupos/udecupos-api/internal/models"
)

func TestParseSectionFull(t *testing.T) {
	raw := "Grupo:1  15/20-->4-PASTO- Horario:Lunes:10 - 11AM(A204) Miércoles:10 - 11AM(A204) Docente(s):PEREZ JUAN, LOPEZ ANA"

	g := ParseSection("10", raw)

	assert.Equal(t, "10", g.Codigo)
	assert.Equal(t, raw, g.Nombre)
	assert.Equal(t, "1", g.Grupo)
	assert.Equal(t, "15/20", g.Ocupacion)
	assert.Equal(t, "4-PASTO", g.Sede)
	assert.Equal(t, "PEREZ JUAN, LOPEZ ANA", g.Docentes)

	require.Len(t, g.ParsedSlots, 2)
	assert.Equal(t, models.Slot{
		Dia: "Lunes", Desde: "10", Hasta: "11", AmPm: "AM", Aula: "A204",
		Label: "Lunes: 10-11AM (A204)",
	}, g.ParsedSlots[0])
	assert.Equal(t, "Miércoles", g.ParsedSlots[1].Dia)

	assert.Contains(t, g.Label, "G1 (15/20)")
	assert.Contains(t, g.Label, "Lunes: 10-11AM (A204)")
	assert.Contains(t, g.Label, "PEREZ JUAN")
	assert.NotContains(t, g.Label, "LOPEZ ANA")
}

func TestParseSectionMissingPieces(t *testing.T) {
	g := ParseSection("7", "algo sin estructura")

	assert.Equal(t, "7", g.Codigo)
	assert.Empty(t, g.Grupo)
	assert.Empty(t, g.Ocupacion)
	assert.Empty(t, g.Sede)
	assert.Empty(t, g.ParsedSlots)
	assert.Empty(t, g.Docentes)
	assert.Equal(t, "G7", g.Label)
}

func TestParseSectionDashRoomDropped(t *testing.T) {
	g := ParseSection("1", "Grupo:2 Horario:Martes:2 - 4PM(-) Docente(s):X")

	require.Len(t, g.ParsedSlots, 1)
	assert.Empty(t, g.ParsedSlots[0].Aula)
	assert.Equal(t, "Martes: 2-4PM", g.ParsedSlots[0].Label)
}

func TestParseSectionSlotWithoutHoursDiscarded(t *testing.T) {
	g := ParseSection("1", "Grupo:3 Horario:Jueves:(B101) Viernes:8 - 10AM(B101) Docente(s):X")

	require.Len(t, g.ParsedSlots, 1)
	assert.Equal(t, "Viernes", g.ParsedSlots[0].Dia)
}

func TestParseSectionSlotOrdering(t *testing.T) {
	raw := "Grupo:4 Horario:Viernes:7 - 9AM(C1) Lunes:2 - 4PM(C1) Lunes:8 - 10AM(C1) Docente(s):X"
	g := ParseSection("1", raw)

	require.Len(t, g.ParsedSlots, 3)
	assert.Equal(t, "Lunes", g.ParsedSlots[0].Dia)
	assert.Equal(t, "8", g.ParsedSlots[0].Desde)
	assert.Equal(t, "Lunes", g.ParsedSlots[1].Dia)
	assert.Equal(t, "2", g.ParsedSlots[1].Desde)
	assert.Equal(t, "Viernes", g.ParsedSlots[2].Dia)
}

func TestParseSectionUnaccentedDays(t *testing.T) {
	g := ParseSection("1", "Grupo:5 Horario:Miercoles:10 - 12PM(D2) Sabado:8 - 10AM(D2) Docente(s):X")

	require.Len(t, g.ParsedSlots, 2)
	assert.Equal(t, "Miercoles", g.ParsedSlots[0].Dia)
	assert.Equal(t, "Sabado", g.ParsedSlots[1].Dia)
}

func TestToMinutes(t *testing.T) {
	assert.Equal(t, 600, ToMinutes("10", "AM"))
	assert.Equal(t, 780, ToMinutes("1", "PM"))
	assert.Equal(t, 720, ToMinutes("12", "PM"))
	assert.Equal(t, 0, ToMinutes("12", "AM"))
	assert.Equal(t, 0, ToMinutes("x", "AM"))
}
