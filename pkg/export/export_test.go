package export

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/udecupos/udecupos-api/internal/timetable"
)

func sampleTimetable() Timetable {
	events := []timetable.Event{
		{ID: "a", Dia: "Lunes", StartMin: 600, EndMin: 720, Title: "CALCULO I", Subtitle: "G1 T",
			Location: "A204", Docente: "PEREZ", Cupos: "15/20", MateriaKey: "m1",
			Style: timetable.Style{Fill: "#60a5fa", Border: "#3b82f6", Text: "#ffffff"}},
		{ID: "b", Dia: "Lunes", StartMin: 660, EndMin: 780, Title: "FISICA I", Subtitle: "G2 T",
			Location: "B101", Docente: "LOPEZ", Cupos: "9/30", MateriaKey: "m2",
			Style: timetable.Style{Fill: "#f59e0b", Border: "#d97706", Text: "#ffffff"}},
		{ID: "c", Dia: "Martes", StartMin: 480, EndMin: 600, Title: "QUIMICA", Subtitle: "G1 P",
			MateriaKey: "m3",
			Style:      timetable.Style{Fill: "#34d399", Border: "#059669", Text: "#ffffff"}},
	}
	days := timetable.Layout(events, timetable.Window{
		StartHour: 7, EndHour: 22,
		Days: []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"},
	})
	return Timetable{
		Days: days, StartHour: 7, EndHour: 22, Title: "Horario",
		ShowHours: true, ShowTeacher: true, ShowCupos: true, ShowLugar: true,
	}
}

func TestRasterRenderProducesPNG(t *testing.T) {
	payload, err := NewRasterExporter().Render(sampleTimetable())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, rasterWidth, img.Bounds().Dx())
}

func TestRasterRejectsEmptyWindow(t *testing.T) {
	tt := sampleTimetable()
	tt.StartHour, tt.EndHour = 10, 10
	_, err := NewRasterExporter().Render(tt)
	assert.Error(t, err)
}

func TestSpreadsheetRenderOpens(t *testing.T) {
	payload, err := NewSpreadsheetExporter().Render(sampleTimetable())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer f.Close()

	cell, err := f.GetCellValue(sheetName, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Lunes", cell)

	// Overlapping events give Lunes two sub-columns; Martes starts after.
	cell, err = f.GetCellValue(sheetName, "D1")
	require.NoError(t, err)
	assert.Equal(t, "Martes", cell)
}

func TestPDFRenderHeader(t *testing.T) {
	payload, err := NewPDFExporter().Render(sampleTimetable())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}

func TestCSVRender(t *testing.T) {
	payload, err := NewCSVExporter().Render(sampleTimetable().Flatten())
	require.NoError(t, err)

	text := string(bytes.TrimPrefix(payload, []byte{0xEF, 0xBB, 0xBF}))
	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Dia,Inicio,Fin,Materia,Grupo,Docente,Aula,Cupos", strings.TrimSpace(lines[0]))
	assert.Contains(t, text, "CALCULO I")
	assert.Contains(t, text, "10AM")
}

func TestCSVRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}
