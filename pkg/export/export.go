package export

import (
	"github.com/udecupos/udecupos-api/internal/timetable"
)

// Timetable is the laid-out week every exporter consumes. All formats read
// the same placed events so colors and geometry agree across them.
type Timetable struct {
	Days      []timetable.DayLayout
	StartHour int
	EndHour   int
	Title     string

	ShowHours   bool
	ShowTeacher bool
	ShowCupos   bool
	ShowLugar   bool
	FontScale   float64
}

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Flatten converts the timetable into one row per placed event, ordered by
// day then start time, for the tabular formats.
func (t Timetable) Flatten() Dataset {
	headers := []string{"Dia", "Inicio", "Fin", "Materia", "Grupo", "Docente", "Aula", "Cupos"}
	var rows []map[string]string
	for _, day := range t.Days {
		for _, ev := range day.Events {
			rows = append(rows, map[string]string{
				"Dia":     day.Dia,
				"Inicio":  timetable.MinutesToLabel(ev.StartMin),
				"Fin":     timetable.MinutesToLabel(ev.EndMin),
				"Materia": ev.Title,
				"Grupo":   ev.Subtitle,
				"Docente": ev.Docente,
				"Aula":    ev.Location,
				"Cupos":   ev.Cupos,
			})
		}
	}
	return Dataset{Headers: headers, Rows: rows}
}
