package dto

import (
	"github.com/udecupos/udecupos-api/internal/timetable"
)

// SectionSelection names one chosen section in a timetable request. The
// catalog identifiers mirror the lookup endpoints; labels are optional
// display hints resolved client-side.
type SectionSelection struct {
	Periodo      string `json:"periodo" binding:"required" validate:"required"`
	Programa     string `json:"programa" binding:"required" validate:"required"`
	Materia      string `json:"materia" binding:"required" validate:"required"`
	MateriaLabel string `json:"materiaLabel"`
	Modalidad    string `json:"modalidad" binding:"required" validate:"required"`
	Grupo        string `json:"grupo" binding:"required" validate:"required"`
	ScriptInit   string `json:"scriptInit"`
}

// DisplayOptions tunes what each timetable block shows and how it is styled.
type DisplayOptions struct {
	ShowDay     bool    `json:"showDay"`
	ShowHours   bool    `json:"showHours"`
	ShowTeacher bool    `json:"showTeacher"`
	ShowCupos   bool    `json:"showCupos"`
	ShowLugar   bool    `json:"showLugar"`
	FontScale   float64 `json:"fontScale"`
	Monochrome  bool    `json:"monochrome"`
	Pastel      bool    `json:"pastel"`
	StartHour   int     `json:"startHour"`
	EndHour     int     `json:"endHour"`
}

// TimetableRequest is the body of POST /horario.
type TimetableRequest struct {
	Selections []SectionSelection        `json:"selections" binding:"required,min=1,dive" validate:"required,min=1,dive"`
	Overrides  *timetable.StyleOverrides `json:"overrides"`
	Options    DisplayOptions            `json:"options"`
}

// TimetableResponse carries the laid-out week.
type TimetableResponse struct {
	Days      []timetable.DayLayout `json:"days"`
	StartHour int                   `json:"startHour"`
	EndHour   int                   `json:"endHour"`
}
