package timetable

import (
	"fmt"
	"strings"

	"github.com/udecupos/udecupos-api/internal/models"
	"github.com/udecupos/udecupos-api/internal/parser"
)

// Selection names one chosen section along with the catalog labels needed to
// title its blocks.
type Selection struct {
	Periodo      string
	Programa     string
	Materia      string
	MateriaLabel string
	Modalidad    string
	Grupo        models.Grupo
}

// BuildOptions tunes event construction.
type BuildOptions struct {
	Pastel     bool
	Monochrome bool
	Overrides  *StyleOverrides
}

// Key identifies the selection uniquely within a request.
func (s Selection) Key() string {
	return strings.Join([]string{s.Periodo, s.Programa, s.Materia, s.Modalidad, s.Grupo.Codigo}, "|")
}

// MateriaKey identifies the subject regardless of section, so all sections
// of one subject share a color.
func (s Selection) MateriaKey() string {
	return strings.Join([]string{s.Periodo, s.Programa, s.Materia}, "|")
}

// modalityLetter compresses a modality name to a one-letter tag, T for
// theory and P for practice or lab.
func modalityLetter(modalidad string) string {
	m := strings.ToLower(parser.Unaccent(modalidad))
	switch {
	case strings.Contains(m, "teo"):
		return "T"
	case strings.Contains(m, "prac"), strings.Contains(m, "lab"):
		return "P"
	default:
		return ""
	}
}

// BuildEvents expands selections into timetable events, one per merged
// slot, resolving each event's style. Slots whose times cannot be
// normalized into a forward range are dropped.
func BuildEvents(selections []Selection, opts BuildOptions) []Event {
	var events []Event
	for _, sel := range selections {
		key := sel.Key()
		materiaKey := sel.MateriaKey()

		title := sel.MateriaLabel
		if title == "" {
			title = sel.Materia
		}

		subtitle := "G" + sel.Grupo.Grupo
		if letter := modalityLetter(sel.Modalidad); letter != "" {
			subtitle += " " + letter
		}

		slots := parser.MergeSlots(sel.Grupo.ParsedSlots)
		for _, slot := range slots {
			start, end, ok := Range(slot.Desde, slot.Hasta, slot.Label, slot.AmPm)
			if !ok {
				continue
			}
			id := fmt.Sprintf("%s-%s-%s-%s", key, slot.Dia, slot.Desde, slot.Hasta)
			ev := Event{
				ID:         id,
				Dia:        slot.Dia,
				StartMin:   start,
				EndMin:     end,
				Title:      title,
				Subtitle:   subtitle,
				Location:   slot.Aula,
				Docente:    sel.Grupo.Docentes,
				Cupos:      sel.Grupo.Ocupacion,
				MateriaKey: materiaKey,
			}
			ev.Style = ResolveStyle(ev.ID, ev.Title, ev.MateriaKey, opts.Pastel, opts.Monochrome, opts.Overrides.Resolve(ev.ID, ev.MateriaKey))
			events = append(events, ev)
		}
	}
	return events
}
