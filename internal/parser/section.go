package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/udecupos/udecupos-api/internal/models"
)

// Section labels arrive as one free-text line per <option>, e.g.
//
//	Grupo:1  15/20-->4-PASTO- Horario:Lunes:10 - 11AM(A204) Miércoles:10 - 11AM(A204) Docente(s):PEREZ J
//
// Every sub-pattern is independently optional: a label that matches nothing
// still yields a valid Grupo carrying only codigo and nombre.

var (
	grupoRe    = regexp.MustCompile(`(?i)Grupo:\s*(\S+)`)
	ocupRe     = regexp.MustCompile(`\s(\d+\s*/\s*\d+)\s*-->`)
	sedeRe     = regexp.MustCompile(`-->\s*([^\-]+-[^-]+)-`)
	horarioRe  = regexp.MustCompile(`(?i)Horario:`)
	docentesRe = regexp.MustCompile(`(?i)Docente\(s\):`)

	// Day:segment pairs inside the schedule part. Segment text runs
	// non-greedily up to the next closing parenthesis.
	segmentRe = regexp.MustCompile(`(Lunes|Martes|Miércoles|Miercoles|Jueves|Viernes|Sábado|Sabado|Domingo):\s*([^\n\r]+?)\)`)

	aulaRe  = regexp.MustCompile(`\(([^\)]*)\)`)
	rangoRe = regexp.MustCompile(`(?i)(\d{1,2})\s*-\s*(\d{1,2})\s*(AM|PM)`)
	wsRe    = regexp.MustCompile(`\s`)
)

// ParseSection extracts the structured attributes of one section option.
func ParseSection(codigo, raw string) models.Grupo {
	g := models.Grupo{Codigo: codigo, Nombre: raw}

	if m := grupoRe.FindStringSubmatch(raw); m != nil {
		g.Grupo = m[1]
	}
	if m := ocupRe.FindStringSubmatch(raw); m != nil {
		g.Ocupacion = wsRe.ReplaceAllString(m[1], "")
	}
	if m := sedeRe.FindStringSubmatch(raw); m != nil {
		g.Sede = strings.TrimSpace(m[1])
	}

	horarioPart, docentesPart := splitSchedule(raw)
	g.Docentes = docentesPart

	slots := parseSlots(horarioPart)
	sortSlots(slots)
	g.ParsedSlots = slots
	g.Horario = slotLabels(slots)

	merged := MergeSlots(slots)
	g.MergedSlots = slotLabels(merged)

	g.Label = shortLabel(g)
	return g
}

// splitSchedule isolates the schedule segment (between "Horario:" and
// "Docente(s):") and the teacher list (after "Docente(s):"). Either marker
// may be missing.
func splitSchedule(raw string) (horario, docentes string) {
	rest := raw
	if loc := horarioRe.FindStringIndex(raw); loc != nil {
		rest = raw[loc[1]:]
	} else {
		rest = ""
	}

	if loc := docentesRe.FindStringIndex(rest); loc != nil {
		horario = strings.TrimSpace(rest[:loc[0]])
	} else {
		horario = strings.TrimSpace(rest)
	}

	if loc := docentesRe.FindStringIndex(raw); loc != nil {
		docentes = strings.TrimSpace(raw[loc[1]:])
	}
	return horario, docentes
}

func parseSlots(horario string) []models.Slot {
	var slots []models.Slot
	for _, m := range segmentRe.FindAllStringSubmatch(horario, -1) {
		dia := m[1]
		texto := m[2] + ")"

		var aula string
		if am := aulaRe.FindStringSubmatch(texto); am != nil {
			aula = strings.TrimSpace(am[1])
			if aula == "-" {
				aula = ""
			}
		}

		tm := rangoRe.FindStringSubmatch(texto)
		if tm == nil {
			// No recognizable hour range: the slot is discarded.
			continue
		}
		slot := models.Slot{
			Dia:   dia,
			Desde: tm[1],
			Hasta: tm[2],
			AmPm:  strings.ToUpper(tm[3]),
			Aula:  aula,
		}
		slot.Label = SlotLabel(slot)
		slots = append(slots, slot)
	}
	return slots
}

func sortSlots(slots []models.Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		di, dj := dayRank(slots[i].Dia), dayRank(slots[j].Dia)
		if di != dj {
			return di < dj
		}
		return ToMinutes(slots[i].Desde, slots[i].AmPm) < ToMinutes(slots[j].Desde, slots[j].AmPm)
	})
}

// ToMinutes converts an hour token plus meridiem into minutes since
// midnight. PM adds 12 hours unless the hour is already >= 12; 12AM is
// midnight. Unparseable hours resolve to 0.
func ToMinutes(hour, ampm string) int {
	n, err := strconv.Atoi(strings.TrimSpace(hour))
	if err != nil {
		return 0
	}
	switch strings.ToUpper(ampm) {
	case "PM":
		if n < 12 {
			n += 12
		}
	case "AM":
		if n == 12 {
			n = 0
		}
	}
	return n * 60
}

// SlotLabel renders a slot's canonical display string. It must be
// regenerated whenever any slot field changes.
func SlotLabel(s models.Slot) string {
	label := fmt.Sprintf("%s: %s-%s%s", s.Dia, s.Desde, s.Hasta, s.AmPm)
	if s.Aula != "" {
		label += fmt.Sprintf(" (%s)", s.Aula)
	}
	return label
}

func slotLabels(slots []models.Slot) []string {
	if len(slots) == 0 {
		return nil
	}
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.Label
	}
	return labels
}

// shortLabel builds the compact UI string:
// G<grupo> (<ocupacion>) • <first slot> • <first teacher>.
func shortLabel(g models.Grupo) string {
	num := g.Grupo
	if num == "" {
		num = g.Codigo
	}

	var firstSlot string
	if len(g.MergedSlots) > 0 {
		firstSlot = g.MergedSlots[0]
	} else if len(g.Horario) > 0 {
		firstSlot = g.Horario[0]
	}

	docente := g.Docentes
	if i := strings.Index(docente, ","); i >= 0 {
		docente = docente[:i]
	}

	label := "G" + num
	if g.Ocupacion != "" {
		label += fmt.Sprintf(" (%s)", g.Ocupacion)
	}
	if firstSlot != "" {
		label += " • " + firstSlot
	}
	if docente != "" {
		label += " • " + docente
	}
	return strings.TrimSpace(label)
}
