package parser

import (
	"sort"
	"strconv"
	"strings"

	"github.com/udecupos/udecupos-api/internal/models"
)

// sedePriority ranks campus cities for section ordering. Lower sorts first;
// unknown cities go to the back.
var sedePriority = map[string]int{
	"pasto":     1,
	"tumaco":    2,
	"ipiales":   3,
	"tuquerres": 4,
	"general":   9,
}

// SedeRank scores a sede string like "4-PASTO" by its city. The city is the
// text after the last dash, lowercased and unaccented.
func SedeRank(sede string) int {
	city := sede
	if i := strings.LastIndex(city, "-"); i >= 0 {
		city = city[i+1:]
	}
	city = strings.ToLower(Unaccent(strings.TrimSpace(city)))
	if n, ok := sedePriority[city]; ok {
		return n
	}
	return 99
}

// GrupoNumber parses the numeric part of a group identifier for natural
// ordering. Non-numeric identifiers rank after all numeric ones.
func GrupoNumber(grupo string) int {
	digits := strings.TrimFunc(grupo, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if n, err := strconv.Atoi(digits); err == nil {
		return n
	}
	return 1 << 30
}

// FirstDayRank returns the weekly position of a section's earliest slot, or
// 9 when it has none.
func FirstDayRank(g models.Grupo) int {
	if len(g.ParsedSlots) == 0 {
		return 9
	}
	return dayRank(g.ParsedSlots[0].Dia)
}

// OcupacionPct computes the fill ratio of an "n/m" occupancy string in the
// range [0,1]. Sections without occupancy data report 2 so they sort after
// full ones.
func OcupacionPct(ocupacion string) float64 {
	parts := strings.SplitN(ocupacion, "/", 2)
	if len(parts) != 2 {
		return 2
	}
	used, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	total, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || total == 0 {
		return 2
	}
	return float64(used) / float64(total)
}

// SortGrupos orders sections for display: campus priority first, then day of
// first meeting, then group number.
func SortGrupos(grupos []models.Grupo) {
	sort.SliceStable(grupos, func(i, j int) bool {
		si, sj := SedeRank(grupos[i].Sede), SedeRank(grupos[j].Sede)
		if si != sj {
			return si < sj
		}
		di, dj := FirstDayRank(grupos[i]), FirstDayRank(grupos[j])
		if di != dj {
			return di < dj
		}
		return GrupoNumber(grupos[i].Grupo) < GrupoNumber(grupos[j].Grupo)
	})
}

// SortGruposBy reorders sections by a single caller-chosen key. Unknown keys
// fall back to the default ordering; order "desc" reverses the chosen key.
func SortGruposBy(grupos []models.Grupo, key, order string) {
	var less func(i, j int) bool
	switch key {
	case "grupo":
		less = func(i, j int) bool { return GrupoNumber(grupos[i].Grupo) < GrupoNumber(grupos[j].Grupo) }
	case "sede":
		less = func(i, j int) bool { return SedeRank(grupos[i].Sede) < SedeRank(grupos[j].Sede) }
	case "dia":
		less = func(i, j int) bool { return FirstDayRank(grupos[i]) < FirstDayRank(grupos[j]) }
	case "ocupacion":
		less = func(i, j int) bool { return OcupacionPct(grupos[i].Ocupacion) < OcupacionPct(grupos[j].Ocupacion) }
	case "docente":
		less = func(i, j int) bool { return grupos[i].Docentes < grupos[j].Docentes }
	default:
		SortGrupos(grupos)
		if order == "desc" {
			reverseGrupos(grupos)
		}
		return
	}
	if order == "desc" {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(grupos, less)
}

func reverseGrupos(grupos []models.Grupo) {
	for i, j := 0, len(grupos)-1; i < j; i, j = i+1, j-1 {
		grupos[i], grupos[j] = grupos[j], grupos[i]
	}
}
