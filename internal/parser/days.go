package parser

import "strings"

// DayOrder maps Spanish day names to their weekly position, Lunes=1 through
// Domingo=7. Accented and unaccented spellings are the same day; the portal
// uses both.
var DayOrder = map[string]int{
	"Lunes":     1,
	"Martes":    2,
	"Miércoles": 3,
	"Miercoles": 3,
	"Jueves":    4,
	"Viernes":   5,
	"Sábado":    6,
	"Sabado":    6,
	"Domingo":   7,
}

var diacriticReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U",
	"ñ", "n", "Ñ", "N",
)

// Unaccent strips the Spanish diacritics relevant to day and modality names.
func Unaccent(s string) string {
	return diacriticReplacer.Replace(s)
}

// dayRank returns the weekly position of a day name, or 9 for anything
// unrecognised so unknown days sort last.
func dayRank(day string) int {
	if n, ok := DayOrder[day]; ok {
		return n
	}
	return 9
}
