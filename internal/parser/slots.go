package parser

import "github.com/udecupos/udecupos-api/internal/models"

// MergeSlots coalesces back-to-back slots on the same day into a single
// contiguous block. Slots must already be sorted by day and start time.
//
// Two slots merge when they share a day, their rooms are compatible and the
// second starts exactly where the first ends. A slot with no room inherits
// the previous block's room on the same day, so "10-11AM(A204)" followed by
// "11-12PM" still forms one block in A204, and a later gap-separated slot on
// that day keeps A204 as its own room.
func MergeSlots(slots []models.Slot) []models.Slot {
	if len(slots) == 0 {
		return nil
	}

	var merged []models.Slot
	for _, s := range slots {
		if len(merged) == 0 {
			merged = append(merged, s)
			continue
		}
		last := &merged[len(merged)-1]

		aula := s.Aula
		if aula == "" && s.Dia == last.Dia {
			aula = last.Aula
		}

		if s.Dia == last.Dia &&
			aula == last.Aula &&
			ToMinutes(last.Hasta, s.AmPm) == ToMinutes(s.Desde, s.AmPm) {
			last.Hasta = s.Hasta
			last.AmPm = s.AmPm
			if last.Aula == "" {
				last.Aula = s.Aula
			}
			last.Label = SlotLabel(*last)
			continue
		}
		if aula != s.Aula {
			s.Aula = aula
			s.Label = SlotLabel(s)
		}
		merged = append(merged, s)
	}
	return merged
}
