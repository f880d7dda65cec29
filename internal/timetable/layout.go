package timetable

import (
	"sort"
	"strings"
)

// Event is one occupied block of weekly time before layout. StartMin and
// EndMin are minutes since midnight on Dia.
type Event struct {
	ID         string `json:"id"`
	Dia        string `json:"dia"`
	StartMin   int    `json:"startMin"`
	EndMin     int    `json:"endMin"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle,omitempty"`
	Location   string `json:"location,omitempty"`
	Docente    string `json:"docente,omitempty"`
	Cupos      string `json:"cupos,omitempty"`
	MateriaKey string `json:"materiaKey"`
	Style      Style  `json:"style"`
}

// LayoutEvent is an Event placed into a lane. Lanes gives the column count
// its day shares at this event's time, so width is 1/Lanes and the
// horizontal offset is Lane/Lanes.
type LayoutEvent struct {
	Event
	Lane  int `json:"lane"`
	Lanes int `json:"lanes"`
}

// DayLayout groups one day's placed events in a stable day order.
type DayLayout struct {
	Dia    string         `json:"dia"`
	Events []*LayoutEvent `json:"events"`
}

// Window is the visible time span of the grid. Events are clamped to
// [StartHour*60, EndHour*60) and dropped when nothing remains.
type Window struct {
	StartHour int
	EndHour   int
	Days      []string
}

var canonicalDays = map[string]string{
	"miercoles": "Miércoles",
	"sabado":    "Sábado",
}

// CanonicalDay folds unaccented day spellings onto their accented forms so
// grouping treats them as one day.
func CanonicalDay(dia string) string {
	if c, ok := canonicalDays[strings.ToLower(dia)]; ok {
		return c
	}
	return dia
}

// Compact merges fragments of the same subject on the same day that touch or
// nearly touch (gaps of up to five minutes). Teachers, occupancy figures and
// locations of merged fragments are unioned without duplicates.
func Compact(events []Event) []Event {
	groups := make(map[string][]Event)
	var order []string
	for _, ev := range events {
		key := CanonicalDay(ev.Dia) + "|" + ev.MateriaKey
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], ev)
	}

	var out []Event
	for _, key := range order {
		group := groups[key]
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].StartMin != group[j].StartMin {
				return group[i].StartMin < group[j].StartMin
			}
			return group[i].EndMin < group[j].EndMin
		})

		cur := group[0]
		for _, ev := range group[1:] {
			if ev.StartMin <= cur.EndMin+5 {
				if ev.EndMin > cur.EndMin {
					cur.EndMin = ev.EndMin
				}
				cur.Docente = unionJoin(cur.Docente, ev.Docente, " · ")
				cur.Cupos = unionJoin(cur.Cupos, ev.Cupos, " / ")
				cur.Location = unionJoin(cur.Location, ev.Location, " · ")
				continue
			}
			out = append(out, cur)
			cur = ev
		}
		out = append(out, cur)
	}
	return out
}

func unionJoin(a, b, sep string) string {
	if b == "" {
		return a
	}
	if a == "" {
		return b
	}
	for _, part := range strings.Split(a, sep) {
		if part == b {
			return a
		}
	}
	return a + sep + b
}

// Layout clamps events to the window and assigns lanes per day with a sweep
// over start times. Each event takes the smallest lane free at its start;
// every group of mutually overlapping events shares the same lane count,
// the maximum number simultaneously active while any of them runs.
func Layout(events []Event, w Window) []DayLayout {
	winStart := w.StartHour * 60
	winEnd := w.EndHour * 60

	byDay := make(map[string][]*LayoutEvent)
	for _, ev := range events {
		ev.Dia = CanonicalDay(ev.Dia)
		if ev.StartMin < winStart {
			ev.StartMin = winStart
		}
		if ev.EndMin > winEnd {
			ev.EndMin = winEnd
		}
		if ev.EndMin <= ev.StartMin {
			continue
		}
		byDay[ev.Dia] = append(byDay[ev.Dia], &LayoutEvent{Event: ev})
	}

	var out []DayLayout
	for _, dia := range w.Days {
		day := byDay[CanonicalDay(dia)]
		if len(day) == 0 {
			continue
		}
		sort.SliceStable(day, func(i, j int) bool {
			if day[i].StartMin != day[j].StartMin {
				return day[i].StartMin < day[j].StartMin
			}
			return day[i].EndMin < day[j].EndMin
		})
		assignLanes(day)
		out = append(out, DayLayout{Dia: CanonicalDay(dia), Events: day})
	}
	return out
}

func assignLanes(day []*LayoutEvent) {
	var active []*LayoutEvent
	for _, ev := range day {
		kept := active[:0]
		for _, a := range active {
			if a.EndMin > ev.StartMin {
				kept = append(kept, a)
			}
		}
		active = kept

		taken := make(map[int]bool, len(active))
		for _, a := range active {
			taken[a.Lane] = true
		}
		lane := 0
		for taken[lane] {
			lane++
		}
		ev.Lane = lane
		active = append(active, ev)

		// Widen every concurrently running event to the current depth.
		if len(active) > 0 {
			lanes := len(active)
			for _, a := range active {
				if a.Lanes < lanes {
					a.Lanes = lanes
				}
			}
		}
	}
}
