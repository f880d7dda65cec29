package timetable

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Slot times from the portal carry a single trailing meridiem for the whole
// range ("9 - 1PM" means 9AM to 1PM). Range normalization turns desde/hasta
// plus whatever meridiem evidence exists into absolute minutes since
// midnight, preferring explicit evidence over inference.

var (
	bothMeridiemRe = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(AM|PM)\s*-\s*(\d{1,2})(?::(\d{2}))?\s*(AM|PM)`)
	endMeridiemRe  = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*-\s*(\d{1,2})(?::(\d{2}))?\s*(AM|PM)`)
	durationRe     = regexp.MustCompile(`(?i)\((\d+)\s*horas?\)`)
)

// hourToMinutes applies a meridiem to a clock hour.
func hourToMinutes(h int, ampm string) int {
	switch strings.ToUpper(ampm) {
	case "PM":
		if h < 12 {
			h += 12
		}
	case "AM":
		if h == 12 {
			h = 0
		}
	}
	return h * 60
}

func parseHM(hourStr, minStr, ampm string) int {
	h, _ := strconv.Atoi(hourStr)
	m := 0
	if minStr != "" {
		m, _ = strconv.Atoi(minStr)
	}
	return hourToMinutes(h, ampm) + m
}

// Range resolves a slot's start and end minutes.
//
// Resolution order:
//  1. defaultAmPm given: apply it to both ends, fixing wraparound. A PM
//     range whose end lands at or before its start really starts in the
//     morning; an AM range wrapping forward really ends in the afternoon.
//     A "(N horas)" duration hint in the label is consulted only when the
//     range still runs backwards after those fixes.
//  2. Label carries meridiems on both ends: trust it verbatim.
//  3. Label carries an end meridiem only: infer the start's.
//  4. Bare numeric range: read the hours literally, again falling back to a
//     duration hint for a backwards range.
func Range(desde, hasta, label, defaultAmPm string) (start, end int, ok bool) {
	ds, errD := strconv.Atoi(strings.TrimSpace(desde))
	hs, errH := strconv.Atoi(strings.TrimSpace(hasta))

	if defaultAmPm != "" && errD == nil && errH == nil {
		start = hourToMinutes(ds, defaultAmPm)
		end = hourToMinutes(hs, defaultAmPm)
		if end <= start {
			if strings.EqualFold(defaultAmPm, "PM") {
				start = hourToMinutes(ds, "AM")
			} else {
				end = hourToMinutes(hs, "PM")
			}
		}
		if end <= start {
			if hours, hinted := durationHint(label); hinted {
				end = start + hours*60
			}
		}
		if end > start {
			return start, end, true
		}
	}

	if m := bothMeridiemRe.FindStringSubmatch(label); m != nil {
		start = parseHM(m[1], m[2], m[3])
		end = parseHM(m[4], m[5], m[6])
		if end > start {
			return start, end, true
		}
	}

	if m := endMeridiemRe.FindStringSubmatch(label); m != nil {
		endAmPm := m[5]
		sh, _ := strconv.Atoi(m[1])
		eh, _ := strconv.Atoi(m[3])
		startAmPm := endAmPm
		if strings.EqualFold(endAmPm, "PM") && sh > eh {
			startAmPm = "AM"
		}
		start = parseHM(m[1], m[2], startAmPm)
		end = parseHM(m[3], m[4], endAmPm)
		if end > start {
			return start, end, true
		}
	}

	if errD == nil && errH == nil {
		start = ds * 60
		end = hs * 60
		if end <= start {
			if hours, hinted := durationHint(label); hinted {
				end = start + hours*60
			}
		}
		if end > start {
			return start, end, true
		}
	}
	return 0, 0, false
}

func durationHint(label string) (hours int, ok bool) {
	m := durationRe.FindStringSubmatch(label)
	if m == nil {
		return 0, false
	}
	hours, err := strconv.Atoi(m[1])
	return hours, err == nil
}

// MinutesToLabel formats minutes since midnight as a 12-hour clock label,
// e.g. 780 becomes "1PM" and 570 "9:30AM".
func MinutesToLabel(min int) string {
	h := min / 60
	m := min % 60
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	if m == 0 {
		return fmt.Sprintf("%d%s", display, ampm)
	}
	return fmt.Sprintf("%d:%02d%s", display, m, ampm)
}
