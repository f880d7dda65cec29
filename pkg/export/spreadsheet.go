package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/udecupos/udecupos-api/internal/timetable"
)

const sheetName = "Horario"

// SpreadsheetExporter renders a timetable into an XLSX workbook. Each day
// spans as many sub-columns as its deepest overlap; events covering several
// hours merge vertically.
type SpreadsheetExporter struct{}

// NewSpreadsheetExporter constructs an XLSX exporter.
func NewSpreadsheetExporter() *SpreadsheetExporter {
	return &SpreadsheetExporter{}
}

// Render builds the workbook and returns its bytes.
func (e *SpreadsheetExporter) Render(t Timetable) ([]byte, error) {
	hours := t.EndHour - t.StartHour
	if hours <= 0 {
		return nil, fmt.Errorf("empty time window %d..%d", t.StartHour, t.EndHour)
	}

	f := excelize.NewFile()
	defer f.Close()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F3F4F6"}},
		Border:    boxBorder("D1D5DB"),
	})
	if err != nil {
		return nil, err
	}
	hourStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: "6B7280"},
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "top"},
	})
	if err != nil {
		return nil, err
	}

	// Column 1 is the hour gutter; each day gets laneCount sub-columns.
	col := 2
	dayStart := make([]int, len(t.Days))
	dayLanes := make([]int, len(t.Days))
	for i, day := range t.Days {
		lanes := 1
		for _, ev := range day.Events {
			if ev.Lanes > lanes {
				lanes = ev.Lanes
			}
		}
		dayStart[i] = col
		dayLanes[i] = lanes
		col += lanes
	}

	// Header row with one merged cell per day.
	for i, day := range t.Days {
		from, _ := excelize.CoordinatesToCellName(dayStart[i], 1)
		to, _ := excelize.CoordinatesToCellName(dayStart[i]+dayLanes[i]-1, 1)
		if from != to {
			if err := f.MergeCell(sheetName, from, to); err != nil {
				return nil, err
			}
		}
		f.SetCellValue(sheetName, from, day.Dia)
		f.SetCellStyle(sheetName, from, to, headerStyle)
	}

	// Hour gutter, one row per hour starting at row 2.
	for h := 0; h < hours; h++ {
		cell, _ := excelize.CoordinatesToCellName(1, 2+h)
		f.SetCellValue(sheetName, cell, timetable.MinutesToLabel((t.StartHour+h)*60))
		f.SetCellStyle(sheetName, cell, cell, hourStyle)
		f.SetRowHeight(sheetName, 2+h, 46)
	}

	for i, day := range t.Days {
		for _, ev := range day.Events {
			if err := e.placeEvent(f, t, ev, dayStart[i]); err != nil {
				return nil, err
			}
		}
	}

	for c := 2; c < col; c++ {
		name, _ := excelize.ColumnNumberToName(c)
		f.SetColWidth(sheetName, name, name, 24)
	}
	f.SetColWidth(sheetName, "A", "A", 9)

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *SpreadsheetExporter) placeEvent(f *excelize.File, t Timetable, ev *timetable.LayoutEvent, dayCol int) error {
	winStart := t.StartHour * 60
	rowFrom := 2 + (ev.StartMin-winStart)/60
	rowTo := 2 + (ev.EndMin-winStart-1)/60
	c := dayCol + ev.Lane

	from, _ := excelize.CoordinatesToCellName(c, rowFrom)
	to, _ := excelize.CoordinatesToCellName(c, rowTo)
	if from != to {
		if err := f.MergeCell(sheetName, from, to); err != nil {
			return err
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: strings.TrimPrefix(ev.Style.Text, "#"), Size: 9},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{strings.TrimPrefix(ev.Style.Fill, "#")}},
		Border:    boxBorder(strings.TrimPrefix(ev.Style.Border, "#")),
	})
	if err != nil {
		return err
	}
	f.SetCellStyle(sheetName, from, to, style)
	f.SetCellValue(sheetName, from, e.cellText(t, ev))
	return nil
}

func (e *SpreadsheetExporter) cellText(t Timetable, ev *timetable.LayoutEvent) string {
	lines := []string{strings.TrimSpace(ev.Title + " " + ev.Subtitle)}
	if t.ShowHours {
		lines = append(lines, timetable.MinutesToLabel(ev.StartMin)+" - "+timetable.MinutesToLabel(ev.EndMin))
	}
	if t.ShowLugar && ev.Location != "" {
		lines = append(lines, ev.Location)
	}
	if t.ShowTeacher && ev.Docente != "" {
		lines = append(lines, ev.Docente)
	}
	if t.ShowCupos && ev.Cupos != "" {
		lines = append(lines, ev.Cupos)
	}
	return strings.Join(lines, "\n")
}

func boxBorder(color string) []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		borders = append(borders, excelize.Border{Type: side, Color: color, Style: 1})
	}
	return borders
}
