package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/udecupos/udecupos-api/internal/timetable"
)

// PDFExporter renders a timetable into a landscape A4 weekly grid.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates the PDF document.
func (e *PDFExporter) Render(t Timetable) ([]byte, error) {
	hours := t.EndHour - t.StartHour
	if hours <= 0 {
		return nil, fmt.Errorf("empty time window %d..%d", t.StartHour, t.EndHour)
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()
	translator := pdf.UnicodeTranslatorFromDescriptor("")

	if t.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 8, translator(strings.ToUpper(t.Title)), "", 1, "C", false, 0, "")
		pdf.Ln(2)
	}

	const gutter = 18.0
	pageW, pageH := pdf.GetPageSize()
	left, top, right, bottom := 10.0, pdf.GetY(), 10.0, 12.0
	gridLeft := left + gutter
	gridW := pageW - gridLeft - right
	headerH := 8.0
	gridTop := top + headerH
	rowH := (pageH - gridTop - bottom) / float64(hours)

	dayCount := len(t.Days)
	if dayCount == 0 {
		dayCount = 1
	}
	colW := gridW / float64(dayCount)

	// Day headers.
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(243, 244, 246)
	for i, day := range t.Days {
		pdf.SetXY(gridLeft+float64(i)*colW, top)
		pdf.CellFormat(colW, headerH, translator(day.Dia), "1", 0, "C", true, 0, "")
	}

	// Hour rows.
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(107, 114, 128)
	pdf.SetDrawColor(229, 231, 235)
	for h := 0; h < hours; h++ {
		y := gridTop + float64(h)*rowH
		pdf.SetXY(left, y)
		pdf.CellFormat(gutter-2, rowH, timetable.MinutesToLabel((t.StartHour+h)*60), "", 0, "RT", false, 0, "")
		pdf.Line(gridLeft, y, gridLeft+gridW, y)
	}
	pdf.Line(gridLeft, gridTop+float64(hours)*rowH, gridLeft+gridW, gridTop+float64(hours)*rowH)
	for i := 0; i <= dayCount; i++ {
		x := gridLeft + float64(i)*colW
		pdf.Line(x, top, x, gridTop+float64(hours)*rowH)
	}

	winStart := t.StartHour * 60
	for i, day := range t.Days {
		colX := gridLeft + float64(i)*colW
		for _, ev := range day.Events {
			laneW := colW / float64(ev.Lanes)
			x := colX + float64(ev.Lane)*laneW
			y := gridTop + float64(ev.StartMin-winStart)/60*rowH
			h := float64(ev.EndMin-ev.StartMin) / 60 * rowH

			fr, fg, fb, err := timetable.HexRGB(ev.Style.Fill)
			if err != nil {
				return nil, err
			}
			br, bg, bb, err := timetable.HexRGB(ev.Style.Border)
			if err != nil {
				return nil, err
			}
			tr, tg, tb, err := timetable.HexRGB(ev.Style.Text)
			if err != nil {
				return nil, err
			}

			pdf.SetFillColor(int(fr), int(fg), int(fb))
			pdf.SetDrawColor(int(br), int(bg), int(bb))
			pdf.Rect(x+0.4, y+0.4, laneW-0.8, h-0.8, "FD")

			pdf.SetTextColor(int(tr), int(tg), int(tb))
			pdf.SetFont("Arial", "B", 7)
			pdf.SetXY(x+1, y+1)
			pdf.MultiCell(laneW-2, 3, translator(e.blockText(t, ev)), "", "L", false)
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *PDFExporter) blockText(t Timetable, ev *timetable.LayoutEvent) string {
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
