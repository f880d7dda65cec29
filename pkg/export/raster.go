package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/udecupos/udecupos-api/internal/timetable"
)

const (
	rasterWidth   = 1400
	hourRowHeight = 88.0
	headerHeight  = 56.0
	gutterWidth   = 86.0
	rasterMargin  = 24.0
	cellPadding   = 5.0
)

// RasterExporter renders a timetable into a PNG image. The typeface ships
// embedded so no font file is required on disk.
type RasterExporter struct{}

// NewRasterExporter constructs a raster exporter.
func NewRasterExporter() *RasterExporter {
	return &RasterExporter{}
}

func loadFace(size float64) (font.Face, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{Size: size, DPI: 72})
	if err != nil {
		return nil, fmt.Errorf("build font face: %w", err)
	}
	return face, nil
}

// Render draws the weekly grid and returns PNG bytes.
func (e *RasterExporter) Render(t Timetable) ([]byte, error) {
	hours := t.EndHour - t.StartHour
	if hours <= 0 {
		return nil, fmt.Errorf("empty time window %d..%d", t.StartHour, t.EndHour)
	}

	scale := t.FontScale
	if scale <= 0 {
		scale = 1
	}

	height := int(headerHeight + float64(hours)*hourRowHeight + 2*rasterMargin)
	dc := gg.NewContext(rasterWidth, height)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	dayCount := len(t.Days)
	if dayCount == 0 {
		dayCount = 1
	}
	gridLeft := rasterMargin + gutterWidth
	gridTop := rasterMargin + headerHeight
	gridWidth := float64(rasterWidth) - gridLeft - rasterMargin
	colWidth := gridWidth / float64(dayCount)

	labelFace, err := loadFace(13 * scale)
	if err != nil {
		return nil, err
	}
	titleFace, err := loadFace(14 * scale)
	if err != nil {
		return nil, err
	}
	smallFace, err := loadFace(11 * scale)
	if err != nil {
		return nil, err
	}

	// Hour rows and gutter labels.
	dc.SetFontFace(labelFace)
	for h := 0; h <= hours; h++ {
		y := gridTop + float64(h)*hourRowHeight
		dc.SetHexColor("#e5e7eb")
		dc.SetLineWidth(1)
		dc.DrawLine(gridLeft, y, gridLeft+gridWidth, y)
		dc.Stroke()
		if h < hours {
			dc.SetHexColor("#6b7280")
			label := timetable.MinutesToLabel((t.StartHour + h) * 60)
			dc.DrawStringAnchored(label, gridLeft-10, y+4, 1, 0.5)
		}
	}

	// Day headers and separators.
	for i, day := range t.Days {
		x := gridLeft + float64(i)*colWidth
		dc.SetHexColor("#f3f4f6")
		dc.DrawRectangle(x, rasterMargin, colWidth, headerHeight)
		dc.Fill()
		dc.SetHexColor("#111827")
		dc.SetFontFace(titleFace)
		dc.DrawStringAnchored(day.Dia, x+colWidth/2, rasterMargin+headerHeight/2, 0.5, 0.5)

		dc.SetHexColor("#d1d5db")
		dc.SetLineWidth(1)
		dc.DrawLine(x, rasterMargin, x, gridTop+float64(hours)*hourRowHeight)
		dc.Stroke()
	}
	dc.SetHexColor("#d1d5db")
	dc.DrawLine(gridLeft+gridWidth, rasterMargin, gridLeft+gridWidth, gridTop+float64(hours)*hourRowHeight)
	dc.Stroke()

	winStart := t.StartHour * 60
	for i, day := range t.Days {
		colX := gridLeft + float64(i)*colWidth
		for _, ev := range day.Events {
			laneWidth := colWidth / float64(ev.Lanes)
			x := colX + float64(ev.Lane)*laneWidth
			y := gridTop + float64(ev.StartMin-winStart)/60*hourRowHeight
			h := float64(ev.EndMin-ev.StartMin) / 60 * hourRowHeight

			dc.SetHexColor(ev.Style.Fill)
			dc.DrawRoundedRectangle(x+1, y+1, laneWidth-2, h-2, 4)
			dc.Fill()
			dc.SetHexColor(ev.Style.Border)
			dc.SetLineWidth(1.5)
			dc.DrawRoundedRectangle(x+1, y+1, laneWidth-2, h-2, 4)
			dc.Stroke()

			e.drawEventText(dc, t, ev, x, y, laneWidth, h, titleFace, smallFace)
		}
	}

	buf := &bytes.Buffer{}
	if err := dc.EncodePNG(buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *RasterExporter) drawEventText(dc *gg.Context, t Timetable, ev *timetable.LayoutEvent, x, y, w, h float64, titleFace, smallFace font.Face) {
	dc.SetHexColor(ev.Style.Text)

	var lines []string
	dc.SetFontFace(titleFace)
	title := ev.Title
	if ev.Subtitle != "" {
		title += " " + ev.Subtitle
	}
	lines = append(lines, dc.WordWrap(title, w-2*cellPadding)...)

	dc.SetFontFace(smallFace)
	var extras []string
	if t.ShowHours {
		extras = append(extras, timetable.MinutesToLabel(ev.StartMin)+" - "+timetable.MinutesToLabel(ev.EndMin))
	}
	if t.ShowLugar && ev.Location != "" {
		extras = append(extras, ev.Location)
	}
	if t.ShowTeacher && ev.Docente != "" {
		extras = append(extras, ev.Docente)
	}
	if t.ShowCupos && ev.Cupos != "" {
		extras = append(extras, ev.Cupos)
	}
	for _, extra := range extras {
		lines = append(lines, dc.WordWrap(extra, w-2*cellPadding)...)
	}

	lineHeight := dc.FontHeight() * 1.25
	maxLines := int((h - 2*cellPadding) / lineHeight)
	if maxLines < 1 {
		maxLines = 1
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := []rune(lines[maxLines-1])
		if len(last) > 1 {
			lines[maxLines-1] = strings.TrimRight(string(last[:len(last)-1]), " ") + "…"
		}
	}

	ty := y + cellPadding + lineHeight*0.8
	for i, line := range lines {
		if i == 0 {
			dc.SetFontFace(titleFace)
		} else {
			dc.SetFontFace(smallFace)
		}
		dc.DrawString(line, x+cellPadding, ty)
		ty += lineHeight
	}
}
