package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/udecupos/udecupos-api/internal/dto"
	appErrors "github.com/udecupos/udecupos-api/pkg/errors"
	"github.com/udecupos/udecupos-api/pkg/export"
)

// ExportResult is one rendered document ready for the HTTP layer.
type ExportResult struct {
	ContentType string
	Filename    string
	Payload     []byte
}

// ExportService renders timetables into downloadable documents.
type ExportService struct {
	timetables  *TimetableService
	metrics     *MetricsService
	raster      *export.RasterExporter
	spreadsheet *export.SpreadsheetExporter
	pdf         *export.PDFExporter
	csv         *export.CSVExporter
	logger      *zap.Logger
}

// NewExportService constructs an export service.
func NewExportService(timetables *TimetableService, metrics *MetricsService, logger *zap.Logger) *ExportService {
	return &ExportService{
		timetables:  timetables,
		metrics:     metrics,
		raster:      export.NewRasterExporter(),
		spreadsheet: export.NewSpreadsheetExporter(),
		pdf:         export.NewPDFExporter(),
		csv:         export.NewCSVExporter(),
		logger:      logger,
	}
}

// Export builds the timetable and renders it in the requested format.
// Supported formats are png, xlsx, pdf and csv.
func (s *ExportService) Export(ctx context.Context, req dto.TimetableRequest, format string) (*ExportResult, error) {
	resp, err := s.timetables.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	t := export.Timetable{
		Days:        resp.Days,
		StartHour:   resp.StartHour,
		EndHour:     resp.EndHour,
		Title:       "Horario",
		ShowHours:   req.Options.ShowHours,
		ShowTeacher: req.Options.ShowTeacher,
		ShowCupos:   req.Options.ShowCupos,
		ShowLugar:   req.Options.ShowLugar,
		FontScale:   req.Options.FontScale,
	}

	start := time.Now()
	var (
		payload     []byte
		contentType string
		ext         string
	)
	switch format {
	case "png":
		payload, err = s.raster.Render(t)
		contentType, ext = "image/png", "png"
	case "xlsx":
		payload, err = s.spreadsheet.Render(t)
		contentType, ext = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx"
	case "pdf":
		payload, err = s.pdf.Render(t)
		contentType, ext = "application/pdf", "pdf"
	case "csv":
		payload, err = s.csv.Render(t.Flatten())
		contentType, ext = "text/csv; charset=utf-8", "csv"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("formato %q no soportado (png, xlsx, pdf, csv)", format))
	}
	s.metrics.ObserveExport(format, time.Since(start))
	if err != nil {
		if s.logger != nil {
			s.logger.Error("export render failed", zap.String("format", format), zap.Error(err))
		}
		return nil, err
	}

	return &ExportResult{
		ContentType: contentType,
		Filename:    "horario." + ext,
		Payload:     payload,
	}, nil
}
