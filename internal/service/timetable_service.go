package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/udecupos/udecupos-api/internal/dto"
	"github.com/udecupos/udecupos-api/internal/models"
	"github.com/udecupos/udecupos-api/internal/timetable"
	"github.com/udecupos/udecupos-api/pkg/config"
	appErrors "github.com/udecupos/udecupos-api/pkg/errors"
)

// TimetableService turns a set of chosen sections into a laid-out week.
type TimetableService struct {
	sections *SectionService
	cfg      config.TimetableConfig
	logger   *zap.Logger
}

// NewTimetableService constructs a timetable service.
func NewTimetableService(sections *SectionService, cfg config.TimetableConfig, logger *zap.Logger) *TimetableService {
	return &TimetableService{sections: sections, cfg: cfg, logger: logger}
}

// Window derives the visible grid window from the request options, falling
// back to the configured defaults.
func (s *TimetableService) Window(opts dto.DisplayOptions) timetable.Window {
	start, end := opts.StartHour, opts.EndHour
	if start <= 0 {
		start = s.cfg.StartHour
	}
	if end <= 0 {
		end = s.cfg.EndHour
	}
	if end <= start {
		start, end = s.cfg.StartHour, s.cfg.EndHour
	}
	return timetable.Window{StartHour: start, EndHour: end, Days: s.cfg.Days}
}

// Build resolves every selection against the portal, expands the sections
// into events, compacts same-subject fragments and lays out each day.
func (s *TimetableService) Build(ctx context.Context, req dto.TimetableRequest) (*dto.TimetableResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	selections := make([]timetable.Selection, 0, len(req.Selections))
	for _, sel := range req.Selections {
		grupo, err := s.resolveGrupo(ctx, sel)
		if err != nil {
			return nil, err
		}
		selections = append(selections, timetable.Selection{
			Periodo:      sel.Periodo,
			Programa:     sel.Programa,
			Materia:      sel.Materia,
			MateriaLabel: sel.MateriaLabel,
			Modalidad:    sel.Modalidad,
			Grupo:        *grupo,
		})
	}

	events := timetable.BuildEvents(selections, timetable.BuildOptions{
		Pastel:     req.Options.Pastel,
		Monochrome: req.Options.Monochrome,
		Overrides:  req.Overrides,
	})
	events = timetable.Compact(events)

	window := s.Window(req.Options)
	days := timetable.Layout(events, window)
	return &dto.TimetableResponse{
		Days:      days,
		StartHour: window.StartHour,
		EndHour:   window.EndHour,
	}, nil
}

func (s *TimetableService) resolveGrupo(ctx context.Context, sel dto.SectionSelection) (*models.Grupo, error) {
	grupos, _, err := s.sections.Sections(ctx, SectionQuery{
		PeriodID:    sel.Periodo,
		ProgramID:   sel.Programa,
		MateriaID:   sel.Materia,
		ModalidadID: sel.Modalidad,
		ScriptInit:  sel.ScriptInit,
	})
	if err != nil {
		return nil, err
	}
	for i := range grupos {
		if grupos[i].Codigo == sel.Grupo {
			return &grupos[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound,
		fmt.Sprintf("grupo %s no existe para la materia %s", sel.Grupo, sel.Materia))
}
