package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/udecupos/udecupos-api/internal/models"
	"github.com/udecupos/udecupos-api/internal/portal"
)

// PortalFetcher abstracts the portal client so services can be exercised
// without network access.
type PortalFetcher interface {
	FetchPeriods(ctx context.Context) ([]portal.Option, error)
	FetchOptions(ctx context.Context, call portal.AjaxCall) ([]portal.Option, error)
}

// CatalogService serves the cascading catalog lookups: periods, programs,
// subjects and modalities.
type CatalogService struct {
	fetcher    PortalFetcher
	cache      *CacheService
	metrics    *MetricsService
	scriptInit string
	logger     *zap.Logger
}

// NewCatalogService constructs a catalog service.
func NewCatalogService(fetcher PortalFetcher, cache *CacheService, metrics *MetricsService, scriptInit string, logger *zap.Logger) *CatalogService {
	return &CatalogService{fetcher: fetcher, cache: cache, metrics: metrics, scriptInit: scriptInit, logger: logger}
}

// Program option labels look like "12 - INGENIERIA DE SISTEMAS (PASTO)"; the
// leading ordinal is display noise and the parenthesised city is the campus.
var programaRe = regexp.MustCompile(`^\s*\d+\s*-\s*([^\(]+)\s*(?:\(([^\)]*)\))?`)

// Subject option labels look like "CALCULO I (4 CR)".
var materiaRe = regexp.MustCompile(`^\s*([^\(]+)\s*\(([^\)]*)\)\s*$`)

// Periods scrapes the portal entry page for the available academic periods.
func (s *CatalogService) Periods(ctx context.Context, refresh bool) ([]models.Periodo, bool, error) {
	key := "periodos"
	var cached []models.Periodo
	if !refresh {
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			return cached, true, nil
		}
	}

	start := time.Now()
	opts, err := s.fetcher.FetchPeriods(ctx)
	s.metrics.ObservePortalFetch("periods", time.Since(start))
	if err != nil {
		return nil, false, err
	}

	periodos := make([]models.Periodo, 0, len(opts))
	for _, o := range opts {
		periodos = append(periodos, models.Periodo{Codigo: o.Code, Nombre: o.Text})
	}

	if err := s.cache.Set(ctx, key, periodos, 0); err != nil && s.logger != nil {
		s.logger.Warn("periods cache write failed", zap.Error(err))
	}
	return periodos, false, nil
}

// Programs lists the degree programs of a period.
func (s *CatalogService) Programs(ctx context.Context, periodID string, refresh bool) ([]models.Programa, bool, error) {
	key := "programas:" + periodID
	var cached []models.Programa
	if !refresh {
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			return cached, true, nil
		}
	}

	start := time.Now()
	opts, err := s.fetcher.FetchOptions(ctx, portal.ProgramsCall(periodID, s.scriptInit))
	s.metrics.ObservePortalFetch("programs", time.Since(start))
	if err != nil {
		return nil, false, err
	}

	programas := make([]models.Programa, 0, len(opts))
	for _, o := range opts {
		p := models.Programa{Codigo: o.Code, Nombre: o.Text}
		if m := programaRe.FindStringSubmatch(o.Text); m != nil {
			p.Titulo = strings.TrimSpace(m[1])
			p.Sede = strings.TrimSpace(m[2])
		}
		p.Label = programaLabel(p)
		programas = append(programas, p)
	}

	if err := s.cache.Set(ctx, key, programas, 0); err != nil && s.logger != nil {
		s.logger.Warn("programs cache write failed", zap.Error(err))
	}
	return programas, false, nil
}

func programaLabel(p models.Programa) string {
	if p.Titulo == "" {
		return p.Nombre
	}
	if p.Sede != "" {
		return fmt.Sprintf("%s (%s) %s", p.Codigo, p.Sede, p.Titulo)
	}
	return fmt.Sprintf("%s %s", p.Codigo, p.Titulo)
}

// Subjects lists the subjects of a program within a period.
func (s *CatalogService) Subjects(ctx context.Context, periodID, programID string, refresh bool) ([]models.Materia, bool, error) {
	key := "materias:" + periodID + ":" + programID
	var cached []models.Materia
	if !refresh {
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			return cached, true, nil
		}
	}

	start := time.Now()
	opts, err := s.fetcher.FetchOptions(ctx, portal.SubjectsCall(programID, periodID, s.scriptInit))
	s.metrics.ObservePortalFetch("subjects", time.Since(start))
	if err != nil {
		return nil, false, err
	}

	materias := make([]models.Materia, 0, len(opts))
	for _, o := range opts {
		m := models.Materia{Codigo: o.Code, Nombre: o.Text}
		if sub := materiaRe.FindStringSubmatch(o.Text); sub != nil {
			m.Titulo = strings.TrimSpace(sub[1])
		}
		m.Label = m.Nombre
		materias = append(materias, m)
	}

	if err := s.cache.Set(ctx, key, materias, 0); err != nil && s.logger != nil {
		s.logger.Warn("subjects cache write failed", zap.Error(err))
	}
	return materias, false, nil
}

// Modalities lists the teaching modes available for a subject. An empty
// scriptInit falls back to the configured default.
func (s *CatalogService) Modalities(ctx context.Context, periodID, programID, materiaID, scriptInit string, refresh bool) ([]models.Modalidad, bool, error) {
	if scriptInit == "" {
		scriptInit = s.scriptInit
	}
	key := "modalidades:" + periodID + ":" + programID + ":" + materiaID + ":" + scriptInit
	var cached []models.Modalidad
	if !refresh {
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			return cached, true, nil
		}
	}

	start := time.Now()
	opts, err := s.fetcher.FetchOptions(ctx, portal.ModalitiesCall(materiaID, programID, periodID, scriptInit))
	s.metrics.ObservePortalFetch("modalities", time.Since(start))
	if err != nil {
		return nil, false, err
	}

	modalidades := make([]models.Modalidad, 0, len(opts))
	for _, o := range opts {
		modalidades = append(modalidades, models.Modalidad{Codigo: o.Code, Nombre: o.Text})
	}

	if err := s.cache.Set(ctx, key, modalidades, 0); err != nil && s.logger != nil {
		s.logger.Warn("modalities cache write failed", zap.Error(err))
	}
	return modalidades, false, nil
}
