package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/udecupos/udecupos-api/internal/models"
	"github.com/udecupos/udecupos-api/internal/parser"
	"github.com/udecupos/udecupos-api/internal/portal"
)

// SectionService serves section (grupo) lookups, the most expensive portal
// operation and the only one whose labels need full schedule parsing.
type SectionService struct {
	fetcher PortalFetcher
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
}

// NewSectionService constructs a section service.
func NewSectionService(fetcher PortalFetcher, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *SectionService {
	return &SectionService{fetcher: fetcher, cache: cache, metrics: metrics, logger: logger}
}

// SectionQuery names the full catalog path of a section listing. SortBy and
// SortOrder only affect response ordering, never the cached payload.
type SectionQuery struct {
	PeriodID    string
	ProgramID   string
	MateriaID   string
	ModalidadID string
	ScriptInit  string
	Refresh     bool
	SortBy      string
	SortOrder   string
}

func (q SectionQuery) cacheKey() string {
	return fmt.Sprintf("grupos:%s:%s:%s:%s:%s", q.ModalidadID, q.PeriodID, q.ProgramID, q.MateriaID, q.ScriptInit)
}

// Sections fetches, parses and orders the sections of a subject offering.
// The boolean result reports whether the payload came from cache.
func (s *SectionService) Sections(ctx context.Context, q SectionQuery) ([]models.Grupo, bool, error) {
	key := q.cacheKey()
	var cached []models.Grupo
	if !q.Refresh {
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			if q.SortBy != "" || q.SortOrder != "" {
				parser.SortGruposBy(cached, q.SortBy, q.SortOrder)
			}
			return cached, true, nil
		}
	}

	start := time.Now()
	opts, err := s.fetcher.FetchOptions(ctx, portal.SectionsCall(q.ModalidadID, q.PeriodID, q.ProgramID, q.MateriaID, q.ScriptInit))
	s.metrics.ObservePortalFetch("sections", time.Since(start))
	if err != nil {
		return nil, false, err
	}

	grupos := make([]models.Grupo, 0, len(opts))
	for _, o := range opts {
		grupos = append(grupos, parser.ParseSection(o.Code, o.Text))
	}
	parser.SortGrupos(grupos)

	if err := s.cache.Set(ctx, key, grupos, 0); err != nil && s.logger != nil {
		s.logger.Warn("sections cache write failed", zap.Error(err))
	}

	if q.SortBy != "" || q.SortOrder != "" {
		parser.SortGruposBy(grupos, q.SortBy, q.SortOrder)
	}
	return grupos, false, nil
}
