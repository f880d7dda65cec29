package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/udecupos/udecupos-api/internal/portal"
	"github.com/udecupos/udecupos-api/internal/repository"
)

func newSectionFixture(t *testing.T) (*SectionService, *fakeFetcher) {
	t.Helper()
	fetcher := &fakeFetcher{options: map[string][]portal.Option{}}
	cache := NewCacheService(repository.NewMemoryCache(), nil, time.Minute, zap.NewNop(), true)
	return NewSectionService(fetcher, cache, NewMetricsService(), zap.NewNop()), fetcher
}

func sectionQuery() SectionQuery {
	return SectionQuery{PeriodID: "77", ProgramID: "12", MateriaID: "900", ModalidadID: "1", ScriptInit: "5449"}
}

func TestSectionsParsedAndSorted(t *testing.T) {
	svc, fetcher := newSectionFixture(t)
	fetcher.options["grupo_cam"] = []portal.Option{
		{Code: "20", Text: "Grupo:2  10/20-->2-TUMACO- Horario:Lunes:8 - 10AM(T1) Docente(s):A"},
		{Code: "10", Text: "Grupo:1  15/20-->4-PASTO- Horario:Martes:10 - 12PM(A2) Docente(s):B"},
	}

	grupos, hit, err := svc.Sections(context.Background(), sectionQuery())
	require.NoError(t, err)
	assert.False(t, hit)
	require.Len(t, grupos, 2)

	// Pasto outranks Tumaco regardless of portal order.
	assert.Equal(t, "1", grupos[0].Grupo)
	assert.Equal(t, "4-PASTO", grupos[0].Sede)
	assert.Equal(t, "2", grupos[1].Grupo)

	assert.Equal(t, "ajax_Cupos_estudiantes_refresh_tipo_modalidad", fetcher.lastRS)
	assert.Equal(t, []string{"1", "77", "12", "900", "grupo_cam", "5449"}, fetcher.lastArg)
}

func TestSectionsCacheKeyDistinguishesQueries(t *testing.T) {
	svc, fetcher := newSectionFixture(t)
	fetcher.options["grupo_cam"] = []portal.Option{
		{Code: "10", Text: "Grupo:1 Horario:Lunes:8 - 10AM(T1) Docente(s):A"},
	}
	ctx := context.Background()

	_, hit, err := svc.Sections(ctx, sectionQuery())
	require.NoError(t, err)
	assert.False(t, hit)

	_, hit, err = svc.Sections(ctx, sectionQuery())
	require.NoError(t, err)
	assert.True(t, hit)

	other := sectionQuery()
	other.MateriaID = "901"
	_, hit, err = svc.Sections(ctx, other)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, fetcher.calls)
}

func TestSectionsRefreshBypassesCache(t *testing.T) {
	svc, fetcher := newSectionFixture(t)
	fetcher.options["grupo_cam"] = []portal.Option{
		{Code: "10", Text: "Grupo:1 Horario:Lunes:8 - 10AM(T1) Docente(s):A"},
	}
	ctx := context.Background()

	_, _, err := svc.Sections(ctx, sectionQuery())
	require.NoError(t, err)

	q := sectionQuery()
	q.Refresh = true
	_, hit, err := svc.Sections(ctx, q)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, fetcher.calls)
}
