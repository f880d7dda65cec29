package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/udecupos/udecupos-api/internal/dto"
	"github.com/udecupos/udecupos-api/internal/portal"
	"github.com/udecupos/udecupos-api/internal/repository"
	"github.com/udecupos/udecupos-api/pkg/config"
	appErrors "github.com/udecupos/udecupos-api/pkg/errors"
)

func timetableConfig() config.TimetableConfig {
	return config.TimetableConfig{
		StartHour: 7,
		EndHour:   22,
		Days:      []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"},
	}
}

func newTimetableFixture(t *testing.T) (*TimetableService, *fakeFetcher) {
	t.Helper()
	fetcher := &fakeFetcher{options: map[string][]portal.Option{}}
	cache := NewCacheService(repository.NewMemoryCache(), nil, time.Minute, zap.NewNop(), true)
	sections := NewSectionService(fetcher, cache, NewMetricsService(), zap.NewNop())
	return NewTimetableService(sections, timetableConfig(), zap.NewNop()), fetcher
}

func timetableRequest() dto.TimetableRequest {
	return dto.TimetableRequest{
		Selections: []dto.SectionSelection{{
			Periodo:      "77",
			Programa:     "12",
			Materia:      "900",
			MateriaLabel: "CALCULO I",
			Modalidad:    "1",
			Grupo:        "10",
		}},
	}
}

func TestTimetableBuild(t *testing.T) {
	svc, fetcher := newTimetableFixture(t)
	fetcher.options["grupo_cam"] = []portal.Option{
		{Code: "10", Text: "Grupo:1  15/20-->4-PASTO- Horario:Lunes:10 - 11AM(A204) Lunes:11 - 12PM(A204) Docente(s):PEREZ"},
	}

	resp, err := svc.Build(context.Background(), timetableRequest())
	require.NoError(t, err)
	assert.Equal(t, 7, resp.StartHour)
	assert.Equal(t, 22, resp.EndHour)

	// Selections without a scriptInit reach the portal with an empty script id.
	require.NotEmpty(t, fetcher.lastArg)
	assert.Empty(t, fetcher.lastArg[len(fetcher.lastArg)-1])

	require.Len(t, resp.Days, 1)
	assert.Equal(t, "Lunes", resp.Days[0].Dia)
	require.Len(t, resp.Days[0].Events, 1)

	ev := resp.Days[0].Events[0]
	assert.Equal(t, 600, ev.StartMin)
	assert.Equal(t, 720, ev.EndMin)
	assert.Equal(t, "CALCULO I", ev.Title)
	assert.Equal(t, "A204", ev.Location)
	assert.Equal(t, "PEREZ", ev.Docente)
	assert.Equal(t, 0, ev.Lane)
	assert.Equal(t, 1, ev.Lanes)
	assert.NotEmpty(t, ev.Style.Fill)
}

func TestTimetableBuildUnknownGrupo(t *testing.T) {
	svc, fetcher := newTimetableFixture(t)
	fetcher.options["grupo_cam"] = []portal.Option{
		{Code: "11", Text: "Grupo:2 Horario:Lunes:8 - 10AM(T1) Docente(s):A"},
	}

	_, err := svc.Build(context.Background(), timetableRequest())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestTimetableBuildRejectsEmptySelection(t *testing.T) {
	svc, _ := newTimetableFixture(t)

	_, err := svc.Build(context.Background(), dto.TimetableRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestTimetableWindowOverride(t *testing.T) {
	svc, _ := newTimetableFixture(t)

	w := svc.Window(dto.DisplayOptions{StartHour: 6, EndHour: 20})
	assert.Equal(t, 6, w.StartHour)
	assert.Equal(t, 20, w.EndHour)

	w = svc.Window(dto.DisplayOptions{})
	assert.Equal(t, 7, w.StartHour)
	assert.Equal(t, 22, w.EndHour)

	w = svc.Window(dto.DisplayOptions{StartHour: 10, EndHour: 8})
	assert.Equal(t, 7, w.StartHour)
	assert.Equal(t, 22, w.EndHour)
}
