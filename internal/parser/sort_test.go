package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udecupos/udecupos-api/internal/models"
)

func TestSedeRank(t *testing.T) {
	assert.Equal(t, 1, SedeRank("4-PASTO"))
	assert.Equal(t, 2, SedeRank("2-TUMACO"))
	assert.Equal(t, 4, SedeRank("1-TÚQUERRES"))
	assert.Equal(t, 9, SedeRank("0-GENERAL"))
	assert.Equal(t, 99, SedeRank("5-BOGOTA"))
	assert.Equal(t, 99, SedeRank(""))
}

func TestGrupoNumber(t *testing.T) {
	assert.Equal(t, 2, GrupoNumber("2"))
	assert.Equal(t, 10, GrupoNumber("G10"))
	assert.Equal(t, 1<<30, GrupoNumber("A"))
}

func TestOcupacionPct(t *testing.T) {
	assert.InDelta(t, 0.75, OcupacionPct("15/20"), 1e-9)
	assert.Equal(t, 2.0, OcupacionPct(""))
	assert.Equal(t, 2.0, OcupacionPct("5/0"))
}

func TestSortGruposBy(t *testing.T) {
	grupos := []models.Grupo{
		{Grupo: "1", Ocupacion: "20/20"},
		{Grupo: "2", Ocupacion: "5/20"},
	}

	SortGruposBy(grupos, "ocupacion", "")
	assert.Equal(t, "2", grupos[0].Grupo)

	SortGruposBy(grupos, "ocupacion", "desc")
	assert.Equal(t, "1", grupos[0].Grupo)

	SortGruposBy(grupos, "grupo", "")
	assert.Equal(t, "1", grupos[0].Grupo)
}

func TestSortGrupos(t *testing.T) {
	grupos := []models.Grupo{
		{Grupo: "2", Sede: "2-TUMACO"},
		{Grupo: "10", Sede: "4-PASTO"},
		{Grupo: "1", Sede: "4-PASTO"},
	}
	SortGrupos(grupos)

	assert.Equal(t, "1", grupos[0].Grupo)
	assert.Equal(t, "10", grupos[1].Grupo)
	assert.Equal(t, "2", grupos[2].Grupo)
}
