package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udecupos/udecupos-api/internal/middleware"
	"github.com/udecupos/udecupos-api/internal/service"
	"github.com/udecupos/udecupos-api/pkg/response"
)

// SectionHandler exposes the section (grupo) lookup endpoint.
type SectionHandler struct {
	service *service.SectionService
}

// NewSectionHandler constructs a section handler.
func NewSectionHandler(svc *service.SectionService) *SectionHandler {
	return &SectionHandler{service: svc}
}

// List returns the parsed sections of a subject offering.
func (h *SectionHandler) List(c *gin.Context) {
	periodID := c.Query("periodId")
	programID := c.Query("programId")
	materiaID := c.Query("materiaId")
	modalidadID := c.Query("modalidadId")
	if periodID == "" || programID == "" || materiaID == "" || modalidadID == "" {
		missingParam(c, "Faltan periodId, programId, materiaId o modalidadId")
		return
	}

	// Section lookups send an empty script id unless the caller supplies one.
	grupos, hit, err := h.service.Sections(c.Request.Context(), service.SectionQuery{
		PeriodID:    periodID,
		ProgramID:   programID,
		MateriaID:   materiaID,
		ModalidadID: modalidadID,
		ScriptInit:  c.Query("scriptInit"),
		Refresh:     refreshFlag(c),
		SortBy:      c.Query("sort"),
		SortOrder:   c.Query("order"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheStatus(c, hit)
	response.JSON(c, http.StatusOK, gin.H{"grupos": grupos})
}
