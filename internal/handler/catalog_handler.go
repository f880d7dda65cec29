package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/udecupos/udecupos-api/internal/middleware"
	"github.com/udecupos/udecupos-api/internal/service"
	appErrors "github.com/udecupos/udecupos-api/pkg/errors"
	"github.com/udecupos/udecupos-api/pkg/response"
)

// CatalogHandler exposes the cascading catalog endpoints.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler constructs a catalog handler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

func refreshFlag(c *gin.Context) bool {
	val, _ := strconv.ParseBool(c.Query("refresh"))
	return val
}

func missingParam(c *gin.Context, message string) {
	response.Error(c, appErrors.Clone(appErrors.ErrValidation, message))
}

// Periods lists the academic periods offered by the portal.
func (h *CatalogHandler) Periods(c *gin.Context) {
	periodos, hit, err := h.service.Periods(c.Request.Context(), refreshFlag(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheStatus(c, hit)
	response.JSON(c, http.StatusOK, gin.H{"periodos": periodos})
}

// Programs lists degree programs for a period.
func (h *CatalogHandler) Programs(c *gin.Context) {
	periodID := c.Query("periodId")
	if periodID == "" {
		missingParam(c, "Falta periodId")
		return
	}
	programas, hit, err := h.service.Programs(c.Request.Context(), periodID, refreshFlag(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheStatus(c, hit)
	response.JSON(c, http.StatusOK, gin.H{"programas": programas})
}

// Subjects lists the subjects of a program.
func (h *CatalogHandler) Subjects(c *gin.Context) {
	periodID := c.Query("periodId")
	programID := c.Query("programId")
	if periodID == "" || programID == "" {
		missingParam(c, "Faltan periodId o programId")
		return
	}
	materias, hit, err := h.service.Subjects(c.Request.Context(), periodID, programID, refreshFlag(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheStatus(c, hit)
	response.JSON(c, http.StatusOK, gin.H{"materias": materias})
}

// Modalities lists the teaching modes of a subject.
func (h *CatalogHandler) Modalities(c *gin.Context) {
	periodID := c.Query("periodId")
	programID := c.Query("programId")
	materiaID := c.Query("materiaId")
	if periodID == "" || programID == "" || materiaID == "" {
		missingParam(c, "Faltan periodId, programId o materiaId")
		return
	}
	modalidades, hit, err := h.service.Modalities(c.Request.Context(), periodID, programID, materiaID, c.Query("scriptInit"), refreshFlag(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheStatus(c, hit)
	response.JSON(c, http.StatusOK, gin.H{"modalidades": modalidades})
}
