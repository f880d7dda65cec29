package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udecupos/udecupos-api/internal/dto"
	"github.com/udecupos/udecupos-api/internal/service"
	appErrors "github.com/udecupos/udecupos-api/pkg/errors"
	"github.com/udecupos/udecupos-api/pkg/response"
)

// TimetableHandler exposes the timetable build and export endpoints.
type TimetableHandler struct {
	timetables *service.TimetableService
	exports    *service.ExportService
}

// NewTimetableHandler constructs a timetable handler.
func NewTimetableHandler(timetables *service.TimetableService, exports *service.ExportService) *TimetableHandler {
	return &TimetableHandler{timetables: timetables, exports: exports}
}

// Build lays out the selected sections into a week.
func (h *TimetableHandler) Build(c *gin.Context) {
	var req dto.TimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "cuerpo de la petición inválido"))
		return
	}
	resp, err := h.timetables.Build(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

// Export renders the timetable as a downloadable document. The format query
// parameter selects png, xlsx, pdf or csv.
func (h *TimetableHandler) Export(c *gin.Context) {
	var req dto.TimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "cuerpo de la petición inválido"))
		return
	}

	format := c.DefaultQuery("format", "png")
	result, err := h.exports.Export(c.Request.Context(), req, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}
