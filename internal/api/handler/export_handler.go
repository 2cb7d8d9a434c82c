package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/portal-actividades/internal/service"
	"github.com/SecondHemisphere/portal-actividades/pkg/response"
)

// ExportHandler serves the downloadable reports.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler builds the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportEnrollments downloads an activity's enrollment list as .xlsx.
// GET /api/v1/export/enrollments?activityId=xxx
func (h *ExportHandler) ExportEnrollments(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	actorRole, ok := MustGetRole(c)
	if !ok {
		return
	}

	activityID := c.Query("activityId")
	if activityID == "" {
		response.BadRequest(c, 10001, "El id de la actividad es obligatorio")
		return
	}

	buf, filename, err := h.exportSvc.ExportEnrollments(c.Request.Context(), actorID, actorRole, activityID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		response.NotFound(c, 19001, "Actividad no encontrada")
	case errors.Is(err, service.ErrExportNoEnrollments):
		response.BadRequest(c, 19002, "La actividad no tiene inscripciones")
	case errors.Is(err, service.ErrNotActivityOwner):
		response.Forbidden(c, 19003, "La actividad pertenece a otro organizador")
	default:
		response.InternalError(c)
	}
}
