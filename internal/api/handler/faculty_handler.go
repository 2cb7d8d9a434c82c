package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/portal-actividades/internal/service"
	"github.com/SecondHemisphere/portal-actividades/pkg/response"
)

// FacultyHandler serves the faculty/career dropdown data.
type FacultyHandler struct {
	facultySvc service.FacultyService
}

// NewFacultyHandler builds the FacultyHandler.
func NewFacultyHandler(facultySvc service.FacultyService) *FacultyHandler {
	return &FacultyHandler{facultySvc: facultySvc}
}

// ListFaculties lists faculties with their careers.
// GET /api/v1/faculties
func (h *FacultyHandler) ListFaculties(c *gin.Context) {
	faculties, err := h.facultySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": faculties})
}
