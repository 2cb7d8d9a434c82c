package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/service"
	"github.com/SecondHemisphere/portal-actividades/pkg/response"
)

// StudentHandler serves the student endpoints: the admin CRUD plus the
// student's own profile.
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler builds the StudentHandler.
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// ListStudents lists students.
// GET /api/v1/students
func (h *StudentHandler) ListStudents(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	students, err := h.studentSvc.List(c.Request.Context(), includeInactive)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": students})
}

// SearchStudents filters students.
// GET /api/v1/students/search
func (h *StudentHandler) SearchStudents(c *gin.Context) {
	var req dto.StudentSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	students, err := h.studentSvc.Search(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": students})
}

// GetStudent returns one student.
// GET /api/v1/students/:id
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id del estudiante es obligatorio")
		return
	}

	student, err := h.studentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, student)
}

// CreateStudent creates a student account (admin).
// POST /api/v1/students
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	student, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.Created(c, student)
}

// UpdateStudent updates a student (admin).
// PUT /api/v1/students/:id
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id del estudiante es obligatorio")
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	student, err := h.studentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, student)
}

// DeactivateStudent soft-deletes a student.
// PUT /api/v1/students/deactivate/:id
func (h *StudentHandler) DeactivateStudent(c *gin.Context) {
	h.setActive(c, false)
}

// ActivateStudent restores a student.
// PUT /api/v1/students/activate/:id
func (h *StudentHandler) ActivateStudent(c *gin.Context) {
	h.setActive(c, true)
}

// GetMyProfile returns the authenticated student's profile.
// GET /api/v1/students/me
func (h *StudentHandler) GetMyProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	student, err := h.studentSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, student)
}

// UpdateMyProfile updates the authenticated student's profile.
// PUT /api/v1/students/me
func (h *StudentHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	student, err := h.studentSvc.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, student)
}

func (h *StudentHandler) setActive(c *gin.Context, active bool) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id del estudiante es obligatorio")
		return
	}

	if err := h.studentSvc.SetActive(c.Request.Context(), id, active); err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *StudentHandler) handleStudentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 13001, "Estudiante no encontrado")
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, 13002, "El correo ya está registrado")
	case errors.Is(err, service.ErrInvalidStudentEmail):
		response.BadRequest(c, 13003, "El correo debe ser del dominio @ug.edu.ec")
	default:
		response.InternalError(c)
	}
}
