package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/service"
	"github.com/SecondHemisphere/portal-actividades/pkg/response"
)

// EnrollmentHandler serves the enrollment endpoints.
type EnrollmentHandler struct {
	enrollmentSvc service.EnrollmentService
}

// NewEnrollmentHandler builds the EnrollmentHandler.
func NewEnrollmentHandler(enrollmentSvc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentSvc: enrollmentSvc}
}

// Enroll registers the authenticated student in an activity.
// POST /api/v1/enrollments/enroll
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	enrollment, err := h.enrollmentSvc.Enroll(c.Request.Context(), studentID, &req)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.Created(c, enrollment)
}

// CancelEnrollment cancels the authenticated student's enrollment.
// PUT /api/v1/enrollments/cancel/:id
func (h *EnrollmentHandler) CancelEnrollment(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id de la inscripción es obligatorio")
		return
	}

	if err := h.enrollmentSvc.Cancel(c.Request.Context(), studentID, id); err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, nil)
}

// ListMyEnrollments lists the authenticated student's enrollments.
// GET /api/v1/enrollments/mine
func (h *EnrollmentHandler) ListMyEnrollments(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, err := h.enrollmentSvc.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// MyCalendar returns the authenticated student's enrolled activities
// grouped by day for one month.
// GET /api/v1/enrollments/mine/calendar
func (h *EnrollmentHandler) MyCalendar(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	days, err := h.enrollmentSvc.StudentCalendar(c.Request.Context(), studentID, year, time.Month(month))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"days": days})
}

// ListEnrollments lists every enrollment (admin).
// GET /api/v1/enrollments
func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	list, err := h.enrollmentSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// SearchEnrollments filters enrollments.
// GET /api/v1/enrollments/search
func (h *EnrollmentHandler) SearchEnrollments(c *gin.Context) {
	var req dto.EnrollmentSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	list, err := h.enrollmentSvc.Search(c.Request.Context(), &req)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// GetEnrollment returns one enrollment.
// GET /api/v1/enrollments/:id
func (h *EnrollmentHandler) GetEnrollment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id de la inscripción es obligatorio")
		return
	}

	enrollment, err := h.enrollmentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, enrollment)
}

// ListByActivity lists an activity's enrollments. Organizers only see
// the roster of their own activities.
// GET /api/v1/enrollments/activity/:id
func (h *EnrollmentHandler) ListByActivity(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	actorRole, ok := MustGetRole(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id de la actividad es obligatorio")
		return
	}

	list, err := h.enrollmentSvc.ListByActivity(c.Request.Context(), actorID, actorRole, id)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// ListByStudent lists a student's enrollments (admin).
// GET /api/v1/enrollments/student/:id
func (h *EnrollmentHandler) ListByStudent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id del estudiante es obligatorio")
		return
	}

	list, err := h.enrollmentSvc.ListByStudent(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// StudentCalendar returns a student's enrolled activities grouped by
// day for one month (admin).
// GET /api/v1/enrollments/student/:id/calendar
func (h *EnrollmentHandler) StudentCalendar(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id del estudiante es obligatorio")
		return
	}

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	days, err := h.enrollmentSvc.StudentCalendar(c.Request.Context(), id, year, time.Month(month))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"days": days})
}

// CreateEnrollment creates an enrollment for any student (admin).
// POST /api/v1/enrollments
func (h *EnrollmentHandler) CreateEnrollment(c *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	enrollment, err := h.enrollmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.Created(c, enrollment)
}

// UpdateEnrollment updates note and status (admin).
// PUT /api/v1/enrollments/:id
func (h *EnrollmentHandler) UpdateEnrollment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id de la inscripción es obligatorio")
		return
	}

	var req dto.UpdateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	enrollment, err := h.enrollmentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, enrollment)
}

func (h *EnrollmentHandler) handleEnrollmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEnrollmentNotFound):
		response.NotFound(c, 17001, "Inscripción no encontrada")
	case errors.Is(err, service.ErrActivityNotFound):
		response.NotFound(c, 17002, "Actividad no encontrada")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 17003, "Estudiante no encontrado")
	case errors.Is(err, service.ErrAlreadyEnrolled):
		response.Conflict(c, 17004, "Ya estás inscrito en esta actividad")
	case errors.Is(err, service.ErrRegistrationClosed):
		response.BadRequest(c, 17005, "Las inscripciones están cerradas")
	case errors.Is(err, service.ErrActivityFull):
		response.Conflict(c, 17006, "La actividad no tiene cupos disponibles")
	case errors.Is(err, service.ErrActivityInactive):
		response.BadRequest(c, 17007, "La actividad no está disponible")
	case errors.Is(err, service.ErrNotEnrollmentOwner):
		response.Forbidden(c, 17008, "La inscripción pertenece a otro estudiante")
	case errors.Is(err, service.ErrEnrollmentCancelled):
		response.BadRequest(c, 17009, "La inscripción ya está cancelada")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 17010, "La fecha no tiene un formato válido")
	case errors.Is(err, service.ErrNotActivityOwner):
		response.Forbidden(c, 17011, "La actividad pertenece a otro organizador")
	default:
		response.InternalError(c)
	}
}
