package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/service"
	"github.com/SecondHemisphere/portal-actividades/pkg/response"
)

// ActivityHandler serves the activity endpoints, including the monthly
// calendar view.
type ActivityHandler struct {
	activitySvc service.ActivityService
}

// NewActivityHandler builds the ActivityHandler.
func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

// ListActivities lists activities.
// GET /api/v1/activities
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	activities, err := h.activitySvc.List(c.Request.Context(), includeInactive)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": activities})
}

// SearchActivities filters activities.
// GET /api/v1/activities/search
func (h *ActivityHandler) SearchActivities(c *gin.Context) {
	var req dto.ActivitySearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	activities, err := h.activitySvc.Search(c.Request.Context(), &req)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, gin.H{"list": activities})
}

// Calendar returns the month's activities grouped by day.
// GET /api/v1/activities/calendar
func (h *ActivityHandler) Calendar(c *gin.Context) {
	var req dto.CalendarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	days, err := h.activitySvc.Calendar(c.Request.Context(), &req)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, gin.H{"days": days})
}

// GetActivity returns one activity with its derived state.
// GET /api/v1/activities/:id
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id de la actividad es obligatorio")
		return
	}

	activity, err := h.activitySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, activity)
}

// ListMyActivities lists the authenticated organizer's activities.
// GET /api/v1/activities/mine
func (h *ActivityHandler) ListMyActivities(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	activities, err := h.activitySvc.ListByOrganizer(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": activities})
}

// CreateActivity creates an activity.
// POST /api/v1/activities
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	actorRole, ok := MustGetRole(c)
	if !ok {
		return
	}

	activity, err := h.activitySvc.Create(c.Request.Context(), actorID, actorRole, &req)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.Created(c, activity)
}

// UpdateActivity updates an activity.
// PUT /api/v1/activities/:id
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id de la actividad es obligatorio")
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	actorRole, ok := MustGetRole(c)
	if !ok {
		return
	}

	activity, err := h.activitySvc.Update(c.Request.Context(), actorID, actorRole, id, &req)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, activity)
}

// DeactivateActivity soft-deletes an activity.
// PUT /api/v1/activities/deactivate/:id
func (h *ActivityHandler) DeactivateActivity(c *gin.Context) {
	h.setActive(c, false)
}

// ActivateActivity restores an activity.
// PUT /api/v1/activities/activate/:id
func (h *ActivityHandler) ActivateActivity(c *gin.Context) {
	h.setActive(c, true)
}

func (h *ActivityHandler) setActive(c *gin.Context, active bool) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id de la actividad es obligatorio")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	actorRole, ok := MustGetRole(c)
	if !ok {
		return
	}

	if err := h.activitySvc.SetActive(c.Request.Context(), actorID, actorRole, id, active); err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ActivityHandler) handleActivityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		response.NotFound(c, 16001, "Actividad no encontrada")
	case errors.Is(err, service.ErrCategoryNotFound):
		response.BadRequest(c, 16002, "La categoría no existe")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 16003, "La fecha no tiene un formato válido")
	case errors.Is(err, service.ErrInvalidTimeRange):
		response.BadRequest(c, 16004, "El horario debe tener el formato HH:MM - HH:MM")
	case errors.Is(err, service.ErrDeadlineAfterDate):
		response.BadRequest(c, 16005, "La fecha límite no puede ser posterior a la actividad")
	case errors.Is(err, service.ErrNotActivityOwner):
		response.Forbidden(c, 16006, "La actividad pertenece a otro organizador")
	default:
		response.InternalError(c)
	}
}
