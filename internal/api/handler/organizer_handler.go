package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/service"
	"github.com/SecondHemisphere/portal-actividades/pkg/response"
)

// OrganizerHandler serves the organizer endpoints.
type OrganizerHandler struct {
	organizerSvc service.OrganizerService
}

// NewOrganizerHandler builds the OrganizerHandler.
func NewOrganizerHandler(organizerSvc service.OrganizerService) *OrganizerHandler {
	return &OrganizerHandler{organizerSvc: organizerSvc}
}

// ListOrganizers lists organizers.
// GET /api/v1/organizers
func (h *OrganizerHandler) ListOrganizers(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	organizers, err := h.organizerSvc.List(c.Request.Context(), includeInactive)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": organizers})
}

// SearchOrganizers filters organizers.
// GET /api/v1/organizers/search
func (h *OrganizerHandler) SearchOrganizers(c *gin.Context) {
	var req dto.OrganizerSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	organizers, err := h.organizerSvc.Search(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": organizers})
}

// GetOrganizer returns one organizer.
// GET /api/v1/organizers/:id
func (h *OrganizerHandler) GetOrganizer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id del organizador es obligatorio")
		return
	}

	organizer, err := h.organizerSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleOrganizerError(c, err)
		return
	}

	response.OK(c, organizer)
}

// CreateOrganizer creates an organizer account (admin).
// POST /api/v1/organizers
func (h *OrganizerHandler) CreateOrganizer(c *gin.Context) {
	var req dto.CreateOrganizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	organizer, err := h.organizerSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleOrganizerError(c, err)
		return
	}

	response.Created(c, organizer)
}

// UpdateOrganizer updates an organizer (admin).
// PUT /api/v1/organizers/:id
func (h *OrganizerHandler) UpdateOrganizer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id del organizador es obligatorio")
		return
	}

	var req dto.UpdateOrganizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	organizer, err := h.organizerSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleOrganizerError(c, err)
		return
	}

	response.OK(c, organizer)
}

// DeactivateOrganizer soft-deletes an organizer.
// PUT /api/v1/organizers/deactivate/:id
func (h *OrganizerHandler) DeactivateOrganizer(c *gin.Context) {
	h.setActive(c, false)
}

// ActivateOrganizer restores an organizer.
// PUT /api/v1/organizers/activate/:id
func (h *OrganizerHandler) ActivateOrganizer(c *gin.Context) {
	h.setActive(c, true)
}

// GetMyProfile returns the authenticated organizer's profile.
// GET /api/v1/organizers/me
func (h *OrganizerHandler) GetMyProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	organizer, err := h.organizerSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleOrganizerError(c, err)
		return
	}

	response.OK(c, organizer)
}

// UpdateMyProfile updates the authenticated organizer's profile.
// PUT /api/v1/organizers/me
func (h *OrganizerHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrganizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	organizer, err := h.organizerSvc.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleOrganizerError(c, err)
		return
	}

	response.OK(c, organizer)
}

func (h *OrganizerHandler) setActive(c *gin.Context, active bool) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id del organizador es obligatorio")
		return
	}

	if err := h.organizerSvc.SetActive(c.Request.Context(), id, active); err != nil {
		h.handleOrganizerError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *OrganizerHandler) handleOrganizerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOrganizerNotFound):
		response.NotFound(c, 14001, "Organizador no encontrado")
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, 14002, "El correo ya está registrado")
	default:
		response.InternalError(c)
	}
}
