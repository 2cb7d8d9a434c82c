package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/service"
	"github.com/SecondHemisphere/portal-actividades/pkg/response"
)

// UserHandler serves the admin user endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler builds the UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListUsers lists accounts.
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	users, err := h.userSvc.List(c.Request.Context(), includeInactive)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": users})
}

// SearchUsers filters accounts by name, email and role.
// GET /api/v1/users/search
func (h *UserHandler) SearchUsers(c *gin.Context) {
	var req dto.UserSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	users, err := h.userSvc.Search(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": users})
}

// GetUser returns one account.
// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id del usuario es obligatorio")
		return
	}

	user, err := h.userSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// CreateUser creates an account.
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.Created(c, user)
}

// UpdateUser updates an account.
// PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id del usuario es obligatorio")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// DeactivateUser soft-deletes an account.
// PUT /api/v1/users/deactivate/:id
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	h.setActive(c, false)
}

// ActivateUser restores an account.
// PUT /api/v1/users/activate/:id
func (h *UserHandler) ActivateUser(c *gin.Context) {
	h.setActive(c, true)
}

func (h *UserHandler) setActive(c *gin.Context, active bool) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id del usuario es obligatorio")
		return
	}

	if err := h.userSvc.SetActive(c.Request.Context(), id, active); err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 12001, "Usuario no encontrado")
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, 12002, "El correo ya está registrado")
	default:
		response.InternalError(c)
	}
}
