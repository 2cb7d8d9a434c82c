package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/service"
	"github.com/SecondHemisphere/portal-actividades/pkg/jwt"
	"github.com/SecondHemisphere/portal-actividades/pkg/response"
)

// AuthHandler serves the authentication endpoints.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler builds the AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login authenticates by institutional email.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// RefreshToken exchanges a refresh token for a new pair.
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// Logout revokes the presented token.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := tokenID(c)
	if jti == "" {
		response.OK(c, nil)
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, tokenExpiry(c)); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Me returns the authenticated account.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, user)
}

// ChangePassword changes the authenticated user's password.
// PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, nil)
}

// RegisterStudent is the public student sign-up.
// POST /api/v1/auth/register/student
func (h *AuthHandler) RegisterStudent(c *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	result, err := h.authSvc.RegisterStudent(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Created(c, result)
}

// RegisterOrganizer is the public organizer sign-up.
// POST /api/v1/auth/register/organizer
func (h *AuthHandler) RegisterOrganizer(c *gin.Context) {
	var req dto.RegisterOrganizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	result, err := h.authSvc.RegisterOrganizer(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Created(c, result)
}

// ResetPassword generates a temporary password for a user (admin).
// PUT /api/v1/auth/reset-password/:id
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id del usuario es obligatorio")
		return
	}

	result, err := h.authSvc.ResetPassword(c.Request.Context(), id)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, 11001, "Correo o contraseña incorrectos")
	case errors.Is(err, service.ErrUserInactive):
		response.Forbidden(c, 11002, "La cuenta está desactivada")
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, 11003, "El correo ya está registrado")
	case errors.Is(err, service.ErrInvalidStudentEmail):
		response.BadRequest(c, 11004, "El correo debe ser del dominio @ug.edu.ec")
	case errors.Is(err, service.ErrWrongOldPassword):
		response.BadRequest(c, 11005, "La contraseña actual no coincide")
	case errors.Is(err, service.ErrRefreshTokenRequired),
		errors.Is(err, jwt.ErrTokenInvalid),
		errors.Is(err, jwt.ErrTokenExpired):
		response.Unauthorized(c, 11006, "Token inválido o expirado")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 11007, "Usuario no encontrado")
	default:
		response.InternalError(c)
	}
}
