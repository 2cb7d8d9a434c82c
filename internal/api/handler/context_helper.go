package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/portal-actividades/internal/api/middleware"
	"github.com/SecondHemisphere/portal-actividades/pkg/response"
)

// MustGetUserID extracts the user id the auth middleware injected. When
// it is missing the 401 is already written; the caller should return.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxUserID)
	if !exists {
		response.Unauthorized(c, 10002, "No autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "No autenticado")
		return "", false
	}
	return s, true
}

// MustGetRole extracts the role the auth middleware injected.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxRole)
	if !exists {
		response.Unauthorized(c, 10002, "No autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "No autenticado")
		return "", false
	}
	return s, true
}

// tokenID extracts the JWT id, empty when absent.
func tokenID(c *gin.Context) string {
	return c.GetString(middleware.CtxTokenID)
}

// tokenExpiry extracts the token expiry instant, zero when absent.
func tokenExpiry(c *gin.Context) time.Time {
	v, exists := c.Get(middleware.CtxTokenExp)
	if !exists {
		return time.Time{}
	}
	t, _ := v.(time.Time)
	return t
}
