package jwt

import (
	"testing"
	"time"

	"github.com/SecondHemisphere/portal-actividades/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "clave-secreta-solo-para-tests",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("user-1", "Ana Pincay", "Admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken falló: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken falló: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("UserID esperado user-1, obtenido %s", claims.UserID)
	}
	if claims.Username != "Ana Pincay" {
		t.Errorf("Username esperado Ana Pincay, obtenido %s", claims.Username)
	}
	if claims.Role != "Admin" {
		t.Errorf("Role esperado Admin, obtenido %s", claims.Role)
	}
	if claims.TokenType != "access" {
		t.Errorf("TokenType esperado access, obtenido %s", claims.TokenType)
	}
	if claims.Issuer != "portal-actividades" {
		t.Errorf("Issuer esperado portal-actividades, obtenido %s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("el JTI no debe estar vacío")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("user-1", "Ana Pincay", "Estudiante")
	if err != nil {
		t.Fatalf("GenerateRefreshToken falló: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken falló: %v", err)
	}

	if claims.TokenType != "refresh" {
		t.Errorf("TokenType esperado refresh, obtenido %s", claims.TokenType)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 6*24*time.Hour || ttl > 8*24*time.Hour {
		t.Errorf("TTL del refresh token esperado ~7d, obtenido %v", ttl)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	m := newTestManager()

	if _, err := m.ParseToken("no.es.un-token"); err == nil {
		t.Error("se esperaba error al parsear un token inválido")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret:      "otra-clave-secreta-distinta",
		AccessTokenTTL: 30 * time.Minute,
	})

	token, _ := m1.GenerateAccessToken("user-1", "Ana Pincay", "Admin")
	if _, err := m2.ParseToken(token); err == nil {
		t.Error("se esperaba error al verificar con otra clave")
	}
}
