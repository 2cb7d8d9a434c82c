package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/SecondHemisphere/portal-actividades/config"
	"github.com/SecondHemisphere/portal-actividades/internal/api/handler"
	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/pkg/jwt"
)

// stubActivityService serves a fixed activity; the routing tests only
// care about which routes are reachable without a token.
type stubActivityService struct {
	activity *dto.ActivityResponse
}

func (s *stubActivityService) Create(_ context.Context, _, _ string, _ *dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	return s.activity, nil
}
func (s *stubActivityService) GetByID(_ context.Context, _ string) (*dto.ActivityResponse, error) {
	return s.activity, nil
}
func (s *stubActivityService) List(_ context.Context, _ bool) ([]dto.ActivityResponse, error) {
	return []dto.ActivityResponse{*s.activity}, nil
}
func (s *stubActivityService) ListByOrganizer(_ context.Context, _ string) ([]dto.ActivityResponse, error) {
	return []dto.ActivityResponse{*s.activity}, nil
}
func (s *stubActivityService) Search(_ context.Context, _ *dto.ActivitySearchRequest) ([]dto.ActivityResponse, error) {
	return []dto.ActivityResponse{*s.activity}, nil
}
func (s *stubActivityService) Update(_ context.Context, _, _, _ string, _ *dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	return s.activity, nil
}
func (s *stubActivityService) SetActive(_ context.Context, _, _, _ string, _ bool) error {
	return nil
}
func (s *stubActivityService) Calendar(_ context.Context, _ *dto.CalendarRequest) ([]dto.CalendarDay, error) {
	return nil, nil
}

func setupTestRouter() http.Handler {
	cfg := &config.Config{}
	cfg.Auth = config.AuthConfig{
		JWTSecret:       "clave-de-prueba",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}

	h := &handler.Handler{
		Auth:      handler.NewAuthHandler(nil),
		User:      handler.NewUserHandler(nil),
		Student:   handler.NewStudentHandler(nil),
		Organizer: handler.NewOrganizerHandler(nil),
		Category:  handler.NewCategoryHandler(nil),
		Activity: handler.NewActivityHandler(&stubActivityService{
			activity: &dto.ActivityResponse{ID: "act-1", Title: "Torneo de Ajedrez", IsActive: true},
		}),
		Enrollment: handler.NewEnrollmentHandler(nil),
		Rating:     handler.NewRatingHandler(nil),
		Dashboard:  handler.NewDashboardHandler(nil),
		Faculty:    handler.NewFacultyHandler(nil),
		Export:     handler.NewExportHandler(nil),
	}

	return Setup(cfg, h, jwt.NewManager(&cfg.Auth), nil, zap.NewNop())
}

func TestRouter_ActivityDetailIsPublic(t *testing.T) {
	r := setupTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/activities/3f2a1b4c-0000-0000-0000-000000000001", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("el detalle de actividad debe ser público, obtuve %d", w.Code)
	}

	var resp struct {
		Data dto.ActivityResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta no es JSON: %v", err)
	}
	if resp.Data.ID != "act-1" {
		t.Errorf("id = %q, esperaba %q", resp.Data.ID, "act-1")
	}
}

func TestRouter_ActivityMutationsStayProtected(t *testing.T) {
	r := setupTestRouter()

	for _, tc := range []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/activities/mine"},
		{"POST", "/api/v1/activities"},
		{"PUT", "/api/v1/activities/3f2a1b4c-0000-0000-0000-000000000001"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.path, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s sin token: esperaba 401, obtuve %d", tc.method, tc.path, w.Code)
		}
	}
}
