package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/SecondHemisphere/portal-actividades/internal/model"
	"github.com/SecondHemisphere/portal-actividades/internal/repository"
)

func setupTestDashboardService() (DashboardService, *testRepos) {
	repo, mocks := newTestRepos()
	svc := NewDashboardService(repo, zap.NewNop())
	return svc, mocks
}

func TestDashboardService_Totals(t *testing.T) {
	svc, mocks := setupTestDashboardService()
	mocks.dashboard.totals = repository.Totals{
		Activities:  12,
		Organizers:  3,
		Users:       40,
		Students:    35,
		Enrollments: 90,
		Categories:  5,
		Ratings:     28,
	}

	got, err := svc.Totals(context.Background())
	if err != nil {
		t.Fatalf("totales fallaron: %v", err)
	}
	if got.TotalActivities != 12 || got.TotalEnrollments != 90 || got.TotalRatings != 28 {
		t.Errorf("totales inesperados: %+v", got)
	}
}

func TestDashboardService_EnrollmentsLastMonths(t *testing.T) {
	svc, mocks := setupTestDashboardService()

	now := time.Now().UTC()
	thisMonth := time.Date(now.Year(), now.Month(), 10, 0, 0, 0, 0, time.UTC)
	prevYear, prevMonth := PrevMonth(now.Year(), now.Month())
	lastMonth := time.Date(prevYear, prevMonth, 20, 0, 0, 0, 0, time.UTC)

	mocks.enrollments.enrollments["e1"] = &model.Enrollment{EnrollmentID: "e1", EnrollmentDate: thisMonth, Status: model.EnrollmentActive}
	mocks.enrollments.enrollments["e2"] = &model.Enrollment{EnrollmentID: "e2", EnrollmentDate: thisMonth, Status: model.EnrollmentActive}
	mocks.enrollments.enrollments["e3"] = &model.Enrollment{EnrollmentID: "e3", EnrollmentDate: lastMonth, Status: model.EnrollmentActive}

	got, err := svc.EnrollmentsLastMonths(context.Background(), 3)
	if err != nil {
		t.Fatalf("consulta falló: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("esperaba 3 meses, obtuve %d", len(got))
	}
	if got[2].Month != now.Format("2006-01") {
		t.Errorf("el último mes debe ser el actual: %q", got[2].Month)
	}
	if got[2].Total != 2 || got[1].Total != 1 || got[0].Total != 0 {
		t.Errorf("conteos por mes inesperados: %+v", got)
	}
}

func TestDashboardService_EnrollmentsLastMonths_DefaultWindow(t *testing.T) {
	svc, _ := setupTestDashboardService()

	got, err := svc.EnrollmentsLastMonths(context.Background(), 0)
	if err != nil {
		t.Fatalf("consulta falló: %v", err)
	}
	if len(got) != 6 {
		t.Errorf("sin parámetro deben ser 6 meses, obtuve %d", len(got))
	}
}

func TestDashboardService_TopRatings_Limited(t *testing.T) {
	svc, mocks := setupTestDashboardService()
	for i := 0; i < 8; i++ {
		mocks.dashboard.topRatings = append(mocks.dashboard.topRatings, repository.ActivityAverage{
			ActivityTitle: "Actividad",
			AvgStars:      4.5,
		})
	}

	got, err := svc.TopRatings(context.Background())
	if err != nil {
		t.Fatalf("consulta falló: %v", err)
	}
	if len(got) != topRatingsLimit {
		t.Errorf("el top debe limitarse a %d filas, obtuve %d", topRatingsLimit, len(got))
	}
}

func TestDashboardService_ActivitiesByCategory(t *testing.T) {
	svc, mocks := setupTestDashboardService()
	mocks.dashboard.categories = []repository.CategoryCount{
		{CategoryName: "Deportes", Total: 7},
		{CategoryName: "Cultura", Total: 4},
	}

	got, err := svc.ActivitiesByCategory(context.Background())
	if err != nil {
		t.Fatalf("consulta falló: %v", err)
	}
	if len(got) != 2 || got[0].CategoryName != "Deportes" || got[0].TotalActivities != 7 {
		t.Errorf("filas inesperadas: %+v", got)
	}
}
