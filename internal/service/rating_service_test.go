package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

func setupTestRatingService() (RatingService, *testRepos) {
	repo, mocks := newTestRepos()
	svc := NewRatingService(repo, zap.NewNop())
	return svc, mocks
}

// seedEndedActivity stores an activity whose day already passed.
func seedEndedActivity(mocks *testRepos, id string) *model.Activity {
	act := &model.Activity{
		ActivityID:  id,
		Title:       "Feria de Ciencias",
		CategoryID:  "cat-001",
		OrganizerID: "org-001",
		Date:        time.Now().AddDate(0, 0, -3),
		IsActive:    true,
	}
	mocks.activities.activities[id] = act
	return act
}

func seedEnrollment(mocks *testRepos, id, activityID, studentID, status string) {
	mocks.enrollments.enrollments[id] = &model.Enrollment{
		EnrollmentID:   id,
		ActivityID:     activityID,
		StudentID:      studentID,
		Status:         status,
		EnrollmentDate: time.Now().AddDate(0, 0, -10),
	}
}

func TestRatingService_Create_Success(t *testing.T) {
	svc, mocks := setupTestRatingService()
	seedEndedActivity(mocks, "act-1")
	seedEnrollment(mocks, "e1", "act-1", "stu-1", model.EnrollmentActive)

	resp, err := svc.Create(context.Background(), "stu-1", &dto.CreateRatingRequest{
		ActivityID: "act-1",
		Stars:      4,
		Comment:    "muy buena organización",
	})
	if err != nil {
		t.Fatalf("crear calificación falló: %v", err)
	}
	if resp.Stars != 4 {
		t.Errorf("estrellas = %d, esperaba 4", resp.Stars)
	}
	if resp.ActivityTitle != "Feria de Ciencias" {
		t.Errorf("título de actividad no llegó a la respuesta: %q", resp.ActivityTitle)
	}
}

func TestRatingService_Create_ActivityNotEnded(t *testing.T) {
	svc, mocks := setupTestRatingService()
	act := seedEndedActivity(mocks, "act-1")
	act.Date = time.Now().AddDate(0, 0, 7)
	seedEnrollment(mocks, "e1", "act-1", "stu-1", model.EnrollmentActive)

	_, err := svc.Create(context.Background(), "stu-1", &dto.CreateRatingRequest{ActivityID: "act-1", Stars: 5})
	if !errors.Is(err, ErrActivityNotEnded) {
		t.Errorf("esperaba ErrActivityNotEnded, obtuve %v", err)
	}
}

func TestRatingService_Create_NotEnrolled(t *testing.T) {
	svc, mocks := setupTestRatingService()
	seedEndedActivity(mocks, "act-1")

	_, err := svc.Create(context.Background(), "stu-1", &dto.CreateRatingRequest{ActivityID: "act-1", Stars: 5})
	if !errors.Is(err, ErrCannotReview) {
		t.Errorf("esperaba ErrCannotReview, obtuve %v", err)
	}
}

func TestRatingService_Create_CancelledEnrollment(t *testing.T) {
	svc, mocks := setupTestRatingService()
	seedEndedActivity(mocks, "act-1")
	seedEnrollment(mocks, "e1", "act-1", "stu-1", model.EnrollmentCancelled)

	_, err := svc.Create(context.Background(), "stu-1", &dto.CreateRatingRequest{ActivityID: "act-1", Stars: 5})
	if !errors.Is(err, ErrCannotReview) {
		t.Errorf("esperaba ErrCannotReview, obtuve %v", err)
	}
}

func TestRatingService_Create_AlreadyRated(t *testing.T) {
	svc, mocks := setupTestRatingService()
	seedEndedActivity(mocks, "act-1")
	seedEnrollment(mocks, "e1", "act-1", "stu-1", model.EnrollmentActive)

	if _, err := svc.Create(context.Background(), "stu-1", &dto.CreateRatingRequest{ActivityID: "act-1", Stars: 5}); err != nil {
		t.Fatalf("primera calificación falló: %v", err)
	}
	_, err := svc.Create(context.Background(), "stu-1", &dto.CreateRatingRequest{ActivityID: "act-1", Stars: 3})
	if !errors.Is(err, ErrAlreadyRated) {
		t.Errorf("esperaba ErrAlreadyRated, obtuve %v", err)
	}
}

func TestRatingService_Update_OwnerOnly(t *testing.T) {
	svc, mocks := setupTestRatingService()
	seedEndedActivity(mocks, "act-1")
	seedEnrollment(mocks, "e1", "act-1", "stu-1", model.EnrollmentActive)

	created, err := svc.Create(context.Background(), "stu-1", &dto.CreateRatingRequest{ActivityID: "act-1", Stars: 3})
	if err != nil {
		t.Fatalf("crear calificación falló: %v", err)
	}

	stars := 5
	if _, err := svc.Update(context.Background(), "stu-2", created.ID, &dto.UpdateRatingRequest{Stars: &stars}); !errors.Is(err, ErrNotRatingOwner) {
		t.Errorf("otro estudiante no puede editar, obtuve %v", err)
	}

	updated, err := svc.Update(context.Background(), "stu-1", created.ID, &dto.UpdateRatingRequest{Stars: &stars})
	if err != nil {
		t.Fatalf("actualizar calificación falló: %v", err)
	}
	if updated.Stars != 5 {
		t.Errorf("estrellas tras editar = %d, esperaba 5", updated.Stars)
	}
}

func TestRatingService_Delete(t *testing.T) {
	svc, mocks := setupTestRatingService()
	seedEndedActivity(mocks, "act-1")
	seedEnrollment(mocks, "e1", "act-1", "stu-1", model.EnrollmentActive)

	created, err := svc.Create(context.Background(), "stu-1", &dto.CreateRatingRequest{ActivityID: "act-1", Stars: 2})
	if err != nil {
		t.Fatalf("crear calificación falló: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("eliminar calificación falló: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrRatingNotFound) {
		t.Errorf("eliminar dos veces debe fallar, obtuve %v", err)
	}
}

func TestRatingService_CanReview(t *testing.T) {
	svc, mocks := setupTestRatingService()
	seedEndedActivity(mocks, "act-1")
	seedEnrollment(mocks, "e1", "act-1", "stu-1", model.EnrollmentActive)

	can, err := svc.CanReview(context.Background(), "stu-1", "act-1")
	if err != nil {
		t.Fatalf("can-review falló: %v", err)
	}
	if !can {
		t.Errorf("estudiante inscrito con actividad terminada debe poder calificar")
	}

	// sin inscripción
	can, err = svc.CanReview(context.Background(), "stu-2", "act-1")
	if err != nil {
		t.Fatalf("can-review falló: %v", err)
	}
	if can {
		t.Errorf("sin inscripción no debe poder calificar")
	}

	// con calificación previa
	if _, err := svc.Create(context.Background(), "stu-1", &dto.CreateRatingRequest{ActivityID: "act-1", Stars: 4}); err != nil {
		t.Fatalf("crear calificación falló: %v", err)
	}
	can, err = svc.CanReview(context.Background(), "stu-1", "act-1")
	if err != nil {
		t.Fatalf("can-review falló: %v", err)
	}
	if can {
		t.Errorf("con calificación previa no debe poder calificar otra vez")
	}
}
