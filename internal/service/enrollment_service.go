package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/model"
	"github.com/SecondHemisphere/portal-actividades/internal/repository"
)

var (
	ErrEnrollmentNotFound  = errors.New("inscripción no encontrada")
	ErrAlreadyEnrolled     = errors.New("ya estás inscrito en esta actividad")
	ErrRegistrationClosed  = errors.New("las inscripciones están cerradas")
	ErrActivityFull        = errors.New("la actividad no tiene cupos disponibles")
	ErrActivityInactive    = errors.New("la actividad no está disponible")
	ErrNotEnrollmentOwner  = errors.New("la inscripción pertenece a otro estudiante")
	ErrEnrollmentCancelled = errors.New("la inscripción ya está cancelada")
)

// EnrollmentService manages the enrollment lifecycle. Enroll and Cancel
// are the student's own actions; the rest is the admin surface.
type EnrollmentService interface {
	// Enroll registers the student. A previously cancelled enrollment for
	// the same activity is reactivated instead of duplicated.
	Enroll(ctx context.Context, studentID string, req *dto.EnrollRequest) (*dto.EnrollmentResponse, error)
	Cancel(ctx context.Context, studentID, enrollmentID string) error

	Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.EnrollmentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EnrollmentResponse, error)
	List(ctx context.Context) ([]dto.EnrollmentResponse, error)
	ListByStudent(ctx context.Context, studentID string) ([]dto.EnrollmentResponse, error)
	// ListByActivity returns an activity's roster. Organizers only see
	// their own activities; admins any.
	ListByActivity(ctx context.Context, actorID, actorRole, activityID string) ([]dto.EnrollmentResponse, error)
	Search(ctx context.Context, req *dto.EnrollmentSearchRequest) ([]dto.EnrollmentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateEnrollmentRequest) (*dto.EnrollmentResponse, error)

	// StudentCalendar buckets the month's activities the student is
	// enrolled in, the student's personal calendar view.
	StudentCalendar(ctx context.Context, studentID string, year int, month time.Month) ([]dto.CalendarDay, error)
}

type enrollmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEnrollmentService builds the EnrollmentService.
func NewEnrollmentService(repo *repository.Repository, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{repo: repo, logger: logger}
}

func (s *enrollmentService) Enroll(ctx context.Context, studentID string, req *dto.EnrollRequest) (*dto.EnrollmentResponse, error) {
	act, err := s.repo.Activity.GetByID(ctx, req.ActivityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	if !act.IsActive {
		return nil, ErrActivityInactive
	}
	if RegistrationClosed(act.RegistrationDeadline, time.Now()) {
		return nil, ErrRegistrationClosed
	}

	existing, err := s.repo.Enrollment.GetByActivityAndStudent(ctx, req.ActivityID, studentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && existing.Status == model.EnrollmentActive {
		return nil, ErrAlreadyEnrolled
	}

	enrolled, err := s.repo.Enrollment.CountActiveByActivity(ctx, req.ActivityID)
	if err != nil {
		return nil, err
	}
	if enrolled >= int64(act.Capacity) {
		return nil, ErrActivityFull
	}

	if existing != nil {
		// Reactivate the cancelled record.
		existing.Status = model.EnrollmentActive
		existing.EnrollmentDate = time.Now()
		if req.Note != "" {
			existing.Note = req.Note
		}
		if err := s.repo.Enrollment.Update(ctx, existing); err != nil {
			s.logger.Error("reactivar inscripción falló", zap.Error(err))
			return nil, err
		}
		existing.Activity = act
		resp := toEnrollmentResponse(existing)
		return &resp, nil
	}

	e := &model.Enrollment{
		ActivityID:     req.ActivityID,
		StudentID:      studentID,
		EnrollmentDate: time.Now(),
		Note:           req.Note,
		Status:         model.EnrollmentActive,
	}
	if err := s.repo.Enrollment.Create(ctx, e); err != nil {
		s.logger.Error("crear inscripción falló", zap.Error(err))
		return nil, err
	}

	e.Activity = act
	resp := toEnrollmentResponse(e)
	return &resp, nil
}

func (s *enrollmentService) Cancel(ctx context.Context, studentID, enrollmentID string) error {
	e, err := s.repo.Enrollment.GetByID(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEnrollmentNotFound
		}
		return err
	}
	if e.StudentID != studentID {
		return ErrNotEnrollmentOwner
	}
	if e.Status == model.EnrollmentCancelled {
		return ErrEnrollmentCancelled
	}

	e.Status = model.EnrollmentCancelled
	if err := s.repo.Enrollment.Update(ctx, e); err != nil {
		s.logger.Error("cancelar inscripción falló", zap.Error(err))
		return err
	}
	return nil
}

func (s *enrollmentService) Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	if _, err := s.repo.Activity.GetByID(ctx, req.ActivityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	if _, err := s.repo.User.GetByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if existing, err := s.repo.Enrollment.GetByActivityAndStudent(ctx, req.ActivityID, req.StudentID); err == nil && existing != nil {
		return nil, ErrAlreadyEnrolled
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.EnrollmentActive
	}

	e := &model.Enrollment{
		ActivityID:     req.ActivityID,
		StudentID:      req.StudentID,
		EnrollmentDate: time.Now(),
		Note:           req.Note,
		Status:         status,
	}
	if err := s.repo.Enrollment.Create(ctx, e); err != nil {
		s.logger.Error("crear inscripción falló", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, e.EnrollmentID)
}

func (s *enrollmentService) GetByID(ctx context.Context, id string) (*dto.EnrollmentResponse, error) {
	e, err := s.repo.Enrollment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	resp := toEnrollmentResponse(e)
	return &resp, nil
}

func (s *enrollmentService) List(ctx context.Context) ([]dto.EnrollmentResponse, error) {
	list, err := s.repo.Enrollment.List(ctx)
	if err != nil {
		s.logger.Error("listar inscripciones falló", zap.Error(err))
		return nil, err
	}
	return toEnrollmentResponses(list), nil
}

func (s *enrollmentService) ListByStudent(ctx context.Context, studentID string) ([]dto.EnrollmentResponse, error) {
	list, err := s.repo.Enrollment.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("listar inscripciones por estudiante falló", zap.Error(err))
		return nil, err
	}
	return toEnrollmentResponses(list), nil
}

func (s *enrollmentService) ListByActivity(ctx context.Context, actorID, actorRole, activityID string) ([]dto.EnrollmentResponse, error) {
	act, err := s.repo.Activity.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	if actorRole != model.RoleAdmin && act.OrganizerID != actorID {
		return nil, ErrNotActivityOwner
	}

	list, err := s.repo.Enrollment.ListByActivity(ctx, activityID)
	if err != nil {
		s.logger.Error("listar inscripciones por actividad falló", zap.Error(err))
		return nil, err
	}
	return toEnrollmentResponses(list), nil
}

func (s *enrollmentService) Search(ctx context.Context, req *dto.EnrollmentSearchRequest) ([]dto.EnrollmentResponse, error) {
	f := repository.EnrollmentFilter{
		StudentID:  req.StudentID,
		ActivityID: req.ActivityID,
		Status:     req.Status,
	}
	if req.FromDate != "" {
		from, err := parseDay(req.FromDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		f.From = &from
	}
	if req.ToDate != "" {
		to, err := parseDay(req.ToDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		f.To = &to
	}

	list, err := s.repo.Enrollment.Search(ctx, f)
	if err != nil {
		s.logger.Error("buscar inscripciones falló", zap.Error(err))
		return nil, err
	}
	return toEnrollmentResponses(list), nil
}

func (s *enrollmentService) Update(ctx context.Context, id string, req *dto.UpdateEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	e, err := s.repo.Enrollment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}

	if req.Note != nil {
		e.Note = *req.Note
	}
	if req.Status != nil {
		e.Status = *req.Status
	}

	if err := s.repo.Enrollment.Update(ctx, e); err != nil {
		s.logger.Error("actualizar inscripción falló", zap.Error(err))
		return nil, err
	}

	resp := toEnrollmentResponse(e)
	return &resp, nil
}

func (s *enrollmentService) StudentCalendar(ctx context.Context, studentID string, year int, month time.Month) ([]dto.CalendarDay, error) {
	list, err := s.repo.Enrollment.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("consultar calendario del estudiante falló", zap.Error(err))
		return nil, err
	}

	acts := make([]model.Activity, 0, len(list))
	for i := range list {
		if list[i].Status != model.EnrollmentActive || list[i].Activity == nil {
			continue
		}
		acts = append(acts, *list[i].Activity)
	}

	return BucketActivitiesByDay(acts, year, month), nil
}

func toEnrollmentResponse(e *model.Enrollment) dto.EnrollmentResponse {
	resp := dto.EnrollmentResponse{
		ID:             e.EnrollmentID,
		ActivityID:     e.ActivityID,
		StudentID:      e.StudentID,
		EnrollmentDate: e.EnrollmentDate.Format(time.RFC3339),
		Note:           e.Note,
		Status:         e.Status,
	}
	if e.Activity != nil {
		resp.ActivityTitle = e.Activity.Title
	}
	if e.Student != nil {
		resp.StudentName = e.Student.Name
	}
	return resp
}

func toEnrollmentResponses(list []model.Enrollment) []dto.EnrollmentResponse {
	out := make([]dto.EnrollmentResponse, 0, len(list))
	for i := range list {
		out = append(out, toEnrollmentResponse(&list[i]))
	}
	return out
}
