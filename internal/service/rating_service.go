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
	ErrRatingNotFound   = errors.New("calificación no encontrada")
	ErrCannotReview     = errors.New("no puedes calificar esta actividad")
	ErrAlreadyRated     = errors.New("ya calificaste esta actividad")
	ErrNotRatingOwner   = errors.New("la calificación pertenece a otro estudiante")
	ErrActivityNotEnded = errors.New("la actividad todavía no termina")
)

// RatingService manages post-activity reviews. A student may create one
// rating per activity, only with an active enrollment and only after the
// activity took place.
type RatingService interface {
	Create(ctx context.Context, studentID string, req *dto.CreateRatingRequest) (*dto.RatingResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RatingResponse, error)
	ListByActivity(ctx context.Context, activityID string) ([]dto.RatingResponse, error)
	ListByStudent(ctx context.Context, studentID string) ([]dto.RatingResponse, error)
	Search(ctx context.Context, req *dto.RatingSearchRequest) ([]dto.RatingResponse, error)
	Update(ctx context.Context, studentID, id string, req *dto.UpdateRatingRequest) (*dto.RatingResponse, error)
	Delete(ctx context.Context, id string) error
	// CanReview reports whether the student may leave a rating now.
	CanReview(ctx context.Context, studentID, activityID string) (bool, error)
}

type ratingService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRatingService builds the RatingService.
func NewRatingService(repo *repository.Repository, logger *zap.Logger) RatingService {
	return &ratingService{repo: repo, logger: logger}
}

func (s *ratingService) Create(ctx context.Context, studentID string, req *dto.CreateRatingRequest) (*dto.RatingResponse, error) {
	act, err := s.repo.Activity.GetByID(ctx, req.ActivityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	if !ActivityEnded(act.Date, time.Now()) {
		return nil, ErrActivityNotEnded
	}

	enrollment, err := s.repo.Enrollment.GetByActivityAndStudent(ctx, req.ActivityID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCannotReview
		}
		return nil, err
	}
	if enrollment.Status != model.EnrollmentActive {
		return nil, ErrCannotReview
	}

	if _, err := s.repo.Rating.GetByActivityAndStudent(ctx, req.ActivityID, studentID); err == nil {
		return nil, ErrAlreadyRated
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rat := &model.Rating{
		ActivityID: req.ActivityID,
		StudentID:  studentID,
		Stars:      req.Stars,
		Comment:    req.Comment,
		RatingDate: time.Now(),
	}
	if err := s.repo.Rating.Create(ctx, rat); err != nil {
		s.logger.Error("crear calificación falló", zap.Error(err))
		return nil, err
	}

	rat.Activity = act
	resp := toRatingResponse(rat)
	return &resp, nil
}

func (s *ratingService) GetByID(ctx context.Context, id string) (*dto.RatingResponse, error) {
	rat, err := s.repo.Rating.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	resp := toRatingResponse(rat)
	return &resp, nil
}

func (s *ratingService) ListByActivity(ctx context.Context, activityID string) ([]dto.RatingResponse, error) {
	list, err := s.repo.Rating.ListByActivity(ctx, activityID)
	if err != nil {
		s.logger.Error("listar calificaciones por actividad falló", zap.Error(err))
		return nil, err
	}
	return toRatingResponses(list), nil
}

func (s *ratingService) ListByStudent(ctx context.Context, studentID string) ([]dto.RatingResponse, error) {
	list, err := s.repo.Rating.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("listar calificaciones por estudiante falló", zap.Error(err))
		return nil, err
	}
	return toRatingResponses(list), nil
}

func (s *ratingService) Search(ctx context.Context, req *dto.RatingSearchRequest) ([]dto.RatingResponse, error) {
	list, err := s.repo.Rating.Search(ctx, repository.RatingFilter{
		ActivityID: req.ActivityID,
		StudentID:  req.StudentID,
		MinStars:   req.MinStars,
	})
	if err != nil {
		s.logger.Error("buscar calificaciones falló", zap.Error(err))
		return nil, err
	}
	return toRatingResponses(list), nil
}

func (s *ratingService) Update(ctx context.Context, studentID, id string, req *dto.UpdateRatingRequest) (*dto.RatingResponse, error) {
	rat, err := s.repo.Rating.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	if rat.StudentID != studentID {
		return nil, ErrNotRatingOwner
	}

	if req.Stars != nil {
		rat.Stars = *req.Stars
	}
	if req.Comment != nil {
		rat.Comment = *req.Comment
	}

	if err := s.repo.Rating.Update(ctx, rat); err != nil {
		s.logger.Error("actualizar calificación falló", zap.Error(err))
		return nil, err
	}

	resp := toRatingResponse(rat)
	return &resp, nil
}

func (s *ratingService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Rating.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRatingNotFound
		}
		return err
	}
	return s.repo.Rating.Delete(ctx, id)
}

func (s *ratingService) CanReview(ctx context.Context, studentID, activityID string) (bool, error) {
	act, err := s.repo.Activity.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrActivityNotFound
		}
		return false, err
	}

	status := ""
	if e, err := s.repo.Enrollment.GetByActivityAndStudent(ctx, activityID, studentID); err == nil {
		status = e.Status
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	alreadyRated := false
	if _, err := s.repo.Rating.GetByActivityAndStudent(ctx, activityID, studentID); err == nil {
		alreadyRated = true
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	return CanReview(status, ActivityEnded(act.Date, time.Now()), alreadyRated), nil
}

func toRatingResponse(rat *model.Rating) dto.RatingResponse {
	resp := dto.RatingResponse{
		ID:         rat.RatingID,
		ActivityID: rat.ActivityID,
		StudentID:  rat.StudentID,
		Stars:      rat.Stars,
		Comment:    rat.Comment,
		RatingDate: rat.RatingDate.Format(time.RFC3339),
	}
	if rat.Activity != nil {
		resp.ActivityTitle = rat.Activity.Title
	}
	if rat.Student != nil {
		resp.StudentName = rat.Student.Name
	}
	return resp
}

func toRatingResponses(list []model.Rating) []dto.RatingResponse {
	out := make([]dto.RatingResponse, 0, len(list))
	for i := range list {
		out = append(out, toRatingResponse(&list[i]))
	}
	return out
}
