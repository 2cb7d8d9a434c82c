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
	ErrActivityNotFound  = errors.New("actividad no encontrada")
	ErrInvalidDate       = errors.New("la fecha no tiene un formato válido")
	ErrInvalidTimeRange  = errors.New("el horario debe tener el formato HH:MM - HH:MM y terminar después de empezar")
	ErrDeadlineAfterDate = errors.New("la fecha límite de inscripción no puede ser posterior a la actividad")
	ErrNotActivityOwner  = errors.New("la actividad pertenece a otro organizador")
)

// ActivityService manages activities and the calendar view. Organizers
// operate only on their own activities; admins on all of them. The actor
// is identified by the id and role carried in the token.
type ActivityService interface {
	Create(ctx context.Context, actorID, actorRole string, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ActivityResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.ActivityResponse, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]dto.ActivityResponse, error)
	Search(ctx context.Context, req *dto.ActivitySearchRequest) ([]dto.ActivityResponse, error)
	Update(ctx context.Context, actorID, actorRole, id string, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error)
	SetActive(ctx context.Context, actorID, actorRole, id string, active bool) error
	// Calendar groups the month's activities into per-day buckets.
	Calendar(ctx context.Context, req *dto.CalendarRequest) ([]dto.CalendarDay, error)
}

type activityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewActivityService builds the ActivityService.
func NewActivityService(repo *repository.Repository, logger *zap.Logger) ActivityService {
	return &activityService{repo: repo, logger: logger}
}

func (s *activityService) Create(ctx context.Context, actorID, actorRole string, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	date, err := parseDay(req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !validTimeRange(req.TimeRange) {
		return nil, ErrInvalidTimeRange
	}

	var deadline *time.Time
	if req.RegistrationDeadline != "" {
		d, err := parseInstant(req.RegistrationDeadline)
		if err != nil {
			return nil, ErrInvalidDate
		}
		endOfDay := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, d.Location())
		if d.After(endOfDay) {
			return nil, ErrDeadlineAfterDate
		}
		deadline = &d
	}

	// Organizers always own what they create; admins may assign another
	// organizer through the form.
	organizerID := actorID
	if actorRole == model.RoleAdmin && req.OrganizerID != "" {
		organizerID = req.OrganizerID
	}

	if _, err := s.repo.Category.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	act := &model.Activity{
		Title:                req.Title,
		CategoryID:           req.CategoryID,
		OrganizerID:          organizerID,
		Date:                 date,
		TimeRange:            req.TimeRange,
		RegistrationDeadline: deadline,
		Location:             req.Location,
		Capacity:             req.Capacity,
		Description:          req.Description,
		PhotoURL:             req.PhotoURL,
		IsActive:             true,
	}

	if err := s.repo.Activity.Create(ctx, act); err != nil {
		s.logger.Error("crear actividad falló", zap.Error(err))
		return nil, err
	}

	return s.enrich(ctx, act)
}

func (s *activityService) GetByID(ctx context.Context, id string) (*dto.ActivityResponse, error) {
	act, err := s.repo.Activity.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return s.enrich(ctx, act)
}

func (s *activityService) List(ctx context.Context, includeInactive bool) ([]dto.ActivityResponse, error) {
	acts, err := s.repo.Activity.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("listar actividades falló", zap.Error(err))
		return nil, err
	}
	return s.enrichAll(ctx, acts)
}

func (s *activityService) ListByOrganizer(ctx context.Context, organizerID string) ([]dto.ActivityResponse, error) {
	acts, err := s.repo.Activity.ListByOrganizer(ctx, organizerID)
	if err != nil {
		s.logger.Error("listar actividades por organizador falló", zap.Error(err))
		return nil, err
	}
	return s.enrichAll(ctx, acts)
}

func (s *activityService) Search(ctx context.Context, req *dto.ActivitySearchRequest) ([]dto.ActivityResponse, error) {
	f := repository.ActivityFilter{
		Title:       req.Title,
		CategoryID:  req.CategoryID,
		OrganizerID: req.OrganizerID,
		Location:    req.Location,
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

	acts, err := s.repo.Activity.Search(ctx, f)
	if err != nil {
		s.logger.Error("buscar actividades falló", zap.Error(err))
		return nil, err
	}
	return s.enrichAll(ctx, acts)
}

func (s *activityService) Update(ctx context.Context, actorID, actorRole, id string, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	act, err := s.getOwned(ctx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := parseDay(*req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		act.Date = date
	}
	if req.TimeRange != nil {
		if !validTimeRange(*req.TimeRange) {
			return nil, ErrInvalidTimeRange
		}
		act.TimeRange = *req.TimeRange
	}
	if req.RegistrationDeadline != nil {
		if *req.RegistrationDeadline == "" {
			act.RegistrationDeadline = nil
		} else {
			d, err := parseInstant(*req.RegistrationDeadline)
			if err != nil {
				return nil, ErrInvalidDate
			}
			act.RegistrationDeadline = &d
		}
	}
	if act.RegistrationDeadline != nil {
		endOfDay := time.Date(act.Date.Year(), act.Date.Month(), act.Date.Day(), 23, 59, 59, 0, act.RegistrationDeadline.Location())
		if act.RegistrationDeadline.After(endOfDay) {
			return nil, ErrDeadlineAfterDate
		}
	}
	if req.CategoryID != nil {
		if _, err := s.repo.Category.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		act.CategoryID = *req.CategoryID
	}
	if req.Title != nil {
		act.Title = *req.Title
	}
	if req.Location != nil {
		act.Location = *req.Location
	}
	if req.Capacity != nil {
		act.Capacity = *req.Capacity
	}
	if req.Description != nil {
		act.Description = *req.Description
	}
	if req.PhotoURL != nil {
		act.PhotoURL = *req.PhotoURL
	}

	if err := s.repo.Activity.Update(ctx, act); err != nil {
		s.logger.Error("actualizar actividad falló", zap.Error(err))
		return nil, err
	}

	return s.enrich(ctx, act)
}

func (s *activityService) SetActive(ctx context.Context, actorID, actorRole, id string, active bool) error {
	if _, err := s.getOwned(ctx, actorID, actorRole, id); err != nil {
		return err
	}
	return s.repo.Activity.SetActive(ctx, id, active)
}

func (s *activityService) Calendar(ctx context.Context, req *dto.CalendarRequest) ([]dto.CalendarDay, error) {
	month := time.Month(req.Month)
	acts, err := s.repo.Activity.ListByMonth(ctx, req.Year, month, req.OrganizerID)
	if err != nil {
		s.logger.Error("consultar calendario falló", zap.Error(err))
		return nil, err
	}
	return BucketActivitiesByDay(acts, req.Year, month), nil
}

func (s *activityService) getOwned(ctx context.Context, actorID, actorRole, id string) (*model.Activity, error) {
	act, err := s.repo.Activity.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	if actorRole != model.RoleAdmin && act.OrganizerID != actorID {
		return nil, ErrNotActivityOwner
	}
	return act, nil
}

// enrich attaches the derived fields: remaining spots, registration and
// end state, and the average rating.
func (s *activityService) enrich(ctx context.Context, act *model.Activity) (*dto.ActivityResponse, error) {
	enrolled, err := s.repo.Enrollment.CountActiveByActivity(ctx, act.ActivityID)
	if err != nil {
		return nil, err
	}
	ratings, err := s.repo.Rating.ListByActivity(ctx, act.ActivityID)
	if err != nil {
		return nil, err
	}

	resp := toActivityResponse(act, enrolled, averageStars(ratings), time.Now())
	return &resp, nil
}

func (s *activityService) enrichAll(ctx context.Context, acts []model.Activity) ([]dto.ActivityResponse, error) {
	out := make([]dto.ActivityResponse, 0, len(acts))
	for i := range acts {
		resp, err := s.enrich(ctx, &acts[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func averageStars(ratings []model.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int
	for i := range ratings {
		sum += ratings[i].Stars
	}
	return float64(sum) / float64(len(ratings))
}

func toActivityResponse(act *model.Activity, enrolled int64, avgStars float64, now time.Time) dto.ActivityResponse {
	available := act.Capacity - int(enrolled)
	if available < 0 {
		available = 0
	}

	resp := dto.ActivityResponse{
		ID:                 act.ActivityID,
		Title:              act.Title,
		CategoryID:         act.CategoryID,
		OrganizerID:        act.OrganizerID,
		Date:               act.Date.Format(dayFormat),
		TimeRange:          act.TimeRange,
		Location:           act.Location,
		Capacity:           act.Capacity,
		AvailableSpots:     available,
		Description:        act.Description,
		PhotoURL:           act.PhotoURL,
		IsActive:           act.IsActive,
		RegistrationClosed: RegistrationClosed(act.RegistrationDeadline, now),
		Ended:              ActivityEnded(act.Date, now),
		AverageStars:       avgStars,
	}
	if act.RegistrationDeadline != nil {
		resp.RegistrationDeadline = act.RegistrationDeadline.Format(time.RFC3339)
	}
	if act.Category != nil {
		resp.CategoryName = act.Category.Name
	}
	if act.Organizer != nil {
		resp.OrganizerName = act.Organizer.Name
	}
	return resp
}
