package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/repository"
)

// topRatingsLimit caps the best-rated activities table.
const topRatingsLimit = 5

// DashboardService runs the admin dashboard aggregates.
type DashboardService interface {
	Totals(ctx context.Context) (*dto.DashboardTotals, error)
	// EnrollmentsLastMonths returns one bucket per month, oldest first,
	// ending in the current month.
	EnrollmentsLastMonths(ctx context.Context, months int) ([]dto.EnrollmentsByMonth, error)
	ActivitiesByCategory(ctx context.Context) ([]dto.ActivitiesByCategory, error)
	TopRatings(ctx context.Context) ([]dto.TopRating, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService builds the DashboardService.
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

func (s *dashboardService) Totals(ctx context.Context) (*dto.DashboardTotals, error) {
	t, err := s.repo.Dashboard.Totals(ctx)
	if err != nil {
		s.logger.Error("consultar totales del dashboard falló", zap.Error(err))
		return nil, err
	}
	return &dto.DashboardTotals{
		TotalActivities:  t.Activities,
		TotalOrganizers:  t.Organizers,
		TotalUsers:       t.Users,
		TotalStudents:    t.Students,
		TotalEnrollments: t.Enrollments,
		TotalCategories:  t.Categories,
		TotalRatings:     t.Ratings,
	}, nil
}

func (s *dashboardService) EnrollmentsLastMonths(ctx context.Context, months int) ([]dto.EnrollmentsByMonth, error) {
	if months <= 0 {
		months = 6
	}

	now := time.Now()
	year, month := now.Year(), now.Month()
	for i := 1; i < months; i++ {
		year, month = PrevMonth(year, month)
	}

	out := make([]dto.EnrollmentsByMonth, 0, months)
	for i := 0; i < months; i++ {
		from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)

		n, err := s.repo.Dashboard.CountEnrollmentsBetween(ctx, from, to)
		if err != nil {
			s.logger.Error("contar inscripciones por mes falló", zap.Error(err))
			return nil, err
		}
		out = append(out, dto.EnrollmentsByMonth{
			Month: from.Format("2006-01"),
			Total: n,
		})

		year, month = NextMonth(year, month)
	}

	return out, nil
}

func (s *dashboardService) ActivitiesByCategory(ctx context.Context) ([]dto.ActivitiesByCategory, error) {
	rows, err := s.repo.Dashboard.ActivitiesByCategory(ctx)
	if err != nil {
		s.logger.Error("consultar actividades por categoría falló", zap.Error(err))
		return nil, err
	}

	out := make([]dto.ActivitiesByCategory, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ActivitiesByCategory{
			CategoryName:    r.CategoryName,
			TotalActivities: r.Total,
		})
	}
	return out, nil
}

func (s *dashboardService) TopRatings(ctx context.Context) ([]dto.TopRating, error) {
	rows, err := s.repo.Dashboard.TopRatings(ctx, topRatingsLimit)
	if err != nil {
		s.logger.Error("consultar mejores calificaciones falló", zap.Error(err))
		return nil, err
	}

	out := make([]dto.TopRating, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopRating{
			ActivityTitle: r.ActivityTitle,
			AvgRating:     r.AvgStars,
		})
	}
	return out, nil
}
