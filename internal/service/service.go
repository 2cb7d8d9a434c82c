package service

import (
	"go.uber.org/zap"

	"github.com/SecondHemisphere/portal-actividades/config"
	"github.com/SecondHemisphere/portal-actividades/internal/repository"
	"github.com/SecondHemisphere/portal-actividades/pkg/jwt"
	"github.com/SecondHemisphere/portal-actividades/pkg/redis"
)

// Service aggregates every business-logic interface.
type Service struct {
	Auth       AuthService
	User       UserService
	Student    StudentService
	Organizer  OrganizerService
	Category   CategoryService
	Activity   ActivityService
	Enrollment EnrollmentService
	Rating     RatingService
	Dashboard  DashboardService
	Faculty    FacultyService
	Export     ExportService
}

// NewService wires the service implementations.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:       NewUserService(repo, logger),
		Student:    NewStudentService(repo, logger),
		Organizer:  NewOrganizerService(repo, logger),
		Category:   NewCategoryService(repo, logger),
		Activity:   NewActivityService(repo, logger),
		Enrollment: NewEnrollmentService(repo, logger),
		Rating:     NewRatingService(repo, logger),
		Dashboard:  NewDashboardService(repo, logger),
		Faculty:    NewFacultyService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
