package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/repository"
)

// FacultyService serves the faculty/career dropdown data.
type FacultyService interface {
	List(ctx context.Context) ([]dto.FacultyResponse, error)
}

type facultyService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFacultyService builds the FacultyService.
func NewFacultyService(repo *repository.Repository, logger *zap.Logger) FacultyService {
	return &facultyService{repo: repo, logger: logger}
}

func (s *facultyService) List(ctx context.Context) ([]dto.FacultyResponse, error) {
	faculties, err := s.repo.Faculty.ListWithCareers(ctx)
	if err != nil {
		s.logger.Error("listar facultades falló", zap.Error(err))
		return nil, err
	}

	out := make([]dto.FacultyResponse, 0, len(faculties))
	for i := range faculties {
		f := &faculties[i]
		careers := make([]string, 0, len(f.Careers))
		for _, c := range f.Careers {
			careers = append(careers, c.Name)
		}
		out = append(out, dto.FacultyResponse{
			ID:      f.FacultyID,
			Name:    f.Name,
			Careers: careers,
		})
	}
	return out, nil
}
