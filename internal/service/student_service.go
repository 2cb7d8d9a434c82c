package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/model"
	"github.com/SecondHemisphere/portal-actividades/internal/repository"
)

var ErrStudentNotFound = errors.New("estudiante no encontrado")

// StudentService manages student accounts and their profile. GetProfile
// and UpdateProfile back the student's own "mi perfil" screen; the rest
// is the admin surface.
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.StudentResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.StudentResponse, error)
	Search(ctx context.Context, req *dto.StudentSearchRequest) ([]dto.StudentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	SetActive(ctx context.Context, id string, active bool) error

	GetProfile(ctx context.Context, userID string) (*dto.StudentResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService builds the StudentService.
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if !strings.HasSuffix(strings.ToLower(req.Email), studentEmailDomain) {
		return nil, ErrInvalidStudentEmail
	}
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         model.RoleStudent,
		IsActive:     true,
	}
	profile := &model.StudentProfile{
		Faculty:  req.Faculty,
		Career:   req.Career,
		Semester: req.Semester,
		Modality: req.Modality,
		Schedule: req.Schedule,
	}

	if err := s.repo.Student.Create(ctx, user, profile); err != nil {
		s.logger.Error("crear estudiante falló", zap.Error(err))
		return nil, err
	}

	profile.User = user
	resp := toStudentResponse(profile)
	return &resp, nil
}

func (s *studentService) GetByID(ctx context.Context, id string) (*dto.StudentResponse, error) {
	profile, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	resp := toStudentResponse(profile)
	return &resp, nil
}

func (s *studentService) List(ctx context.Context, includeInactive bool) ([]dto.StudentResponse, error) {
	profiles, err := s.repo.Student.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("listar estudiantes falló", zap.Error(err))
		return nil, err
	}
	return toStudentResponses(profiles), nil
}

func (s *studentService) Search(ctx context.Context, req *dto.StudentSearchRequest) ([]dto.StudentResponse, error) {
	profiles, err := s.repo.Student.Search(ctx, repository.StudentFilter{
		Name:    req.Name,
		Email:   req.Email,
		Faculty: req.Faculty,
		Career:  req.Career,
	})
	if err != nil {
		s.logger.Error("buscar estudiantes falló", zap.Error(err))
		return nil, err
	}
	return toStudentResponses(profiles), nil
}

func (s *studentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	profile, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if profile.User == nil {
		return nil, ErrStudentNotFound
	}

	applyStudentUpdate(profile, req)

	if err := s.repo.Student.Update(ctx, profile.User, profile); err != nil {
		s.logger.Error("actualizar estudiante falló", zap.Error(err))
		return nil, err
	}

	resp := toStudentResponse(profile)
	return &resp, nil
}

func (s *studentService) SetActive(ctx context.Context, id string, active bool) error {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}
	return s.repo.User.SetActive(ctx, id, active)
}

func (s *studentService) GetProfile(ctx context.Context, userID string) (*dto.StudentResponse, error) {
	return s.GetByID(ctx, userID)
}

func (s *studentService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	return s.Update(ctx, userID, req)
}

func applyStudentUpdate(profile *model.StudentProfile, req *dto.UpdateStudentRequest) {
	if req.Name != nil {
		profile.User.Name = *req.Name
	}
	if req.Phone != nil {
		profile.User.Phone = *req.Phone
	}
	if req.Faculty != nil {
		profile.Faculty = *req.Faculty
	}
	if req.Career != nil {
		profile.Career = *req.Career
	}
	if req.Semester != nil {
		profile.Semester = *req.Semester
	}
	if req.Modality != nil {
		profile.Modality = *req.Modality
	}
	if req.Schedule != nil {
		profile.Schedule = *req.Schedule
	}
}

func toStudentResponse(profile *model.StudentProfile) dto.StudentResponse {
	resp := dto.StudentResponse{
		ID:       profile.UserID,
		Faculty:  profile.Faculty,
		Career:   profile.Career,
		Semester: profile.Semester,
		Modality: profile.Modality,
		Schedule: profile.Schedule,
	}
	if profile.User != nil {
		resp.Name = profile.User.Name
		resp.Email = profile.User.Email
		resp.Phone = profile.User.Phone
		resp.IsActive = profile.User.IsActive
	}
	return resp
}

func toStudentResponses(profiles []model.StudentProfile) []dto.StudentResponse {
	out := make([]dto.StudentResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, toStudentResponse(&profiles[i]))
	}
	return out
}
