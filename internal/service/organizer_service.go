package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/model"
	"github.com/SecondHemisphere/portal-actividades/internal/repository"
)

var ErrOrganizerNotFound = errors.New("organizador no encontrado")

// OrganizerService manages organizer accounts and their profile.
type OrganizerService interface {
	Create(ctx context.Context, req *dto.CreateOrganizerRequest) (*dto.OrganizerResponse, error)
	GetByID(ctx context.Context, id string) (*dto.OrganizerResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.OrganizerResponse, error)
	Search(ctx context.Context, req *dto.OrganizerSearchRequest) ([]dto.OrganizerResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateOrganizerRequest) (*dto.OrganizerResponse, error)
	SetActive(ctx context.Context, id string, active bool) error

	GetProfile(ctx context.Context, userID string) (*dto.OrganizerResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateOrganizerRequest) (*dto.OrganizerResponse, error)
}

type organizerService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewOrganizerService builds the OrganizerService.
func NewOrganizerService(repo *repository.Repository, logger *zap.Logger) OrganizerService {
	return &organizerService{repo: repo, logger: logger}
}

func (s *organizerService) Create(ctx context.Context, req *dto.CreateOrganizerRequest) (*dto.OrganizerResponse, error) {
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
		Role:         model.RoleOrganizer,
		IsActive:     true,
	}
	profile := &model.OrganizerProfile{
		Department: req.Department,
		Position:   req.Position,
		Bio:        req.Bio,
		Shifts:     model.StringArray(req.Shifts),
		WorkDays:   model.StringArray(req.WorkDays),
		PhotoURL:   req.PhotoURL,
	}

	if err := s.repo.Organizer.Create(ctx, user, profile); err != nil {
		s.logger.Error("crear organizador falló", zap.Error(err))
		return nil, err
	}

	profile.User = user
	resp := toOrganizerResponse(profile)
	return &resp, nil
}

func (s *organizerService) GetByID(ctx context.Context, id string) (*dto.OrganizerResponse, error) {
	profile, err := s.repo.Organizer.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizerNotFound
		}
		return nil, err
	}
	resp := toOrganizerResponse(profile)
	return &resp, nil
}

func (s *organizerService) List(ctx context.Context, includeInactive bool) ([]dto.OrganizerResponse, error) {
	profiles, err := s.repo.Organizer.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("listar organizadores falló", zap.Error(err))
		return nil, err
	}
	return toOrganizerResponses(profiles), nil
}

func (s *organizerService) Search(ctx context.Context, req *dto.OrganizerSearchRequest) ([]dto.OrganizerResponse, error) {
	profiles, err := s.repo.Organizer.Search(ctx, repository.OrganizerFilter{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		s.logger.Error("buscar organizadores falló", zap.Error(err))
		return nil, err
	}
	return toOrganizerResponses(profiles), nil
}

func (s *organizerService) Update(ctx context.Context, id string, req *dto.UpdateOrganizerRequest) (*dto.OrganizerResponse, error) {
	profile, err := s.repo.Organizer.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizerNotFound
		}
		return nil, err
	}
	if profile.User == nil {
		return nil, ErrOrganizerNotFound
	}

	applyOrganizerUpdate(profile, req)

	if err := s.repo.Organizer.Update(ctx, profile.User, profile); err != nil {
		s.logger.Error("actualizar organizador falló", zap.Error(err))
		return nil, err
	}

	resp := toOrganizerResponse(profile)
	return &resp, nil
}

func (s *organizerService) SetActive(ctx context.Context, id string, active bool) error {
	if _, err := s.repo.Organizer.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrganizerNotFound
		}
		return err
	}
	return s.repo.User.SetActive(ctx, id, active)
}

func (s *organizerService) GetProfile(ctx context.Context, userID string) (*dto.OrganizerResponse, error) {
	return s.GetByID(ctx, userID)
}

func (s *organizerService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateOrganizerRequest) (*dto.OrganizerResponse, error) {
	return s.Update(ctx, userID, req)
}

func applyOrganizerUpdate(profile *model.OrganizerProfile, req *dto.UpdateOrganizerRequest) {
	if req.Name != nil {
		profile.User.Name = *req.Name
	}
	if req.Phone != nil {
		profile.User.Phone = *req.Phone
	}
	if req.Department != nil {
		profile.Department = *req.Department
	}
	if req.Position != nil {
		profile.Position = *req.Position
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Shifts != nil {
		profile.Shifts = model.StringArray(*req.Shifts)
	}
	if req.WorkDays != nil {
		profile.WorkDays = model.StringArray(*req.WorkDays)
	}
	if req.PhotoURL != nil {
		profile.PhotoURL = *req.PhotoURL
	}
}

func toOrganizerResponse(profile *model.OrganizerProfile) dto.OrganizerResponse {
	resp := dto.OrganizerResponse{
		ID:         profile.UserID,
		Department: profile.Department,
		Position:   profile.Position,
		Bio:        profile.Bio,
		Shifts:     []string(profile.Shifts),
		WorkDays:   []string(profile.WorkDays),
		PhotoURL:   profile.PhotoURL,
	}
	if profile.User != nil {
		resp.Name = profile.User.Name
		resp.Email = profile.User.Email
		resp.Phone = profile.User.Phone
		resp.IsActive = profile.User.IsActive
	}
	return resp
}

func toOrganizerResponses(profiles []model.OrganizerProfile) []dto.OrganizerResponse {
	out := make([]dto.OrganizerResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, toOrganizerResponse(&profiles[i]))
	}
	return out
}
