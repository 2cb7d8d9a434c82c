package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/model"
	"github.com/SecondHemisphere/portal-actividades/internal/repository"
)

var (
	ErrCategoryNotFound = errors.New("categoría no encontrada")
	ErrCategoryExists   = errors.New("la categoría ya existe")
)

// CategoryService manages activity categories.
type CategoryService interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.CategoryResponse, error)
	Search(ctx context.Context, name string) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type categoryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCategoryService builds the CategoryService.
func NewCategoryService(repo *repository.Repository, logger *zap.Logger) CategoryService {
	return &categoryService{repo: repo, logger: logger}
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if _, err := s.repo.Category.GetByName(ctx, req.Name); err == nil {
		return nil, ErrCategoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cat := &model.Category{Name: req.Name, IsActive: true}
	if err := s.repo.Category.Create(ctx, cat); err != nil {
		s.logger.Error("crear categoría falló", zap.Error(err))
		return nil, err
	}

	resp := toCategoryResponse(cat)
	return &resp, nil
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	cat, err := s.repo.Category.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	resp := toCategoryResponse(cat)
	return &resp, nil
}

func (s *categoryService) List(ctx context.Context, includeInactive bool) ([]dto.CategoryResponse, error) {
	cats, err := s.repo.Category.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("listar categorías falló", zap.Error(err))
		return nil, err
	}
	return toCategoryResponses(cats), nil
}

func (s *categoryService) Search(ctx context.Context, name string) ([]dto.CategoryResponse, error) {
	cats, err := s.repo.Category.Search(ctx, name)
	if err != nil {
		s.logger.Error("buscar categorías falló", zap.Error(err))
		return nil, err
	}
	return toCategoryResponses(cats), nil
}

func (s *categoryService) Update(ctx context.Context, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	cat, err := s.repo.Category.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != cat.Name {
		if existing, err := s.repo.Category.GetByName(ctx, *req.Name); err == nil && existing.CategoryID != cat.CategoryID {
			return nil, ErrCategoryExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		cat.Name = *req.Name
	}

	if err := s.repo.Category.Update(ctx, cat); err != nil {
		s.logger.Error("actualizar categoría falló", zap.Error(err))
		return nil, err
	}

	resp := toCategoryResponse(cat)
	return &resp, nil
}

func (s *categoryService) SetActive(ctx context.Context, id string, active bool) error {
	if _, err := s.repo.Category.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.repo.Category.SetActive(ctx, id, active)
}

func toCategoryResponse(cat *model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:       cat.CategoryID,
		Name:     cat.Name,
		IsActive: cat.IsActive,
	}
}

func toCategoryResponses(cats []model.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(cats))
	for i := range cats {
		out = append(out, toCategoryResponse(&cats[i]))
	}
	return out
}
