package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

// CategoryRepository is the data-access interface for categories.
type CategoryRepository interface {
	Create(ctx context.Context, cat *model.Category) error
	GetByID(ctx context.Context, id string) (*model.Category, error)
	GetByName(ctx context.Context, name string) (*model.Category, error)
	List(ctx context.Context, includeInactive bool) ([]model.Category, error)
	Search(ctx context.Context, name string) ([]model.Category, error)
	Update(ctx context.Context, cat *model.Category) error
	SetActive(ctx context.Context, id string, active bool) error
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo builds the GORM implementation.
func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, cat *model.Category) error {
	return r.db.WithContext(ctx).Create(cat).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var cat model.Category
	err := r.db.WithContext(ctx).
		Where("category_id = ?", id).
		First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *categoryRepo) GetByName(ctx context.Context, name string) (*model.Category, error) {
	var cat model.Category
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *categoryRepo) List(ctx context.Context, includeInactive bool) ([]model.Category, error) {
	var cats []model.Category
	db := r.db.WithContext(ctx)
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	err := db.Order("name ASC").Find(&cats).Error
	return cats, err
}

func (r *categoryRepo) Search(ctx context.Context, name string) ([]model.Category, error) {
	var cats []model.Category
	db := r.db.WithContext(ctx).Model(&model.Category{})
	if name != "" {
		db = db.Where("name ILIKE ?", "%"+name+"%")
	}
	err := db.Order("name ASC").Find(&cats).Error
	return cats, err
}

func (r *categoryRepo) Update(ctx context.Context, cat *model.Category) error {
	return r.db.WithContext(ctx).Save(cat).Error
}

func (r *categoryRepo) SetActive(ctx context.Context, id string, active bool) error {
	return r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("category_id = ?", id).
		Update("is_active", active).Error
}
