package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

// UserFilter is the sparse search filter for users. Empty fields are
// ignored; name and email match case-insensitive substrings.
type UserFilter struct {
	Name  string
	Email string
	Role  string
}

// UserRepository is the data-access interface for base accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, includeInactive bool) ([]model.User, error)
	Search(ctx context.Context, f UserFilter) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	SetActive(ctx context.Context, id string, active bool) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo builds the GORM implementation.
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context, includeInactive bool) ([]model.User, error) {
	var users []model.User
	db := r.db.WithContext(ctx)
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	err := db.Order("name ASC").Find(&users).Error
	return users, err
}

func (r *userRepo) Search(ctx context.Context, f UserFilter) ([]model.User, error) {
	var users []model.User
	db := r.db.WithContext(ctx).Model(&model.User{})

	if f.Name != "" {
		db = db.Where("name ILIKE ?", "%"+f.Name+"%")
	}
	if f.Email != "" {
		db = db.Where("email ILIKE ?", "%"+f.Email+"%")
	}
	if f.Role != "" {
		db = db.Where("role = ?", f.Role)
	}

	err := db.Order("name ASC").Find(&users).Error
	return users, err
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) SetActive(ctx context.Context, id string, active bool) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", id).
		Update("is_active", active).Error
}
