package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

// OrganizerFilter is the sparse search filter for organizers.
type OrganizerFilter struct {
	Name       string
	Email      string
	Department string
}

// OrganizerRepository manages the users+organizers pair as one unit.
type OrganizerRepository interface {
	Create(ctx context.Context, user *model.User, profile *model.OrganizerProfile) error
	GetByID(ctx context.Context, id string) (*model.OrganizerProfile, error)
	List(ctx context.Context, includeInactive bool) ([]model.OrganizerProfile, error)
	Search(ctx context.Context, f OrganizerFilter) ([]model.OrganizerProfile, error)
	Update(ctx context.Context, user *model.User, profile *model.OrganizerProfile) error
}

type organizerRepo struct {
	db *gorm.DB
}

// NewOrganizerRepo builds the GORM implementation.
func NewOrganizerRepo(db *gorm.DB) OrganizerRepository {
	return &organizerRepo{db: db}
}

func (r *organizerRepo) Create(ctx context.Context, user *model.User, profile *model.OrganizerProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.UserID
		return tx.Create(profile).Error
	})
}

func (r *organizerRepo) GetByID(ctx context.Context, id string) (*model.OrganizerProfile, error) {
	var profile model.OrganizerProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", id).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *organizerRepo) List(ctx context.Context, includeInactive bool) ([]model.OrganizerProfile, error) {
	var profiles []model.OrganizerProfile
	db := r.db.WithContext(ctx).
		Joins("JOIN users ON users.user_id = organizers.user_id").
		Preload("User")
	if !includeInactive {
		db = db.Where("users.is_active = ?", true)
	}
	err := db.Order("users.name ASC").Find(&profiles).Error
	return profiles, err
}

func (r *organizerRepo) Search(ctx context.Context, f OrganizerFilter) ([]model.OrganizerProfile, error) {
	var profiles []model.OrganizerProfile
	db := r.db.WithContext(ctx).
		Joins("JOIN users ON users.user_id = organizers.user_id").
		Preload("User")

	if f.Name != "" {
		db = db.Where("users.name ILIKE ?", "%"+f.Name+"%")
	}
	if f.Email != "" {
		db = db.Where("users.email ILIKE ?", "%"+f.Email+"%")
	}
	if f.Department != "" {
		db = db.Where("organizers.department ILIKE ?", "%"+f.Department+"%")
	}

	err := db.Order("users.name ASC").Find(&profiles).Error
	return profiles, err
}

func (r *organizerRepo) Update(ctx context.Context, user *model.User, profile *model.OrganizerProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		return tx.Save(profile).Error
	})
}
