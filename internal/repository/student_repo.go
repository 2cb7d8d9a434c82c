package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

// StudentFilter is the sparse search filter for students.
type StudentFilter struct {
	Name    string
	Email   string
	Faculty string
	Career  string
}

// StudentRepository manages the users+students pair as one unit.
type StudentRepository interface {
	Create(ctx context.Context, user *model.User, profile *model.StudentProfile) error
	GetByID(ctx context.Context, id string) (*model.StudentProfile, error)
	List(ctx context.Context, includeInactive bool) ([]model.StudentProfile, error)
	Search(ctx context.Context, f StudentFilter) ([]model.StudentProfile, error)
	Update(ctx context.Context, user *model.User, profile *model.StudentProfile) error
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo builds the GORM implementation.
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, user *model.User, profile *model.StudentProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.UserID
		return tx.Create(profile).Error
	})
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", id).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *studentRepo) List(ctx context.Context, includeInactive bool) ([]model.StudentProfile, error) {
	var profiles []model.StudentProfile
	db := r.db.WithContext(ctx).
		Joins("JOIN users ON users.user_id = students.user_id").
		Preload("User")
	if !includeInactive {
		db = db.Where("users.is_active = ?", true)
	}
	err := db.Order("users.name ASC").Find(&profiles).Error
	return profiles, err
}

func (r *studentRepo) Search(ctx context.Context, f StudentFilter) ([]model.StudentProfile, error) {
	var profiles []model.StudentProfile
	db := r.db.WithContext(ctx).
		Joins("JOIN users ON users.user_id = students.user_id").
		Preload("User")

	if f.Name != "" {
		db = db.Where("users.name ILIKE ?", "%"+f.Name+"%")
	}
	if f.Email != "" {
		db = db.Where("users.email ILIKE ?", "%"+f.Email+"%")
	}
	if f.Faculty != "" {
		db = db.Where("students.faculty ILIKE ?", "%"+f.Faculty+"%")
	}
	if f.Career != "" {
		db = db.Where("students.career ILIKE ?", "%"+f.Career+"%")
	}

	err := db.Order("users.name ASC").Find(&profiles).Error
	return profiles, err
}

func (r *studentRepo) Update(ctx context.Context, user *model.User, profile *model.StudentProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		return tx.Save(profile).Error
	})
}
