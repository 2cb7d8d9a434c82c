package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

// FacultyRepository serves the faculty/career dropdown data.
type FacultyRepository interface {
	ListWithCareers(ctx context.Context) ([]model.Faculty, error)
}

type facultyRepo struct {
	db *gorm.DB
}

// NewFacultyRepo builds the GORM implementation.
func NewFacultyRepo(db *gorm.DB) FacultyRepository {
	return &facultyRepo{db: db}
}

func (r *facultyRepo) ListWithCareers(ctx context.Context) ([]model.Faculty, error) {
	var faculties []model.Faculty
	err := r.db.WithContext(ctx).
		Preload("Careers", func(db *gorm.DB) *gorm.DB {
			return db.Order("careers.name ASC")
		}).
		Order("name ASC").
		Find(&faculties).Error
	return faculties, err
}
