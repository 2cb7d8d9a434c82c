package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

// RatingFilter is the sparse search filter for ratings.
type RatingFilter struct {
	ActivityID string
	StudentID  string
	MinStars   int
}

// RatingRepository is the data-access interface for ratings.
type RatingRepository interface {
	Create(ctx context.Context, rat *model.Rating) error
	GetByID(ctx context.Context, id string) (*model.Rating, error)
	GetByActivityAndStudent(ctx context.Context, activityID, studentID string) (*model.Rating, error)
	ListByActivity(ctx context.Context, activityID string) ([]model.Rating, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.Rating, error)
	Search(ctx context.Context, f RatingFilter) ([]model.Rating, error)
	Update(ctx context.Context, rat *model.Rating) error
	Delete(ctx context.Context, id string) error
}

type ratingRepo struct {
	db *gorm.DB
}

// NewRatingRepo builds the GORM implementation.
func NewRatingRepo(db *gorm.DB) RatingRepository {
	return &ratingRepo{db: db}
}

func (r *ratingRepo) Create(ctx context.Context, rat *model.Rating) error {
	return r.db.WithContext(ctx).Create(rat).Error
}

func (r *ratingRepo) GetByID(ctx context.Context, id string) (*model.Rating, error) {
	var rat model.Rating
	err := r.db.WithContext(ctx).
		Preload("Activity").
		Preload("Student").
		Where("rating_id = ?", id).
		First(&rat).Error
	if err != nil {
		return nil, err
	}
	return &rat, nil
}

func (r *ratingRepo) GetByActivityAndStudent(ctx context.Context, activityID, studentID string) (*model.Rating, error) {
	var rat model.Rating
	err := r.db.WithContext(ctx).
		Where("activity_id = ? AND student_id = ?", activityID, studentID).
		First(&rat).Error
	if err != nil {
		return nil, err
	}
	return &rat, nil
}

func (r *ratingRepo) ListByActivity(ctx context.Context, activityID string) ([]model.Rating, error) {
	var list []model.Rating
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("activity_id = ?", activityID).
		Order("rating_date DESC").
		Find(&list).Error
	return list, err
}

func (r *ratingRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Rating, error) {
	var list []model.Rating
	err := r.db.WithContext(ctx).
		Preload("Activity").
		Where("student_id = ?", studentID).
		Order("rating_date DESC").
		Find(&list).Error
	return list, err
}

func (r *ratingRepo) Search(ctx context.Context, f RatingFilter) ([]model.Rating, error) {
	var list []model.Rating
	db := r.db.WithContext(ctx).
		Preload("Activity").
		Preload("Student")

	if f.ActivityID != "" {
		db = db.Where("activity_id = ?", f.ActivityID)
	}
	if f.StudentID != "" {
		db = db.Where("student_id = ?", f.StudentID)
	}
	if f.MinStars > 0 {
		db = db.Where("stars >= ?", f.MinStars)
	}

	err := db.Order("rating_date DESC").Find(&list).Error
	return list, err
}

func (r *ratingRepo) Update(ctx context.Context, rat *model.Rating) error {
	return r.db.WithContext(ctx).Save(rat).Error
}

func (r *ratingRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("rating_id = ?", id).
		Delete(&model.Rating{}).Error
}
