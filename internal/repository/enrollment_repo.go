package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

// EnrollmentFilter is the sparse search filter for enrollments.
type EnrollmentFilter struct {
	StudentID  string
	ActivityID string
	Status     string
	From       *time.Time
	To         *time.Time
}

// EnrollmentRepository is the data-access interface for enrollments.
type EnrollmentRepository interface {
	Create(ctx context.Context, e *model.Enrollment) error
	GetByID(ctx context.Context, id string) (*model.Enrollment, error)
	// GetByActivityAndStudent returns the single enrollment a student has
	// for an activity, whatever its status.
	GetByActivityAndStudent(ctx context.Context, activityID, studentID string) (*model.Enrollment, error)
	List(ctx context.Context) ([]model.Enrollment, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.Enrollment, error)
	ListByActivity(ctx context.Context, activityID string) ([]model.Enrollment, error)
	Search(ctx context.Context, f EnrollmentFilter) ([]model.Enrollment, error)
	Update(ctx context.Context, e *model.Enrollment) error
	// CountActiveByActivity counts Inscrito enrollments, the number the
	// capacity check compares against.
	CountActiveByActivity(ctx context.Context, activityID string) (int64, error)
}

type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo builds the GORM implementation.
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) Create(ctx context.Context, e *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id string) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Activity").
		Preload("Student").
		Where("enrollment_id = ?", id).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepo) GetByActivityAndStudent(ctx context.Context, activityID, studentID string) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.db.WithContext(ctx).
		Where("activity_id = ? AND student_id = ?", activityID, studentID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepo) List(ctx context.Context) ([]model.Enrollment, error) {
	var list []model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Activity").
		Preload("Student").
		Order("enrollment_date DESC").
		Find(&list).Error
	return list, err
}

func (r *enrollmentRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Enrollment, error) {
	var list []model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Activity").
		Where("student_id = ?", studentID).
		Order("enrollment_date DESC").
		Find(&list).Error
	return list, err
}

func (r *enrollmentRepo) ListByActivity(ctx context.Context, activityID string) ([]model.Enrollment, error) {
	var list []model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("activity_id = ?", activityID).
		Order("enrollment_date ASC").
		Find(&list).Error
	return list, err
}

func (r *enrollmentRepo) Search(ctx context.Context, f EnrollmentFilter) ([]model.Enrollment, error) {
	var list []model.Enrollment
	db := r.db.WithContext(ctx).
		Preload("Activity").
		Preload("Student")

	if f.StudentID != "" {
		db = db.Where("student_id = ?", f.StudentID)
	}
	if f.ActivityID != "" {
		db = db.Where("activity_id = ?", f.ActivityID)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.From != nil {
		db = db.Where("enrollment_date >= ?", *f.From)
	}
	if f.To != nil {
		db = db.Where("enrollment_date <= ?", *f.To)
	}

	err := db.Order("enrollment_date DESC").Find(&list).Error
	return list, err
}

func (r *enrollmentRepo) Update(ctx context.Context, e *model.Enrollment) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *enrollmentRepo) CountActiveByActivity(ctx context.Context, activityID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("activity_id = ? AND status = ?", activityID, model.EnrollmentActive).
		Count(&n).Error
	return n, err
}
