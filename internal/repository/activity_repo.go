package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

// ActivityFilter is the sparse search filter for activities. Title and
// location match case-insensitive substrings, ids match exactly, From/To
// bound the activity date.
type ActivityFilter struct {
	Title       string
	CategoryID  string
	OrganizerID string
	Location    string
	From        *time.Time
	To          *time.Time
}

// ActivityRepository is the data-access interface for activities.
type ActivityRepository interface {
	Create(ctx context.Context, act *model.Activity) error
	GetByID(ctx context.Context, id string) (*model.Activity, error)
	List(ctx context.Context, includeInactive bool) ([]model.Activity, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]model.Activity, error)
	// ListByMonth returns the activities dated inside the given month,
	// optionally restricted to one organizer.
	ListByMonth(ctx context.Context, year int, month time.Month, organizerID string) ([]model.Activity, error)
	Search(ctx context.Context, f ActivityFilter) ([]model.Activity, error)
	Update(ctx context.Context, act *model.Activity) error
	SetActive(ctx context.Context, id string, active bool) error
}

type activityRepo struct {
	db *gorm.DB
}

// NewActivityRepo builds the GORM implementation.
func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Create(ctx context.Context, act *model.Activity) error {
	return r.db.WithContext(ctx).Create(act).Error
}

func (r *activityRepo) GetByID(ctx context.Context, id string) (*model.Activity, error) {
	var act model.Activity
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Organizer").
		Where("activity_id = ?", id).
		First(&act).Error
	if err != nil {
		return nil, err
	}
	return &act, nil
}

func (r *activityRepo) List(ctx context.Context, includeInactive bool) ([]model.Activity, error) {
	var acts []model.Activity
	db := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Organizer")
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	err := db.Order("date ASC").Find(&acts).Error
	return acts, err
}

func (r *activityRepo) ListByOrganizer(ctx context.Context, organizerID string) ([]model.Activity, error) {
	var acts []model.Activity
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("organizer_id = ?", organizerID).
		Order("date ASC").
		Find(&acts).Error
	return acts, err
}

func (r *activityRepo) ListByMonth(ctx context.Context, year int, month time.Month, organizerID string) ([]model.Activity, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	var acts []model.Activity
	db := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", first, next)
	if organizerID != "" {
		db = db.Where("organizer_id = ?", organizerID)
	}
	err := db.Order("date ASC").Find(&acts).Error
	return acts, err
}

func (r *activityRepo) Search(ctx context.Context, f ActivityFilter) ([]model.Activity, error) {
	var acts []model.Activity
	db := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Organizer")

	if f.Title != "" {
		db = db.Where("title ILIKE ?", "%"+f.Title+"%")
	}
	if f.CategoryID != "" {
		db = db.Where("category_id = ?", f.CategoryID)
	}
	if f.OrganizerID != "" {
		db = db.Where("organizer_id = ?", f.OrganizerID)
	}
	if f.Location != "" {
		db = db.Where("location ILIKE ?", "%"+f.Location+"%")
	}
	if f.From != nil {
		db = db.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		db = db.Where("date <= ?", *f.To)
	}

	err := db.Order("date ASC").Find(&acts).Error
	return acts, err
}

func (r *activityRepo) Update(ctx context.Context, act *model.Activity) error {
	return r.db.WithContext(ctx).Save(act).Error
}

func (r *activityRepo) SetActive(ctx context.Context, id string, active bool) error {
	return r.db.WithContext(ctx).
		Model(&model.Activity{}).
		Where("activity_id = ?", id).
		Update("is_active", active).Error
}
