package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/SecondHemisphere/portal-actividades/internal/model"
)

// Totals are the resource counters of the admin dashboard.
type Totals struct {
	Activities  int64
	Organizers  int64
	Users       int64
	Students    int64
	Enrollments int64
	Categories  int64
	Ratings     int64
}

// CategoryCount is one row of the activities-per-category aggregate.
type CategoryCount struct {
	CategoryName string
	Total        int64
}

// ActivityAverage is one row of the top-ratings aggregate.
type ActivityAverage struct {
	ActivityTitle string
	AvgStars      float64
}

// DashboardRepository runs the dashboard aggregates.
type DashboardRepository interface {
	Totals(ctx context.Context) (*Totals, error)
	// CountEnrollmentsBetween counts enrollments created inside [from, to).
	CountEnrollmentsBetween(ctx context.Context, from, to time.Time) (int64, error)
	ActivitiesByCategory(ctx context.Context) ([]CategoryCount, error)
	TopRatings(ctx context.Context, limit int) ([]ActivityAverage, error)
}

type dashboardRepo struct {
	db *gorm.DB
}

// NewDashboardRepo builds the GORM implementation.
func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db: db}
}

func (r *dashboardRepo) Totals(ctx context.Context) (*Totals, error) {
	db := r.db.WithContext(ctx)
	var t Totals

	counts := []struct {
		model interface{}
		dest  *int64
		where []interface{}
	}{
		{&model.Activity{}, &t.Activities, nil},
		{&model.User{}, &t.Organizers, []interface{}{"role = ?", model.RoleOrganizer}},
		{&model.User{}, &t.Users, nil},
		{&model.User{}, &t.Students, []interface{}{"role = ?", model.RoleStudent}},
		{&model.Enrollment{}, &t.Enrollments, nil},
		{&model.Category{}, &t.Categories, nil},
		{&model.Rating{}, &t.Ratings, nil},
	}

	for _, c := range counts {
		q := db.Model(c.model)
		if c.where != nil {
			q = q.Where(c.where[0], c.where[1:]...)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return &t, nil
}

func (r *dashboardRepo) CountEnrollmentsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("enrollment_date >= ? AND enrollment_date < ?", from, to).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepo) ActivitiesByCategory(ctx context.Context) ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.WithContext(ctx).
		Model(&model.Activity{}).
		Select("categories.name AS category_name, COUNT(*) AS total").
		Joins("JOIN categories ON categories.category_id = activities.category_id").
		Group("categories.name").
		Order("total DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) TopRatings(ctx context.Context, limit int) ([]ActivityAverage, error) {
	var rows []ActivityAverage
	err := r.db.WithContext(ctx).
		Model(&model.Rating{}).
		Select("activities.title AS activity_title, AVG(ratings.stars) AS avg_stars").
		Joins("JOIN activities ON activities.activity_id = ratings.activity_id").
		Group("activities.title").
		Order("avg_stars DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
