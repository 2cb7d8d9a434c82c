package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	User       UserRepository
	Student    StudentRepository
	Organizer  OrganizerRepository
	Category   CategoryRepository
	Activity   ActivityRepository
	Enrollment EnrollmentRepository
	Rating     RatingRepository
	Faculty    FacultyRepository
	Dashboard  DashboardRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Student:    NewStudentRepo(db),
		Organizer:  NewOrganizerRepo(db),
		Category:   NewCategoryRepo(db),
		Activity:   NewActivityRepo(db),
		Enrollment: NewEnrollmentRepo(db),
		Rating:     NewRatingRepo(db),
		Faculty:    NewFacultyRepo(db),
		Dashboard:  NewDashboardRepo(db),
	}
}
