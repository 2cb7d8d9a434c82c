package handler

import "github.com/SecondHemisphere/portal-actividades/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Student    *StudentHandler
	Organizer  *OrganizerHandler
	Category   *CategoryHandler
	Activity   *ActivityHandler
	Enrollment *EnrollmentHandler
	Rating     *RatingHandler
	Dashboard  *DashboardHandler
	Faculty    *FacultyHandler
	Export     *ExportHandler
}

// NewHandler wires the handlers to their services.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		User:       NewUserHandler(svc.User),
		Student:    NewStudentHandler(svc.Student),
		Organizer:  NewOrganizerHandler(svc.Organizer),
		Category:   NewCategoryHandler(svc.Category),
		Activity:   NewActivityHandler(svc.Activity),
		Enrollment: NewEnrollmentHandler(svc.Enrollment),
		Rating:     NewRatingHandler(svc.Rating),
		Dashboard:  NewDashboardHandler(svc.Dashboard),
		Faculty:    NewFacultyHandler(svc.Faculty),
		Export:     NewExportHandler(svc.Export),
	}
}
