package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/service"
	"github.com/SecondHemisphere/portal-actividades/pkg/response"
)

// RatingHandler serves the rating endpoints.
type RatingHandler struct {
	ratingSvc service.RatingService
}

// NewRatingHandler builds the RatingHandler.
func NewRatingHandler(ratingSvc service.RatingService) *RatingHandler {
	return &RatingHandler{ratingSvc: ratingSvc}
}

// CreateRating leaves a review as the authenticated student.
// POST /api/v1/ratings
func (h *RatingHandler) CreateRating(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	rating, err := h.ratingSvc.Create(c.Request.Context(), studentID, &req)
	if err != nil {
		h.handleRatingError(c, err)
		return
	}

	response.Created(c, rating)
}

// CanReview reports whether the authenticated student may review an
// activity.
// GET /api/v1/ratings/can-review/:activityId
func (h *RatingHandler) CanReview(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	activityID := c.Param("activityId")
	if activityID == "" {
		response.BadRequest(c, 10001, "El id de la actividad es obligatorio")
		return
	}

	can, err := h.ratingSvc.CanReview(c.Request.Context(), studentID, activityID)
	if err != nil {
		h.handleRatingError(c, err)
		return
	}

	response.OK(c, gin.H{"can_review": can})
}

// ListByActivity lists an activity's ratings.
// GET /api/v1/ratings/activity/:id
func (h *RatingHandler) ListByActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id de la actividad es obligatorio")
		return
	}

	list, err := h.ratingSvc.ListByActivity(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// ListMyRatings lists the authenticated student's ratings.
// GET /api/v1/ratings/mine
func (h *RatingHandler) ListMyRatings(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, err := h.ratingSvc.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// SearchRatings filters ratings (admin).
// GET /api/v1/ratings/search
func (h *RatingHandler) SearchRatings(c *gin.Context) {
	var req dto.RatingSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	list, err := h.ratingSvc.Search(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// UpdateRating edits the authenticated student's review.
// PUT /api/v1/ratings/:id
func (h *RatingHandler) UpdateRating(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id de la calificación es obligatorio")
		return
	}

	var req dto.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	rating, err := h.ratingSvc.Update(c.Request.Context(), studentID, id, &req)
	if err != nil {
		h.handleRatingError(c, err)
		return
	}

	response.OK(c, rating)
}

// DeleteRating removes a review (admin).
// DELETE /api/v1/ratings/:id
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id de la calificación es obligatorio")
		return
	}

	if err := h.ratingSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleRatingError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *RatingHandler) handleRatingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRatingNotFound):
		response.NotFound(c, 18001, "Calificación no encontrada")
	case errors.Is(err, service.ErrActivityNotFound):
		response.NotFound(c, 18002, "Actividad no encontrada")
	case errors.Is(err, service.ErrCannotReview):
		response.Forbidden(c, 18003, "No puedes calificar esta actividad")
	case errors.Is(err, service.ErrAlreadyRated):
		response.Conflict(c, 18004, "Ya calificaste esta actividad")
	case errors.Is(err, service.ErrActivityNotEnded):
		response.BadRequest(c, 18005, "La actividad todavía no termina")
	case errors.Is(err, service.ErrNotRatingOwner):
		response.Forbidden(c, 18006, "La calificación pertenece a otro estudiante")
	default:
		response.InternalError(c)
	}
}
