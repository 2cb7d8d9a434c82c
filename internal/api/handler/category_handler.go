package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/service"
	"github.com/SecondHemisphere/portal-actividades/pkg/response"
)

// CategoryHandler serves the category endpoints.
type CategoryHandler struct {
	categorySvc service.CategoryService
}

// NewCategoryHandler builds the CategoryHandler.
func NewCategoryHandler(categorySvc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categorySvc: categorySvc}
}

// ListCategories lists categories.
// GET /api/v1/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	categories, err := h.categorySvc.List(c.Request.Context(), includeInactive)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": categories})
}

// SearchCategories filters categories by name substring.
// GET /api/v1/categories/search
func (h *CategoryHandler) SearchCategories(c *gin.Context) {
	var req dto.CategorySearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	categories, err := h.categorySvc.Search(c.Request.Context(), req.Name)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": categories})
}

// GetCategory returns one category.
// GET /api/v1/categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id de la categoría es obligatorio")
		return
	}

	category, err := h.categorySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleCategoryError(c, err)
		return
	}

	response.OK(c, category)
}

// CreateCategory creates a category.
// POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	category, err := h.categorySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleCategoryError(c, err)
		return
	}

	response.Created(c, category)
}

// UpdateCategory renames a category.
// PUT /api/v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id de la categoría es obligatorio")
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Parámetros inválidos")
		return
	}

	category, err := h.categorySvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleCategoryError(c, err)
		return
	}

	response.OK(c, category)
}

// DeactivateCategory soft-deletes a category.
// PUT /api/v1/categories/deactivate/:id
func (h *CategoryHandler) DeactivateCategory(c *gin.Context) {
	h.setActive(c, false)
}

// ActivateCategory restores a category.
// PUT /api/v1/categories/activate/:id
func (h *CategoryHandler) ActivateCategory(c *gin.Context) {
	h.setActive(c, true)
}

func (h *CategoryHandler) setActive(c *gin.Context, active bool) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "El id de la categoría es obligatorio")
		return
	}

	if err := h.categorySvc.SetActive(c.Request.Context(), id, active); err != nil {
		h.handleCategoryError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *CategoryHandler) handleCategoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		response.NotFound(c, 15001, "Categoría no encontrada")
	case errors.Is(err, service.ErrCategoryExists):
		response.Conflict(c, 15002, "La categoría ya existe")
	default:
		response.InternalError(c)
	}
}
