package dto

// CreateCategoryRequest creates a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// UpdateCategoryRequest renames a category.
type UpdateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=100"`
}

// CategorySearchRequest filters categories by name substring.
type CategorySearchRequest struct {
	Name string `form:"name" binding:"omitempty,max=100"`
}

// CategoryListRequest lists categories.
type CategoryListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// CategoryResponse is the category payload.
type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}
