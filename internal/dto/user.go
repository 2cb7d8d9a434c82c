package dto

// CreateUserRequest is the admin user form.
type CreateUserRequest struct {
	Name     string `json:"name"     binding:"required,min=2,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	Phone    string `json:"phone"    binding:"omitempty,max=20"`
	Password string `json:"password" binding:"required,min=8,max=64"`
	Role     string `json:"role"     binding:"required,oneof=Estudiante Organizador Admin"`
}

// UpdateUserRequest updates the base account fields.
type UpdateUserRequest struct {
	Name  *string `json:"name"  binding:"omitempty,min=2,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty,max=20"`
	Role  *string `json:"role"  binding:"omitempty,oneof=Estudiante Organizador Admin"`
}

// UserSearchRequest filters users.
type UserSearchRequest struct {
	Name  string `form:"name"  binding:"omitempty,max=100"`
	Email string `form:"email" binding:"omitempty,max=255"`
	Role  string `form:"role"  binding:"omitempty,oneof=Estudiante Organizador Admin"`
}
