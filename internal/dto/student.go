package dto

// CreateStudentRequest is the admin form for creating a student account.
type CreateStudentRequest struct {
	Name     string `json:"name"     binding:"required,min=2,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	Phone    string `json:"phone"    binding:"omitempty,max=20"`
	Password string `json:"password" binding:"required,min=8,max=64"`
	Faculty  string `json:"faculty"  binding:"required,max=150"`
	Career   string `json:"career"   binding:"required,max=150"`
	Semester int    `json:"semester" binding:"required,min=1,max=12"`
	Modality string `json:"modality" binding:"required,oneof=Presencial Híbrida Virtual"`
	Schedule string `json:"schedule" binding:"required,oneof=Matutina Vespertina Nocturna"`
}

// UpdateStudentRequest updates account and profile fields together.
type UpdateStudentRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=2,max=100"`
	Phone    *string `json:"phone"    binding:"omitempty,max=20"`
	Faculty  *string `json:"faculty"  binding:"omitempty,max=150"`
	Career   *string `json:"career"   binding:"omitempty,max=150"`
	Semester *int    `json:"semester" binding:"omitempty,min=1,max=12"`
	Modality *string `json:"modality" binding:"omitempty,oneof=Presencial Híbrida Virtual"`
	Schedule *string `json:"schedule" binding:"omitempty,oneof=Matutina Vespertina Nocturna"`
}

// StudentSearchRequest filters students.
type StudentSearchRequest struct {
	Name    string `form:"name"    binding:"omitempty,max=100"`
	Email   string `form:"email"   binding:"omitempty,max=255"`
	Faculty string `form:"faculty" binding:"omitempty,max=150"`
	Career  string `form:"career"  binding:"omitempty,max=150"`
}

// StudentResponse is the student payload (account + profile).
type StudentResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Faculty  string `json:"faculty"`
	Career   string `json:"career"`
	Semester int    `json:"semester"`
	Modality string `json:"modality"`
	Schedule string `json:"schedule"`
	IsActive bool   `json:"is_active"`
}
