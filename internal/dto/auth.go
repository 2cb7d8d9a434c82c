package dto

// LoginRequest authenticates by institutional email.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest lets the authenticated user change their password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=64"`
}

// RegisterStudentRequest is the public student sign-up. The email must
// belong to the university domain; the service enforces it.
type RegisterStudentRequest struct {
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

// RegisterOrganizerRequest is the public organizer sign-up.
type RegisterOrganizerRequest struct {
	Name       string   `json:"name"       binding:"required,min=2,max=100"`
	Email      string   `json:"email"      binding:"required,email"`
	Phone      string   `json:"phone"      binding:"omitempty,max=20"`
	Password   string   `json:"password"   binding:"required,min=8,max=64"`
	Department string   `json:"department" binding:"required,max=150"`
	Position   string   `json:"position"   binding:"omitempty,max=150"`
	Bio        string   `json:"bio"        binding:"omitempty,max=1000"`
	Shifts     []string `json:"shifts"     binding:"omitempty,dive,oneof=Mañana Tarde Noche"`
	WorkDays   []string `json:"work_days"  binding:"omitempty,dive,oneof=Lunes Martes Miércoles Jueves Viernes Sábado Domingo"`
	PhotoURL   string   `json:"photo_url"  binding:"omitempty,url,max=500"`
}
