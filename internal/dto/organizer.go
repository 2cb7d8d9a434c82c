package dto

// CreateOrganizerRequest is the admin form for creating an organizer.
type CreateOrganizerRequest struct {
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

// UpdateOrganizerRequest updates account and profile fields together.
type UpdateOrganizerRequest struct {
	Name       *string   `json:"name"       binding:"omitempty,min=2,max=100"`
	Phone      *string   `json:"phone"      binding:"omitempty,max=20"`
	Department *string   `json:"department" binding:"omitempty,max=150"`
	Position   *string   `json:"position"   binding:"omitempty,max=150"`
	Bio        *string   `json:"bio"        binding:"omitempty,max=1000"`
	Shifts     *[]string `json:"shifts"     binding:"omitempty,dive,oneof=Mañana Tarde Noche"`
	WorkDays   *[]string `json:"work_days"  binding:"omitempty,dive,oneof=Lunes Martes Miércoles Jueves Viernes Sábado Domingo"`
	PhotoURL   *string   `json:"photo_url"  binding:"omitempty,url,max=500"`
}

// OrganizerSearchRequest filters organizers.
type OrganizerSearchRequest struct {
	Name       string `form:"name"       binding:"omitempty,max=100"`
	Email      string `form:"email"      binding:"omitempty,max=255"`
	Department string `form:"department" binding:"omitempty,max=150"`
}

// OrganizerResponse is the organizer payload (account + profile).
type OrganizerResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone,omitempty"`
	Department string   `json:"department"`
	Position   string   `json:"position,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	Shifts     []string `json:"shifts,omitempty"`
	WorkDays   []string `json:"work_days,omitempty"`
	PhotoURL   string   `json:"photo_url,omitempty"`
	IsActive   bool     `json:"is_active"`
}
