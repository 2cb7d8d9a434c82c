package model

// User roles. The values travel verbatim in JWT claims and API payloads.
const (
	RoleStudent   = "Estudiante"
	RoleOrganizer = "Organizador"
	RoleAdmin     = "Admin"
)

// User is the base account record; students and organizers extend it with
// a profile row keyed by the same id. Soft delete is the is_active flag,
// toggled through the activate/deactivate endpoints.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	Phone        string `gorm:"type:varchar(20)"                               json:"phone"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null"                      json:"role"`
	IsActive     bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName sets the table name.
func (User) TableName() string { return "users" }

// StudentProfile extends a User with the student-specific fields.
type StudentProfile struct {
	UserID   string `gorm:"type:uuid;primaryKey"        json:"user_id"`
	Faculty  string `gorm:"type:varchar(150);not null"  json:"faculty"`
	Career   string `gorm:"type:varchar(150);not null"  json:"career"`
	Semester int    `gorm:"not null;default:1"          json:"semester"`
	Modality string `gorm:"type:varchar(20);not null"   json:"modality"` // Presencial | Híbrida | Virtual
	Schedule string `gorm:"type:varchar(20);not null"   json:"schedule"` // Matutina | Vespertina | Nocturna

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (StudentProfile) TableName() string { return "students" }

// OrganizerProfile extends a User with the organizer-specific fields.
type OrganizerProfile struct {
	UserID     string      `gorm:"type:uuid;primaryKey"       json:"user_id"`
	Department string      `gorm:"type:varchar(150);not null" json:"department"`
	Position   string      `gorm:"type:varchar(150)"          json:"position"`
	Bio        string      `gorm:"type:text"                  json:"bio"`
	Shifts     StringArray `gorm:"type:text[]"                json:"shifts"`    // Mañana | Tarde | Noche
	WorkDays   StringArray `gorm:"type:text[]"                json:"work_days"` // Lunes .. Domingo
	PhotoURL   string      `gorm:"type:varchar(500)"          json:"photo_url"`

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (OrganizerProfile) TableName() string { return "organizers" }
