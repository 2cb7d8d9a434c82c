package model

// Faculty feeds the register/profile dropdowns together with its careers.
type Faculty struct {
	FacultyID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"faculty_id"`
	Name      string `gorm:"type:varchar(150);not null;uniqueIndex"         json:"name"`

	Careers []Career `gorm:"foreignKey:FacultyID;references:FacultyID" json:"careers,omitempty"`
}

// TableName sets the table name.
func (Faculty) TableName() string { return "faculties" }

// Career belongs to a faculty.
type Career struct {
	CareerID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"career_id"`
	FacultyID string `gorm:"type:uuid;not null"                             json:"faculty_id"`
	Name      string `gorm:"type:varchar(150);not null"                     json:"name"`
}

// TableName sets the table name.
func (Career) TableName() string { return "careers" }
