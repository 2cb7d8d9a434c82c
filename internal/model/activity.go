package model

import "time"

// Activity is a scheduled extracurricular event students can enroll in.
// Date carries day-level granularity; the time of day lives in TimeRange
// as "HH:MM - HH:MM", the format the portal's calendar splits for display.
type Activity struct {
	ActivityID           string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"activity_id"`
	Title                string     `gorm:"type:varchar(200);not null"                     json:"title"`
	CategoryID           string     `gorm:"type:uuid;not null"                             json:"category_id"`
	OrganizerID          string     `gorm:"type:uuid;not null"                             json:"organizer_id"`
	Date                 time.Time  `gorm:"type:date;not null"                             json:"date"`
	TimeRange            string     `gorm:"type:varchar(20)"                               json:"time_range"`
	RegistrationDeadline *time.Time `gorm:""                                               json:"registration_deadline,omitempty"`
	Location             string     `gorm:"type:varchar(200)"                              json:"location"`
	Capacity             int        `gorm:"not null;default:0"                             json:"capacity"`
	Description          string     `gorm:"type:text"                                      json:"description"`
	PhotoURL             string     `gorm:"type:varchar(500)"                              json:"photo_url"`
	IsActive             bool       `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	Category  *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"category,omitempty"`
	Organizer *User     `gorm:"foreignKey:OrganizerID;references:UserID"    json:"organizer,omitempty"`
}

// TableName sets the table name.
func (Activity) TableName() string { return "activities" }
