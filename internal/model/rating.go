package model

import "time"

// Rating is a post-activity review. One per student per activity.
type Rating struct {
	RatingID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"rating_id"`
	ActivityID string    `gorm:"type:uuid;not null;index:idx_rat_pair,unique"   json:"activity_id"`
	StudentID  string    `gorm:"type:uuid;not null;index:idx_rat_pair,unique"   json:"student_id"`
	Stars      int       `gorm:"not null"                                       json:"stars"`
	Comment    string    `gorm:"type:text"                                      json:"comment"`
	RatingDate time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"rating_date"`
	BaseModel

	Activity *Activity `gorm:"foreignKey:ActivityID;references:ActivityID" json:"activity,omitempty"`
	Student  *User     `gorm:"foreignKey:StudentID;references:UserID"      json:"student,omitempty"`
}

// TableName sets the table name.
func (Rating) TableName() string { return "ratings" }
