package model

import "time"

// Enrollment statuses. A cancelled enrollment is kept and reactivated on
// re-enroll instead of inserting a duplicate row.
const (
	EnrollmentActive    = "Inscrito"
	EnrollmentCancelled = "Cancelado"
)

// Enrollment is a student's registration record for an activity.
type Enrollment struct {
	EnrollmentID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"enrollment_id"`
	ActivityID     string    `gorm:"type:uuid;not null;index:idx_enr_pair,unique"   json:"activity_id"`
	StudentID      string    `gorm:"type:uuid;not null;index:idx_enr_pair,unique"   json:"student_id"`
	EnrollmentDate time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"enrollment_date"`
	Note           string    `gorm:"type:text"                                      json:"note"`
	Status         string    `gorm:"type:varchar(20);not null"                      json:"status"`
	BaseModel

	Activity *Activity `gorm:"foreignKey:ActivityID;references:ActivityID" json:"activity,omitempty"`
	Student  *User     `gorm:"foreignKey:StudentID;references:UserID"      json:"student,omitempty"`
}

// TableName sets the table name.
func (Enrollment) TableName() string { return "enrollments" }
