package dto

// EnrollRequest enrolls the authenticated student in an activity.
type EnrollRequest struct {
	ActivityID string `json:"activity_id" binding:"required,uuid"`
	Note       string `json:"note"        binding:"omitempty,max=500"`
}

// CreateEnrollmentRequest is the admin form: it names the student.
type CreateEnrollmentRequest struct {
	ActivityID string `json:"activity_id" binding:"required,uuid"`
	StudentID  string `json:"student_id"  binding:"required,uuid"`
	Note       string `json:"note"        binding:"omitempty,max=500"`
	Status     string `json:"status"      binding:"omitempty,oneof=Inscrito Cancelado"`
}

// UpdateEnrollmentRequest updates note and status.
type UpdateEnrollmentRequest struct {
	Note   *string `json:"note"   binding:"omitempty,max=500"`
	Status *string `json:"status" binding:"omitempty,oneof=Inscrito Cancelado"`
}

// EnrollmentSearchRequest is the sparse filter of the search endpoint.
type EnrollmentSearchRequest struct {
	StudentID  string `form:"studentId"  binding:"omitempty,uuid"`
	ActivityID string `form:"activityId" binding:"omitempty,uuid"`
	Status     string `form:"status"     binding:"omitempty,oneof=Inscrito Cancelado"`
	FromDate   string `form:"fromDate"`
	ToDate     string `form:"toDate"`
}

// EnrollmentResponse is the enrollment payload; it carries the joined
// names the portal tables display.
type EnrollmentResponse struct {
	ID             string `json:"id"`
	ActivityID     string `json:"activity_id"`
	ActivityTitle  string `json:"activity_title,omitempty"`
	StudentID      string `json:"student_id"`
	StudentName    string `json:"student_name,omitempty"`
	EnrollmentDate string `json:"enrollment_date"`
	Note           string `json:"note,omitempty"`
	Status         string `json:"status"`
}
