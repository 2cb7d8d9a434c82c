package dto

// CreateRatingRequest leaves a review. Only an enrolled student may review,
// and only after the activity has ended.
type CreateRatingRequest struct {
	ActivityID string `json:"activity_id" binding:"required,uuid"`
	Stars      int    `json:"stars"       binding:"required,min=1,max=5"`
	Comment    string `json:"comment"     binding:"omitempty,max=1000"`
}

// UpdateRatingRequest edits an existing review.
type UpdateRatingRequest struct {
	Stars   *int    `json:"stars"   binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}

// RatingSearchRequest filters ratings.
type RatingSearchRequest struct {
	ActivityID string `form:"activityId" binding:"omitempty,uuid"`
	StudentID  string `form:"studentId"  binding:"omitempty,uuid"`
	MinStars   int    `form:"minStars"   binding:"omitempty,min=1,max=5"`
}

// RatingResponse is the rating payload.
type RatingResponse struct {
	ID            string `json:"id"`
	ActivityID    string `json:"activity_id"`
	ActivityTitle string `json:"activity_title,omitempty"`
	StudentID     string `json:"student_id"`
	StudentName   string `json:"student_name,omitempty"`
	Stars         int    `json:"stars"`
	Comment       string `json:"comment,omitempty"`
	RatingDate    string `json:"rating_date"`
}
