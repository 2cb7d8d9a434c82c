package dto

// DashboardTotals are the counters of the admin dashboard header.
type DashboardTotals struct {
	TotalActivities  int64 `json:"total_activities"`
	TotalOrganizers  int64 `json:"total_organizers"`
	TotalUsers       int64 `json:"total_users"`
	TotalStudents    int64 `json:"total_students"`
	TotalEnrollments int64 `json:"total_enrollments"`
	TotalCategories  int64 `json:"total_categories"`
	TotalRatings     int64 `json:"total_ratings"`
}

// EnrollmentsByMonth is one bar of the last-months enrollment chart.
type EnrollmentsByMonth struct {
	Month string `json:"month"` // "2026-08"
	Total int64  `json:"total"`
}

// ActivitiesByCategory is one slice of the category distribution chart.
type ActivitiesByCategory struct {
	CategoryName    string `json:"category_name"`
	TotalActivities int64  `json:"total_activities"`
}

// TopRating is one row of the best-rated activities table.
type TopRating struct {
	ActivityTitle string  `json:"activity_title"`
	AvgRating     float64 `json:"avg_rating"`
}
