package dto

// CreateActivityRequest creates an activity. Date is a calendar day
// ("2006-01-02"); TimeRange is "HH:MM - HH:MM"; the deadline is RFC 3339
// or a bare date.
type CreateActivityRequest struct {
	Title                string `json:"title"                 binding:"required,min=3,max=200"`
	CategoryID           string `json:"category_id"           binding:"required,uuid"`
	OrganizerID          string `json:"organizer_id"          binding:"omitempty,uuid"`
	Date                 string `json:"date"                  binding:"required"`
	TimeRange            string `json:"time_range"            binding:"omitempty,max=20"`
	RegistrationDeadline string `json:"registration_deadline" binding:"omitempty"`
	Location             string `json:"location"              binding:"omitempty,max=200"`
	Capacity             int    `json:"capacity"              binding:"required,min=1"`
	Description          string `json:"description"           binding:"omitempty,max=2000"`
	PhotoURL             string `json:"photo_url"             binding:"omitempty,url,max=500"`
}

// UpdateActivityRequest updates an activity; absent fields stay as they are.
type UpdateActivityRequest struct {
	Title                *string `json:"title"                 binding:"omitempty,min=3,max=200"`
	CategoryID           *string `json:"category_id"           binding:"omitempty,uuid"`
	Date                 *string `json:"date"`
	TimeRange            *string `json:"time_range"            binding:"omitempty,max=20"`
	RegistrationDeadline *string `json:"registration_deadline"`
	Location             *string `json:"location"              binding:"omitempty,max=200"`
	Capacity             *int    `json:"capacity"              binding:"omitempty,min=1"`
	Description          *string `json:"description"           binding:"omitempty,max=2000"`
	PhotoURL             *string `json:"photo_url"             binding:"omitempty,url,max=500"`
}

// ActivitySearchRequest is the sparse filter the search endpoint accepts.
// Absent fields are ignored; title and location match case-insensitive
// substrings, ids match exactly, dates bound a range.
type ActivitySearchRequest struct {
	Title       string `form:"title"       binding:"omitempty,max=200"`
	CategoryID  string `form:"categoryId"  binding:"omitempty,uuid"`
	OrganizerID string `form:"organizerId" binding:"omitempty,uuid"`
	Location    string `form:"location"    binding:"omitempty,max=200"`
	FromDate    string `form:"fromDate"`
	ToDate      string `form:"toDate"`
}

// ActivityListRequest lists activities, optionally including inactive ones.
type ActivityListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// ActivityResponse is the activity payload.
type ActivityResponse struct {
	ID                   string  `json:"id"`
	Title                string  `json:"title"`
	CategoryID           string  `json:"category_id"`
	CategoryName         string  `json:"category_name,omitempty"`
	OrganizerID          string  `json:"organizer_id"`
	OrganizerName        string  `json:"organizer_name,omitempty"`
	Date                 string  `json:"date"`
	TimeRange            string  `json:"time_range,omitempty"`
	RegistrationDeadline string  `json:"registration_deadline,omitempty"`
	Location             string  `json:"location,omitempty"`
	Capacity             int     `json:"capacity"`
	AvailableSpots       int     `json:"available_spots"`
	Description          string  `json:"description,omitempty"`
	PhotoURL             string  `json:"photo_url,omitempty"`
	IsActive             bool    `json:"is_active"`
	RegistrationClosed   bool    `json:"registration_closed"`
	Ended                bool    `json:"ended"`
	AverageStars         float64 `json:"average_stars,omitempty"`
}

// CalendarRequest selects the month a calendar view shows.
type CalendarRequest struct {
	Year        int    `form:"year"        binding:"required,min=2000,max=2100"`
	Month       int    `form:"month"       binding:"required,min=1,max=12"`
	OrganizerID string `form:"organizerId" binding:"omitempty,uuid"`
}

// CalendarActivity is the display shape of one activity inside a day
// bucket: the time range split into start/end, placeholders for missing
// optional fields.
type CalendarActivity struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	Active               bool   `json:"active"`
	Start                string `json:"start"`
	End                  string `json:"end"`
	EventDate            string `json:"event_date"`
	Capacity             int    `json:"capacity"`
	Location             string `json:"location"`
	RegistrationDeadline string `json:"registration_deadline"`
}

// CalendarDay is one day bucket of the calendar view.
type CalendarDay struct {
	Date       string             `json:"date"`
	Activities []CalendarActivity `json:"activities"`
}
