package dto

// FacultyResponse feeds the faculty/career dropdowns.
type FacultyResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Careers []string `json:"careers"`
}
