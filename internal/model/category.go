package model

// Category groups activities for browsing and the admin dashboard.
type Category struct {
	CategoryID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"category_id"`
	Name       string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	IsActive   bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName sets the table name.
func (Category) TableName() string { return "categories" }
