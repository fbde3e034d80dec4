package category

import (
	"time"
)

// Category represents the categories table. Subcategories are rows whose
// ParentID points at the primary category.
type Category struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id,omitempty"`
	Name      string    `gorm:"column:name;size:128;not null" json:"name"`
	Slug      string    `gorm:"column:slug;size:128;not null;uniqueIndex" json:"slug"`
	ParentID  *uint     `gorm:"column:parent_id;index" json:"parent_id,omitempty"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
