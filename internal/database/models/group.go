package models

import "time"

// Group is a named cohort of students. Names follow the XX-dd pattern.
type Group struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:255" validate:"required,group_name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}
