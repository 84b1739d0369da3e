package models

import "time"

// Student belongs to exactly one group and may attend any number of courses
type Student struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"first_name" gorm:"not null;size:255" validate:"required,max=255"`
	LastName  string    `json:"last_name" gorm:"not null;size:255" validate:"required,max=255"`
	GroupID   int       `json:"group_id" gorm:"not null;index" validate:"required,min=1"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Group          *Group          `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:RESTRICT"`
	StudentCourses []StudentCourse `json:"student_courses,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Student
func (Student) TableName() string {
	return "students"
}
