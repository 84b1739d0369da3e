package models

// Course is an entry of the course catalogue
type Course struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:255" validate:"required,max=255"`
	Description string `json:"description" gorm:"type:text;not null"`

	// Relationships
	StudentCourses []StudentCourse `json:"student_courses,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Course
func (Course) TableName() string {
	return "courses"
}
