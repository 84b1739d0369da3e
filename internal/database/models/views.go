package models

// Read models returned by join/aggregate queries. They are not tables.

// GroupStudentCount is a group together with its current number of members
type GroupStudentCount struct {
	Name         string `gorm:"column:name"`
	StudentCount int    `gorm:"column:student_count"`
}

// StudentCourseCount is a student row with its group name and number of enrollments
type StudentCourseCount struct {
	ID          int    `gorm:"column:id"`
	FirstName   string `gorm:"column:first_name"`
	LastName    string `gorm:"column:last_name"`
	GroupName   string `gorm:"column:group_name"`
	CourseCount int    `gorm:"column:course_count"`
}

// StudentCourseMatch is a student enrolled in a course whose name matched a search
type StudentCourseMatch struct {
	ID         int    `gorm:"column:id"`
	FirstName  string `gorm:"column:first_name"`
	LastName   string `gorm:"column:last_name"`
	GroupName  string `gorm:"column:group_name"`
	CourseName string `gorm:"column:course_name"`
}
