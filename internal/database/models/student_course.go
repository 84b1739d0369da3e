package models

// StudentCourse is an enrollment: the membership of one student in one course.
// The (student, course) pair is unique; both foreign keys cascade on delete
// and are declared on the Student and Course side.
type StudentCourse struct {
	ID        int `json:"id" gorm:"primaryKey"`
	StudentID int `json:"student_id" gorm:"not null;uniqueIndex:idx_student_course,priority:1"`
	CourseID  int `json:"course_id" gorm:"not null;uniqueIndex:idx_student_course,priority:2;index"`
}

// TableName returns the table name for StudentCourse
func (StudentCourse) TableName() string {
	return "student_courses"
}
