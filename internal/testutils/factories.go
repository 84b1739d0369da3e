package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"students-api/internal/database/models"
)

var groupSeq atomic.Int64

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a test Group with a unique XX-dd name
func (f *GroupFactory) Create() *models.Group {
	n := groupSeq.Add(1)
	first := rune('A' + (n/90)%26)
	second := rune('A' + (n/(90*26))%26)
	return &models.Group{
		Name:      fmt.Sprintf("%c%c-%d", first, second, 10+n%90),
		CreatedAt: time.Now(),
	}
}

// WithName sets a custom name for the group
func (f *GroupFactory) WithName(name string) *models.Group {
	group := f.Create()
	group.Name = name
	return group
}

// StudentFactory provides methods to create test Student data
type StudentFactory struct{}

// NewStudentFactory creates a new StudentFactory
func NewStudentFactory() *StudentFactory {
	return &StudentFactory{}
}

// Create creates a test Student with default values
func (f *StudentFactory) Create() *models.Student {
	return &models.Student{
		FirstName: "John",
		LastName:  "Doe",
		GroupID:   1,
		CreatedAt: time.Now(),
	}
}

// WithGroup creates a test Student in the given group
func (f *StudentFactory) WithGroup(groupID int) *models.Student {
	student := f.Create()
	student.GroupID = groupID
	return student
}

// WithName creates a test Student with the given name in the given group
func (f *StudentFactory) WithName(firstName, lastName string, groupID int) *models.Student {
	student := f.WithGroup(groupID)
	student.FirstName = firstName
	student.LastName = lastName
	return student
}

// CourseFactory provides methods to create test Course data
type CourseFactory struct{}

// NewCourseFactory creates a new CourseFactory
func NewCourseFactory() *CourseFactory {
	return &CourseFactory{}
}

// Create creates a test Course with default values
func (f *CourseFactory) Create() *models.Course {
	return f.WithName("Chemistry")
}

// WithName creates a test Course with the given name
func (f *CourseFactory) WithName(name string) *models.Course {
	return &models.Course{
		Name:        name,
		Description: "Everything there is to know about " + name,
	}
}

// StudentCourseFactory provides methods to create test enrollment data
type StudentCourseFactory struct{}

// NewStudentCourseFactory creates a new StudentCourseFactory
func NewStudentCourseFactory() *StudentCourseFactory {
	return &StudentCourseFactory{}
}

// Create creates a test enrollment of a student in a course
func (f *StudentCourseFactory) Create(studentID, courseID int) *models.StudentCourse {
	return &models.StudentCourse{
		StudentID: studentID,
		CourseID:  courseID,
	}
}
