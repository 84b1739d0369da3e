package repository

import (
	"students-api/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	CreateBatch(groups []models.Group) error
	GetWithFewerOrEqualStudents(n int) ([]models.GroupStudentCount, error)
}

// StudentRepositoryInterface defines the interface for student repository operations
type StudentRepositoryInterface interface {
	Create(student *models.Student) error
	CreateBatch(students []models.Student) error
	GetByID(id int) (*models.Student, error)
	GetIDs() ([]int, error)
	GetAllWithCourseCount() ([]models.StudentCourseCount, error)
	GetCourseNames(studentID int) ([]string, error)
	GetByCourseName(courseName string) ([]models.StudentCourseMatch, error)
	Delete(id int) (int64, error)
}

// CourseRepositoryInterface defines the interface for course repository operations
type CourseRepositoryInterface interface {
	CreateBatch(courses []models.Course) error
}

// StudentCourseRepositoryInterface defines the interface for enrollment repository operations
type StudentCourseRepositoryInterface interface {
	CreateBatch(enrollments []models.StudentCourse) error
	CreateByNames(firstName, lastName, courseName string) (int, error)
	Delete(studentID, courseID int) (int64, error)
}
