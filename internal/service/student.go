package service

import (
	"errors"
	"fmt"
	"strings"

	"students-api/internal/database/models"
	apperrors "students-api/internal/errors"
	"students-api/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// StudentService handles business logic for students and their enrollments
type StudentService struct {
	repo           repository.StudentRepositoryInterface
	enrollmentRepo repository.StudentCourseRepositoryInterface
	validator      *validator.Validate
}

// NewStudentService creates a new student service
func NewStudentService(repo repository.StudentRepositoryInterface, enrollmentRepo repository.StudentCourseRepositoryInterface, validator *validator.Validate) *StudentService {
	return &StudentService{
		repo:           repo,
		enrollmentRepo: enrollmentRepo,
		validator:      validator,
	}
}

// AddStudentRequest represents the request to create a student
type AddStudentRequest struct {
	FirstName string `json:"first_name" form:"first_name" validate:"required,max=255" example:"Name"`
	LastName  string `json:"last_name" form:"last_name" validate:"required,max=255" example:"Surname"`
	GroupID   int    `json:"group_id" form:"group_id" validate:"required,min=1" example:"1"`
}

// AddStudentToCourseRequest represents the request to enroll a student by name
type AddStudentToCourseRequest struct {
	StudentName string `json:"student_name" form:"student_name" validate:"required" example:"First Last"`
	CourseName  string `json:"course_name" form:"course_name" validate:"required" example:"Chemistry"`
}

// RemoveStudentFromCourseRequest represents the request to unenroll a student
type RemoveStudentFromCourseRequest struct {
	StudentID int `json:"student_id" form:"student_id" validate:"required,min=1" example:"1"`
	CourseID  int `json:"course_id" form:"course_id" validate:"required,min=1" example:"3"`
}

// StudentSummary is a student row of the student list
type StudentSummary struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	GroupName   string `json:"group_name"`
	CourseCount int    `json:"course_count"`
}

// StudentListResponse represents the list of all students
type StudentListResponse struct {
	Students []StudentSummary `json:"students"`
}

// StudentDetail is a student with the names of its courses
type StudentDetail struct {
	ID        int      `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	GroupID   int      `json:"group_id"`
	GroupName string   `json:"group_name"`
	Courses   []string `json:"courses"`
}

// StudentDetailResponse represents a single student
type StudentDetailResponse struct {
	Student StudentDetail `json:"student"`
}

// CourseStudent is a student matched by course name
type CourseStudent struct {
	ID         int    `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	GroupName  string `json:"group_name"`
	CourseName string `json:"course_name"`
}

// CourseStudentListResponse represents the students of matching courses
type CourseStudentListResponse struct {
	Students []CourseStudent `json:"students"`
}

// AddStudentResponse carries the ID of a created student
type AddStudentResponse struct {
	ID int `json:"id"`
}

// DeleteStudentResponse carries the ID of a deleted student
type DeleteStudentResponse struct {
	DeletedStudentID int `json:"deleted_student_id"`
}

// EnrollmentResponse carries the ID of a created enrollment
type EnrollmentResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

// MessageResponse is a plain confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

// ListStudents returns every student with its group name and enrollment count
func (s *StudentService) ListStudents() (*StudentListResponse, error) {
	rows, err := s.repo.GetAllWithCourseCount()
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	students := make([]StudentSummary, len(rows))
	for i, r := range rows {
		students[i] = StudentSummary{
			ID:          r.ID,
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			GroupName:   r.GroupName,
			CourseCount: r.CourseCount,
		}
	}
	return &StudentListResponse{Students: students}, nil
}

// GetStudent returns a student and the names of its courses
func (s *StudentService) GetStudent(id int) (*StudentDetailResponse, error) {
	student, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	courses, err := s.repo.GetCourseNames(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courses of student: %w", err)
	}
	if courses == nil {
		courses = []string{}
	}

	detail := StudentDetail{
		ID:        student.ID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		GroupID:   student.GroupID,
		Courses:   courses,
	}
	if student.Group != nil {
		detail.GroupName = student.Group.Name
	}
	return &StudentDetailResponse{Student: detail}, nil
}

// AddStudent creates a student in an existing group
func (s *StudentService) AddStudent(req *AddStudentRequest) (*AddStudentResponse, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", validationError(err))
	}

	student := &models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		GroupID:   req.GroupID,
	}
	if err := s.repo.Create(student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", translateStorageError(err))
	}

	return &AddStudentResponse{ID: student.ID}, nil
}

// DeleteStudent removes a student. Its enrollments are removed with it.
func (s *StudentService) DeleteStudent(id int) (*DeleteStudentResponse, error) {
	removed, err := s.repo.Delete(id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete student: %w", translateStorageError(err))
	}
	if removed == 0 {
		return nil, apperrors.ErrStudentNotFound
	}

	return &DeleteStudentResponse{DeletedStudentID: id}, nil
}

// FindStudentsFromCourse lists students of every course whose name contains courseName
func (s *StudentService) FindStudentsFromCourse(courseName string) (*CourseStudentListResponse, error) {
	rows, err := s.repo.GetByCourseName(courseName)
	if err != nil {
		return nil, fmt.Errorf("failed to find students from course: %w", err)
	}

	students := make([]CourseStudent, len(rows))
	for i, r := range rows {
		students[i] = CourseStudent{
			ID:         r.ID,
			FirstName:  r.FirstName,
			LastName:   r.LastName,
			GroupName:  r.GroupName,
			CourseName: r.CourseName,
		}
	}
	return &CourseStudentListResponse{Students: students}, nil
}

// AddStudentToCourse enrolls a student, given as "First Last", in the course whose
// name contains the course name. Both must resolve to exactly one row.
func (s *StudentService) AddStudentToCourse(req *AddStudentToCourseRequest) (*EnrollmentResponse, error) {
	req.StudentName = strings.TrimSpace(req.StudentName)
	req.CourseName = strings.TrimSpace(req.CourseName)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", validationError(err))
	}

	tokens := strings.Fields(req.StudentName)
	if len(tokens) != 2 {
		return nil, apperrors.ErrStudentNameTokens
	}

	id, err := s.enrollmentRepo.CreateByNames(tokens[0], tokens[1], req.CourseName)
	if err != nil {
		return nil, fmt.Errorf("failed to add student to course: %w", translateStorageError(err))
	}

	return &EnrollmentResponse{ID: id, Message: "student added to the course"}, nil
}

// RemoveStudentFromCourse deletes the enrollment of a student in a course
func (s *StudentService) RemoveStudentFromCourse(req *RemoveStudentFromCourseRequest) (*MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", validationError(err))
	}

	removed, err := s.enrollmentRepo.Delete(req.StudentID, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove student from course: %w", translateStorageError(err))
	}
	if removed == 0 {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	return &MessageResponse{Message: "student removed from the course"}, nil
}
