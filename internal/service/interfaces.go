package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// StudentServiceInterface defines the interface for student service
type StudentServiceInterface interface {
	ListStudents() (*StudentListResponse, error)
	GetStudent(id int) (*StudentDetailResponse, error)
	AddStudent(req *AddStudentRequest) (*AddStudentResponse, error)
	DeleteStudent(id int) (*DeleteStudentResponse, error)
	FindStudentsFromCourse(courseName string) (*CourseStudentListResponse, error)
	AddStudentToCourse(req *AddStudentToCourseRequest) (*EnrollmentResponse, error)
	RemoveStudentFromCourse(req *RemoveStudentFromCourseRequest) (*MessageResponse, error)
}

// GroupServiceInterface defines the interface for group service
type GroupServiceInterface interface {
	GetWithFewerOrEqualStudents(n int) (*GroupCountListResponse, error)
}
