package handlers

import (
	"net/http"

	"students-api/internal/service"

	"github.com/gin-gonic/gin"
)

// StudentHandler handles HTTP requests for students and enrollments
type StudentHandler struct {
	service service.StudentServiceInterface
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(service service.StudentServiceInterface) *StudentHandler {
	return &StudentHandler{service: service}
}

// ListStudents lists every student
// @Summary List students
// @Description List all students with their group name and number of courses
// @Tags students
// @Produce json
// @Success 200 {object} service.StudentListResponse "Successfully retrieved students"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /students/ [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.service.ListStudents()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

// GetStudent retrieves a student by ID
// @Summary Get student by ID
// @Description Get a student with the names of the courses it attends
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} service.StudentDetailResponse "Successfully retrieved student"
// @Failure 400 {object} ErrorResponse "Invalid student ID"
// @Failure 404 {object} ErrorResponse "Student not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /students/{id}/ [get]
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid student ID"})
		return
	}

	student, err := h.service.GetStudent(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// DeleteStudent deletes a student
// @Summary Delete student
// @Description Delete a student by ID together with its enrollments
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} service.DeleteStudentResponse "Successfully deleted student"
// @Failure 400 {object} ErrorResponse "Invalid student ID or constraint violation"
// @Failure 404 {object} ErrorResponse "Student not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /students/{id}/ [delete]
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid student ID"})
		return
	}

	resp, err := h.service.DeleteStudent(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AddStudent creates a student
// @Summary Create a student
// @Description Create a student in an existing group. Accepts form fields or a JSON body.
// @Tags students
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param first_name formData string true "First name"
// @Param last_name formData string true "Last name"
// @Param group_id formData int true "Group ID"
// @Success 201 {object} service.AddStudentResponse "Successfully created student"
// @Failure 400 {object} ErrorResponse "Invalid fields or constraint violation"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /students/add/ [post]
func (h *StudentHandler) AddStudent(c *gin.Context) {
	var req service.AddStudentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.AddStudent(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetStudentsFromCourse lists students of matching courses
// @Summary Find students by course
// @Description List students enrolled in any course whose name contains course_name, case-insensitively
// @Tags students
// @Produce json
// @Param course_name path string true "Course name or part of it"
// @Success 200 {object} service.CourseStudentListResponse "Successfully retrieved students"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /students/from_course/{course_name}/ [get]
func (h *StudentHandler) GetStudentsFromCourse(c *gin.Context) {
	students, err := h.service.FindStudentsFromCourse(c.Param("course_name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

// AddStudentToCourse enrolls a student in a course
// @Summary Add student to course
// @Description Enroll the student named "First Last" in the first course whose name contains course_name
// @Tags enrollments
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param student_name formData string true "First and last name"
// @Param course_name formData string true "Course name or part of it"
// @Success 201 {object} service.EnrollmentResponse "Student added to the course"
// @Failure 400 {object} ErrorResponse "Bad name, unknown student or course, or duplicate enrollment"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /students/add_course/ [post]
func (h *StudentHandler) AddStudentToCourse(c *gin.Context) {
	var req service.AddStudentToCourseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.AddStudentToCourse(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// RemoveStudentFromCourse unenrolls a student
// @Summary Remove student from course
// @Description Delete the enrollment of a student in a course. Fields are read from the query string or a JSON body.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param student_id query int true "Student ID"
// @Param course_id query int true "Course ID"
// @Success 200 {object} service.MessageResponse "Student removed from the course"
// @Failure 400 {object} ErrorResponse "Invalid fields"
// @Failure 404 {object} ErrorResponse "Student not in the course"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /students/remove_course/ [delete]
func (h *StudentHandler) RemoveStudentFromCourse(c *gin.Context) {
	var req service.RemoveStudentFromCourseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.RemoveStudentFromCourse(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
