package repository

import (
	"students-api/internal/database/models"

	"gorm.io/gorm"
)

// insertEnrollmentByNames resolves the student by exact, case-insensitive first
// and last name and the course by case-insensitive substring. An unresolved side
// yields NULL, which the NOT NULL constraint rejects (23502); a side matching
// several rows fails the scalar subquery (21000).
const insertEnrollmentByNames = `
INSERT INTO student_courses (student_id, course_id)
VALUES (
	(SELECT id FROM students WHERE LOWER(first_name) = LOWER(?) AND LOWER(last_name) = LOWER(?)),
	(SELECT id FROM courses WHERE name ILIKE ?)
)
RETURNING id`

// StudentCourseRepository handles database operations for enrollments
type StudentCourseRepository struct {
	db *gorm.DB
}

// Ensure StudentCourseRepository implements StudentCourseRepositoryInterface
var _ StudentCourseRepositoryInterface = (*StudentCourseRepository)(nil)

// NewStudentCourseRepository creates a new enrollment repository
func NewStudentCourseRepository(db *gorm.DB) *StudentCourseRepository {
	return &StudentCourseRepository{db: db}
}

// CreateBatch inserts enrollments and fills in their IDs
func (r *StudentCourseRepository) CreateBatch(enrollments []models.StudentCourse) error {
	if len(enrollments) == 0 {
		return nil
	}
	return r.db.CreateInBatches(enrollments, batchSize).Error
}

// CreateByNames enrolls the named student in the matching course and returns the
// new enrollment ID.
func (r *StudentCourseRepository) CreateByNames(firstName, lastName, courseName string) (int, error) {
	var id int
	err := r.db.Raw(insertEnrollmentByNames, firstName, lastName, containsPattern(courseName)).Scan(&id).Error
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Delete removes the enrollment of a student in a course and returns the number
// of rows removed.
func (r *StudentCourseRepository) Delete(studentID, courseID int) (int64, error) {
	result := r.db.Where("student_id = ? AND course_id = ?", studentID, courseID).Delete(&models.StudentCourse{})
	return result.RowsAffected, result.Error
}
