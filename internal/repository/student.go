package repository

import (
	"students-api/internal/database/models"

	"gorm.io/gorm"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *gorm.DB
}

// Ensure StudentRepository implements StudentRepositoryInterface
var _ StudentRepositoryInterface = (*StudentRepository)(nil)

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a student and fills in its ID
func (r *StudentRepository) Create(student *models.Student) error {
	return r.db.Create(student).Error
}

// CreateBatch inserts students and fills in their IDs
func (r *StudentRepository) CreateBatch(students []models.Student) error {
	if len(students) == 0 {
		return nil
	}
	return r.db.CreateInBatches(students, batchSize).Error
}

// GetByID retrieves a student with its group
func (r *StudentRepository) GetByID(id int) (*models.Student, error) {
	var student models.Student
	err := r.db.Preload("Group").First(&student, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetIDs returns every student ID in ascending order
func (r *StudentRepository) GetIDs() ([]int, error) {
	ids := []int{}
	if err := r.db.Model(&models.Student{}).Order("id ASC").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// GetAllWithCourseCount lists every student with its group name and number of
// enrollments. Students without enrollments have a count of 0.
func (r *StudentRepository) GetAllWithCourseCount() ([]models.StudentCourseCount, error) {
	rows := []models.StudentCourseCount{}
	err := r.db.Model(&models.Student{}).
		Select("students.id, students.first_name, students.last_name, groups.name AS group_name, COUNT(student_courses.id) AS course_count").
		Joins("JOIN groups ON groups.id = students.group_id").
		Joins("LEFT JOIN student_courses ON student_courses.student_id = students.id").
		Group("students.id, groups.name").
		Order("students.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetCourseNames returns the names of the courses a student is enrolled in
func (r *StudentRepository) GetCourseNames(studentID int) ([]string, error) {
	names := []string{}
	err := r.db.Model(&models.Course{}).
		Joins("JOIN student_courses ON student_courses.course_id = courses.id").
		Where("student_courses.student_id = ?", studentID).
		Order("courses.name ASC").
		Pluck("courses.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// GetByCourseName lists students enrolled in any course whose name contains
// courseName, case-insensitively, ordered by course name.
func (r *StudentRepository) GetByCourseName(courseName string) ([]models.StudentCourseMatch, error) {
	rows := []models.StudentCourseMatch{}
	err := r.db.Model(&models.Student{}).
		Select("students.id, students.first_name, students.last_name, groups.name AS group_name, courses.name AS course_name").
		Joins("JOIN student_courses ON student_courses.student_id = students.id").
		Joins("JOIN courses ON courses.id = student_courses.course_id").
		Joins("JOIN groups ON groups.id = students.group_id").
		Where("courses.name ILIKE ?", containsPattern(courseName)).
		Order("courses.name ASC, students.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes a student and returns the number of rows removed.
// Enrollments of the student cascade.
func (r *StudentRepository) Delete(id int) (int64, error) {
	result := r.db.Delete(&models.Student{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
