package repository

import (
	"students-api/internal/database/models"

	"gorm.io/gorm"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *gorm.DB
}

// Ensure CourseRepository implements CourseRepositoryInterface
var _ CourseRepositoryInterface = (*CourseRepository)(nil)

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// CreateBatch inserts courses and fills in their IDs
func (r *CourseRepository) CreateBatch(courses []models.Course) error {
	if len(courses) == 0 {
		return nil
	}
	return r.db.CreateInBatches(courses, batchSize).Error
}
