package repository

import (
	"students-api/internal/database/models"

	"gorm.io/gorm"
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *gorm.DB
}

// Ensure GroupRepository implements GroupRepositoryInterface
var _ GroupRepositoryInterface = (*GroupRepository)(nil)

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// CreateBatch inserts groups and fills in their IDs
func (r *GroupRepository) CreateBatch(groups []models.Group) error {
	if len(groups) == 0 {
		return nil
	}
	return r.db.CreateInBatches(groups, batchSize).Error
}

// GetWithFewerOrEqualStudents returns groups having at most n students with their
// member count, largest first. Empty groups are included.
func (r *GroupRepository) GetWithFewerOrEqualStudents(n int) ([]models.GroupStudentCount, error) {
	rows := []models.GroupStudentCount{}
	err := r.db.Model(&models.Group{}).
		Select("groups.name AS name, COUNT(students.id) AS student_count").
		Joins("LEFT JOIN students ON students.group_id = groups.id").
		Group("groups.id, groups.name").
		Having("COUNT(students.id) <= ?", n).
		Order("student_count DESC, groups.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
