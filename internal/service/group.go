package service

import (
	"fmt"

	apperrors "students-api/internal/errors"
	"students-api/internal/repository"
)

// GroupService handles business logic for groups
type GroupService struct {
	repo repository.GroupRepositoryInterface
}

// NewGroupService creates a new group service
func NewGroupService(repo repository.GroupRepositoryInterface) *GroupService {
	return &GroupService{repo: repo}
}

// GroupCount is a group name with its number of students
type GroupCount struct {
	Name         string `json:"name"`
	StudentCount int    `json:"student_count"`
}

// GroupCountListResponse represents groups filtered by size
type GroupCountListResponse struct {
	Groups []GroupCount `json:"groups"`
}

// GetWithFewerOrEqualStudents returns groups having at most n students, largest first
func (s *GroupService) GetWithFewerOrEqualStudents(n int) (*GroupCountListResponse, error) {
	if n < 0 {
		return nil, apperrors.ErrNegativeGroupLimit
	}

	rows, err := s.repo.GetWithFewerOrEqualStudents(n)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}

	groups := make([]GroupCount, len(rows))
	for i, r := range rows {
		groups[i] = GroupCount{Name: r.Name, StudentCount: r.StudentCount}
	}
	return &GroupCountListResponse{Groups: groups}, nil
}
