//go:build integration

package repository

import (
	"students-api/internal/database/models"
	"students-api/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// fixtures inserts rows directly via gorm for repository tests
type fixtures struct {
	s    *suite.Suite
	base *testutils.BaseTestSuite
}

func (f fixtures) group(name string) *models.Group {
	g := testutils.NewGroupFactory().WithName(name)
	f.s.Require().NoError(f.base.DB.Create(g).Error)
	return g
}

func (f fixtures) student(first, last string, groupID int) *models.Student {
	st := testutils.NewStudentFactory().WithName(first, last, groupID)
	f.s.Require().NoError(f.base.DB.Create(st).Error)
	return st
}

func (f fixtures) course(name string) *models.Course {
	c := testutils.NewCourseFactory().WithName(name)
	f.s.Require().NoError(f.base.DB.Create(c).Error)
	return c
}

func (f fixtures) enroll(studentID, courseID int) *models.StudentCourse {
	e := testutils.NewStudentCourseFactory().Create(studentID, courseID)
	f.s.Require().NoError(f.base.DB.Create(e).Error)
	return e
}
