//go:build integration

package repository

import (
	"testing"

	"students-api/internal/database/models"
	"students-api/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// GroupRepositoryTestSuite tests the GroupRepository
type GroupRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GroupRepository
	fx            fixtures
}

// SetupSuite runs before all tests in the suite
func (suite *GroupRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewGroupRepository(suite.baseTestSuite.DB)
	suite.fx = fixtures{s: &suite.Suite, base: suite.baseTestSuite}
}

// TearDownSuite runs after all tests in the suite
func (suite *GroupRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *GroupRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *GroupRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateBatch tests inserting several groups at once
func (suite *GroupRepositoryTestSuite) TestCreateBatch() {
	groups := []models.Group{{Name: "AB-10"}, {Name: "CD-20"}, {Name: "EF-30"}}

	err := suite.repo.CreateBatch(groups)

	suite.NoError(err)
	for _, g := range groups {
		suite.NotZero(g.ID)
	}

	var all []models.Group
	suite.NoError(suite.baseTestSuite.DB.Order("id").Find(&all).Error)
	suite.Len(all, 3)
	suite.Equal("AB-10", all[0].Name)
}

// TestCreateBatchEmpty tests that an empty batch is a no-op
func (suite *GroupRepositoryTestSuite) TestCreateBatchEmpty() {
	suite.NoError(suite.repo.CreateBatch(nil))
}

// TestCreateBatchDuplicateName tests the unique name constraint
func (suite *GroupRepositoryTestSuite) TestCreateBatchDuplicateName() {
	suite.fx.group("AB-10")

	err := suite.repo.CreateBatch([]models.Group{{Name: "AB-10"}})

	suite.Error(err)
}

// TestGetWithFewerOrEqualStudents tests filtering and ordering by member count
func (suite *GroupRepositoryTestSuite) TestGetWithFewerOrEqualStudents() {
	big := suite.fx.group("AA-11")
	small := suite.fx.group("BB-22")
	suite.fx.group("CC-33")

	for i := 0; i < 3; i++ {
		suite.fx.student("Big", string(rune('A'+i)), big.ID)
	}
	suite.fx.student("Small", "One", small.ID)

	rows, err := suite.repo.GetWithFewerOrEqualStudents(3)
	suite.NoError(err)
	suite.Equal([]models.GroupStudentCount{
		{Name: "AA-11", StudentCount: 3},
		{Name: "BB-22", StudentCount: 1},
		{Name: "CC-33", StudentCount: 0},
	}, rows)

	rows, err = suite.repo.GetWithFewerOrEqualStudents(1)
	suite.NoError(err)
	suite.Len(rows, 2)
	suite.Equal("BB-22", rows[0].Name)

	rows, err = suite.repo.GetWithFewerOrEqualStudents(-1)
	suite.NoError(err)
	suite.Empty(rows)
}

// TestGroupRepositoryTestSuite runs the test suite
func TestGroupRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GroupRepositoryTestSuite))
}
