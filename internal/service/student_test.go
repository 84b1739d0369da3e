package service_test

import (
	"errors"
	"testing"

	"students-api/internal/database/models"
	apperrors "students-api/internal/errors"
	"students-api/internal/mocks"
	"students-api/internal/service"
	"students-api/internal/validation"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type StudentServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockStudentRepo    *mocks.MockStudentRepositoryInterface
	mockEnrollmentRepo *mocks.MockStudentCourseRepositoryInterface
	studentService     *service.StudentService
}

func (suite *StudentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStudentRepo = mocks.NewMockStudentRepositoryInterface(suite.ctrl)
	suite.mockEnrollmentRepo = mocks.NewMockStudentCourseRepositoryInterface(suite.ctrl)
	suite.studentService = service.NewStudentService(suite.mockStudentRepo, suite.mockEnrollmentRepo, validation.New())
}

func (suite *StudentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *StudentServiceTestSuite) TestListStudents_Success() {
	rows := []models.StudentCourseCount{
		{ID: 1, FirstName: "Anna", LastName: "Ford", GroupName: "AB-12", CourseCount: 2},
		{ID: 2, FirstName: "Bob", LastName: "Hayes", GroupName: "CD-34", CourseCount: 0},
	}
	suite.mockStudentRepo.EXPECT().GetAllWithCourseCount().Return(rows, nil)

	resp, err := suite.studentService.ListStudents()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Students, 2)
	assert.Equal(suite.T(), service.StudentSummary{ID: 1, FirstName: "Anna", LastName: "Ford", GroupName: "AB-12", CourseCount: 2}, resp.Students[0])
	assert.Equal(suite.T(), 0, resp.Students[1].CourseCount)
}

func (suite *StudentServiceTestSuite) TestListStudents_Empty() {
	suite.mockStudentRepo.EXPECT().GetAllWithCourseCount().Return(nil, nil)

	resp, err := suite.studentService.ListStudents()

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp.Students)
	assert.Empty(suite.T(), resp.Students)
}

func (suite *StudentServiceTestSuite) TestListStudents_RepositoryError() {
	suite.mockStudentRepo.EXPECT().GetAllWithCourseCount().Return(nil, errors.New("connection refused"))

	resp, err := suite.studentService.ListStudents()

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to list students")
}

func (suite *StudentServiceTestSuite) TestGetStudent_Success() {
	student := &models.Student{ID: 7, FirstName: "Name", LastName: "Surname", GroupID: 1, Group: &models.Group{ID: 1, Name: "AB-12"}}
	suite.mockStudentRepo.EXPECT().GetByID(7).Return(student, nil)
	suite.mockStudentRepo.EXPECT().GetCourseNames(7).Return([]string{"Chemistry"}, nil)

	resp, err := suite.studentService.GetStudent(7)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.StudentDetail{
		ID:        7,
		FirstName: "Name",
		LastName:  "Surname",
		GroupID:   1,
		GroupName: "AB-12",
		Courses:   []string{"Chemistry"},
	}, resp.Student)
}

func (suite *StudentServiceTestSuite) TestGetStudent_NoCourses() {
	student := &models.Student{ID: 7, FirstName: "Name", LastName: "Surname", GroupID: 1}
	suite.mockStudentRepo.EXPECT().GetByID(7).Return(student, nil)
	suite.mockStudentRepo.EXPECT().GetCourseNames(7).Return(nil, nil)

	resp, err := suite.studentService.GetStudent(7)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp.Student.Courses)
	assert.Empty(suite.T(), resp.Student.Courses)
	assert.Empty(suite.T(), resp.Student.GroupName)
}

func (suite *StudentServiceTestSuite) TestGetStudent_NotFound() {
	suite.mockStudentRepo.EXPECT().GetByID(99).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.studentService.GetStudent(99)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrStudentNotFound)
}

func (suite *StudentServiceTestSuite) TestGetStudent_CoursesError() {
	suite.mockStudentRepo.EXPECT().GetByID(7).Return(&models.Student{ID: 7}, nil)
	suite.mockStudentRepo.EXPECT().GetCourseNames(7).Return(nil, errors.New("boom"))

	_, err := suite.studentService.GetStudent(7)

	assert.Error(suite.T(), err)
	assert.False(suite.T(), apperrors.IsNotFound(err))
}

func (suite *StudentServiceTestSuite) TestAddStudent_Success() {
	suite.mockStudentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *models.Student) error {
		assert.Equal(suite.T(), "Name", s.FirstName)
		assert.Equal(suite.T(), "Surname", s.LastName)
		assert.Equal(suite.T(), 1, s.GroupID)
		s.ID = 201
		return nil
	})

	resp, err := suite.studentService.AddStudent(&service.AddStudentRequest{FirstName: " Name ", LastName: "Surname", GroupID: 1})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 201, resp.ID)
}

func (suite *StudentServiceTestSuite) TestAddStudent_ValidationError() {
	cases := map[string]service.AddStudentRequest{
		"missing first name": {LastName: "Surname", GroupID: 1},
		"missing last name":  {FirstName: "Name", GroupID: 1},
		"missing group":      {FirstName: "Name", LastName: "Surname"},
		"negative group":     {FirstName: "Name", LastName: "Surname", GroupID: -3},
	}
	for name, req := range cases {
		suite.Run(name, func() {
			resp, err := suite.studentService.AddStudent(&req)

			assert.Nil(suite.T(), resp)
			assert.True(suite.T(), apperrors.IsValidation(err), "got %v", err)
		})
	}
}

func (suite *StudentServiceTestSuite) TestAddStudent_BlankNames() {
	cases := map[string]service.AddStudentRequest{
		"blank first name": {FirstName: "   ", LastName: "Surname", GroupID: 1},
		"blank last name":  {FirstName: "Name", LastName: "\t\n", GroupID: 1},
	}
	for name, req := range cases {
		suite.Run(name, func() {
			resp, err := suite.studentService.AddStudent(&req)

			assert.Nil(suite.T(), resp)
			var vErr *apperrors.ValidationError
			assert.ErrorAs(suite.T(), err, &vErr)
			assert.Contains(suite.T(), []string{"first_name", "last_name"}, vErr.Field)
		})
	}
}

func (suite *StudentServiceTestSuite) TestAddStudent_ValidationErrorNamesField() {
	_, err := suite.studentService.AddStudent(&service.AddStudentRequest{FirstName: "Name", LastName: "Surname"})

	var vErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &vErr)
	assert.Equal(suite.T(), "group_id", vErr.Field)
}

func (suite *StudentServiceTestSuite) TestAddStudent_ForeignKeyViolation() {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "fk_students_group", Message: "insert or update on table \"students\" violates foreign key constraint"}
	suite.mockStudentRepo.EXPECT().Create(gomock.Any()).Return(pgErr)

	resp, err := suite.studentService.AddStudent(&service.AddStudentRequest{FirstName: "Name", LastName: "Surname", GroupID: 999})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsConstraint(err))
	assert.True(suite.T(), apperrors.IsBadRequest(err))
}

func (suite *StudentServiceTestSuite) TestAddStudent_UnknownGroup() {
	pgErr := &pgconn.PgError{Code: "23503", TableName: "students", ConstraintName: "fk_students_group", Message: "insert or update on table \"students\" violates foreign key constraint"}
	suite.mockStudentRepo.EXPECT().Create(gomock.Any()).Return(pgErr)

	_, err := suite.studentService.AddStudent(&service.AddStudentRequest{FirstName: "Name", LastName: "Surname", GroupID: 999})

	assert.ErrorIs(suite.T(), err, apperrors.ErrGroupNotFound)
	assert.True(suite.T(), apperrors.IsBadRequest(err))
}

func (suite *StudentServiceTestSuite) TestAddStudent_ConnectionError() {
	suite.mockStudentRepo.EXPECT().Create(gomock.Any()).Return(&pgconn.PgError{Code: "08006", Message: "connection failure"})

	_, err := suite.studentService.AddStudent(&service.AddStudentRequest{FirstName: "Name", LastName: "Surname", GroupID: 1})

	assert.Error(suite.T(), err)
	assert.False(suite.T(), apperrors.IsBadRequest(err))
}

func (suite *StudentServiceTestSuite) TestDeleteStudent_Success() {
	suite.mockStudentRepo.EXPECT().Delete(5).Return(int64(1), nil)

	resp, err := suite.studentService.DeleteStudent(5)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, resp.DeletedStudentID)
}

func (suite *StudentServiceTestSuite) TestDeleteStudent_NotFound() {
	suite.mockStudentRepo.EXPECT().Delete(5).Return(int64(0), nil)

	resp, err := suite.studentService.DeleteStudent(5)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrStudentNotFound)
}

func (suite *StudentServiceTestSuite) TestDeleteStudent_ConstraintError() {
	suite.mockStudentRepo.EXPECT().Delete(5).Return(int64(0), &pgconn.PgError{Code: "23503", Message: "still referenced"})

	_, err := suite.studentService.DeleteStudent(5)

	assert.True(suite.T(), apperrors.IsConstraint(err))
}

func (suite *StudentServiceTestSuite) TestFindStudentsFromCourse() {
	rows := []models.StudentCourseMatch{
		{ID: 3, FirstName: "Anna", LastName: "Ford", GroupName: "AB-12", CourseName: "Chemistry"},
	}
	suite.mockStudentRepo.EXPECT().GetByCourseName("chem").Return(rows, nil)

	resp, err := suite.studentService.FindStudentsFromCourse("chem")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []service.CourseStudent{
		{ID: 3, FirstName: "Anna", LastName: "Ford", GroupName: "AB-12", CourseName: "Chemistry"},
	}, resp.Students)
}

func (suite *StudentServiceTestSuite) TestFindStudentsFromCourse_Error() {
	suite.mockStudentRepo.EXPECT().GetByCourseName("chem").Return(nil, errors.New("boom"))

	resp, err := suite.studentService.FindStudentsFromCourse("chem")

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

func (suite *StudentServiceTestSuite) TestAddStudentToCourse_Success() {
	suite.mockEnrollmentRepo.EXPECT().CreateByNames("First", "Last", "Chemistry").Return(12, nil)

	resp, err := suite.studentService.AddStudentToCourse(&service.AddStudentToCourseRequest{StudentName: "  First \t Last ", CourseName: "Chemistry"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 12, resp.ID)
	assert.Equal(suite.T(), "student added to the course", resp.Message)
}

func (suite *StudentServiceTestSuite) TestAddStudentToCourse_BadNameSplit() {
	for _, name := range []string{"Single", "One Two Three"} {
		resp, err := suite.studentService.AddStudentToCourse(&service.AddStudentToCourseRequest{StudentName: name, CourseName: "Art"})

		assert.Nil(suite.T(), resp)
		assert.ErrorIs(suite.T(), err, apperrors.ErrStudentNameTokens)
	}
}

func (suite *StudentServiceTestSuite) TestAddStudentToCourse_MissingFields() {
	_, err := suite.studentService.AddStudentToCourse(&service.AddStudentToCourseRequest{StudentName: "First Last"})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *StudentServiceTestSuite) TestAddStudentToCourse_BlankFields() {
	cases := map[string]service.AddStudentToCourseRequest{
		"blank student": {StudentName: "  ", CourseName: "Art"},
		"blank course":  {StudentName: "First Last", CourseName: " \t "},
	}
	for name, req := range cases {
		suite.Run(name, func() {
			resp, err := suite.studentService.AddStudentToCourse(&req)

			assert.Nil(suite.T(), resp)
			assert.True(suite.T(), apperrors.IsValidation(err), "got %v", err)
		})
	}
}

func (suite *StudentServiceTestSuite) TestAddStudentToCourse_AmbiguousCourse() {
	suite.mockEnrollmentRepo.EXPECT().CreateByNames("First", "Last", "a").
		Return(0, &pgconn.PgError{Code: "21000", Message: "more than one row returned by a subquery used as an expression"})

	resp, err := suite.studentService.AddStudentToCourse(&service.AddStudentToCourseRequest{StudentName: "First Last", CourseName: "a"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAmbiguousName)
	assert.True(suite.T(), apperrors.IsBadRequest(err))
}

func (suite *StudentServiceTestSuite) TestAddStudentToCourse_Duplicate() {
	suite.mockEnrollmentRepo.EXPECT().CreateByNames("First", "Last", "Art").
		Return(0, &pgconn.PgError{Code: "23505", TableName: "student_courses", ConstraintName: "idx_student_course", Message: "duplicate key value"})

	_, err := suite.studentService.AddStudentToCourse(&service.AddStudentToCourseRequest{StudentName: "First Last", CourseName: "Art"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrEnrollmentExists)
	var cErr *apperrors.ConstraintError
	assert.ErrorAs(suite.T(), err, &cErr)
	assert.Equal(suite.T(), "idx_student_course", cErr.Constraint)
}

func (suite *StudentServiceTestSuite) TestAddStudentToCourse_UnknownStudent() {
	suite.mockEnrollmentRepo.EXPECT().CreateByNames("No", "Body", "Art").
		Return(0, &pgconn.PgError{Code: "23502", Message: "null value in column \"student_id\""})

	_, err := suite.studentService.AddStudentToCourse(&service.AddStudentToCourseRequest{StudentName: "No Body", CourseName: "Art"})

	assert.True(suite.T(), apperrors.IsConstraint(err))
}

func (suite *StudentServiceTestSuite) TestRemoveStudentFromCourse_Success() {
	suite.mockEnrollmentRepo.EXPECT().Delete(1, 3).Return(int64(1), nil)

	resp, err := suite.studentService.RemoveStudentFromCourse(&service.RemoveStudentFromCourseRequest{StudentID: 1, CourseID: 3})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "student removed from the course", resp.Message)
}

func (suite *StudentServiceTestSuite) TestRemoveStudentFromCourse_NotEnrolled() {
	suite.mockEnrollmentRepo.EXPECT().Delete(1, 3).Return(int64(0), nil)

	_, err := suite.studentService.RemoveStudentFromCourse(&service.RemoveStudentFromCourseRequest{StudentID: 1, CourseID: 3})

	assert.ErrorIs(suite.T(), err, apperrors.ErrEnrollmentNotFound)
}

func (suite *StudentServiceTestSuite) TestRemoveStudentFromCourse_ValidationError() {
	_, err := suite.studentService.RemoveStudentFromCourse(&service.RemoveStudentFromCourseRequest{StudentID: 1})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func TestStudentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StudentServiceTestSuite))
}
