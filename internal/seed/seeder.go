package seed

import (
	"context"
	"fmt"
	"time"

	"students-api/internal/database"
	"students-api/internal/database/models"
	apperrors "students-api/internal/errors"
	"students-api/internal/logger"
	"students-api/internal/metrics"
	"students-api/internal/repository"
	"students-api/internal/validation"

	"gorm.io/gorm"
)

// Sizes configures how much data a seed run produces
type Sizes struct {
	Students int
	Groups   int
	Courses  int
}

// DefaultSizes returns the calibrated sizing: 200 students in 10 groups, 10 courses
func DefaultSizes() Sizes {
	return Sizes{Students: 200, Groups: 10, Courses: 10}
}

// Result reports the rows written by a seed run
type Result struct {
	Groups      int
	Courses     int
	Students    int
	Enrollments int
	// Dropped is the number of generated students left without a group
	Dropped int
}

// Rows returns the row counts keyed by table name
func (r *Result) Rows() map[string]int {
	return map[string]int{
		"groups":          r.Groups,
		"courses":         r.Courses,
		"students":        r.Students,
		"student_courses": r.Enrollments,
	}
}

// Seeder drops the schema and fills it with generated data
type Seeder struct {
	db        *gorm.DB
	generator *Generator
	sizes     Sizes
	capacity  int
	metrics   metrics.Recorder
	log       *logger.Logger
}

// Option customizes a Seeder
type Option func(*Seeder)

// WithMetrics reports seed runs to r
func WithMetrics(r metrics.Recorder) Option {
	return func(s *Seeder) { s.metrics = r }
}

// WithCapacity overrides the group capacity used by the assignment engine
func WithCapacity(capacity int) Option {
	return func(s *Seeder) { s.capacity = capacity }
}

// NewSeeder creates a seeder writing to db
func NewSeeder(db *gorm.DB, generator *Generator, sizes Sizes, opts ...Option) *Seeder {
	s := &Seeder{
		db:        db,
		generator: generator,
		sizes:     sizes,
		capacity:  MaxGroupSize,
		metrics:   metrics.NewNop(),
		log:       logger.WithComponent("seeder"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// plan is the generated data of one run, built before anything is dropped
type plan struct {
	groups     []models.Group
	courses    []models.Course
	assignment *Assignment
}

// Run rebuilds all four tables and seeds them. Base tables (groups, courses,
// students) are written in one transaction and enrollments in a second one; a
// failure in between leaves the base tables populated without enrollments.
// Run is destructive and must not be called while the API serves traffic.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	result, err := s.run(ctx)
	if err != nil {
		s.metrics.RecordSeedFailure()
		s.log.WithError(err).Error("Seed run failed")
		return nil, err
	}

	s.metrics.RecordSeed(result.Rows(), result.Dropped)
	s.log.WithFields(map[string]interface{}{
		"groups":      result.Groups,
		"courses":     result.Courses,
		"students":    result.Students,
		"enrollments": result.Enrollments,
		"dropped":     result.Dropped,
		"duration":    time.Since(start).String(),
	}).Info("Seed run completed")
	return result, nil
}

func (s *Seeder) run(ctx context.Context) (*Result, error) {
	p, err := s.plan()
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	if err := database.Rebuild(db); err != nil {
		return nil, fmt.Errorf("failed to rebuild schema: %w", err)
	}
	s.log.Info("Schema rebuilt")

	result := &Result{Dropped: len(p.assignment.Dropped)}

	// Phase 1: groups, courses, students
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewGroupRepository(tx).CreateBatch(p.groups); err != nil {
			return fmt.Errorf("insert groups: %w", err)
		}
		if err := repository.NewCourseRepository(tx).CreateBatch(p.courses); err != nil {
			return fmt.Errorf("insert courses: %w", err)
		}

		students := s.students(p)
		if err := repository.NewStudentRepository(tx).CreateBatch(students); err != nil {
			return fmt.Errorf("insert students: %w", err)
		}

		result.Groups = len(p.groups)
		result.Courses = len(p.courses)
		result.Students = len(students)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed phase 1: %w", err)
	}
	s.log.WithFields(map[string]interface{}{
		"groups":   result.Groups,
		"courses":  result.Courses,
		"students": result.Students,
	}).Info("Base tables seeded")

	// Phase 2: enrollments
	err = db.Transaction(func(tx *gorm.DB) error {
		ids, err := repository.NewStudentRepository(tx).GetIDs()
		if err != nil {
			return fmt.Errorf("read student ids: %w", err)
		}

		perStudent := s.generator.GenerateStudentCourses(len(p.courses), len(ids))
		enrollments := make([]models.StudentCourse, 0, len(ids)*maxCoursesPerStudent)
		for i, studentID := range ids {
			for _, courseID := range perStudent[i] {
				enrollments = append(enrollments, models.StudentCourse{StudentID: studentID, CourseID: courseID})
			}
		}

		if err := repository.NewStudentCourseRepository(tx).CreateBatch(enrollments); err != nil {
			return fmt.Errorf("insert enrollments: %w", err)
		}
		result.Enrollments = len(enrollments)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed phase 2: %w", err)
	}

	return result, nil
}

// plan generates every row of the run so that bad sizing fails before the
// schema is dropped.
func (s *Seeder) plan() (*plan, error) {
	pool := s.generator.Pool()
	if s.sizes.Courses > len(pool.Courses) {
		return nil, fmt.Errorf("%w: %d requested, %d available", apperrors.ErrNotEnoughCourses, s.sizes.Courses, len(pool.Courses))
	}

	groups, err := s.generator.GenerateGroups(s.sizes.Groups)
	if err != nil {
		return nil, err
	}
	students, err := s.generator.GenerateStudents(s.sizes.Students)
	if err != nil {
		return nil, err
	}

	assignment := AssignStudentsToGroups(s.generator.Rand(), students, groups, s.capacity)
	if n := len(assignment.Dropped); n > 0 {
		s.log.WithField("dropped", n).Warn("Students left without a group, every group is full")
	}

	validate := validation.New()
	groupRows := make([]models.Group, 0, groups.Len())
	for _, name := range groups.Names() {
		g := models.Group{Name: name}
		if err := validate.Struct(&g); err != nil {
			return nil, fmt.Errorf("generated group %q: %w", name, err)
		}
		groupRows = append(groupRows, g)
	}

	courseRows := make([]models.Course, 0, s.sizes.Courses)
	for _, name := range pool.Courses[:s.sizes.Courses] {
		courseRows = append(courseRows, models.Course{Name: name, Description: CourseDescription(name)})
	}

	return &plan{groups: groupRows, courses: courseRows, assignment: assignment}, nil
}

// students builds student rows group by group, in group insertion order.
// Group IDs must already be filled in.
func (s *Seeder) students(p *plan) []models.Student {
	ids := make(map[string]int, len(p.groups))
	for _, g := range p.groups {
		ids[g.Name] = g.ID
	}

	groups := p.assignment.Groups
	rows := make([]models.Student, 0, groups.TotalMembers())
	for _, name := range groups.Names() {
		for _, member := range groups.Members(name) {
			rows = append(rows, models.Student{
				FirstName: member.FirstName,
				LastName:  member.LastName,
				GroupID:   ids[name],
			})
		}
	}
	return rows
}
