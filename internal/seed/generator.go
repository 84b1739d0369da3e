package seed

import (
	"fmt"
	"math/rand/v2"

	apperrors "students-api/internal/errors"
)

const (
	groupLetters   = 26
	groupNumberMin = 10
	groupNumberMax = 99

	// maxCoursesPerStudent bounds the enrollments generated for one student
	maxCoursesPerStudent = 3
)

// MaxGroupNames is the size of the XX-dd group name space
const MaxGroupNames = groupLetters * groupLetters * (groupNumberMax - groupNumberMin + 1)

// Generator produces randomized seed data from a name pool
type Generator struct {
	rng  *rand.Rand
	pool NamePool
}

// NewGenerator creates a generator. A zero seed picks a random one, any other
// value makes the output reproducible.
func NewGenerator(seed uint64, pool NamePool) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		pool: pool,
	}
}

// Pool returns the name pool the generator draws from
func (g *Generator) Pool() NamePool {
	return g.pool
}

// Rand exposes the generator's random source so that assignment shares its seed
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}

// GenerateGroups returns count distinct empty groups named like "AB-42".
func (g *Generator) GenerateGroups(count int) (*Groups, error) {
	if count > MaxGroupNames {
		return nil, fmt.Errorf("%w: %d requested, %d available", apperrors.ErrTooManyGroups, count, MaxGroupNames)
	}

	groups := NewGroups()
	for groups.Len() < count {
		groups.Add(g.groupName())
	}
	return groups, nil
}

func (g *Generator) groupName() string {
	first := rune('A' + g.rng.IntN(groupLetters))
	second := rune('A' + g.rng.IntN(groupLetters))
	number := groupNumberMin + g.rng.IntN(groupNumberMax-groupNumberMin+1)
	return fmt.Sprintf("%c%c-%d", first, second, number)
}

// GenerateStudents returns count unique name pairs. Both name lists are shuffled,
// pairs are taken first-name-major until count is reached and the result is
// shuffled again.
func (g *Generator) GenerateStudents(count int) ([]StudentName, error) {
	if capacity := g.pool.Capacity(); count > capacity {
		return nil, fmt.Errorf("%w: %d requested, %d available", apperrors.ErrNotEnoughNames, count, capacity)
	}
	if count <= 0 {
		return []StudentName{}, nil
	}

	firstNames := append([]string(nil), g.pool.FirstNames...)
	lastNames := append([]string(nil), g.pool.LastNames...)
	g.rng.Shuffle(len(firstNames), func(i, j int) { firstNames[i], firstNames[j] = firstNames[j], firstNames[i] })
	g.rng.Shuffle(len(lastNames), func(i, j int) { lastNames[i], lastNames[j] = lastNames[j], lastNames[i] })

	students := make([]StudentName, 0, count)
pairs:
	for _, first := range firstNames {
		for _, last := range lastNames {
			students = append(students, StudentName{FirstName: first, LastName: last})
			if len(students) >= count {
				break pairs
			}
		}
	}

	g.rng.Shuffle(len(students), func(i, j int) { students[i], students[j] = students[j], students[i] })
	return students, nil
}

// GenerateStudentCourses returns, for each of studentCount students, between 0
// and 3 distinct course ids in [1, courseCount].
func (g *Generator) GenerateStudentCourses(courseCount, studentCount int) [][]int {
	if studentCount <= 0 {
		return [][]int{}
	}

	result := make([][]int, studentCount)
	for i := range result {
		k := g.rng.IntN(maxCoursesPerStudent + 1)
		if k > courseCount {
			k = courseCount
		}
		ids := make([]int, 0, k)
		if k > 0 {
			for _, idx := range g.rng.Perm(courseCount)[:k] {
				ids = append(ids, idx+1)
			}
		}
		result[i] = ids
	}
	return result
}
