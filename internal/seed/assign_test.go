package seed

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStudents(n int) []StudentName {
	out := make([]StudentName, n)
	for i := range out {
		out[i] = StudentName{FirstName: "First", LastName: string(rune('A' + i%26))}
	}
	return out
}

func TestAssignStudentsToGroupsDefaultSizing(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		gen := NewGenerator(seed, DefaultNamePool())
		groups, err := gen.GenerateGroups(10)
		require.NoError(t, err)
		list, err := gen.GenerateStudents(200)
		require.NoError(t, err)

		result := AssignStudentsToGroups(gen.Rand(), list, groups, MaxGroupSize)

		assert.Empty(t, result.Dropped, "seed %d", seed)
		assert.Equal(t, 200, result.Groups.TotalMembers())
		for _, name := range result.Groups.Names() {
			size := result.Groups.Size(name)
			assert.GreaterOrEqual(t, size, MinGroupSize, "seed %d group %s", seed, name)
			assert.LessOrEqual(t, size, MaxGroupSize, "seed %d group %s", seed, name)
		}
	}
}

func TestAssignStudentsToGroupsNeverExceedsCapacity(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	groups := NewGroups("AA-10", "BB-20")

	result := AssignStudentsToGroups(rng, sampleStudents(10), groups, 3)

	assert.Equal(t, 3, groups.Size("AA-10"))
	assert.Equal(t, 3, groups.Size("BB-20"))
	assert.Len(t, result.Dropped, 4)
	assert.Equal(t, 10, groups.TotalMembers()+len(result.Dropped))
}

func TestAssignStudentsToGroupsWithoutGroups(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	result := AssignStudentsToGroups(rng, sampleStudents(5), NewGroups(), MaxGroupSize)

	assert.Len(t, result.Dropped, 5)
	assert.Equal(t, 0, result.Groups.Len())
}

func TestAssignStudentsToGroupsDefaultCapacity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	groups := NewGroups("AA-10")

	result := AssignStudentsToGroups(rng, sampleStudents(35), groups, 0)

	assert.Equal(t, MaxGroupSize, groups.Size("AA-10"))
	assert.Len(t, result.Dropped, 5)
}

func TestWeightedChoices(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))

	t.Run("zero weights are never drawn", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			picks, ok := weightedChoices(rng, []string{"full", "open"}, []float64{0, 4}, 3)
			require.True(t, ok)
			assert.Equal(t, []string{"open", "open", "open"}, picks)
		}
	})

	t.Run("no positive weight", func(t *testing.T) {
		picks, ok := weightedChoices(rng, []string{"a", "b"}, []float64{0, 0}, 3)
		assert.False(t, ok)
		assert.Nil(t, picks)
	})
}

func TestGroupsRankBySize(t *testing.T) {
	groups := NewGroups("AA-10", "BB-20", "CC-30")
	groups.append("AA-10", StudentName{FirstName: "A", LastName: "B"})

	assert.Equal(t, []string{"BB-20", "CC-30", "AA-10"}, groups.rankBySize())
	assert.False(t, groups.Add("BB-20"))
	assert.True(t, groups.Has("CC-30"))
}
