package generator

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limaJavier/uctp/pkg/model"
)

const seedFile = "../../test/seed_data.json"

func testSeed() model.ModelInput {
	return model.ModelInput{
		CourseDetails: map[string]model.CourseDetail{
			"CS101":   {Department: "CS", Students: 30, Instructor: "Dr. Alice Smith"},
			"CS201":   {Department: "CS", Students: 25, Instructor: "Dr. Bob Johnson"},
			"MATH101": {Department: "MATH", Students: 40, Instructor: "Dr. Carol Williams"},
			"MATH201": {Department: "MATH", Students: 35, Instructor: "Dr. David Brown"},
			"PHYS101": {Department: "PHYS", Students: 20, Instructor: "Dr. Eva Smith"},
			"PHYS201": {Department: "PHYS", Students: 22, Instructor: "Dr. Eva Smith"},
		},
		Courses:        []string{"CS101", "CS201", "MATH101", "MATH201", "PHYS101", "PHYS201"},
		RoomCapacities: map[string]int{"R1": 45, "R2": 35, "R3": 30, "R4": 20},
		Rooms:          []string{"R1", "R2", "R3", "R4"},
		Times:          []string{"T1", "T2", "T3", "T4", "T5", "T6"},
		CourseConflicts: [][]string{
			{"CS101", "MATH101"},
			{"CS201", "PHYS101", "PHYS201"},
		},
	}
}

func TestFromSeedSamplesRequestedSize(t *testing.T) {
	seed := testSeed()
	input := FromSeed(seed, 4, 0, rand.New(rand.NewSource(1)))

	assert.Len(t, input.Courses, 4)
	assert.Len(t, input.CourseDetails, 4)
	for _, course := range input.Courses {
		assert.Contains(t, seed.Courses, course)
		assert.Equal(t, seed.CourseDetails[course], input.CourseDetails[course])
	}
	assert.Nil(t, input.Validate())
}

func TestFromSeedSynthesizesMissingCourses(t *testing.T) {
	seed := testSeed()
	input := FromSeed(seed, 10, 0.5, rand.New(rand.NewSource(2)))

	assert.Len(t, input.Courses, 10)
	assert.Len(t, input.CourseDetails, 10)

	departments := []string{"CS", "MATH", "PHYS"}
	for _, course := range input.Courses {
		detail := input.CourseDetails[course]
		assert.Contains(t, departments, detail.Department)
		if !slices.Contains(seed.Courses, course) {
			// Synthetic enrollments: 20..40 base plus a complexity surplus of
			// at most 20
			assert.GreaterOrEqual(t, detail.Students, 20)
			assert.LessOrEqual(t, detail.Students, 60)
			assert.NotEmpty(t, detail.Instructor)
		}
	}
}

func TestComplexityShrinksResources(t *testing.T) {
	seed := testSeed()

	t.Run("Zero complexity keeps everything", func(t *testing.T) {
		input := FromSeed(seed, 6, 0, rand.New(rand.NewSource(3)))
		assert.Len(t, input.Rooms, len(seed.Rooms))
		assert.Len(t, input.Times, len(seed.Times))
	})

	t.Run("Half complexity halves the pools", func(t *testing.T) {
		input := FromSeed(seed, 6, 0.5, rand.New(rand.NewSource(3)))
		assert.Len(t, input.Rooms, 2)
		assert.Len(t, input.Times, 3)
		for _, room := range input.Rooms {
			assert.Equal(t, seed.RoomCapacities[room], input.RoomCapacities[room])
		}
	})

	t.Run("Full complexity leaves at least one of each", func(t *testing.T) {
		input := FromSeed(seed, 6, 1, rand.New(rand.NewSource(3)))
		assert.Len(t, input.Rooms, 1)
		assert.Len(t, input.Times, 1)
		assert.Nil(t, input.Validate())
	})
}

func TestConflictGroupsAreFilteredToSurvivingCourses(t *testing.T) {
	seed := testSeed()
	input := FromSeed(seed, 6, 0, rand.New(rand.NewSource(4)))

	// All courses survive at full size, so every group survives whole
	assert.Equal(t, seed.CourseConflicts, input.CourseConflicts)

	for range 20 {
		small := FromSeed(seed, 3, 0, rand.New(rand.NewSource(rand.Int63())))
		for _, group := range small.CourseConflicts {
			assert.GreaterOrEqual(t, len(group), 2)
			for _, course := range group {
				assert.Contains(t, small.Courses, course)
			}
		}
	}
}

func TestHighComplexityAddsConflictGroups(t *testing.T) {
	seed := testSeed()
	input := FromSeed(seed, 6, 0.7, rand.New(rand.NewSource(5)))

	// At complexity > 0.5 at least one extra random group is drawn on top of
	// the filtered seed groups
	assert.Greater(t, len(input.CourseConflicts), 0)
	for _, group := range input.CourseConflicts {
		assert.GreaterOrEqual(t, len(group), 2)
		assert.LessOrEqual(t, len(group), 5)
	}
}

func TestFromSeedIsReproducible(t *testing.T) {
	seed := testSeed()

	first := FromSeed(seed, 12, 0.6, rand.New(rand.NewSource(6)))
	second := FromSeed(seed, 12, 0.6, rand.New(rand.NewSource(6)))

	assert.Equal(t, first, second)
}

func TestGenerateFromFile(t *testing.T) {
	input, err := Generate(seedFile, 10, 0.5, rand.New(rand.NewSource(7)))
	assert.Nil(t, err)
	assert.Len(t, input.Courses, 10)
	assert.Nil(t, input.Validate())

	_, err = Generate("does_not_exist.json", 10, 0.5, rand.New(rand.NewSource(7)))
	assert.NotNil(t, err)
}
