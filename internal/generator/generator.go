// Package generator derives synthetic timetabling instances from a seed
// corpus. The complexity knob trades resources for constraints: higher
// complexity means larger enrollments, fewer rooms and time slots, and extra
// conflict groups.
package generator

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/samber/lo"

	"github.com/limaJavier/uctp/pkg/model"
)

var (
	firstNames = []string{"Alice", "Bob", "Carol", "David", "Eva"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown"}
)

// Generate loads the seed corpus from a JSON file and derives an instance of
// the requested size.
func Generate(seedFile string, size int, complexity float64, rng *rand.Rand) (model.ModelInput, error) {
	seed, err := model.InputFromJson(seedFile)
	if err != nil {
		return model.ModelInput{}, err
	}
	return FromSeed(seed, size, complexity, rng), nil
}

// FromSeed derives an instance with exactly size courses. Seed courses are
// sampled when the seed is large enough, otherwise synthetic courses are
// appended on top of the full seed. Deterministic under a seeded source.
func FromSeed(seed model.ModelInput, size int, complexity float64, rng *rand.Rand) model.ModelInput {
	courses, details := pickCourses(seed, size, complexity, rng)

	rooms := sample(seed.Rooms, scaledCount(len(seed.Rooms), complexity), rng)
	capacities := make(map[string]int, len(rooms))
	for _, room := range rooms {
		capacities[room] = seed.RoomCapacities[room]
	}

	times := sample(seed.Times, scaledCount(len(seed.Times), complexity), rng)

	conflicts := filterConflicts(seed.CourseConflicts, courses)
	if complexity > 0.5 {
		conflicts = addRandomConflicts(conflicts, courses, size, rng)
	}

	return model.ModelInput{
		CourseDetails:   details,
		Courses:         courses,
		RoomCapacities:  capacities,
		Rooms:           rooms,
		Times:           times,
		CourseConflicts: conflicts,
	}
}

func pickCourses(seed model.ModelInput, size int, complexity float64, rng *rand.Rand) ([]string, map[string]model.CourseDetail) {
	var courses []string
	if size <= len(seed.Courses) {
		courses = sample(seed.Courses, size, rng)
	} else {
		courses = slices.Clone(seed.Courses)
	}

	details := make(map[string]model.CourseDetail, size)
	for _, course := range courses {
		details[course] = seed.CourseDetails[course]
	}

	// Synthesize the shortfall on top of the seed departments
	departments := lo.Uniq(lo.Map(seed.Courses, func(course string, _ int) string {
		return seed.CourseDetails[course].Department
	}))
	slices.Sort(departments)

	counter := 1
	for len(courses) < size && len(departments) > 0 {
		department := departments[rng.Intn(len(departments))]
		course := fmt.Sprintf("%v%v", department, 1000+counter)
		counter++
		if _, exists := details[course]; exists {
			continue
		}

		students := 20 + rng.Intn(21) + int(complexity*float64(rng.Intn(21)))
		instructor := fmt.Sprintf("Dr. %v %v", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))])

		courses = append(courses, course)
		details[course] = model.CourseDetail{
			Department: department,
			Students:   students,
			Instructor: instructor,
		}
	}

	return courses, details
}

// scaledCount shrinks a resource pool as complexity grows, never below one.
func scaledCount(total int, complexity float64) int {
	return max(1, int((1-complexity)*float64(total)))
}

func sample(pool []string, count int, rng *rand.Rand) []string {
	if count >= len(pool) {
		return slices.Clone(pool)
	}
	return lo.Map(rng.Perm(len(pool))[:count], func(index int, _ int) string {
		return pool[index]
	})
}

// filterConflicts keeps each seed conflict group restricted to surviving
// courses, dropping groups with fewer than two members left.
func filterConflicts(groups [][]string, courses []string) [][]string {
	filtered := make([][]string, 0, len(groups))
	for _, group := range groups {
		members := lo.Filter(group, func(course string, _ int) bool {
			return slices.Contains(courses, course)
		})
		if len(members) >= 2 {
			filtered = append(filtered, members)
		}
	}
	return filtered
}

func addRandomConflicts(groups [][]string, courses []string, size int, rng *rand.Rand) [][]string {
	if len(courses) < 2 {
		return groups
	}

	extra := max(1, size/20)
	for range extra {
		groupSize := 2 + rng.Intn(min(5, len(courses))-1)
		group := sample(courses, groupSize, rng)

		duplicate := lo.ContainsBy(groups, func(existing []string) bool {
			return slices.Equal(existing, group)
		})
		if !duplicate {
			groups = append(groups, group)
		}
	}
	return groups
}
