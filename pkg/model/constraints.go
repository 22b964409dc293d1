package model

import "github.com/samber/lo"

// Penalty weights for the five constraint families. Both schedulers score
// against the same weights so their fitness values are directly comparable.
const (
	roomTimeWeight   = 1000 // Constraint 1: courses sharing a (time, room) pair
	capacityWeight   = 1000 // Constraint 2: enrollment exceeding room capacity
	departmentWeight = 500  // Constraint 3: same-department courses sharing a time slot
	instructorWeight = 1000 // Constraint 4: one instructor teaching twice at the same time
	conflictWeight   = 1000 // Constraint 5: declared conflict groups sharing a time slot
)

// Fitness scores a schedule against the instance: the weighted penalties of
// all five constraint families are summed and negated, so fitness is always
// non-positive and zero exactly on a fully feasible schedule. Evaluation is
// pure and recomputes every term in full.
func Fitness(schedule Schedule, input ModelInput) int {
	total := roomTimeConflicts(schedule)*roomTimeWeight +
		capacityOverflow(schedule, input)*capacityWeight +
		departmentClashes(schedule, input)*departmentWeight +
		instructorClashes(schedule, input)*instructorWeight +
		groupClashes(schedule, input)*conflictWeight

	return -total
}

// roomTimeConflicts counts, for every (time, room) pair hosting more than one
// course, each course beyond the first.
func roomTimeConflicts(schedule Schedule) int {
	occupancy := lo.CountValues(lo.Values(schedule))

	conflicts := 0
	for _, count := range occupancy {
		if count > 1 {
			conflicts += count - 1
		}
	}
	return conflicts
}

// capacityOverflow sums, per course, the number of enrolled students that do
// not fit in the assigned room. Courses missing from the attribute table
// count as empty and rooms missing from the capacity table as zero-capacity.
func capacityOverflow(schedule Schedule, input ModelInput) int {
	overflow := 0
	for course, assignment := range schedule {
		enrollment := input.CourseDetails[course].Students
		if capacity := input.RoomCapacities[assignment.Room]; capacity < enrollment {
			overflow += enrollment - capacity
		}
	}
	return overflow
}

// departmentClashes counts same-department courses that collide in time.
// Grouping runs over the whole attribute table and is then filtered by
// schedule membership, so attribute entries for inactive courses never
// contribute a time slot.
func departmentClashes(schedule Schedule, input ModelInput) int {
	departments := lo.GroupBy(lo.Keys(input.CourseDetails), func(course string) string {
		return input.CourseDetails[course].Department
	})

	clashes := 0
	for department, courses := range departments {
		if department == "" {
			continue
		}
		clashes += timeClashes(schedule, courses)
	}
	return clashes
}

// instructorClashes counts courses taught simultaneously by one instructor,
// grouped the same way departmentClashes groups departments.
func instructorClashes(schedule Schedule, input ModelInput) int {
	instructors := lo.GroupBy(lo.Keys(input.CourseDetails), func(course string) string {
		return input.CourseDetails[course].Instructor
	})

	clashes := 0
	for instructor, courses := range instructors {
		if instructor == "" {
			continue
		}
		clashes += timeClashes(schedule, courses)
	}
	return clashes
}

// groupClashes counts time-slot collisions inside each declared conflict
// group.
func groupClashes(schedule Schedule, input ModelInput) int {
	clashes := 0
	for _, group := range input.CourseConflicts {
		clashes += timeClashes(schedule, group)
	}
	return clashes
}

// timeClashes counts, for every time slot used by more than one of the given
// courses, each course beyond the first. Courses absent from the schedule are
// skipped.
func timeClashes(schedule Schedule, courses []string) int {
	times := lo.CountValues(lo.FilterMap(courses, func(course string, _ int) (string, bool) {
		assignment, scheduled := schedule[course]
		return assignment.Time, scheduled
	}))

	clashes := 0
	for _, count := range times {
		if count > 1 {
			clashes += count - 1
		}
	}
	return clashes
}
