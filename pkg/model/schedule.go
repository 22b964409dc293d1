package model

import "math/rand"

// Assignment places a course at a time slot in a room. Time slots are opaque
// identifiers with no ordering or adjacency semantics.
type Assignment struct {
	Time string
	Room string
}

// Schedule is a candidate solution: a total mapping from every course in the
// instance to an assignment. Search operators always work on their own copy,
// so a schedule held as "best so far" is never aliased by later moves.
type Schedule map[string]Assignment

func (schedule Schedule) Clone() Schedule {
	clone := make(Schedule, len(schedule))
	for course, assignment := range schedule {
		clone[course] = assignment
	}
	return clone
}

// RandomSchedule assigns every course an independently uniform (time, room)
// pair drawn from the provided source.
func RandomSchedule(input ModelInput, rng *rand.Rand) Schedule {
	schedule := make(Schedule, len(input.Courses))
	for _, course := range input.Courses {
		schedule[course] = randomAssignment(input, rng)
	}
	return schedule
}

func randomAssignment(input ModelInput, rng *rand.Rand) Assignment {
	return Assignment{
		Time: input.Times[rng.Intn(len(input.Times))],
		Room: input.Rooms[rng.Intn(len(input.Rooms))],
	}
}
