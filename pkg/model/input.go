package model

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/mitchellh/mapstructure"
)

// CourseDetail holds the attributes of a single course. Missing details are
// tolerated everywhere: constraint evaluation treats an absent entry as zero
// enrollment with no department and no instructor.
type CourseDetail struct {
	Department string `mapstructure:"department"`
	Students   int    `mapstructure:"students"`
	Instructor string `mapstructure:"instructor"`
}

// ModelInput is the immutable problem instance consumed by the schedulers:
// the course attribute table, the active course list, room capacities, the
// available rooms and time slots, and the declared conflict groups (sets of
// courses that must not share a time slot).
type ModelInput struct {
	CourseDetails   map[string]CourseDetail `mapstructure:"course_details"`
	Courses         []string                `mapstructure:"courses"`
	RoomCapacities  map[string]int          `mapstructure:"room_capacities"`
	Rooms           []string                `mapstructure:"rooms"`
	Times           []string                `mapstructure:"times"`
	CourseConflicts [][]string              `mapstructure:"course_conflicts"`
}

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, err
	}

	var input ModelInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return ModelInput{}, err
	}

	// The course list may be omitted from the file, in which case the
	// attribute table's keys define the active course set
	if len(input.Courses) == 0 {
		for course := range input.CourseDetails {
			input.Courses = append(input.Courses, course)
		}
		slices.Sort(input.Courses) // Sort to keep the instance deterministic across loads
	}

	return input, nil
}

// Validate rejects instances on which random assignment is undefined. It is
// the only user-visible failure mode of the schedulers and surfaces at
// construction, never mid-run.
func (input ModelInput) Validate() error {
	if len(input.Rooms) == 0 {
		return fmt.Errorf("instance must contain at least one room")
	}
	if len(input.Times) == 0 {
		return fmt.Errorf("instance must contain at least one time slot")
	}
	return nil
}
