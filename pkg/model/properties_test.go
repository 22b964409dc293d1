package model

import (
	"fmt"
	"math/rand"
	"testing"

	. "github.com/onsi/gomega"
)

func TestFitnessIsNeverPositive(t *testing.T) {
	g := NewWithT(t)

	input := testInput()
	input.CourseConflicts = [][]string{{"CS101", "MATH101"}}
	rng := rand.New(rand.NewSource(7))

	for range 200 {
		schedule := RandomSchedule(input, rng)
		g.Expect(Fitness(schedule, input)).To(BeNumerically("<=", 0))
	}
}

func TestDistinctPairsScoreZeroOnRoomTimeExclusivity(t *testing.T) {
	g := NewWithT(t)

	// Wipe every other constraint source so only constraint 1 can fire
	input := testInput()
	input.CourseDetails = map[string]CourseDetail{}
	input.RoomCapacities = map[string]int{}

	schedule := Schedule{}
	for i, course := range input.Courses {
		schedule[course] = Assignment{Time: input.Times[i], Room: input.Rooms[i]}
	}
	g.Expect(Fitness(schedule, input)).To(Equal(0))
}

func TestCapacityPenaltyIsMonotonicInEnrollment(t *testing.T) {
	g := NewWithT(t)

	input := testInput()
	schedule := Schedule{
		"CS101":   {Time: "T1", Room: "R1"},
		"MATH101": {Time: "T2", Room: "R2"},
		"PHYS101": {Time: "T3", Room: "R3"},
	}

	previous := Fitness(schedule, input)
	for students := 35; students <= 120; students += 5 {
		input.CourseDetails["CS101"] = CourseDetail{
			Department: "CS",
			Students:   students,
			Instructor: "Dr. Alice Smith",
		}
		fitness := Fitness(schedule, input)
		g.Expect(fitness).To(BeNumerically("<=", previous), fmt.Sprintf("enrollment %v", students))
		previous = fitness
	}
}

func TestAcceptanceProbabilityBounds(t *testing.T) {
	g := NewWithT(t)

	t.Run("Zero delta is always accepted", func(t *testing.T) {
		g.Expect(acceptanceProbability(0, 1000)).To(Equal(1.0))
		g.Expect(acceptanceProbability(0, 1e-9)).To(Equal(1.0))
	})

	t.Run("Worsening moves stay within [0, 1]", func(t *testing.T) {
		for _, delta := range []int{-1, -500, -1000, -100000} {
			for _, temperature := range []float64{1e-9, 0.5, 100, 1000} {
				probability := acceptanceProbability(delta, temperature)
				g.Expect(probability).To(BeNumerically(">=", 0))
				g.Expect(probability).To(BeNumerically("<=", 1))
			}
		}
	})

	t.Run("Frozen temperature clamps to zero instead of faulting", func(t *testing.T) {
		g.Expect(acceptanceProbability(-1000000, 1e-12)).To(Equal(0.0))
		g.Expect(acceptanceProbability(-1, 0)).To(Equal(0.0))
	})
}
