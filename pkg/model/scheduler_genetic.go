package model

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/samber/lo"
)

const tournamentSize = 3

// GeneticConfig is the construction-time surface of the genetic scheduler.
type GeneticConfig struct {
	PopulationSize int     `validate:"gt=1"`
	MutationRate   float64 `validate:"gte=0,lte=1"`
	Generations    int     `validate:"gt=0"`
}

type geneticScheduler struct {
	input ModelInput
	cfg   GeneticConfig
	rng   *rand.Rand
}

// NewGeneticScheduler builds a population-based scheduler over the instance.
// The random source is owned exclusively by this scheduler; concurrent runs
// must each receive an independently seeded one.
func NewGeneticScheduler(input ModelInput, cfg GeneticConfig, rng *rand.Rand) (Scheduler, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid genetic configuration: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source must not be nil")
	}

	return &geneticScheduler{
		input: input,
		cfg:   cfg,
		rng:   rng,
	}, nil
}

// Run executes the generational loop: evaluate, select, crossover, mutate.
// The globally best individual is tracked separately from the population,
// since the loop itself is non-elitist and may lose good individuals to
// crossover and mutation. A fully feasible schedule (fitness 0) stops the
// run early.
func (s *geneticScheduler) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	population := make([]Schedule, s.cfg.PopulationSize)
	for i := range population {
		population[i] = RandomSchedule(s.input, s.rng)
	}

	var best Schedule
	bestFitness := math.MinInt
	history := make([]int, 0, s.cfg.Generations)

	generation := 0
	for generation < s.cfg.Generations {
		if err := ctx.Err(); err != nil {
			return s.result(best, bestFitness, history, generation, start), err
		}

		fitnesses := lo.Map(population, func(individual Schedule, _ int) int {
			return Fitness(individual, s.input)
		})

		currentBest := lo.Max(fitnesses)
		history = append(history, currentBest)

		if currentBest > bestFitness {
			bestFitness = currentBest
			best = population[lo.IndexOf(fitnesses, currentBest)].Clone()
		}
		generation++

		// A constraint-free schedule cannot be improved upon
		if bestFitness == 0 {
			break
		}

		parents := s.selectParents(population, fitnesses)
		population = s.breed(parents)
	}

	return s.result(best, bestFitness, history, generation, start), nil
}

// selectParents fills the mating pool by tournament selection: three distinct
// individuals are sampled per tournament and the fittest kept, with
// replacement across tournaments.
func (s *geneticScheduler) selectParents(population []Schedule, fitnesses []int) []Schedule {
	size := min(tournamentSize, len(population))

	parents := make([]Schedule, len(population))
	for i := range parents {
		competitors := s.rng.Perm(len(population))[:size]
		winner := lo.MaxBy(competitors, func(a, b int) bool {
			return fitnesses[a] > fitnesses[b]
		})
		parents[i] = population[winner]
	}
	return parents
}

// breed pairs adjacent parents (wrapping the last with the first when the
// count is odd), applies uniform crossover to each pair and mutates every
// child. The surplus child of an odd-sized wraparound pair is dropped so the
// population size stays invariant.
func (s *geneticScheduler) breed(parents []Schedule) []Schedule {
	offspring := make([]Schedule, 0, s.cfg.PopulationSize+1)
	for i := 0; i < s.cfg.PopulationSize; i += 2 {
		first, second := parents[i], parents[(i+1)%s.cfg.PopulationSize]
		child1, child2 := s.crossover(first, second)
		offspring = append(offspring, child1, child2)
	}
	offspring = offspring[:s.cfg.PopulationSize]

	for _, child := range offspring {
		s.mutate(child)
	}
	return offspring
}

// crossover produces two children whose per-course assignments are a random
// mix of the parents': with 50% probability per course the parents swap which
// child they contribute to. A course's (time, room) pair always travels
// whole; children never mix one parent's time with the other's room.
func (s *geneticScheduler) crossover(first, second Schedule) (Schedule, Schedule) {
	child1 := make(Schedule, len(s.input.Courses))
	child2 := make(Schedule, len(s.input.Courses))

	for _, course := range s.input.Courses {
		if s.rng.Float64() < 0.5 {
			child1[course], child2[course] = first[course], second[course]
		} else {
			child1[course], child2[course] = second[course], first[course]
		}
	}
	return child1, child2
}

// mutate independently replaces each course's assignment with a fresh random
// (time, room) pair with probability MutationRate. The new pair is not a
// perturbation of the old value.
func (s *geneticScheduler) mutate(individual Schedule) {
	for _, course := range s.input.Courses {
		if s.rng.Float64() < s.cfg.MutationRate {
			individual[course] = randomAssignment(s.input, s.rng)
		}
	}
}

func (s *geneticScheduler) result(best Schedule, bestFitness int, history []int, generations int, start time.Time) Result {
	return Result{
		Best:        best,
		BestFitness: bestFitness,
		History:     history,
		Iterations:  generations,
		Duration:    time.Since(start),
	}
}
