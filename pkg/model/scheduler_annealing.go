package model

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Below this temperature no worsening move has a meaningful acceptance
// probability, so the trajectory is frozen and the run stops.
const freezeTemperature = 1e-10

// math.Exp underflows to zero near -745; clamp well before that point.
const minAcceptanceExponent = -700

// AnnealingConfig is the construction-time surface of the simulated
// annealing scheduler.
type AnnealingConfig struct {
	InitialTemperature float64 `validate:"gt=0"`
	CoolingRate        float64 `validate:"gt=0,lt=1"`
	MaxIterations      int     `validate:"gt=0"`
}

type annealingScheduler struct {
	input ModelInput
	cfg   AnnealingConfig
	rng   *rand.Rand
}

// NewAnnealingScheduler builds a single-trajectory scheduler over the
// instance. The random source is owned exclusively by this scheduler;
// concurrent runs must each receive an independently seeded one.
func NewAnnealingScheduler(input ModelInput, cfg AnnealingConfig, rng *rand.Rand) (Scheduler, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid annealing configuration: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source must not be nil")
	}

	return &annealingScheduler{
		input: input,
		cfg:   cfg,
		rng:   rng,
	}, nil
}

// Run walks a single trajectory from a random schedule: each iteration cools
// the temperature geometrically, proposes a single-course reassignment and
// accepts it by the Metropolis criterion. The best schedule ever visited is
// returned, not necessarily the final current state. The current fitness is
// appended to the history every iteration, whether or not the move was
// accepted.
func (s *annealingScheduler) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	current := RandomSchedule(s.input, s.rng)
	currentFitness := Fitness(current, s.input)

	best := current.Clone()
	bestFitness := currentFitness
	history := make([]int, 0, s.cfg.MaxIterations)

	temperature := s.cfg.InitialTemperature

	iteration := 0
	for iteration < s.cfg.MaxIterations {
		if err := ctx.Err(); err != nil {
			return s.result(best, bestFitness, history, iteration, start), err
		}

		// Cool before moving: a frozen trajectory stops without proposing
		temperature *= s.cfg.CoolingRate
		if temperature <= freezeTemperature {
			break
		}

		candidate := s.neighbor(current)
		candidateFitness := Fitness(candidate, s.input)
		delta := candidateFitness - currentFitness

		if delta > 0 || s.rng.Float64() < acceptanceProbability(delta, temperature) {
			current = candidate
			currentFitness = candidateFitness
		}

		if currentFitness > bestFitness {
			best = current.Clone()
			bestFitness = currentFitness
		}

		history = append(history, currentFitness)
		iteration++
	}

	return s.result(best, bestFitness, history, iteration, start), nil
}

// neighbor copies the current schedule and reassigns one uniformly chosen
// course to a fresh random (time, room) pair.
func (s *annealingScheduler) neighbor(current Schedule) Schedule {
	candidate := current.Clone()
	course := s.input.Courses[s.rng.Intn(len(s.input.Courses))]
	candidate[course] = randomAssignment(s.input, s.rng)
	return candidate
}

// acceptanceProbability implements the Metropolis criterion exp(delta/T) for
// non-improving moves (delta <= 0). The exponent tends to negative infinity
// as the temperature approaches zero, so it is clamped to a probability of
// zero instead of risking a floating-point domain fault.
func acceptanceProbability(delta int, temperature float64) float64 {
	if temperature <= 0 {
		return 0
	}
	exponent := float64(delta) / temperature
	if exponent < minAcceptanceExponent {
		return 0
	}
	return math.Exp(exponent)
}

func (s *annealingScheduler) result(best Schedule, bestFitness int, history []int, iterations int, start time.Time) Result {
	return Result{
		Best:        best,
		BestFitness: bestFitness,
		History:     history,
		Iterations:  iterations,
		Duration:    time.Since(start),
	}
}
