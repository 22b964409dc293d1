package model

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
)

// Scheduler searches for a conflict-minimizing schedule. Both engines are
// best-effort optimizers: a run may terminate with residual constraint
// violations, reported through the result's fitness. The context is checked
// between iterations only, so cancellation never interrupts an evaluation.
type Scheduler interface {
	Run(ctx context.Context) (Result, error)
}

// Result is the read-only outcome of a run, consumed by reporting and
// benchmarking collaborators.
type Result struct {
	Best        Schedule
	BestFitness int
	History     []int // Per-generation best for the genetic scheduler, per-iteration fitness for annealing
	Iterations  int
	Duration    time.Duration
}

var validate = validator.New(validator.WithRequiredStructEnabled())
