// Package production holds the scheduling and progress rules of manufacturing orders.
//
// Everything here is a pure function over caller-owned snapshots: nothing is cached,
// nothing is persisted, and inputs are never mutated.
package production

import (
	"errors"
	"fmt"
	"time"

	"gestao_producao/internal/domain/entities"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidIndex = errors.New("invalid index")
)

// Recalculate shifts the planned dates of every stage after completedIndex forward from
// the real completion date of that stage.
//
// Stage completedIndex+1 starts the day after actualCompletionDate; each later stage starts
// the day after its predecessor ends (actual end when reported, planned end otherwise).
// Stages at or before completedIndex and all actual dates are left untouched.
func Recalculate(stages []entities.Stage, completedIndex int, actualCompletionDate time.Time) ([]entities.Stage, error) {
	if len(stages) == 0 {
		return nil, ErrInvalidInput
	}
	if completedIndex < 0 || completedIndex >= len(stages) {
		return nil, fmt.Errorf("%w: stage %d not in [0,%d)", ErrInvalidIndex, completedIndex, len(stages))
	}

	out := make([]entities.Stage, len(stages))
	copy(out, stages)

	base := DateOnly(actualCompletionDate)
	for i := completedIndex + 1; i < len(out); i++ {
		schedule(&out[i], AddDays(base, 1))
		base = endOf(out[i])
	}
	return out, nil
}

// PlanStages lays out a fresh schedule starting on start: stage 0 begins that day and
// every later stage follows the same chaining rule as Recalculate.
func PlanStages(stages []entities.Stage, start time.Time) []entities.Stage {
	out := make([]entities.Stage, len(stages))
	copy(out, stages)

	next := DateOnly(start)
	for i := range out {
		schedule(&out[i], next)
		next = AddDays(endOf(out[i]), 1)
	}
	return out
}

func schedule(s *entities.Stage, start time.Time) {
	s.PlannedStart = datePtr(start)
	s.PlannedEnd = datePtr(AddDays(start, max(effectiveDuration(s.DurationDays)-1, 0)))
}

// endOf is the date the next stage chains from.
func endOf(s entities.Stage) time.Time {
	if s.ActualEnd != nil {
		return DateOnly(*s.ActualEnd)
	}
	return DateOnly(*s.PlannedEnd)
}

func effectiveDuration(days int) int {
	if days < 0 || days > MaxDurationDays {
		return 1
	}
	return days
}
