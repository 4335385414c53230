package entities

import "time"

type StageStatus string

const (
	StageStatusPending    StageStatus = "pending"
	StageStatusInProgress StageStatus = "in_progress"
	StageStatusCompleted  StageStatus = "completed"
)

// Stage is one planned production step (cutting, welding, painting...) of an order item.
//
// Planned dates are derived and may be recomputed at any time. Actual dates are set
// once by an appointment and are never rewritten by the scheduler.
type Stage struct {
	Name         string      `json:"name"`
	Status       StageStatus `json:"status"`
	DurationDays int         `json:"duration_days"`
	PlannedStart *time.Time  `json:"planned_start,omitempty"`
	PlannedEnd   *time.Time  `json:"planned_end,omitempty"`
	ActualStart  *time.Time  `json:"actual_start,omitempty"`
	ActualEnd    *time.Time  `json:"actual_end,omitempty"`
}
