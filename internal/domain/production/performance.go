package production

import "time"

type Performance string

const (
	PerformancePending Performance = "pending"
	PerformanceLate    Performance = "late"
	PerformanceOnTime  Performance = "on_time"
	PerformanceAhead   Performance = "ahead"
)

// DeliveryPerformance compares the completion date with the promised delivery date, by calendar day.
func DeliveryPerformance(deliveryDate time.Time, completionDate *time.Time) Performance {
	if completionDate == nil {
		return PerformancePending
	}
	switch diff := DaysBetween(deliveryDate, *completionDate); {
	case diff > 0:
		return PerformanceLate
	case diff < 0:
		return PerformanceAhead
	default:
		return PerformanceOnTime
	}
}
