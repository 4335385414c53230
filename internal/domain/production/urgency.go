package production

import (
	"time"

	"gestao_producao/internal/domain/entities"
)

type UrgencyBucket string

const (
	UrgencyCompleted UrgencyBucket = "completed"
	UrgencyOverdue   UrgencyBucket = "overdue"
	UrgencyToday     UrgencyBucket = "today"
	UrgencyTomorrow  UrgencyBucket = "tomorrow"
	UrgencyCritical  UrgencyBucket = "critical"
	UrgencyUrgent    UrgencyBucket = "urgent"
	UrgencySoon      UrgencyBucket = "soon"
	UrgencyNormal    UrgencyBucket = "normal"
)

// UrgencyBuckets lists every bucket in dashboard display order.
var UrgencyBuckets = []UrgencyBucket{
	UrgencyOverdue, UrgencyToday, UrgencyTomorrow, UrgencyCritical,
	UrgencyUrgent, UrgencySoon, UrgencyNormal, UrgencyCompleted,
}

// Urgency classifies a delivery date relative to today. The bins are fixed; existing
// reports depend on them.
func Urgency(deliveryDate time.Time, status entities.OrderStatus, today time.Time) UrgencyBucket {
	if status.IsClosed() {
		return UrgencyCompleted
	}
	return bucketFor(DaysBetween(today, deliveryDate))
}

func bucketFor(daysUntil int) UrgencyBucket {
	switch {
	case daysUntil < 0:
		return UrgencyOverdue
	case daysUntil == 0:
		return UrgencyToday
	case daysUntil == 1:
		return UrgencyTomorrow
	case daysUntil <= 3:
		return UrgencyCritical
	case daysUntil <= 7:
		return UrgencyUrgent
	case daysUntil <= 14:
		return UrgencySoon
	default:
		return UrgencyNormal
	}
}

// CountByUrgency counts orders per bucket. Every bucket is present in the result.
func CountByUrgency(orders []entities.Order, today time.Time) map[UrgencyBucket]int {
	counts := make(map[UrgencyBucket]int, len(UrgencyBuckets))
	for _, b := range UrgencyBuckets {
		counts[b] = 0
	}
	for _, o := range orders {
		counts[Urgency(o.DeliveryDate, o.Status, today)]++
	}
	return counts
}
