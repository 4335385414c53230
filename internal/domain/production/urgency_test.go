package production

import (
	"testing"
	"time"

	"gestao_producao/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestUrgency_Scenarios(t *testing.T) {
	today := time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, UrgencyToday, Urgency(today, entities.OrderStatusInProgress, today))
	assert.Equal(t, UrgencyOverdue, Urgency(today.AddDate(0, 0, -1), entities.OrderStatusInProgress, today))
	assert.Equal(t, UrgencyCompleted, Urgency(today.AddDate(0, 0, -30), entities.OrderStatusCompleted, today))
	assert.Equal(t, UrgencyCompleted, Urgency(today, entities.OrderStatusCancelled, today))
}

func TestUrgency_Boundaries(t *testing.T) {
	today := day("2024-05-20")
	tests := []struct {
		days int
		want UrgencyBucket
	}{
		{-1, UrgencyOverdue},
		{0, UrgencyToday},
		{1, UrgencyTomorrow},
		{2, UrgencyCritical},
		{3, UrgencyCritical},
		{4, UrgencyUrgent},
		{7, UrgencyUrgent},
		{8, UrgencySoon},
		{14, UrgencySoon},
		{15, UrgencyNormal},
	}
	for _, tt := range tests {
		got := Urgency(today.AddDate(0, 0, tt.days), entities.OrderStatusPending, today)
		assert.Equal(t, tt.want, got, "days until %d", tt.days)
	}
}

func TestUrgency_Completeness(t *testing.T) {
	today := day("2024-01-01")
	valid := map[UrgencyBucket]bool{}
	for _, b := range UrgencyBuckets {
		valid[b] = true
	}

	prev := UrgencyOverdue
	rank := map[UrgencyBucket]int{}
	for i, b := range UrgencyBuckets {
		rank[b] = i
	}
	for d := -1000; d <= 1000; d++ {
		got := Urgency(today.AddDate(0, 0, d), entities.OrderStatusInProgress, today)
		if !valid[got] || got == UrgencyCompleted {
			t.Fatalf("days %d: unexpected bucket %q", d, got)
		}
		if rank[got] < rank[prev] {
			t.Fatalf("days %d: bucket %q goes back from %q", d, got, prev)
		}
		prev = got
	}
}

func TestUrgency_IgnoresClockTime(t *testing.T) {
	today := time.Date(2024, 5, 20, 23, 59, 0, 0, time.UTC)
	delivery := time.Date(2024, 5, 21, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, UrgencyTomorrow, Urgency(delivery, entities.OrderStatusPending, today))
}

func TestCountByUrgency(t *testing.T) {
	today := day("2024-05-20")
	orders := []entities.Order{
		{ID: "1", Status: entities.OrderStatusPending, DeliveryDate: day("2024-05-19")},
		{ID: "2", Status: entities.OrderStatusInProgress, DeliveryDate: day("2024-05-20")},
		{ID: "3", Status: entities.OrderStatusInProgress, DeliveryDate: day("2024-05-19")},
		{ID: "4", Status: entities.OrderStatusCompleted, DeliveryDate: day("2024-05-01")},
	}
	counts := CountByUrgency(orders, today)

	assert.Len(t, counts, len(UrgencyBuckets))
	assert.Equal(t, 2, counts[UrgencyOverdue])
	assert.Equal(t, 1, counts[UrgencyToday])
	assert.Equal(t, 1, counts[UrgencyCompleted])
	assert.Equal(t, 0, counts[UrgencyNormal])
}

func TestDeliveryPerformance(t *testing.T) {
	delivery := day("2024-05-20")

	assert.Equal(t, PerformancePending, DeliveryPerformance(delivery, nil))
	assert.Equal(t, PerformanceLate, DeliveryPerformance(delivery, dayPtr("2024-05-21")))
	assert.Equal(t, PerformanceAhead, DeliveryPerformance(delivery, dayPtr("2024-05-18")))
	late := time.Date(2024, 5, 20, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, PerformanceOnTime, DeliveryPerformance(delivery, &late))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(day("2024-03-10"), time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, DaysBetween(day("2024-02-28"), day("2024-02-29")))
	assert.Equal(t, 2, DaysBetween(day("2024-02-28"), day("2024-03-01")))
	assert.Equal(t, -366, DaysBetween(day("2025-01-01"), day("2024-01-01")))
}
