package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gestao_producao/internal/domain/entities"
	"gestao_producao/internal/domain/production"
	"gestao_producao/internal/usecase"

	"github.com/shopspring/decimal"
)

func day(d int) *time.Time {
	t := time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sampleSummary() usecase.OrderSummary {
	return usecase.OrderSummary{
		Order: entities.Order{
			ID:           "o-1",
			OrderNumber:  "PED-001",
			CustomerID:   "c-1",
			CustomerName: "Metalúrgica Silva",
			Status:       entities.OrderStatusInProgress,
			Weight:       decimal.RequireFromString("1234.5"),
			OrderDate:    *day(1),
			DeliveryDate: *day(20),
			ShareToken:   "tok",
			Version:      4,
			Items: []entities.OrderItem{{
				Code:     "IT-1",
				Quantity: 2,
				Stages: []entities.Stage{
					{Name: "Corte", Status: entities.StageStatusCompleted, DurationDays: 2, PlannedStart: day(1), PlannedEnd: day(2), ActualEnd: day(3)},
					{Name: "Solda", Status: entities.StageStatusPending, DurationDays: 3, PlannedStart: day(4), PlannedEnd: day(6)},
				},
			}},
		},
		Progress:     50,
		ItemProgress: []int{50},
		Urgency:      production.UrgencySoon,
		Performance:  production.PerformancePending,
	}
}

func TestFromOrderSummary(t *testing.T) {
	res := FromOrderSummary(sampleSummary())
	if res.ID != "o-1" || res.Status != "in_progress" || res.Progress != 50 || res.Urgency != "soon" || res.Performance != "pending" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.OrderDate != "2024-03-01" || res.DeliveryDate != "2024-03-20" {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].Progress != 50 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	st := res.Items[0].Stages[1]
	if st.PlannedStart != "2024-03-04" || st.PlannedEnd != "2024-03-06" || st.ActualEnd != nil {
		t.Fatalf("unexpected stage: %+v", st)
	}

	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(body), `"weight":"1234.5"`) {
		t.Fatalf("expected weight as decimal string, got %s", body)
	}
	if strings.Contains(string(body), "completion_date") {
		t.Fatalf("completion_date must be omitted while open: %s", body)
	}
}

func TestToPublicSchedule(t *testing.T) {
	res := ToPublicSchedule(sampleSummary())
	if res.OrderNumber != "PED-001" || res.Progress != 50 || res.DeliveryDate != "2024-03-20" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}

	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, hidden := range []string{"share_token", "weight", "customer_id", `"id"`} {
		if strings.Contains(string(body), hidden) {
			t.Fatalf("public schedule leaks %s: %s", hidden, body)
		}
	}
}

func TestFromDashboard(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	d := usecase.Dashboard{
		GeneratedAt:   now,
		UrgencyCounts: map[production.UrgencyBucket]int{production.UrgencyOverdue: 2, production.UrgencySoon: 1},
		Orders:        []usecase.OrderSummary{sampleSummary()},
		Ranking: []production.CustomerRankingEntry{{
			CustomerID:    "c-1",
			CustomerName:  "Metalúrgica Silva",
			TotalWeight:   decimal.NewFromInt(100),
			OrderCount:    3,
			AverageWeight: decimal.NewFromInt(100).Div(decimal.NewFromInt(3)),
		}},
		RecentAppointments: []entities.Appointment{{ID: "a-1", Action: entities.AppointmentActionFinish, OccurredAt: now}},
	}

	res := FromDashboard(d)
	if len(res.UrgencyCounts) != len(production.UrgencyBuckets) {
		t.Fatalf("expected every bucket, got %+v", res.UrgencyCounts)
	}
	if res.UrgencyCounts[0].Urgency != "overdue" || res.UrgencyCounts[0].Count != 2 {
		t.Fatalf("unexpected first bucket: %+v", res.UrgencyCounts[0])
	}
	if len(res.Orders) != 1 || res.Orders[0].Progress != 50 || res.Orders[0].DeliveryDate != "2024-03-20" {
		t.Fatalf("unexpected cards: %+v", res.Orders)
	}
	if res.Ranking[0].TotalWeight != 100 || res.Ranking[0].AverageWeight != 33.33 {
		t.Fatalf("unexpected ranking: %+v", res.Ranking)
	}
	if len(res.RecentAppointments) != 1 || res.RecentAppointments[0].Action != "finish" {
		t.Fatalf("unexpected appointments: %+v", res.RecentAppointments)
	}
}
