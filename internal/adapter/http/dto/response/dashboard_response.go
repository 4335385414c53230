package response

import (
	"time"

	"gestao_producao/internal/domain/production"
	"gestao_producao/internal/usecase"
)

type UrgencyCountResponse struct {
	Urgency string `json:"urgency"`
	Count   int    `json:"count"`
}

type OrderCardResponse struct {
	ID           string `json:"id"`
	OrderNumber  string `json:"order_number"`
	CustomerName string `json:"customer_name"`
	Status       string `json:"status"`
	DeliveryDate string `json:"delivery_date"`
	Progress     int    `json:"progress"`
	Urgency      string `json:"urgency"`
}

type CustomerRankingResponse struct {
	CustomerID    string  `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	TotalWeight   float64 `json:"total_weight"`
	OrderCount    int     `json:"order_count"`
	AverageWeight float64 `json:"average_weight"`
}

type DashboardResponse struct {
	GeneratedAt        time.Time                 `json:"generated_at"`
	UrgencyCounts      []UrgencyCountResponse    `json:"urgency_counts"`
	Orders             []OrderCardResponse       `json:"orders"`
	Ranking            []CustomerRankingResponse `json:"ranking"`
	RecentAppointments []AppointmentResponse     `json:"recent_appointments"`
}

// FromDashboard keeps urgency counts in display order, most pressing first.
func FromDashboard(d usecase.Dashboard) DashboardResponse {
	counts := make([]UrgencyCountResponse, 0, len(production.UrgencyBuckets))
	for _, b := range production.UrgencyBuckets {
		counts = append(counts, UrgencyCountResponse{Urgency: string(b), Count: d.UrgencyCounts[b]})
	}

	cards := make([]OrderCardResponse, len(d.Orders))
	for i, s := range d.Orders {
		cards[i] = OrderCardResponse{
			ID:           s.Order.ID,
			OrderNumber:  s.Order.OrderNumber,
			CustomerName: s.Order.CustomerName,
			Status:       string(s.Order.Status),
			DeliveryDate: formatDate(s.Order.DeliveryDate),
			Progress:     s.Progress,
			Urgency:      string(s.Urgency),
		}
	}

	ranking := make([]CustomerRankingResponse, len(d.Ranking))
	for i, r := range d.Ranking {
		ranking[i] = CustomerRankingResponse{
			CustomerID:    r.CustomerID,
			CustomerName:  r.CustomerName,
			TotalWeight:   r.TotalWeight.InexactFloat64(),
			OrderCount:    r.OrderCount,
			AverageWeight: r.AverageWeight.Round(2).InexactFloat64(),
		}
	}

	return DashboardResponse{
		GeneratedAt:        d.GeneratedAt,
		UrgencyCounts:      counts,
		Orders:             cards,
		Ranking:            ranking,
		RecentAppointments: FromAppointments(d.RecentAppointments),
	}
}
