package response

import (
	"time"

	"gestao_producao/internal/domain/entities"
	"gestao_producao/internal/usecase"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type StageResponse struct {
	Name         string     `json:"name"`
	Status       string     `json:"status"`
	DurationDays int        `json:"duration_days"`
	PlannedStart string     `json:"planned_start,omitempty"`
	PlannedEnd   string     `json:"planned_end,omitempty"`
	ActualStart  *time.Time `json:"actual_start,omitempty"`
	ActualEnd    *time.Time `json:"actual_end,omitempty"`
}

type OrderItemResponse struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Progress    int             `json:"progress"`
	Stages      []StageResponse `json:"stages"`
}

type OrderResponse struct {
	ID             string              `json:"id"`
	OrderNumber    string              `json:"order_number"`
	CustomerID     string              `json:"customer_id"`
	CustomerName   string              `json:"customer_name"`
	Status         string              `json:"status"`
	Weight         decimal.Decimal     `json:"weight" swaggertype:"string"`
	OrderDate      string              `json:"order_date"`
	DeliveryDate   string              `json:"delivery_date"`
	CompletionDate *time.Time          `json:"completion_date,omitempty"`
	ShareToken     string              `json:"share_token"`
	Progress       int                 `json:"progress"`
	Urgency        string              `json:"urgency"`
	Performance    string              `json:"performance"`
	Items          []OrderItemResponse `json:"items"`
	Version        int64               `json:"version"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// PublicScheduleResponse is what a customer sees through the share link: the schedule
// and progress, without internal identifiers or weights.
type PublicScheduleResponse struct {
	OrderNumber  string              `json:"order_number"`
	CustomerName string              `json:"customer_name"`
	Status       string              `json:"status"`
	DeliveryDate string              `json:"delivery_date"`
	Progress     int                 `json:"progress"`
	Urgency      string              `json:"urgency"`
	Items        []OrderItemResponse `json:"items"`
}

func FromOrderSummary(s usecase.OrderSummary) OrderResponse {
	o := s.Order
	return OrderResponse{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerID:     o.CustomerID,
		CustomerName:   o.CustomerName,
		Status:         string(o.Status),
		Weight:         o.Weight,
		OrderDate:      formatDate(o.OrderDate),
		DeliveryDate:   formatDate(o.DeliveryDate),
		CompletionDate: o.CompletionDate,
		ShareToken:     o.ShareToken,
		Progress:       s.Progress,
		Urgency:        string(s.Urgency),
		Performance:    string(s.Performance),
		Items:          fromItems(o.Items, s.ItemProgress),
		Version:        o.Version,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromOrderSummaries(list []usecase.OrderSummary) []OrderResponse {
	out := make([]OrderResponse, len(list))
	for i, s := range list {
		out[i] = FromOrderSummary(s)
	}
	return out
}

func ToPublicSchedule(s usecase.OrderSummary) PublicScheduleResponse {
	return PublicScheduleResponse{
		OrderNumber:  s.Order.OrderNumber,
		CustomerName: s.Order.CustomerName,
		Status:       string(s.Order.Status),
		DeliveryDate: formatDate(s.Order.DeliveryDate),
		Progress:     s.Progress,
		Urgency:      string(s.Urgency),
		Items:        fromItems(s.Order.Items, s.ItemProgress),
	}
}

func fromItems(items []entities.OrderItem, progress []int) []OrderItemResponse {
	out := make([]OrderItemResponse, len(items))
	for i, it := range items {
		stages := make([]StageResponse, len(it.Stages))
		for j, st := range it.Stages {
			stages[j] = StageResponse{
				Name:         st.Name,
				Status:       string(st.Status),
				DurationDays: st.DurationDays,
				PlannedStart: formatDatePtr(st.PlannedStart),
				PlannedEnd:   formatDatePtr(st.PlannedEnd),
				ActualStart:  st.ActualStart,
				ActualEnd:    st.ActualEnd,
			}
		}
		out[i] = OrderItemResponse{
			Code:        it.Code,
			Description: it.Description,
			Quantity:    it.Quantity,
			Stages:      stages,
		}
		if i < len(progress) {
			out[i].Progress = progress[i]
		}
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}
