package request

import (
	"errors"
	"strings"
	"time"

	"gestao_producao/internal/domain/entities"
	"gestao_producao/internal/domain/production"
	"gestao_producao/internal/usecase"
)

var ErrInvalidDate = errors.New("invalid date")

// Accepted date inputs: ISO date, RFC 3339 timestamp and the dd/mm/yyyy used on the shop floor.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "02/01/2006"}

// StageRequest describes one production stage. duration_days may be a number or a numeric
// string; anything else falls back to one day.
type StageRequest struct {
	Name         string `json:"name" binding:"required"`
	Status       string `json:"status"`
	DurationDays any    `json:"duration_days" swaggertype:"integer"`
}

type OrderItemRequest struct {
	Code        string         `json:"code"`
	Description string         `json:"description"`
	Quantity    int            `json:"quantity"`
	Stages      []StageRequest `json:"stages" binding:"required,min=1,dive"`
}

// CreateOrderRequest is the payload of POST /orders. weight accepts numbers as well as
// "1.234,5" and "1234.5" strings; unparseable values count as zero.
type CreateOrderRequest struct {
	OrderNumber  string             `json:"order_number" binding:"required"`
	CustomerID   string             `json:"customer_id" binding:"required"`
	CustomerName string             `json:"customer_name"`
	Weight       any                `json:"weight" swaggertype:"string"`
	OrderDate    string             `json:"order_date"`
	DeliveryDate string             `json:"delivery_date" binding:"required"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CreateOrderRequest) ToInput() (usecase.CreateOrderInput, error) {
	delivery, err := ParseDate(r.DeliveryDate)
	if err != nil {
		return usecase.CreateOrderInput{}, err
	}
	var orderDate time.Time
	if strings.TrimSpace(r.OrderDate) != "" {
		if orderDate, err = ParseDate(r.OrderDate); err != nil {
			return usecase.CreateOrderInput{}, err
		}
	}

	items := make([]entities.OrderItem, len(r.Items))
	for i, it := range r.Items {
		stages := make([]entities.Stage, len(it.Stages))
		for j, s := range it.Stages {
			stages[j] = entities.Stage{
				Name:         s.Name,
				Status:       production.ParseStageStatus(s.Status),
				DurationDays: production.ParseDurationDays(s.DurationDays),
			}
		}
		items[i] = entities.OrderItem{
			Code:        strings.TrimSpace(it.Code),
			Description: it.Description,
			Quantity:    it.Quantity,
			Stages:      stages,
		}
	}

	return usecase.CreateOrderInput{
		OrderNumber:  r.OrderNumber,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Weight:       production.ParseWeight(r.Weight),
		OrderDate:    orderDate,
		DeliveryDate: delivery,
		Items:        items,
	}, nil
}

// ParseDate reads a calendar date in any of the accepted layouts.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return production.DateOnly(t), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
