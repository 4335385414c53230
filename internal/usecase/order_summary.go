package usecase

import (
	"time"

	"gestao_producao/internal/domain/entities"
	"gestao_producao/internal/domain/production"
)

// OrderSummary is an order together with the figures derived from its stages.
// It is rebuilt on every read; none of the derived values are stored.
type OrderSummary struct {
	Order        entities.Order
	Progress     int
	ItemProgress []int
	Urgency      production.UrgencyBucket
	Performance  production.Performance
}

func summarize(o entities.Order, today time.Time) OrderSummary {
	items := make([]int, len(o.Items))
	for i, it := range o.Items {
		items[i] = production.ItemProgress(it.Stages)
	}
	return OrderSummary{
		Order:        o,
		Progress:     production.OrderProgress(o.Items),
		ItemProgress: items,
		Urgency:      production.Urgency(o.DeliveryDate, o.Status, today),
		Performance:  production.DeliveryPerformance(o.DeliveryDate, o.CompletionDate),
	}
}
