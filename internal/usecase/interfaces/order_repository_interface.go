package interfaces

import (
	"context"
	"errors"
	"time"

	"gestao_producao/internal/domain/entities"
)

// ErrVersionConflict is returned when the stored order changed since it was read.
var ErrVersionConflict = errors.New("order version conflict")

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Lookups return a zero Order (empty ID) when nothing matches.
//
// SaveWithAppointment writes the order and the appointment audit record in one
// transaction, guarded by o.Version (the version that was read). The saved order
// carries the incremented version.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByShareToken(ctx context.Context, token string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, completionDate *time.Time) (entities.Order, error)
	SaveWithAppointment(ctx context.Context, o entities.Order, a entities.Appointment) (entities.Order, error)
}
