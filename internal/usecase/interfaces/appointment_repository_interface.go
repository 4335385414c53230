package interfaces

import (
	"context"
	"time"

	"gestao_producao/internal/domain/entities"
)

// IAppointmentRepository reads the appointment audit trail. Appointments are only
// written together with their order (see IOrderRepository.SaveWithAppointment).

type IAppointmentRepository interface {
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Appointment, error)
	ListSince(ctx context.Context, since time.Time) ([]entities.Appointment, error)
}
