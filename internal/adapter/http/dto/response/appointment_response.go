package response

import (
	"time"

	"gestao_producao/internal/domain/entities"
)

type AppointmentResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	ItemIndex  int       `json:"item_index"`
	StageIndex int       `json:"stage_index"`
	StageName  string    `json:"stage_name"`
	Action     string    `json:"action"`
	Operator   string    `json:"operator,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:         a.ID,
		OrderID:    a.OrderID,
		ItemIndex:  a.ItemIndex,
		StageIndex: a.StageIndex,
		StageName:  a.StageName,
		Action:     string(a.Action),
		Operator:   a.Operator,
		OccurredAt: a.OccurredAt,
	}
}

func FromAppointments(list []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, len(list))
	for i, a := range list {
		out[i] = FromAppointment(a)
	}
	return out
}
