package request

import (
	"strings"
	"time"

	"gestao_producao/internal/domain/entities"
	"gestao_producao/internal/usecase"
)

// AppointmentRequest is an operator report for one stage, usually sent by the
// QR-code reader on the shop floor. occurred_at defaults to the time it is received.
type AppointmentRequest struct {
	Action     string `json:"action" binding:"required,appointment_action" enums:"start,finish"`
	ItemIndex  *int   `json:"item_index" binding:"required"`
	StageIndex *int   `json:"stage_index" binding:"required"`
	Operator   string `json:"operator"`
	OccurredAt string `json:"occurred_at"`
}

func (r AppointmentRequest) ResolveAction() entities.AppointmentAction {
	return entities.AppointmentAction(strings.ToLower(strings.TrimSpace(r.Action)))
}

func (r AppointmentRequest) ToInput(orderID string) (usecase.AppointmentInput, error) {
	in := usecase.AppointmentInput{
		OrderID:    orderID,
		ItemIndex:  *r.ItemIndex,
		StageIndex: *r.StageIndex,
		Operator:   r.Operator,
	}
	if raw := strings.TrimSpace(r.OccurredAt); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return usecase.AppointmentInput{}, ErrInvalidDate
		}
		in.At = at
	}
	return in, nil
}
