package entities

import "time"

type AppointmentAction string

const (
	AppointmentActionStart  AppointmentAction = "start"
	AppointmentActionFinish AppointmentAction = "finish"
)

// Appointment is the audit record of an operator reporting a stage start/finish
// (usually by scanning the item QR code on the shop floor).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
type Appointment struct {
	ID         string            `json:"id"`
	OrderID    string            `json:"order_id"`
	ItemIndex  int               `json:"item_index"`
	StageIndex int               `json:"stage_index"`
	StageName  string            `json:"stage_name"`
	Action     AppointmentAction `json:"action"`
	Operator   string            `json:"operator"`
	OccurredAt time.Time         `json:"occurred_at"`
	CreatedAt  time.Time         `json:"created_at"`
}
