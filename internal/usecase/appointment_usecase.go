package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gestao_producao/internal/domain/entities"
	"gestao_producao/internal/domain/production"
	"gestao_producao/internal/infrastructure/logger"
	"gestao_producao/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrStageAlreadyStarted  = errors.New("stage already started")
	ErrStageAlreadyFinished = errors.New("stage already finished")
)

// AppointmentInput is one operator report for a stage of an order item.
// At is the shop-floor time of the event; zero means "now".
type AppointmentInput struct {
	OrderID    string
	ItemIndex  int
	StageIndex int
	Operator   string
	At         time.Time
}

// IAppointmentUseCase applies shop-floor appointments to orders.
//
// Each appointment is applied under a per-order lock and persisted atomically with its
// audit record, so a given report changes the stored order at most once.

type IAppointmentUseCase interface {
	StartStage(ctx context.Context, in AppointmentInput) (OrderSummary, error)
	FinishStage(ctx context.Context, in AppointmentInput) (OrderSummary, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Appointment, error)
}

type AppointmentUseCase struct {
	orders       interfaces.IOrderRepository
	appointments interfaces.IAppointmentRepository
	locker       interfaces.IOrderLocker
	log          *logrus.Logger
	now          func() time.Time
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(orders interfaces.IOrderRepository, appointments interfaces.IAppointmentRepository, locker interfaces.IOrderLocker) *AppointmentUseCase {
	return &AppointmentUseCase{
		orders:       orders,
		appointments: appointments,
		locker:       locker,
		log:          logger.GetLogger(),
		now:          time.Now,
	}
}

func (u *AppointmentUseCase) StartStage(ctx context.Context, in AppointmentInput) (OrderSummary, error) {
	return u.apply(ctx, in, entities.AppointmentActionStart)
}

func (u *AppointmentUseCase) FinishStage(ctx context.Context, in AppointmentInput) (OrderSummary, error) {
	return u.apply(ctx, in, entities.AppointmentActionFinish)
}

func (u *AppointmentUseCase) apply(ctx context.Context, in AppointmentInput, action entities.AppointmentAction) (OrderSummary, error) {
	in.OrderID = strings.TrimSpace(in.OrderID)
	if in.OrderID == "" {
		return OrderSummary{}, ErrInvalidOrderID
	}
	now := u.now().UTC()
	if in.At.IsZero() {
		in.At = now
	}
	fields := logrus.Fields{
		"order_id":    in.OrderID,
		"item_index":  in.ItemIndex,
		"stage_index": in.StageIndex,
		"action":      action,
	}
	u.log.WithFields(fields).Info("[appointment][usecase] apply start")

	unlock, err := u.locker.Lock(ctx, in.OrderID)
	if err != nil {
		u.log.WithFields(fields).WithError(err).Warn("[appointment][usecase] lock failed")
		if errors.Is(err, interfaces.ErrLockNotObtained) {
			return OrderSummary{}, ErrOrderLocked
		}
		return OrderSummary{}, err
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			u.log.WithFields(fields).WithError(err).Warn("[appointment][usecase] unlock failed")
		}
	}()

	order, err := u.orders.GetByID(ctx, in.OrderID)
	if err != nil {
		u.log.WithFields(fields).WithError(err).Error("[appointment][usecase] failed loading order")
		return OrderSummary{}, err
	}
	if order.ID == "" {
		return OrderSummary{}, ErrOrderNotFound
	}
	if order.Status.IsClosed() {
		return OrderSummary{}, ErrOrderClosed
	}
	if in.ItemIndex < 0 || in.ItemIndex >= len(order.Items) {
		return OrderSummary{}, fmt.Errorf("%w: item %d not in [0,%d)", production.ErrInvalidIndex, in.ItemIndex, len(order.Items))
	}

	items := make([]entities.OrderItem, len(order.Items))
	copy(items, order.Items)
	stages := append([]entities.Stage(nil), items[in.ItemIndex].Stages...)
	if in.StageIndex < 0 || in.StageIndex >= len(stages) {
		return OrderSummary{}, fmt.Errorf("%w: stage %d not in [0,%d)", production.ErrInvalidIndex, in.StageIndex, len(stages))
	}

	at := in.At.UTC()
	stage := &stages[in.StageIndex]
	switch action {
	case entities.AppointmentActionStart:
		if stage.ActualStart != nil {
			return OrderSummary{}, ErrStageAlreadyStarted
		}
		stage.ActualStart = &at
		if stage.Status != entities.StageStatusCompleted {
			stage.Status = entities.StageStatusInProgress
		}
	case entities.AppointmentActionFinish:
		if stage.ActualEnd != nil {
			return OrderSummary{}, ErrStageAlreadyFinished
		}
		stage.ActualEnd = &at
		stage.Status = entities.StageStatusCompleted
		// the shop-floor calendar day, not the UTC one, drives the schedule
		stages, err = production.Recalculate(stages, in.StageIndex, in.At)
		if err != nil {
			return OrderSummary{}, err
		}
	}
	items[in.ItemIndex].Stages = stages
	order.Items = items
	if order.Status == entities.OrderStatusPending {
		order.Status = entities.OrderStatusInProgress
	}
	order.UpdatedAt = now

	appt := entities.Appointment{
		ID:         uuid.NewString(),
		OrderID:    order.ID,
		ItemIndex:  in.ItemIndex,
		StageIndex: in.StageIndex,
		StageName:  stages[in.StageIndex].Name,
		Action:     action,
		Operator:   strings.TrimSpace(in.Operator),
		OccurredAt: at,
		CreatedAt:  now,
	}

	saved, err := u.orders.SaveWithAppointment(ctx, order, appt)
	if err != nil {
		logger.LogError(u.log, "appointment", operationName(action), "[appointment][usecase] save failed", fields, err)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return OrderSummary{}, ErrOrderConflict
		}
		return OrderSummary{}, err
	}
	u.log.WithFields(fields).WithField("appointment_id", appt.ID).Info("[appointment][usecase] apply success")
	return summarize(saved, now), nil
}

func operationName(action entities.AppointmentAction) string {
	if action == entities.AppointmentActionStart {
		return "StartStage"
	}
	return "FinishStage"
}

// ListByOrderID returns the audit trail of an order, newest first.
func (u *AppointmentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.Appointment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.appointments.ListByOrderID(ctx, orderID)
}
