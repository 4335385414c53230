package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"gestao_producao/internal/domain/entities"
	"gestao_producao/internal/domain/production"
	"gestao_producao/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidOrderInput = errors.New("invalid order input")
	ErrInvalidShareToken = errors.New("invalid share token")
	ErrOrderClosed       = errors.New("order already closed")
	ErrOrderConflict     = errors.New("order was modified concurrently")
	ErrOrderLocked       = errors.New("order is being updated by another operator")
)

// CreateOrderInput carries a new order as typed values; coercion of legacy fields
// happens before it reaches the use case.
type CreateOrderInput struct {
	OrderNumber  string
	CustomerID   string
	CustomerName string
	Weight       decimal.Decimal
	OrderDate    time.Time
	DeliveryDate time.Time
	Items        []entities.OrderItem
}

// IOrderUseCase exposes manufacturing order operations.
//
//   - CreateOrder plans every item's stage dates from the order date.
//   - Complete / Cancel close the order (PATCH /orders/{id}/complete|cancel).
//   - GetPublicSchedule resolves the shareable link sent to customers.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (OrderSummary, error)
	GetByID(ctx context.Context, id string) (OrderSummary, error)
	List(ctx context.Context) ([]OrderSummary, error)
	Complete(ctx context.Context, id string) (OrderSummary, error)
	Cancel(ctx context.Context, id string) (OrderSummary, error)
	GetPublicSchedule(ctx context.Context, token string) (OrderSummary, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
	now  func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, now: time.Now}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (OrderSummary, error) {
	in.OrderNumber = strings.TrimSpace(in.OrderNumber)
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	if in.OrderNumber == "" || in.CustomerID == "" || in.DeliveryDate.IsZero() || len(in.Items) == 0 {
		return OrderSummary{}, ErrInvalidOrderInput
	}

	now := u.now().UTC()
	orderDate := in.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}

	items := make([]entities.OrderItem, len(in.Items))
	for i, it := range in.Items {
		if len(it.Stages) == 0 {
			return OrderSummary{}, ErrInvalidOrderInput
		}
		stages := make([]entities.Stage, len(it.Stages))
		for j, s := range it.Stages {
			s.Name = strings.TrimSpace(s.Name)
			if s.Name == "" {
				return OrderSummary{}, ErrInvalidOrderInput
			}
			if s.Status == "" {
				s.Status = entities.StageStatusPending
			}
			stages[j] = s
		}
		it.Stages = production.PlanStages(stages, orderDate)
		items[i] = it
	}

	o := entities.Order{
		ID:           uuid.NewString(),
		OrderNumber:  in.OrderNumber,
		CustomerID:   in.CustomerID,
		CustomerName: strings.TrimSpace(in.CustomerName),
		Status:       entities.OrderStatusPending,
		Weight:       in.Weight,
		OrderDate:    production.DateOnly(orderDate),
		DeliveryDate: production.DateOnly(in.DeliveryDate),
		ShareToken:   uuid.NewString(),
		Items:        items,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return OrderSummary{}, err
	}
	return summarize(created, now), nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (OrderSummary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return OrderSummary{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return OrderSummary{}, err
	}
	if o.ID == "" {
		return OrderSummary{}, ErrOrderNotFound
	}
	return summarize(o, u.now()), nil
}

// List returns every order, soonest delivery first.
func (u *OrderUseCase) List(ctx context.Context) ([]OrderSummary, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return summarizeAll(orders, u.now()), nil
}

func (u *OrderUseCase) Complete(ctx context.Context, id string) (OrderSummary, error) {
	completedAt := u.now().UTC()
	return u.close(ctx, id, entities.OrderStatusCompleted, &completedAt)
}

func (u *OrderUseCase) Cancel(ctx context.Context, id string) (OrderSummary, error) {
	return u.close(ctx, id, entities.OrderStatusCancelled, nil)
}

func (u *OrderUseCase) close(ctx context.Context, id string, status entities.OrderStatus, completionDate *time.Time) (OrderSummary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return OrderSummary{}, ErrInvalidOrderID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return OrderSummary{}, err
	}
	if current.ID == "" {
		return OrderSummary{}, ErrOrderNotFound
	}
	if current.Status.IsClosed() {
		return OrderSummary{}, ErrOrderClosed
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status, completionDate)
	if err != nil {
		return OrderSummary{}, err
	}
	if updated.ID == "" {
		return OrderSummary{}, ErrOrderNotFound
	}
	return summarize(updated, u.now()), nil
}

func (u *OrderUseCase) GetPublicSchedule(ctx context.Context, token string) (OrderSummary, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return OrderSummary{}, ErrInvalidShareToken
	}

	o, err := u.repo.GetByShareToken(ctx, token)
	if err != nil {
		return OrderSummary{}, err
	}
	if o.ID == "" || o.Status == entities.OrderStatusCancelled {
		return OrderSummary{}, ErrOrderNotFound
	}
	return summarize(o, u.now()), nil
}

func summarizeAll(orders []entities.Order, today time.Time) []OrderSummary {
	sorted := make([]entities.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DeliveryDate.Before(sorted[j].DeliveryDate)
	})

	out := make([]OrderSummary, len(sorted))
	for i, o := range sorted {
		out[i] = summarize(o, today)
	}
	return out
}
