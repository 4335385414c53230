package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gestao_producao/internal/domain/entities"
	"gestao_producao/internal/domain/production"
	"gestao_producao/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// recentWindow bounds the appointments shown on the dashboard feed.
const recentWindow = 24 * time.Hour

// Dashboard is the production overview rendered on the office screen.
type Dashboard struct {
	GeneratedAt        time.Time
	UrgencyCounts      map[production.UrgencyBucket]int
	Orders             []OrderSummary
	Ranking            []production.CustomerRankingEntry
	RecentAppointments []entities.Appointment
}

type IDashboardUseCase interface {
	GetDashboard(ctx context.Context, limit int) (Dashboard, error)
}

type DashboardUseCase struct {
	orders       interfaces.IOrderRepository
	appointments interfaces.IAppointmentRepository
	now          func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(orders interfaces.IOrderRepository, appointments interfaces.IAppointmentRepository) *DashboardUseCase {
	return &DashboardUseCase{orders: orders, appointments: appointments, now: time.Now}
}

// GetDashboard loads orders and the last day of appointments concurrently, then derives
// urgency counts, open-order summaries and the top limit customers by weight.
// Cancelled orders do not count towards the customer ranking.
func (u *DashboardUseCase) GetDashboard(ctx context.Context, limit int) (Dashboard, error) {
	if limit <= 0 {
		return Dashboard{}, fmt.Errorf("%w: limit must be positive", production.ErrInvalidInput)
	}
	now := u.now()

	var (
		orders []entities.Order
		recent []entities.Appointment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = u.orders.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = u.appointments.ListSince(gctx, now.Add(-recentWindow))
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	open := make([]entities.Order, 0, len(orders))
	ranked := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if !o.Status.IsClosed() {
			open = append(open, o)
		}
		if o.Status != entities.OrderStatusCancelled {
			ranked = append(ranked, o)
		}
	}

	ranking, err := production.RankCustomers(ranked, limit)
	if err != nil {
		return Dashboard{}, err
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].OccurredAt.After(recent[j].OccurredAt)
	})

	return Dashboard{
		GeneratedAt:        now.UTC(),
		UrgencyCounts:      production.CountByUrgency(orders, now),
		Orders:             summarizeAll(open, now),
		Ranking:            ranking,
		RecentAppointments: recent,
	}, nil
}
