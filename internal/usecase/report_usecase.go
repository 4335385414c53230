package usecase

import (
	"context"
	"io"
	"sort"
	"time"

	"gestao_producao/internal/domain/entities"
	"gestao_producao/internal/usecase/interfaces"
)

type IReportUseCase interface {
	ExportSchedule(ctx context.Context, w io.Writer) error
}

type ReportUseCase struct {
	orders   interfaces.IOrderRepository
	exporter interfaces.IScheduleExporter
	now      func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(orders interfaces.IOrderRepository, exporter interfaces.IScheduleExporter) *ReportUseCase {
	return &ReportUseCase{orders: orders, exporter: exporter, now: time.Now}
}

// ExportSchedule writes the schedule spreadsheet of every non-cancelled order,
// soonest delivery first.
func (u *ReportUseCase) ExportSchedule(ctx context.Context, w io.Writer) error {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return err
	}

	rows := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status != entities.OrderStatusCancelled {
			rows = append(rows, o)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DeliveryDate.Before(rows[j].DeliveryDate)
	})

	return u.exporter.Export(w, rows, u.now())
}
