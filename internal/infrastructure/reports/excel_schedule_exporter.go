package reports

import (
	"io"
	"strconv"
	"time"

	"gestao_producao/internal/domain/entities"
	"gestao_producao/internal/domain/production"
	"gestao_producao/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	ordersSheet = "Pedidos"
	stagesSheet = "Etapas"
	// dates are rendered the way the shop floor reads them
	displayDate = "02/01/2006"
)

var (
	ordersHeader = []any{
		"Pedido", "Cliente", "Status", "Peso (kg)", "Data do pedido", "Entrega",
		"Urgência", "Progresso (%)", "Progresso ponderado (%)", "Desempenho",
	}
	stagesHeader = []any{
		"Pedido", "Item", "Descrição", "Quantidade", "Etapa", "Status", "Duração (dias)",
		"Início previsto", "Fim previsto", "Início real", "Fim real",
	}
)

var orderStatusLabels = map[entities.OrderStatus]string{
	entities.OrderStatusPending:    "Não Iniciado",
	entities.OrderStatusInProgress: "Em Andamento",
	entities.OrderStatusCompleted:  "Concluído",
	entities.OrderStatusCancelled:  "Cancelado",
}

var stageStatusLabels = map[entities.StageStatus]string{
	entities.StageStatusPending:    "Não Iniciado",
	entities.StageStatusInProgress: "Em Andamento",
	entities.StageStatusCompleted:  "Concluído",
}

var urgencyLabels = map[production.UrgencyBucket]string{
	production.UrgencyCompleted: "Finalizado",
	production.UrgencyOverdue:   "Atrasado",
	production.UrgencyToday:     "Entrega hoje",
	production.UrgencyTomorrow:  "Entrega amanhã",
	production.UrgencyCritical:  "Crítico",
	production.UrgencyUrgent:    "Urgente",
	production.UrgencySoon:      "Próximo",
	production.UrgencyNormal:    "Normal",
}

var performanceLabels = map[production.Performance]string{
	production.PerformancePending: "-",
	production.PerformanceLate:    "Atrasado",
	production.PerformanceOnTime:  "No prazo",
	production.PerformanceAhead:   "Adiantado",
}

// ExcelScheduleExporter writes the schedule workbook: one row per order on "Pedidos"
// and one row per stage on "Etapas".
type ExcelScheduleExporter struct{}

var _ interfaces.IScheduleExporter = ExcelScheduleExporter{}

func NewExcelScheduleExporter() ExcelScheduleExporter {
	return ExcelScheduleExporter{}
}

func (ExcelScheduleExporter) Export(w io.Writer, orders []entities.Order, today time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(stagesSheet); err != nil {
		return err
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := writeHeader(f, ordersSheet, ordersHeader, header); err != nil {
		return err
	}
	if err := writeHeader(f, stagesSheet, stagesHeader, header); err != nil {
		return err
	}

	stageRow := 2
	for i, o := range orders {
		if err := setRow(f, ordersSheet, i+2, orderRow(o, today)); err != nil {
			return err
		}
		for itemIdx, it := range o.Items {
			for _, s := range it.Stages {
				if err := setRow(f, stagesSheet, stageRow, stageRowValues(o, itemIdx, it, s)); err != nil {
					return err
				}
				stageRow++
			}
		}
	}

	return f.Write(w)
}

func writeHeader(f *excelize.File, sheet string, values []any, style int) error {
	if err := setRow(f, sheet, 1, values); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(values), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(values))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 18)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func orderRow(o entities.Order, today time.Time) []any {
	return []any{
		o.OrderNumber,
		o.CustomerName,
		orderStatusLabels[o.Status],
		o.Weight.InexactFloat64(),
		formatDate(&o.OrderDate),
		formatDate(&o.DeliveryDate),
		urgencyLabels[production.Urgency(o.DeliveryDate, o.Status, today)],
		production.OrderProgress(o.Items),
		production.WeightedOrderProgress(o.Items),
		performanceLabels[production.DeliveryPerformance(o.DeliveryDate, o.CompletionDate)],
	}
}

func stageRowValues(o entities.Order, itemIdx int, it entities.OrderItem, s entities.Stage) []any {
	item := it.Code
	if item == "" {
		item = strconv.Itoa(itemIdx + 1)
	}
	return []any{
		o.OrderNumber,
		item,
		it.Description,
		it.Quantity,
		s.Name,
		stageStatusLabels[s.Status],
		s.DurationDays,
		formatDate(s.PlannedStart),
		formatDate(s.PlannedEnd),
		formatDate(s.ActualStart),
		formatDate(s.ActualEnd),
	}
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(displayDate)
}
