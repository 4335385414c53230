package interfaces

import (
	"io"
	"time"

	"gestao_producao/internal/domain/entities"
)

// IScheduleExporter renders the production schedule of the given orders as a spreadsheet.
type IScheduleExporter interface {
	Export(w io.Writer, orders []entities.Order, today time.Time) error
}
