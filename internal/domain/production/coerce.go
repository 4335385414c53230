package production

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"gestao_producao/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Documents written by the legacy front-end carry numbers as strings, empty values or
// display labels. These helpers turn them into typed values at the ingestion boundary
// and never fail.

// MaxDurationDays is the longest stage duration accepted from stored or submitted data.
const MaxDurationDays = 3650

// ParseDurationDays returns the planned duration of a stage. Missing, non-numeric,
// negative or out-of-range (above MaxDurationDays) values become 1.
func ParseDurationDays(raw any) int {
	var f float64
	switch v := raw.(type) {
	case nil:
		return 1
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case float32:
		f = float64(v)
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 1
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(v), ",", "."), 64)
		if err != nil {
			return 1
		}
		f = parsed
	default:
		return 1
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 1
	}
	days := math.Round(f)
	if days > MaxDurationDays {
		return 1
	}
	return int(days)
}

// ParseWeight returns the order weight in kg, or zero when absent or unparseable.
// Both "1234.5" and the Brazilian "1.234,5" notations are accepted.
func ParseWeight(raw any) decimal.Decimal {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(v)
	case json.Number:
		return parseWeightString(v.String())
	case string:
		return parseWeightString(v)
	default:
		return decimal.Zero
	}
}

func parseWeightString(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSpace(strings.TrimSuffix(s, "kg"))
	if s == "" {
		return decimal.Zero
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseStageStatus maps stored codes and the legacy display labels
// ("Não Iniciado", "Em Andamento", "Concluído") to a StageStatus. Unknown values are pending.
func ParseStageStatus(raw string) entities.StageStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "completed", "concluído", "concluido":
		return entities.StageStatusCompleted
	case "in_progress", "em andamento":
		return entities.StageStatusInProgress
	default:
		return entities.StageStatusPending
	}
}

// ParseOrderStatus maps stored codes and legacy labels to an OrderStatus. Unknown values are pending.
func ParseOrderStatus(raw string) entities.OrderStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "completed", "concluído", "concluido", "finalizado":
		return entities.OrderStatusCompleted
	case "cancelled", "canceled", "cancelado":
		return entities.OrderStatusCancelled
	case "in_progress", "em andamento", "em produção", "em producao":
		return entities.OrderStatusInProgress
	default:
		return entities.OrderStatusPending
	}
}
