package production

import (
	"encoding/json"
	"math"
	"testing"

	"gestao_producao/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseDurationDays(t *testing.T) {
	tests := []struct {
		raw  any
		want int
	}{
		{nil, 1},
		{"", 1},
		{"abc", 1},
		{-2, 1},
		{"-1", 1},
		{math.NaN(), 1},
		{struct{}{}, 1},
		{0, 0},
		{3, 3},
		{int64(4), 4},
		{2.0, 2},
		{" 5 ", 5},
		{"2,6", 3},
		{json.Number("7"), 7},
		{"3650", 3650},
		{"3650,4", 3650},
		{"3651", 1},
		{"3000000", 1},
		{"1e20", 1},
		{1e300, 1},
		{int64(math.MaxInt64), 1},
		{math.Inf(1), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDurationDays(tt.raw), "raw %#v", tt.raw)
	}
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		raw  any
		want string
	}{
		{nil, "0"},
		{"", "0"},
		{"n/a", "0"},
		{true, "0"},
		{100, "100"},
		{12.5, "12.5"},
		{"1234.5", "1234.5"},
		{"1.234,5", "1234.5"},
		{" 80 kg ", "80"},
		{json.Number("42"), "42"},
		{decimal.NewFromInt(9), "9"},
	}
	for _, tt := range tests {
		got := ParseWeight(tt.raw)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "raw %#v: got %s", tt.raw, got)
	}
}

func TestParseStageStatus(t *testing.T) {
	assert.Equal(t, entities.StageStatusCompleted, ParseStageStatus("Concluído"))
	assert.Equal(t, entities.StageStatusCompleted, ParseStageStatus("completed"))
	assert.Equal(t, entities.StageStatusInProgress, ParseStageStatus("Em Andamento"))
	assert.Equal(t, entities.StageStatusInProgress, ParseStageStatus("in_progress"))
	assert.Equal(t, entities.StageStatusPending, ParseStageStatus("Não Iniciado"))
	assert.Equal(t, entities.StageStatusPending, ParseStageStatus(""))
}

func TestParseOrderStatus(t *testing.T) {
	assert.Equal(t, entities.OrderStatusCompleted, ParseOrderStatus("Finalizado"))
	assert.Equal(t, entities.OrderStatusCancelled, ParseOrderStatus("Cancelado"))
	assert.Equal(t, entities.OrderStatusInProgress, ParseOrderStatus("Em Produção"))
	assert.Equal(t, entities.OrderStatusPending, ParseOrderStatus("whatever"))
}
