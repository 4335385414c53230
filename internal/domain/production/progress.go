package production

import (
	"math"

	"gestao_producao/internal/domain/entities"
)

// ItemProgress is the share of completed stages, 0..100. In-progress stages earn nothing.
func ItemProgress(stages []entities.Stage) int {
	if len(stages) == 0 {
		return 0
	}
	done := 0
	for _, s := range stages {
		if s.Status == entities.StageStatusCompleted {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(stages))))
}

// OrderProgress is the unweighted mean of the item progresses, whatever each item's quantity.
func OrderProgress(items []entities.OrderItem) int {
	if len(items) == 0 {
		return 0
	}
	sum := 0
	for _, it := range items {
		sum += ItemProgress(it.Stages)
	}
	return int(math.Round(float64(sum) / float64(len(items))))
}

// WeightedOrderProgress weighs each item's progress by its quantity (quantity <= 0 counts as 1).
// Used by the spreadsheet export alongside OrderProgress.
func WeightedOrderProgress(items []entities.OrderItem) int {
	if len(items) == 0 {
		return 0
	}
	var sum, weight float64
	for _, it := range items {
		q := float64(it.Quantity)
		if q <= 0 {
			q = 1
		}
		sum += q * float64(ItemProgress(it.Stages))
		weight += q
	}
	return int(math.Round(sum / weight))
}
