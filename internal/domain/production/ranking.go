package production

import (
	"sort"

	"gestao_producao/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CustomerRankingEntry struct {
	CustomerID    string
	CustomerName  string
	TotalWeight   decimal.Decimal
	OrderCount    int
	AverageWeight decimal.Decimal
}

// RankCustomers groups orders by customer and returns the limit heaviest customers by
// total weight. Ties keep the order in which customers first appear in orders.
func RankCustomers(orders []entities.Order, limit int) ([]CustomerRankingEntry, error) {
	if limit <= 0 {
		return nil, ErrInvalidInput
	}

	entries := make([]CustomerRankingEntry, 0)
	byCustomer := make(map[string]int)
	for _, o := range orders {
		idx, ok := byCustomer[o.CustomerID]
		if !ok {
			idx = len(entries)
			byCustomer[o.CustomerID] = idx
			entries = append(entries, CustomerRankingEntry{
				CustomerID:   o.CustomerID,
				CustomerName: o.CustomerName,
				TotalWeight:  decimal.Zero,
			})
		}
		entries[idx].TotalWeight = entries[idx].TotalWeight.Add(o.Weight)
		entries[idx].OrderCount++
	}

	for i := range entries {
		entries[i].AverageWeight = entries[i].TotalWeight.Div(decimal.NewFromInt(int64(entries[i].OrderCount)))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalWeight.GreaterThan(entries[j].TotalWeight)
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
