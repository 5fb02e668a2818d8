package output

import (
	"sort"

	"github.com/iwvelando/sales-report/internal/allocate"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the spread of an allocation's quantities.
type Stats struct {
	Mean float64
	Min  float64
	Max  float64
}

// Summarize computes mean, minimum, and maximum over an allocation.
func Summarize(allocation allocate.Allocation) Stats {
	if len(allocation) == 0 {
		return Stats{}
	}
	values := make([]float64, len(allocation))
	for i, entry := range allocation {
		values[i] = entry.Quantity
	}
	return Stats{
		Mean: stat.Mean(values, nil),
		Min:  floats.Min(values),
		Max:  floats.Max(values),
	}
}

// RankDescending returns the allocation sorted by quantity, highest first.
// Ties preserve the original order.
func RankDescending(allocation allocate.Allocation) allocate.Allocation {
	ranked := make(allocate.Allocation, len(allocation))
	copy(ranked, allocation)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	return ranked
}

// Top returns the n highest-quantity entries.
func Top(allocation allocate.Allocation, n int) allocate.Allocation {
	ranked := RankDescending(allocation)
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
