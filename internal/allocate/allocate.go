// Package allocate distributes a fixed total quantity across an ordered set
// of categories such that the result sums exactly to the total, honoring
// per-category share bounds when provided. All randomness comes from a
// single seeded source owned by the Allocator, so a fixed seed and a fixed
// call order reproduce identical output.
package allocate

import (
	"fmt"
	"math/rand"

	"github.com/iwvelando/sales-report/pkg/constants"
	"github.com/iwvelando/sales-report/pkg/mathutil"
	"go.uber.org/zap"
)

// Category is a labeled partition key with optional share bounds. When both
// bounds are zero the default range from constants is used.
type Category struct {
	Name     string
	MinShare float64
	MaxShare float64
}

// bounds returns the effective share range for the category.
func (c Category) bounds() (float64, float64) {
	if c.MinShare == 0 && c.MaxShare == 0 {
		return constants.DefaultMinShare, constants.DefaultMaxShare
	}
	return c.MinShare, c.MaxShare
}

// Entry is one category's allocated quantity.
type Entry struct {
	Label    string
	Quantity float64
}

// Allocation maps categories to quantities while preserving the category
// order. The last entry is always the one that absorbed the residual.
type Allocation []Entry

// Sum returns the total quantity across all entries.
func (a Allocation) Sum() float64 {
	var sum float64
	for _, entry := range a {
		sum += entry.Quantity
	}
	return sum
}

// Quantity returns the quantity for the given label.
func (a Allocation) Quantity(label string) (float64, bool) {
	for _, entry := range a {
		if entry.Label == label {
			return entry.Quantity, true
		}
	}
	return 0, false
}

// Labels returns the category labels in allocation order.
func (a Allocation) Labels() []string {
	labels := make([]string, len(a))
	for i, entry := range a {
		labels[i] = entry.Label
	}
	return labels
}

// Allocator draws all random shares from one seeded source. Reusing an
// Allocator across multiple allocations extends the same draw sequence, so
// callers must keep the relative call order fixed for reproducibility.
type Allocator struct {
	rng    *rand.Rand
	logger *zap.Logger
}

// New returns an Allocator seeded with the given value.
func New(seed int64, logger *zap.Logger) *Allocator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Allocator{
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// validate rejects configurations the allocator cannot meaningfully serve.
func validate(total float64, categories []Category) error {
	if total <= 0 {
		return fmt.Errorf("total must be positive, got %.2f", total)
	}
	if len(categories) == 0 {
		return fmt.Errorf("categories must not be empty")
	}
	for _, category := range categories {
		min, max := category.bounds()
		if min < 0 || max > 1 {
			return fmt.Errorf("category %s has share bounds [%.2f, %.2f] outside [0, 1]",
				category.Name, min, max)
		}
		if min > max {
			return fmt.Errorf("category %s has minShare %.2f greater than maxShare %.2f",
				category.Name, min, max)
		}
	}
	return nil
}

// drawShares draws a bounded share for every category except the last, which
// takes whatever share remains. The result is not yet normalized.
func (a *Allocator) drawShares(categories []Category) []float64 {
	shares := make([]float64, len(categories))
	remaining := 1.0
	for i, category := range categories {
		if i == len(categories)-1 {
			shares[i] = remaining
			break
		}
		min, max := category.bounds()
		share := min + a.rng.Float64()*(max-min)
		shares[i] = share
		remaining -= share
	}
	return shares
}

// Allocate distributes total across the categories using the share-based
// scheme: bounded draws for all but the last category, residual absorption
// by the last, then normalization against the raw share sum so the quantity
// sum matches total to floating-point precision. Each resulting quantity is
// rounded to two decimals; the rounded values are not re-normalized, so the
// sum may deviate from total by up to half a cent per category.
func (a *Allocator) Allocate(total float64, categories []Category) (Allocation, error) {
	if err := validate(total, categories); err != nil {
		return nil, err
	}

	shares := a.drawShares(categories)
	if shares[len(shares)-1] < 0 {
		// Overshooting draws are passed through rather than clamped; the
		// residual category simply goes negative.
		a.logger.Warn("residual share is negative, earlier draws overshoot the total",
			zap.String("op", "allocate.Allocate"),
			zap.String("category", categories[len(categories)-1].Name),
			zap.Float64("share", shares[len(shares)-1]),
		)
	}

	var rawSum float64
	for _, share := range shares {
		rawSum += share
	}

	allocation := make(Allocation, len(categories))
	for i, category := range categories {
		allocation[i] = Entry{
			Label:    category.Name,
			Quantity: mathutil.Round(shares[i] / rawSum * total),
		}
	}
	return allocation, nil
}

// AllocateQuantities distributes total using the additive scheme: each
// non-last category draws a quantity of share×total directly, the last takes
// the residual quantity, and the provisional result is renormalized against
// total to correct drift. This mirrors Allocate but operates in quantity
// space rather than share space.
func (a *Allocator) AllocateQuantities(total float64, categories []Category) (Allocation, error) {
	if err := validate(total, categories); err != nil {
		return nil, err
	}

	allocation := make(Allocation, len(categories))
	remaining := total
	for i, category := range categories {
		if i == len(categories)-1 {
			if remaining < 0 {
				a.logger.Warn("residual quantity is negative, earlier draws overshoot the total",
					zap.String("op", "allocate.AllocateQuantities"),
					zap.String("category", category.Name),
					zap.Float64("quantity", remaining),
				)
			}
			allocation[i] = Entry{Label: category.Name, Quantity: mathutil.Round(remaining)}
			break
		}
		min, max := category.bounds()
		quantity := (min + a.rng.Float64()*(max-min)) * total
		allocation[i] = Entry{Label: category.Name, Quantity: mathutil.Round(quantity)}
		remaining -= quantity
	}

	return Renormalize(allocation, total)
}

// UniformQuantity draws a quantity uniformly from [min, max] using the
// allocator's seeded source.
func (a *Allocator) UniformQuantity(min, max float64) float64 {
	return min + a.rng.Float64()*(max-min)
}

// PickIndex draws an index uniformly from [0, n) using the allocator's
// seeded source.
func (a *Allocator) PickIndex(n int) int {
	return a.rng.Intn(n)
}

// Renormalize rescales the allocation so its sum exactly matches total,
// correcting drift introduced by independent draws or prior rounding, then
// rounds each entry to two decimals.
func Renormalize(allocation Allocation, total float64) (Allocation, error) {
	rawSum := allocation.Sum()
	if rawSum == 0 {
		return nil, fmt.Errorf("cannot renormalize allocation with zero sum to total %.2f", total)
	}

	result := make(Allocation, len(allocation))
	for i, entry := range allocation {
		result[i] = Entry{
			Label:    entry.Label,
			Quantity: mathutil.Round(entry.Quantity / rawSum * total),
		}
	}
	return result, nil
}
