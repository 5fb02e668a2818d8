// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"time"

	"github.com/iwvelando/sales-report/pkg/constants"
)

// ValidateOutputFormat checks that the requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatAll:
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be one of %s, %s, %s",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatAll)
	}
}

// ValidateShareBounds checks a single category's share bounds.
func ValidateShareBounds(name string, minShare, maxShare float64) error {
	if minShare < 0 || maxShare > 1 {
		return fmt.Errorf("%s has share bounds [%.2f, %.2f] outside [0, 1]", name, minShare, maxShare)
	}
	if minShare > maxShare {
		return fmt.Errorf("%s has minShare %.2f greater than maxShare %.2f", name, minShare, maxShare)
	}
	return nil
}

// ValidateQuantityRange checks a [min, max] quantity range.
func ValidateQuantityRange(name string, min, max float64) error {
	if min < 0 {
		return fmt.Errorf("%s has negative minimum quantity %.2f", name, min)
	}
	if min > max {
		return fmt.Errorf("%s has minimum quantity %.2f greater than maximum %.2f", name, min, max)
	}
	return nil
}

// ValidateMonth checks that a report period parses as YYYY-MM.
func ValidateMonth(month string) error {
	if _, err := time.Parse(constants.MonthLayout, month); err != nil {
		return fmt.Errorf("invalid report month %q: expected format YYYY-MM", month)
	}
	return nil
}

// FeasibilityWarnings reports share-bound combinations that cannot produce a
// well-formed distribution: if the minimum shares already exceed the whole,
// the residual category is guaranteed to go negative, and if the maximum
// shares cannot reach the whole, the residual category always absorbs the
// shortfall regardless of its own bounds.
func FeasibilityWarnings(minShareSum, maxShareSum float64) []string {
	var warnings []string
	if minShareSum > 1 {
		warnings = append(warnings, fmt.Sprintf(
			"minimum shares sum to %.2f (> 1); the residual category will receive a negative allocation", minShareSum))
	}
	if maxShareSum < 1 {
		warnings = append(warnings, fmt.Sprintf(
			"maximum shares sum to %.2f (< 1); the residual category will always absorb the shortfall", maxShareSum))
	}
	return warnings
}
