// Package output provides utilities for formatting and exporting generated
// sales datasets.
package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/sales-report/internal/dataset"
	"github.com/iwvelando/sales-report/pkg/format"
	"github.com/iwvelando/sales-report/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, d *dataset.Dataset) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "--- Monthly sales report for %s ---\n", d.Month)
	fmt.Fprintf(w, "Actual Sales:  %s\n", format.Quantity(d.ActualSales))
	fmt.Fprintf(w, "Target Sales:  %s\n", format.Quantity(d.TargetSales))
	fmt.Fprintf(w, "Achievement:   %s\n", format.Percentage(d.Achievement()))
	fmt.Fprintf(w, "Variance:      %s\n", format.Quantity(d.Variance()))
	fmt.Fprintf(w, "Total Revenue: %s\n", format.Currency(d.TotalRevenue()))
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "Product                      | Sales (MT) | Revenue      | Share\n")
	fmt.Fprintf(w, "_______                      | __________ | _______      | _____\n")
	for _, entry := range d.ProductSales {
		_, _ = p.Fprintf(w, "%-28s | %10.2f | %12.2f | %s\n",
			entry.Label, entry.Quantity, d.ProductRevenue(entry.Label),
			format.Percentage(mathutil.CalculatePercentage(entry.Quantity, d.ActualSales)))
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "Area         | Sales (MT) | Share\n")
	fmt.Fprintf(w, "____         | __________ | _____\n")
	for _, entry := range d.AreaSales {
		_, _ = p.Fprintf(w, "%-12s | %10.2f | %s\n",
			entry.Label, entry.Quantity,
			format.Percentage(mathutil.CalculatePercentage(entry.Quantity, d.ActualSales)))
	}
	fmt.Fprintf(w, "\n")

	totals := d.SalespersonTotals()
	revenue := d.SalespersonRevenue()
	fmt.Fprintf(w, "Salesperson        | Sales (MT) | Revenue\n")
	fmt.Fprintf(w, "___________        | __________ | _______\n")
	for _, entry := range RankDescending(totals) {
		personRevenue := 0.0
		if r, ok := revenue.Quantity(entry.Label); ok {
			personRevenue = r
		}
		_, _ = p.Fprintf(w, "%-18s | %10.2f | %12.2f\n", entry.Label, entry.Quantity, personRevenue)
	}

	stats := Summarize(totals)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Average Sales: %s\n", format.Quantity(mathutil.Round(stats.Mean)))
	fmt.Fprintf(w, "Highest:       %s\n", format.Quantity(stats.Max))
	fmt.Fprintf(w, "Lowest:        %s\n", format.Quantity(stats.Min))
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "Top products:\n")
	for i, entry := range Top(d.ProductSales, 3) {
		fmt.Fprintf(w, "  %d. %s: %s (%s)\n", i+1, entry.Label,
			format.Quantity(entry.Quantity), format.Currency(d.ProductRevenue(entry.Label)))
	}
	fmt.Fprintf(w, "Top salespeople:\n")
	for i, entry := range Top(totals, 3) {
		fmt.Fprintf(w, "  %d. %s: %s\n", i+1, entry.Label, format.Quantity(entry.Quantity))
	}
}
