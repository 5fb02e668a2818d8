// Package dataset synthesizes one month of sales data from the configured
// totals, products, areas, and salespeople. The generation pipeline applies
// the allocator in a fixed call order so a fixed seed reproduces the whole
// dataset bit-for-bit.
package dataset

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/iwvelando/sales-report/internal/allocate"
	"github.com/iwvelando/sales-report/internal/config"
	"github.com/iwvelando/sales-report/pkg/constants"
	"github.com/iwvelando/sales-report/pkg/mathutil"
	"go.uber.org/zap"
)

// Line is one salesperson's sales of one product in one area.
type Line struct {
	Salesperson string
	Product     string
	Area        string
	Quantity    float64
	Revenue     float64
}

// Pivot is a labeled two-dimensional aggregation of line quantities, the
// shape consumed by heatmap and stacked-bar style views.
type Pivot struct {
	Rows    []string
	Columns []string
	Values  [][]float64
}

// Dataset holds one complete generation run. It is immutable after Generate
// returns; downstream consumers only read from it.
type Dataset struct {
	RunID        uuid.UUID
	Month        string
	ActualSales  float64
	TargetSales  float64
	Salespeople  []string
	Areas        []string
	ProductSales allocate.Allocation
	AreaSales    allocate.Allocation
	Lines        []Line
	prices       map[string]float64
}

// Generate runs the full pipeline: product allocation, area allocation,
// salesperson totals, per-salesperson product lines, global renormalization
// against the grand total, and revenue derivation.
//
// Draw order is part of the contract: products first, then areas, then per
// salesperson (in config order) the total draw, the area pick, and one draw
// per product. Changing this order changes what a given seed produces.
func Generate(logger *zap.Logger, conf config.Configuration) (*Dataset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	allocator := allocate.New(conf.Report.Seed, logger)
	result := &Dataset{
		RunID:       uuid.New(),
		Month:       conf.Report.Month,
		ActualSales: conf.Report.ActualSales,
		TargetSales: conf.Report.TargetSales,
		Salespeople: conf.Salespeople,
		Areas:       conf.Areas,
		prices:      make(map[string]float64, len(conf.Products)),
	}
	for _, product := range conf.Products {
		result.prices[product.Name] = product.PricePerMT
	}

	logger.Debug("starting generation run",
		zap.String("op", "dataset.Generate"),
		zap.String("run_id", result.RunID.String()),
		zap.String("month", result.Month),
		zap.Int64("seed", conf.Report.Seed),
	)

	productSales, err := allocator.Allocate(conf.Report.ActualSales, conf.ProductCategories())
	if err != nil {
		return nil, fmt.Errorf("product allocation failed: %w", err)
	}
	result.ProductSales = productSales

	areaSales, err := allocator.AllocateQuantities(conf.Report.ActualSales, conf.AreaCategories())
	if err != nil {
		return nil, fmt.Errorf("area allocation failed: %w", err)
	}
	result.AreaSales = areaSales

	// Salesperson totals follow the additive scheme with the configured
	// quantity range; the last salesperson absorbs the residual. Each
	// person's total is then subdivided across products with bounded share
	// draws, and the whole line set is renormalized against the grand total
	// to correct the compounding drift.
	lines := make([]Line, 0, len(conf.Salespeople)*len(conf.Products))
	remaining := conf.Report.ActualSales
	for i, salesperson := range conf.Salespeople {
		var personTotal float64
		if i == len(conf.Salespeople)-1 {
			personTotal = remaining
		} else {
			personTotal = allocator.UniformQuantity(conf.SalespersonQuantity.Min, conf.SalespersonQuantity.Max)
			remaining -= personTotal
		}

		area := conf.Areas[allocator.PickIndex(len(conf.Areas))]
		for _, product := range conf.Products {
			share := allocator.UniformQuantity(constants.LineMinShare, constants.LineMaxShare)
			lines = append(lines, Line{
				Salesperson: salesperson,
				Product:     product.Name,
				Area:        area,
				Quantity:    share * personTotal,
			})
		}
	}

	provisional := make(allocate.Allocation, len(lines))
	for i, line := range lines {
		provisional[i] = allocate.Entry{
			Label:    line.Salesperson + "/" + line.Product,
			Quantity: line.Quantity,
		}
	}
	normalized, err := allocate.Renormalize(provisional, conf.Report.ActualSales)
	if err != nil {
		return nil, fmt.Errorf("line renormalization failed: %w", err)
	}
	for i := range lines {
		lines[i].Quantity = normalized[i].Quantity
		lines[i].Revenue = mathutil.Round(lines[i].Quantity * result.prices[lines[i].Product])
	}
	result.Lines = lines

	logger.Debug("generation run complete",
		zap.String("op", "dataset.Generate"),
		zap.String("run_id", result.RunID.String()),
		zap.Int("lines", len(result.Lines)),
		zap.Float64("line_total", result.LineTotal()),
	)

	return result, nil
}

// PriceFor returns the per-MT price for a product.
func (d *Dataset) PriceFor(product string) float64 {
	return d.prices[product]
}

// LineTotal returns the summed quantity across all line items.
func (d *Dataset) LineTotal() float64 {
	var total float64
	for _, line := range d.Lines {
		total += line.Quantity
	}
	return total
}

// TotalRevenue returns the summed revenue across all line items.
func (d *Dataset) TotalRevenue() float64 {
	var total float64
	for _, line := range d.Lines {
		total += line.Revenue
	}
	return total
}

// ProductRevenue returns the revenue for a product-level allocation entry.
func (d *Dataset) ProductRevenue(product string) float64 {
	quantity, ok := d.ProductSales.Quantity(product)
	if !ok {
		return 0
	}
	return mathutil.Round(quantity * d.prices[product])
}

// Achievement returns actual sales as a percentage of the target.
func (d *Dataset) Achievement() float64 {
	return mathutil.CalculatePercentage(d.ActualSales, d.TargetSales)
}

// Variance returns actual sales minus the target.
func (d *Dataset) Variance() float64 {
	return d.ActualSales - d.TargetSales
}

// SalespersonTotals aggregates line quantities per salesperson, preserving
// config order.
func (d *Dataset) SalespersonTotals() allocate.Allocation {
	totals := make(allocate.Allocation, len(d.Salespeople))
	index := make(map[string]int, len(d.Salespeople))
	for i, salesperson := range d.Salespeople {
		totals[i] = allocate.Entry{Label: salesperson}
		index[salesperson] = i
	}
	for _, line := range d.Lines {
		totals[index[line.Salesperson]].Quantity += line.Quantity
	}
	for i := range totals {
		totals[i].Quantity = mathutil.Round(totals[i].Quantity)
	}
	return totals
}

// SalespersonRevenue aggregates line revenue per salesperson, preserving
// config order.
func (d *Dataset) SalespersonRevenue() allocate.Allocation {
	totals := make(allocate.Allocation, len(d.Salespeople))
	index := make(map[string]int, len(d.Salespeople))
	for i, salesperson := range d.Salespeople {
		totals[i] = allocate.Entry{Label: salesperson}
		index[salesperson] = i
	}
	for _, line := range d.Lines {
		totals[index[line.Salesperson]].Quantity += line.Revenue
	}
	for i := range totals {
		totals[i].Quantity = mathutil.Round(totals[i].Quantity)
	}
	return totals
}

// SalespersonProductPivot returns the salesperson × product quantity matrix.
func (d *Dataset) SalespersonProductPivot() Pivot {
	return d.pivot(d.Salespeople, func(line Line) string { return line.Salesperson })
}

// AreaProductPivot returns the area × product quantity matrix.
func (d *Dataset) AreaProductPivot() Pivot {
	return d.pivot(d.Areas, func(line Line) string { return line.Area })
}

func (d *Dataset) pivot(rows []string, rowKey func(Line) string) Pivot {
	columns := d.ProductSales.Labels()
	rowIndex := make(map[string]int, len(rows))
	for i, row := range rows {
		rowIndex[row] = i
	}
	columnIndex := make(map[string]int, len(columns))
	for i, column := range columns {
		columnIndex[column] = i
	}

	values := make([][]float64, len(rows))
	for i := range values {
		values[i] = make([]float64, len(columns))
	}
	for _, line := range d.Lines {
		values[rowIndex[rowKey(line)]][columnIndex[line.Product]] += line.Quantity
	}
	for i := range values {
		for j := range values[i] {
			values[i][j] = mathutil.Round(values[i][j])
		}
	}
	return Pivot{Rows: rows, Columns: columns, Values: values}
}
