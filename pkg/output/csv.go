package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/iwvelando/sales-report/internal/dataset"
	"github.com/iwvelando/sales-report/pkg/mathutil"
	"go.uber.org/zap"
)

// CSV file names produced by WriteCSVFiles.
const (
	ProductSalesFile     = "product_sales.csv"
	AreaSalesFile        = "area_sales.csv"
	SalespersonSalesFile = "salesperson_sales.csv"
	SalesSummaryFile     = "sales_summary.csv"
)

// WriteCSVFiles exports the dataset as CSV files under dir, creating the
// directory if needed.
func WriteCSVFiles(logger *zap.Logger, dir string, d *dataset.Dataset) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	files := []struct {
		name  string
		write func(*csv.Writer) error
	}{
		{ProductSalesFile, func(w *csv.Writer) error { return writeProductSales(w, d) }},
		{AreaSalesFile, func(w *csv.Writer) error { return writeAreaSales(w, d) }},
		{SalespersonSalesFile, func(w *csv.Writer) error { return writeSalespersonSales(w, d) }},
		{SalesSummaryFile, func(w *csv.Writer) error { return writeSalesSummary(w, d) }},
	}

	for _, file := range files {
		path := filepath.Join(dir, file.name)
		if err := writeCSV(path, file.write); err != nil {
			return err
		}
		logger.Info("exported CSV file",
			zap.String("op", "output.WriteCSVFiles"),
			zap.String("path", path),
		)
	}
	return nil
}

func writeCSV(path string, write func(*csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	w := csv.NewWriter(f)
	if err := write(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return f.Close()
}

func writeProductSales(w *csv.Writer, d *dataset.Dataset) error {
	if err := w.Write([]string{"Product", "Sales_MT", "Revenue", "Market_Share_%"}); err != nil {
		return err
	}
	for _, entry := range d.ProductSales {
		record := []string{
			entry.Label,
			formatQuantity(entry.Quantity),
			formatQuantity(d.ProductRevenue(entry.Label)),
			formatQuantity(mathutil.CalculatePercentage(entry.Quantity, d.ActualSales)),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeAreaSales(w *csv.Writer, d *dataset.Dataset) error {
	if err := w.Write([]string{"Area", "Sales_MT", "Market_Share_%"}); err != nil {
		return err
	}
	for _, entry := range d.AreaSales {
		record := []string{
			entry.Label,
			formatQuantity(entry.Quantity),
			formatQuantity(mathutil.CalculatePercentage(entry.Quantity, d.ActualSales)),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeSalespersonSales(w *csv.Writer, d *dataset.Dataset) error {
	if err := w.Write([]string{"Salesperson", "Product", "Area", "Sales_MT", "Revenue"}); err != nil {
		return err
	}
	for _, line := range d.Lines {
		record := []string{
			line.Salesperson,
			line.Product,
			line.Area,
			formatQuantity(line.Quantity),
			formatQuantity(line.Revenue),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeSalesSummary(w *csv.Writer, d *dataset.Dataset) error {
	if err := w.Write([]string{"Metric", "Value"}); err != nil {
		return err
	}
	records := [][]string{
		{"Report Month", d.Month},
		{"Run ID", d.RunID.String()},
		{"Actual Sales (MT)", formatQuantity(d.ActualSales)},
		{"Target Sales (MT)", formatQuantity(d.TargetSales)},
		{"Achievement %", formatQuantity(d.Achievement())},
		{"Variance (MT)", formatQuantity(d.Variance())},
		{"Total Revenue ($)", formatQuantity(d.TotalRevenue())},
		{"Number of Products", strconv.Itoa(len(d.ProductSales))},
		{"Number of Areas", strconv.Itoa(len(d.AreaSales))},
		{"Number of Salespeople", strconv.Itoa(len(d.Salespeople))},
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func formatQuantity(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
