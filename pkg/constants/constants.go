// Package constants provides shared constants for the sales-report application.
package constants

// MonthLayout is the report period format expected in config files and is
// also the output date format.
const MonthLayout = "2006-01"

// Allocation constants
const (
	// DecimalPrecision is the precision for quantity rounding (2 decimal places)
	DecimalPrecision = 100

	// DefaultMinShare is the lower bound of the share range used when a
	// category carries no explicit bounds
	DefaultMinShare = 0.15

	// DefaultMaxShare is the upper bound of the share range used when a
	// category carries no explicit bounds
	DefaultMaxShare = 0.25

	// LineMinShare is the lower bound of the per-product share of a
	// salesperson's total
	LineMinShare = 0.10

	// LineMaxShare is the upper bound of the per-product share of a
	// salesperson's total
	LineMaxShare = 0.30
)

// Generation defaults
const (
	// DefaultSalespersonMinQuantity is the default lower bound (MT) for a
	// salesperson's monthly total
	DefaultSalespersonMinQuantity = 30.0

	// DefaultSalespersonMaxQuantity is the default upper bound (MT) for a
	// salesperson's monthly total
	DefaultSalespersonMaxQuantity = 60.0

	// DefaultSeed is the random seed used when the config does not set one
	DefaultSeed = 42
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV file output format
	OutputFormatCSV = "csv"

	// OutputFormatAll produces both the pretty report and the CSV files
	OutputFormatAll = "all"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultOutputDir is the default directory for exported CSV files
	DefaultOutputDir = "output"
)

// Validation constants
const (
	// QuantityTolerance is the tolerance for quantity comparisons (0.01 MT)
	QuantityTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
