// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"time"

	"github.com/iwvelando/sales-report/internal/allocate"
	"github.com/iwvelando/sales-report/pkg/constants"
	"github.com/iwvelando/sales-report/pkg/validation"
	"github.com/spf13/viper"
)

// MonthLayout is the report period format expected in config files and is
// also the output date format.
const MonthLayout = constants.MonthLayout

// Configuration holds all configuration for sales-report.
type Configuration struct {
	Report              ReportConfig
	Products            []Product
	Areas               []string
	Salespeople         []string
	SalespersonQuantity QuantityRange `yaml:"salespersonQuantity,omitempty"`
	Logging             LoggingConfig `yaml:"logging,omitempty"`
	Output              OutputConfig  `yaml:"output,omitempty"`
}

// ReportConfig holds the report period and the fixed totals the generator
// distributes.
type ReportConfig struct {
	Month       string
	ActualSales float64
	TargetSales float64
	Seed        int64
}

// Product describes one product category with its per-MT price and the share
// bounds used by the product-level allocation.
type Product struct {
	Name       string
	PricePerMT float64
	MinShare   float64
	MaxShare   float64
}

// QuantityRange bounds the uniform quantity draw for a salesperson's monthly
// total.
type QuantityRange struct {
	Min float64
	Max float64
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output configuration options
type OutputConfig struct {
	Format    string `yaml:"format,omitempty"`    // pretty, csv, all
	Directory string `yaml:"directory,omitempty"` // destination for CSV files
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills in defaulted fields left unset by the config file.
func (conf *Configuration) ApplyDefaults() {
	if conf.Report.Month == "" {
		conf.Report.Month = time.Now().Format(MonthLayout)
	}
	if conf.Report.Seed == 0 {
		conf.Report.Seed = constants.DefaultSeed
	}
	if conf.SalespersonQuantity.Min == 0 && conf.SalespersonQuantity.Max == 0 {
		conf.SalespersonQuantity = QuantityRange{
			Min: constants.DefaultSalespersonMinQuantity,
			Max: constants.DefaultSalespersonMaxQuantity,
		}
	}
	if conf.Output.Directory == "" {
		conf.Output.Directory = constants.DefaultOutputDir
	}
}

// Validate checks the configuration for errors that would make a generation
// run meaningless and fails fast with a descriptive error.
func (conf *Configuration) Validate() error {
	if err := validation.ValidateMonth(conf.Report.Month); err != nil {
		return err
	}
	if conf.Report.ActualSales <= 0 {
		return fmt.Errorf("report.actualSales must be positive, got %.2f", conf.Report.ActualSales)
	}
	if conf.Report.TargetSales <= 0 {
		return fmt.Errorf("report.targetSales must be positive, got %.2f", conf.Report.TargetSales)
	}
	if len(conf.Products) == 0 {
		return fmt.Errorf("at least one product must be configured")
	}
	if len(conf.Areas) == 0 {
		return fmt.Errorf("at least one area must be configured")
	}
	if len(conf.Salespeople) == 0 {
		return fmt.Errorf("at least one salesperson must be configured")
	}
	for _, product := range conf.Products {
		if product.Name == "" {
			return fmt.Errorf("every product must have a name")
		}
		if product.PricePerMT <= 0 {
			return fmt.Errorf("product %s must have a positive pricePerMT, got %.2f",
				product.Name, product.PricePerMT)
		}
		if err := validation.ValidateShareBounds("product "+product.Name, product.MinShare, product.MaxShare); err != nil {
			return err
		}
	}
	if err := validation.ValidateQuantityRange("salespersonQuantity",
		conf.SalespersonQuantity.Min, conf.SalespersonQuantity.Max); err != nil {
		return err
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings for conditions that produce valid but suspicious output.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	var minShareSum, maxShareSum float64
	for _, product := range conf.Products {
		if product.MinShare == 0 && product.MaxShare == 0 {
			// Unbounded products fall back to the default draw range.
			minShareSum += constants.DefaultMinShare
			maxShareSum += constants.DefaultMaxShare
			continue
		}
		minShareSum += product.MinShare
		maxShareSum += product.MaxShare
	}
	warnings = append(warnings, validation.FeasibilityWarnings(minShareSum, maxShareSum)...)

	if conf.Report.ActualSales > conf.Report.TargetSales {
		warnings = append(warnings, fmt.Sprintf(
			"actual sales %.2f exceed target %.2f; achievement will report above 100%%",
			conf.Report.ActualSales, conf.Report.TargetSales))
	}

	// The last salesperson absorbs whatever the bounded draws leave over; a
	// range incompatible with the grand total makes that residual extreme.
	if len(conf.Salespeople) > 1 {
		others := float64(len(conf.Salespeople) - 1)
		if others*conf.SalespersonQuantity.Min > conf.Report.ActualSales {
			warnings = append(warnings, fmt.Sprintf(
				"%d salespeople at minimum %.2f MT already exceed actual sales %.2f; the last salesperson will receive a negative total",
				len(conf.Salespeople)-1, conf.SalespersonQuantity.Min, conf.Report.ActualSales))
		}
		if others*conf.SalespersonQuantity.Max < conf.Report.ActualSales/2 {
			warnings = append(warnings, fmt.Sprintf(
				"salesperson quantity range [%.2f, %.2f] is small relative to actual sales %.2f; the last salesperson will absorb a disproportionate share",
				conf.SalespersonQuantity.Min, conf.SalespersonQuantity.Max, conf.Report.ActualSales))
		}
	}

	return warnings
}

// ProductCategories returns the products as allocator categories in config
// order. The last product absorbs the residual share.
func (conf *Configuration) ProductCategories() []allocate.Category {
	categories := make([]allocate.Category, len(conf.Products))
	for i, product := range conf.Products {
		categories[i] = allocate.Category{
			Name:     product.Name,
			MinShare: product.MinShare,
			MaxShare: product.MaxShare,
		}
	}
	return categories
}

// AreaCategories returns the areas as allocator categories with default
// share bounds, in config order. The last area absorbs the residual.
func (conf *Configuration) AreaCategories() []allocate.Category {
	categories := make([]allocate.Category, len(conf.Areas))
	for i, area := range conf.Areas {
		categories[i] = allocate.Category{Name: area}
	}
	return categories
}

// PriceFor returns the per-MT price for a product name.
func (conf *Configuration) PriceFor(product string) (float64, bool) {
	for _, p := range conf.Products {
		if p.Name == product {
			return p.PricePerMT, true
		}
	}
	return 0, false
}
