package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/sales-report/pkg/constants"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func validConfiguration() *Configuration {
	conf := &Configuration{
		Report: ReportConfig{
			Month:       "2024-01",
			ActualSales: 350,
			TargetSales: 590,
			Seed:        42,
		},
		Products: []Product{
			{Name: "10W-30 (4T Motor Oil)", PricePerMT: 1500, MinShare: 0.15, MaxShare: 0.25},
			{Name: "20W-50 (SuperGT)", PricePerMT: 1800, MinShare: 0.20, MaxShare: 0.30},
			{Name: "15W-40 (TitanTruck Plus)", PricePerMT: 1600, MinShare: 0.18, MaxShare: 0.28},
			{Name: "Grease (FN-3)", PricePerMT: 2000, MinShare: 0.10, MaxShare: 0.18},
			{Name: "Industrial (Renolin B)", PricePerMT: 2200, MinShare: 0.12, MaxShare: 0.20},
		},
		Areas: []string{"Dhaka", "Rajshahi", "Khulna", "Shylet", "Bogura"},
		Salespeople: []string{
			"John Smith", "Sarah Johnson", "Michael Brown", "Emily Davis",
			"David Wilson", "Jessica Martinez", "Robert Taylor", "Lisa Anderson",
		},
		SalespersonQuantity: QuantityRange{Min: 30, Max: 60},
	}
	return conf
}

func TestLoadConfiguration(t *testing.T) {
	content := `---
report:
  month: 2024-01
  actualSales: 350
  targetSales: 590
  seed: 42
products:
  - name: 10W-30 (4T Motor Oil)
    pricePerMT: 1500
    minShare: 0.15
    maxShare: 0.25
  - name: 20W-50 (SuperGT)
    pricePerMT: 1800
    minShare: 0.20
    maxShare: 0.30
areas:
  - Dhaka
  - Rajshahi
salespeople:
  - John Smith
  - Sarah Johnson
salespersonQuantity:
  min: 30
  max: 60
logging:
  level: debug
  format: console
output:
  format: csv
  directory: reports
`
	conf, err := LoadConfiguration(writeTestConfig(t, content))
	if err != nil {
		t.Fatalf("LoadConfiguration returned error: %v", err)
	}

	if conf.Report.Month != "2024-01" {
		t.Errorf("Report.Month = %q, expected 2024-01", conf.Report.Month)
	}
	if conf.Report.ActualSales != 350 {
		t.Errorf("Report.ActualSales = %v, expected 350", conf.Report.ActualSales)
	}
	if conf.Report.Seed != 42 {
		t.Errorf("Report.Seed = %v, expected 42", conf.Report.Seed)
	}
	if len(conf.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(conf.Products))
	}
	if conf.Products[0].PricePerMT != 1500 {
		t.Errorf("Products[0].PricePerMT = %v, expected 1500", conf.Products[0].PricePerMT)
	}
	if conf.Products[1].MaxShare != 0.30 {
		t.Errorf("Products[1].MaxShare = %v, expected 0.30", conf.Products[1].MaxShare)
	}
	if len(conf.Areas) != 2 || conf.Areas[0] != "Dhaka" {
		t.Errorf("Areas = %v, expected [Dhaka Rajshahi]", conf.Areas)
	}
	if conf.SalespersonQuantity.Max != 60 {
		t.Errorf("SalespersonQuantity.Max = %v, expected 60", conf.SalespersonQuantity.Max)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("Logging = %+v, expected debug/console", conf.Logging)
	}
	if conf.Output.Format != "csv" || conf.Output.Directory != "reports" {
		t.Errorf("Output = %+v, expected csv/reports", conf.Output)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file, got nil")
	}
}

func TestApplyDefaults(t *testing.T) {
	conf := &Configuration{}
	conf.ApplyDefaults()

	if conf.Report.Month == "" {
		t.Error("ApplyDefaults left Report.Month empty")
	}
	if conf.Report.Seed != constants.DefaultSeed {
		t.Errorf("Report.Seed = %v, expected default %v", conf.Report.Seed, constants.DefaultSeed)
	}
	if conf.SalespersonQuantity.Min != constants.DefaultSalespersonMinQuantity ||
		conf.SalespersonQuantity.Max != constants.DefaultSalespersonMaxQuantity {
		t.Errorf("SalespersonQuantity = %+v, expected defaults", conf.SalespersonQuantity)
	}
	if conf.Output.Directory != constants.DefaultOutputDir {
		t.Errorf("Output.Directory = %q, expected %q", conf.Output.Directory, constants.DefaultOutputDir)
	}

	// Explicit values survive.
	conf = &Configuration{
		Report:              ReportConfig{Month: "2024-06", Seed: 7},
		SalespersonQuantity: QuantityRange{Min: 10, Max: 20},
		Output:              OutputConfig{Directory: "reports"},
	}
	conf.ApplyDefaults()
	if conf.Report.Month != "2024-06" || conf.Report.Seed != 7 {
		t.Errorf("ApplyDefaults overwrote explicit report values: %+v", conf.Report)
	}
	if conf.SalespersonQuantity.Min != 10 || conf.SalespersonQuantity.Max != 20 {
		t.Errorf("ApplyDefaults overwrote explicit quantity range: %+v", conf.SalespersonQuantity)
	}
	if conf.Output.Directory != "reports" {
		t.Errorf("ApplyDefaults overwrote explicit output directory: %q", conf.Output.Directory)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Configuration)
		expectErr string
	}{
		{"Valid configuration", func(c *Configuration) {}, ""},
		{"Bad month", func(c *Configuration) { c.Report.Month = "January" }, "report month"},
		{"Zero actual sales", func(c *Configuration) { c.Report.ActualSales = 0 }, "actualSales"},
		{"Negative actual sales", func(c *Configuration) { c.Report.ActualSales = -5 }, "actualSales"},
		{"Zero target sales", func(c *Configuration) { c.Report.TargetSales = 0 }, "targetSales"},
		{"No products", func(c *Configuration) { c.Products = nil }, "product"},
		{"No areas", func(c *Configuration) { c.Areas = nil }, "area"},
		{"No salespeople", func(c *Configuration) { c.Salespeople = nil }, "salesperson"},
		{"Unnamed product", func(c *Configuration) { c.Products[0].Name = "" }, "name"},
		{"Free product", func(c *Configuration) { c.Products[1].PricePerMT = 0 }, "pricePerMT"},
		{"Inverted bounds", func(c *Configuration) {
			c.Products[2].MinShare = 0.40
			c.Products[2].MaxShare = 0.20
		}, "minShare"},
		{"Share above one", func(c *Configuration) { c.Products[3].MaxShare = 1.5 }, "outside [0, 1]"},
		{"Inverted quantity range", func(c *Configuration) {
			c.SalespersonQuantity = QuantityRange{Min: 60, Max: 30}
		}, "salespersonQuantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := validConfiguration()
			tt.mutate(conf)
			err := conf.Validate()
			if tt.expectErr == "" {
				if err != nil {
					t.Errorf("Validate returned unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.expectErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.expectErr)
			}
		})
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	conf := validConfiguration()
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("valid configuration produced warnings: %v", warnings)
	}

	conf = validConfiguration()
	conf.Report.ActualSales = 700
	found := false
	for _, warning := range conf.ValidateConfiguration() {
		if strings.Contains(warning, "exceed target") {
			found = true
		}
	}
	if !found {
		t.Error("expected above-target warning")
	}

	conf = validConfiguration()
	for i := range conf.Products {
		conf.Products[i].MinShare = 0.30
		conf.Products[i].MaxShare = 0.40
	}
	found = false
	for _, warning := range conf.ValidateConfiguration() {
		if strings.Contains(warning, "negative allocation") {
			found = true
		}
	}
	if !found {
		t.Error("expected infeasible-minimum warning")
	}

	conf = validConfiguration()
	conf.SalespersonQuantity = QuantityRange{Min: 200, Max: 300}
	found = false
	for _, warning := range conf.ValidateConfiguration() {
		if strings.Contains(warning, "negative total") {
			found = true
		}
	}
	if !found {
		t.Error("expected salesperson negative-total warning")
	}
}

func TestProductCategories(t *testing.T) {
	conf := validConfiguration()
	categories := conf.ProductCategories()
	if len(categories) != len(conf.Products) {
		t.Fatalf("expected %d categories, got %d", len(conf.Products), len(categories))
	}
	for i, category := range categories {
		if category.Name != conf.Products[i].Name {
			t.Errorf("category %d name = %q, expected %q", i, category.Name, conf.Products[i].Name)
		}
		if category.MinShare != conf.Products[i].MinShare || category.MaxShare != conf.Products[i].MaxShare {
			t.Errorf("category %d bounds = [%v, %v], expected [%v, %v]", i,
				category.MinShare, category.MaxShare, conf.Products[i].MinShare, conf.Products[i].MaxShare)
		}
	}
}

func TestAreaCategories(t *testing.T) {
	conf := validConfiguration()
	categories := conf.AreaCategories()
	if len(categories) != len(conf.Areas) {
		t.Fatalf("expected %d categories, got %d", len(conf.Areas), len(categories))
	}
	for i, category := range categories {
		if category.Name != conf.Areas[i] {
			t.Errorf("category %d name = %q, expected %q", i, category.Name, conf.Areas[i])
		}
		if category.MinShare != 0 || category.MaxShare != 0 {
			t.Errorf("area categories should carry no explicit bounds, got [%v, %v]",
				category.MinShare, category.MaxShare)
		}
	}
}

func TestPriceFor(t *testing.T) {
	conf := validConfiguration()
	price, ok := conf.PriceFor("Grease (FN-3)")
	if !ok || price != 2000 {
		t.Errorf("PriceFor(Grease (FN-3)) = %v, %v; expected 2000, true", price, ok)
	}
	if _, ok := conf.PriceFor("Unknown"); ok {
		t.Error("PriceFor reported a missing product as present")
	}
}
