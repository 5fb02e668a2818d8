// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/sales-report/internal/allocate"
	"github.com/iwvelando/sales-report/internal/config"
	"github.com/iwvelando/sales-report/internal/dataset"
)

// Configuration returns a fully-populated configuration mirroring the
// example config file, suitable as a baseline for tests.
func Configuration() config.Configuration {
	conf := config.Configuration{
		Report: config.ReportConfig{
			Month:       "2024-01",
			ActualSales: 350,
			TargetSales: 590,
			Seed:        42,
		},
		Products: []config.Product{
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
	}
	conf.ApplyDefaults()
	return conf
}

// GenerateDataset runs the full generation pipeline over the baseline
// configuration and fails the test on error.
func GenerateDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	result, err := dataset.Generate(nil, Configuration())
	if err != nil {
		t.Fatalf("failed to generate test dataset: %v", err)
	}
	return result
}

// FindEntry finds an allocation entry by label. Returns a pointer to the
// entry if found, nil otherwise.
func FindEntry(allocation allocate.Allocation, label string) *allocate.Entry {
	for i := range allocation {
		if allocation[i].Label == label {
			return &allocation[i]
		}
	}
	return nil
}
