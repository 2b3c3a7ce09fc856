package provider_test

import (
	"strings"
	"testing"

	"github.com/praxpk/prompt-visualizer/internal/catalog"
	"github.com/praxpk/prompt-visualizer/internal/intent"
	"github.com/praxpk/prompt-visualizer/internal/provider"
)

var testColumns = []catalog.Column{
	{Name: "Company Name", Type: catalog.TypeString},
	{Name: "Industry", Type: catalog.TypeString},
	{Name: "employees_num", Type: catalog.TypeNumber},
	{Name: "arr_num", Type: catalog.TypeNumber},
}

func TestBuildSystemSchema(t *testing.T) {
	got := provider.BuildSystem(testColumns, "data", intent.None)

	if !strings.Contains(got, "Table name: data") {
		t.Error("system prompt missing view name")
	}
	// Identifiers with spaces must be presented double-quoted.
	if !strings.Contains(got, `"Company Name" (string)`) {
		t.Errorf("system prompt missing quoted column, got:\n%s", got)
	}
	if !strings.Contains(got, "employees_num (number)") {
		t.Error("system prompt missing plain column")
	}
	if !strings.Contains(got, "insufficient data") {
		t.Error("system prompt missing the insufficient-data escape hatch")
	}
	if strings.Contains(got, "pie chart") || strings.Contains(got, "scatter") || strings.Contains(got, "histogram") {
		t.Error("intent None must not add chart instructions")
	}
}

func TestBuildSystemIntentContracts(t *testing.T) {
	tests := []struct {
		it      intent.Intent
		aliases []string
	}{
		{intent.Pie, []string{"label", "pct"}},
		{intent.Scatter, []string{"x and y"}},
		{intent.Histogram, []string{"bin and n"}},
	}
	for _, tt := range tests {
		got := provider.BuildSystem(testColumns, "data", tt.it)
		for _, alias := range tt.aliases {
			if !strings.Contains(got, alias) {
				t.Errorf("%s prompt missing alias instruction %q", tt.it, alias)
			}
		}
	}
}
