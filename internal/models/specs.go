package models

import (
	"encoding/json"
	"strings"
)

// SpecRow is one label/value pair rendered in the product detail spec table.
type SpecRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ParseTechnicalSpecs interprets the free-text technical_specs column.
//
// The column was never schema-enforced, so two formats exist in the wild:
// a JSON array of {label,value} objects, and plain "Label: Value" lines.
// Both are accepted; anything else falls back to two rows built from the
// product's own material and SKU so the detail page never renders empty.
func ParseTechnicalSpecs(raw, material, sku string) []SpecRow {
	fallback := []SpecRow{
		{Label: "Material", Value: material},
		{Label: "SKU", Value: sku},
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	var rows []SpecRow
	if err := json.Unmarshal([]byte(raw), &rows); err == nil && len(rows) > 0 {
		return rows
	}

	// Line-separated form: "Grade: 316L Stainless Steel"
	for _, line := range strings.Split(raw, "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		label := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if label == "" || value == "" {
			continue
		}
		rows = append(rows, SpecRow{Label: label, Value: value})
	}
	if len(rows) > 0 {
		return rows
	}

	return fallback
}
