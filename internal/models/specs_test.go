package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTechnicalSpecs(t *testing.T) {
	fallback := []SpecRow{
		{Label: "Material", Value: "316L Stainless Steel"},
		{Label: "SKU", Value: "SC-1042"},
	}

	testCases := []struct {
		name     string
		raw      string
		expected []SpecRow
	}{
		{
			name: "JSON array of label/value objects",
			raw:  `[{"label":"Grade","value":"316L"},{"label":"Finish","value":"Mirror polish"}]`,
			expected: []SpecRow{
				{Label: "Grade", Value: "316L"},
				{Label: "Finish", Value: "Mirror polish"},
			},
		},
		{
			name: "Line-separated label/value pairs",
			raw:  "Grade: 316L\nClasp width: 12 mm\njust a stray line\n",
			expected: []SpecRow{
				{Label: "Grade", Value: "316L"},
				{Label: "Clasp width", Value: "12 mm"},
			},
		},
		{
			name: "Values containing colons keep everything after the first",
			raw:  "Ratio: 2:1",
			expected: []SpecRow{
				{Label: "Ratio", Value: "2:1"},
			},
		},
		{
			name:     "Empty column falls back to material and SKU",
			raw:      "",
			expected: fallback,
		},
		{
			name:     "Whitespace-only column falls back",
			raw:      "   \n  ",
			expected: fallback,
		},
		{
			name:     "Unparseable free text falls back",
			raw:      "premium hardware",
			expected: fallback,
		},
		{
			name:     "Empty JSON array falls back rather than rendering nothing",
			raw:      "[]",
			expected: fallback,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rows := ParseTechnicalSpecs(tc.raw, "316L Stainless Steel", "SC-1042")
			assert.Equal(t, tc.expected, rows)
		})
	}
}
