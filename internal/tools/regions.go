package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// Regions maps culinary geography across Persian cultural zones.
type Regions struct{}

func (r *Regions) Name() string { return "analyze_regions" }
func (r *Regions) Description() string {
	return "Analyze how an ingredient or dish varies across Persian cultural zones, with historical trade route and seasonal context."
}

func (r *Regions) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ingredient": map[string]any{
				"type":        "string",
				"description": "Ingredient to analyze (e.g. 'saffron', 'pomegranate', 'rice')",
			},
			"region": map[string]any{
				"type":        "string",
				"description": "Specific Persian region, or 'all' for a comprehensive analysis",
			},
		},
		"required":             []string{"ingredient", "region"},
		"additionalProperties": false,
	}
}

func (r *Regions) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Ingredient string `json:"ingredient"`
		Region     string `json:"region"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing analyze_regions input: %w", err)
	}
	if args.Region == "" {
		args.Region = "all"
	}

	return fmt.Sprintf(`**Regional Variation Analysis: %s**

**Scope:** %s

**Geographic Mapping Across Persian Cultural Zones:**
- **Khorasan:** highest-grade cultivation and drying traditions
- **Gilan & Mazandaran:** northern coastal preparations, tart herb-forward profiles
- **Isfahan:** central Persian interpretations, refined and elegant presentations
- **Shiraz:** southern variations with distinct flavor profiles
- **Tehran:** modern urban adaptations fusing regional traditions

**Historical Trade Routes:**
Tracing %s through ancient trade route ingredient pathways, from origin regions to diaspora communities.

**Seasonal Availability:**
Regional harvest cycles and peak flavor windows for %s across different Persian cultural zones.

**Cultural Significance:**
- Symbolic meanings in different regions
- Festival and celebration usage
- Traditional preservation methods by region

**Authenticity Comparison:**
- Origin vs. imported alternatives
- Quality markers specific to each region
- Price and availability factors`,
		args.Ingredient, args.Region, args.Ingredient, args.Ingredient), nil
}
