package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

var lightingDirectives = map[string]string{
	"golden_hour":      "Warm golden hour illumination, soft directional light creating depth and texture",
	"market_stall":     "Vibrant bazaar atmosphere, natural daylight, busy market backdrop",
	"window_light":     "Soft window light with gentle shadows, highlighting food textures naturally",
	"studio":           "Professional studio lighting, controlled highlights and shadows, magazine-quality",
	"natural_sunlight": "Bright natural sunlight, fresh outdoor feeling, vibrant colors",
}

// Photography tailors an image brief for a given lighting style.
type Photography struct{}

func (p *Photography) Name() string { return "optimize_photography" }
func (p *Photography) Description() string {
	return "Tailor an image prompt for a specific food photography style, optimizing texture, color composition and visual storytelling."
}

func (p *Photography) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"dish": map[string]any{
				"type":        "string",
				"description": "Dish name to optimize",
			},
			"lighting_style": map[string]any{
				"type":        "string",
				"enum":        []string{"golden_hour", "market_stall", "window_light", "studio", "natural_sunlight"},
				"description": "Desired lighting style",
			},
		},
		"required":             []string{"dish", "lighting_style"},
		"additionalProperties": false,
	}
}

func (p *Photography) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Dish          string `json:"dish"`
		LightingStyle string `json:"lighting_style"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing optimize_photography input: %w", err)
	}

	directive, ok := lightingDirectives[args.LightingStyle]
	if !ok {
		directive = lightingDirectives["golden_hour"]
	}

	return fmt.Sprintf(`**Photography Optimization: %s**

**Lighting Setup:** %s

**Composition Strategy:**
- Food as absolute hero (80%% frame dominance)
- Background elements support without competing
- Textural details emphasized through lighting angles
- Color theory applied (saffron golds, pomegranate reds, herb greens)

**Camera Settings Recommendations:**
- Wide aperture for shallow depth of field
- Focus on dish hero elements (main protein, key garnishes)
- Capture steam and movement dynamics
- Golden ratio composition for visual harmony

**Post-Processing Notes:**
- Warm color grading to enhance Persian aesthetic
- Texture enhancement for ingredient details
- Selective focus on cultural authenticity markers (vessels, serving style)

**Visual Storytelling Elements:**
- Traditional Persian serving vessels in frame
- Cultural context visible (carpet, background elements)
- Ingredient beauty shots (saffron threads, pomegranate seeds)
- Human element suggestion (hands, serving motion)`,
		args.Dish, directive), nil
}
