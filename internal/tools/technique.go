package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

var toolAdaptations = map[string]string{
	"degh":         "Copper pot -> Heavy-bottomed Dutch oven or cast iron pot (maintains heat distribution)",
	"korsi":        "Traditional heating table -> Modern slow cooker or warming plate setup",
	"samovar":      "Traditional tea vessel -> Modern electric kettle with Persian tea ceremony adaptation",
	"stone mortar": "Stone pestle and mortar -> Food processor (texture may differ slightly)",
}

// Technique adapts traditional Persian cooking tools for modern kitchens.
type Technique struct{}

func (t *Technique) Name() string { return "translate_technique" }
func (t *Technique) Description() string {
	return "Adapt a traditional Persian cooking tool or technique for the modern kitchen while preserving the authentic method."
}

func (t *Technique) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tool": map[string]any{
				"type":        "string",
				"description": "Historical cooking tool (e.g. 'degh', 'korsi', 'samovar', 'stone mortar')",
			},
			"modern_kitchen": map[string]any{
				"type":        "boolean",
				"description": "Whether the adaptation targets a modern kitchen",
			},
		},
		"required":             []string{"tool", "modern_kitchen"},
		"additionalProperties": false,
	}
}

func (t *Technique) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Tool          string `json:"tool"`
		ModernKitchen bool   `json:"modern_kitchen"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing translate_technique input: %w", err)
	}

	adaptation, ok := toolAdaptations[strings.ToLower(args.Tool)]
	if !ok {
		adaptation = "Modern equivalent for " + args.Tool
	}

	target := "traditional setting"
	if args.ModernKitchen {
		target = "modern kitchen"
	}

	return fmt.Sprintf(`**Historical Technique Translation: %s**

**Traditional Tool:** %s
**Adaptation Target:** %s

**Modern Adaptation:** %s

**Authenticity Notes:**
While modern tools can replicate results, the traditional %s provides unique characteristics:
- Specific heat distribution patterns
- Authentic texture development
- Cultural cooking experience
- Connection to ancestral methods

**Technique Preservation:**
Even with modern tools, maintain traditional techniques:
- Cooking times and temperature patterns
- Layering and ingredient addition sequences
- Stirring and mixing methods
- Resting and serving protocols

**Hybrid Approach:**
Use modern tools for efficiency while occasionally using the traditional %s for special occasions to experience the authentic method.`,
		args.Tool, args.Tool, target, adaptation, args.Tool, args.Tool), nil
}
