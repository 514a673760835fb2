package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

var festivalMenus = map[string]string{
	"Nowruz": `**Nowruz (Persian New Year) Festival Menu**

**Sabzi Polo ba Mahi** (Herbed Rice with Fish)
- Symbolism: Renewal and prosperity
- Regional variations: Caspian vs. central Persian preparations

**Kookoo Sabzi** (Herb Frittata)
- Symbolism: Growth and abundance
- Nowruz-specific herb combinations

**Reshteh Polo** (Noodle Rice)
- Symbolism: Intertwined wishes and hopes
- Traditional preparation methods

**Dessert:**
- Noghl (Sugar-coated almonds)
- Samanu (Wheat pudding - requires 3-day preparation)

**Tea Service:**
- Traditional Persian tea ceremony
- Accompanying sweets and pastries`,

	"Yalda": `**Yalda Night (Winter Solstice) Festival Menu**

**Traditional Yalda Spread:**
- Pomegranate and watermelon (sun symbolism)
- Mixed nuts and dried fruits
- Ajeel (sweet and savory trail mix)

**Main Dishes:**
- Fesenjan (Pomegranate Walnut Stew)
- Khoresht Gheymeh (Yellow Split Pea Stew)

**Dessert:**
- Traditional Persian sweets
- Hot tea and family storytelling`,
}

// Menu curates complete festival meal plans.
type Menu struct{}

func (m *Menu) Name() string { return "curate_menu" }
func (m *Menu) Description() string {
	return "Create a complete traditional Persian festival meal plan with historical context and regional variations."
}

func (m *Menu) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"celebration": map[string]any{
				"type":        "string",
				"description": "Persian festival or celebration (e.g. 'Nowruz', 'Yalda', 'Mehregan', 'Chaharshanbe Suri')",
			},
			"region": map[string]any{
				"type":        "string",
				"description": "Specific region, or 'traditional' for a general menu",
			},
			"servings": map[string]any{
				"type":        "integer",
				"description": "Number of people to serve",
			},
		},
		"required":             []string{"celebration", "region", "servings"},
		"additionalProperties": false,
	}
}

func (m *Menu) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Celebration string `json:"celebration"`
		Region      string `json:"region"`
		Servings    int    `json:"servings"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing curate_menu input: %w", err)
	}
	if args.Region == "" {
		args.Region = "traditional"
	}
	if args.Servings <= 0 {
		args.Servings = 6
	}

	menu, ok := festivalMenus[args.Celebration]
	if !ok {
		menu = fmt.Sprintf("Traditional %s menu", args.Celebration)
	}

	return fmt.Sprintf(`**Festival Menu Curation: %s**

**Region:** %s
**Servings:** %d people

%s

**Menu Coordination Notes:**
- Timing for multi-dish preparation
- Flavor balance across courses
- Traditional serving order
- Seasonal ingredient availability
- Regional ingredient sourcing

**Cultural Storytelling:**
Each dish tells the story of %s - its origins, regional interpretations, and significance in Persian culture.`,
		args.Celebration, args.Region, args.Servings, menu, args.Celebration), nil
}
