package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

const narrativeHashtags = `

**Hashtags:**
#PersianCulinaryHeritage #EdibleHistory #SlowFoodPersia #CulinaryArchaeology #AncientFlavors #TraditionalPersianCuisine`

// Narrative generates cultural storytelling text for a dish.
type Narrative struct{}

func (n *Narrative) Name() string { return "create_narrative" }
func (n *Narrative) Description() string {
	return "Generate a cultural narrative for a dish with historical context, regional stories and social meaning."
}

func (n *Narrative) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"dish_details": map[string]any{
				"type":        "string",
				"description": "Dish name and key details for storytelling",
			},
			"include_emoji": map[string]any{
				"type":        "boolean",
				"description": "Include Persian cultural hashtags and symbols",
			},
		},
		"required":             []string{"dish_details", "include_emoji"},
		"additionalProperties": false,
	}
}

func (n *Narrative) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		DishDetails  string `json:"dish_details"`
		IncludeEmoji bool   `json:"include_emoji"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing create_narrative input: %w", err)
	}

	tail := ""
	if args.IncludeEmoji {
		tail = narrativeHashtags
	}

	return fmt.Sprintf(`%s isn't just a dish - it's a culinary poem written in the language of Persian history. Originating in the ancient lands that span from the Caspian to the Persian Gulf, this dish has traveled through millennia, from royal Sassanian courts to modern diaspora kitchens. Each ingredient tells a story: saffron for luxury and sunlight, pomegranate for life and eternity, walnuts for wisdom and fertility, rice as the foundation of Persian hospitality.

In traditional Persian medicine, dishes balance 'hot' and 'cold' ingredients, creating harmony in both body and soul. Families pass down their unique interpretations like heirlooms - some leaning toward tart northern Gilani styles, others toward sweeter Isfahani interpretations, each reflecting regional character and historical influence.

Making %s is an act of patience and love, as flavors slowly develop over hours, filling the kitchen with memories of grandmothers, festive gatherings, and Nowruz celebrations. The techniques have been preserved through generations, each master chef adding subtle refinements while maintaining ancestral authenticity.

This is more than food - it's edible history. Every spice thread and pomegranate seed carries the weight of 3,000 years of culinary evolution, from pre-Islamic feasts to modern interpretations that honor tradition while embracing contemporary kitchens.%s`,
		args.DishDetails, args.DishDetails, tail), nil
}
