package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

var styleDirectives = map[string]string{
	"retro_polaroid":   "Vintage 1970s cookbook photography mood. Retro Polaroid aesthetics with warm film grain.",
	"magazine_shoot":   "Editorial food styling and composition. High-end culinary magazine photography.",
	"natural_sunlight": "Natural window light and shadow for texture highlighting. Golden hour illumination.",
	"wide_angle_feast": "Table spread and communal dining drama. Wide-angle perspective emphasizing feast.",
	"minimalist_focus": "Background subtraction for dish heroism. Minimalist composition.",
}

// Visualize builds hyper-detailed image prompts for Persian dishes.
type Visualize struct{}

func (v *Visualize) Name() string { return "generate_persian_prompt" }
func (v *Visualize) Description() string {
	return "Create a hyper-detailed AI image prompt for a Persian dish with cultural authenticity, sensory richness and photographic composition."
}

func (v *Visualize) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"dish_concept": map[string]any{
				"type":        "string",
				"description": "The Persian dish or food concept to create a prompt for",
			},
			"era": map[string]any{
				"type":        "string",
				"description": "Historical era: 'Ancient Royal Court', 'Safavid Era', 'Qajar Period', 'Modern Regional' or 'Diaspora'",
			},
			"style": map[string]any{
				"type":        "string",
				"enum":        []string{"retro_polaroid", "magazine_shoot", "natural_sunlight", "wide_angle_feast", "minimalist_focus"},
				"description": "Photography style",
			},
			"emphasis": map[string]any{
				"type":        "string",
				"description": "What to emphasize: 'food_textures', 'cultural_authenticity', 'ingredient_details', 'lighting_mood' or 'movement_capture'",
			},
		},
		"required":             []string{"dish_concept", "era", "style", "emphasis"},
		"additionalProperties": false,
	}
}

func (v *Visualize) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		DishConcept string `json:"dish_concept"`
		Era         string `json:"era"`
		Style       string `json:"style"`
		Emphasis    string `json:"emphasis"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing generate_persian_prompt input: %w", err)
	}
	if args.Era == "" {
		args.Era = "Qajar Period Adaptation"
	}
	if args.Emphasis == "" {
		args.Emphasis = "food_textures"
	}

	directive, ok := styleDirectives[args.Style]
	if !ok {
		directive = styleDirectives["retro_polaroid"]
	}

	return fmt.Sprintf(`Create a high-quality culinary photograph in the style of %s, featuring traditional Persian %s as the absolute hero of the image. Shot in warm, natural late afternoon sunlight streaming through a wooden kitchen window, with emphasis on %s.

The dish should glisten with authentic ingredients - saffron threads, pomegranate seeds, crushed walnuts, fresh herbs. Serve in an authentic Persian copper degh with intricate engravings, alongside saffron rice with tahdig. Background shows traditional Persian carpet and vintage cookbooks.

Cultural authenticity: %s presentation and vessels. Hyper-realistic food texture simulation. Steam, drizzle, and garnish placement dynamics. 32k, hyper-detailed, culinary photography. The food is the story.`,
		directive, args.DishConcept, args.Emphasis, args.Era), nil
}
