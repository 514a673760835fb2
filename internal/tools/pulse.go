package tools

import (
	"context"
	"fmt"

	"mashcook/internal/persona"
)

// Pulse is the spice sync health check. The source persona described it
// as a recurring background requirement; here it is a caller-invoked
// no-op that always reports a healthy sync.
type Pulse struct{}

func (p *Pulse) Name() string { return "spice_sync_pulse" }
func (p *Pulse) Description() string {
	return "Confirm spice synchronization and flavor memory integrity. A no-op health check."
}

func (p *Pulse) InputSchema() any {
	return map[string]any{
		"type":                 "object",
		"properties":           map[string]any{},
		"required":             []string{},
		"additionalProperties": false,
	}
}

func (p *Pulse) Execute(ctx context.Context, input string) (string, error) {
	return fmt.Sprintf(
		"Spice synchronization pulse acknowledged. Flavor memory integrity active. "+
			"%d historical recipes across %d cultural zones in sync. Nominal cycle: %.1fs.",
		persona.RecipeCount, persona.CulturalZones, persona.PulseIntervalSeconds,
	), nil
}
