// Package tools holds MashCook's callable tool set. Every tool is a
// pure text template over its parameters: deterministic output, no
// network, no disk, no shared state.
package tools

import "mashcook/internal/agent"

// Register adds the full culinary toolset to a registry.
func Register(r *agent.Registry) {
	r.Register(&Pulse{})
	r.Register(&Visualize{})
	r.Register(&Recipe{})
	r.Register(&Regions{})
	r.Register(&Narrative{})
	r.Register(&Photography{})
	r.Register(&Technique{})
	r.Register(&Menu{})
}
