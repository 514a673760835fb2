package agent

import (
	"fmt"

	"mashcook/internal/history"
	"mashcook/internal/llm"
)

// RunnerFactory builds scoped runners from agent profiles.
type RunnerFactory struct {
	provider       llm.Provider
	store          *history.Store
	globalRegistry *Registry
	profiles       map[string]*Profile
}

func NewRunnerFactory(provider llm.Provider, store *history.Store, registry *Registry, profiles map[string]*Profile) *RunnerFactory {
	return &RunnerFactory{
		provider:       provider,
		store:          store,
		globalRegistry: registry,
		profiles:       profiles,
	}
}

// Build creates a new DispatchRunner scoped to the given profile.
func (f *RunnerFactory) Build(profileName string) (Runner, error) {
	profile, ok := f.profiles[profileName]
	if !ok {
		return nil, fmt.Errorf("unknown agent profile: %s", profileName)
	}

	registry := f.globalRegistry.Scope(profile.Tools)

	var opts []Option
	if profile.SystemPrompt != "" {
		opts = append(opts, WithSystemPrompt(profile.SystemPrompt))
	}
	if profile.MaxToolRounds > 0 {
		opts = append(opts, WithMaxToolRounds(profile.MaxToolRounds))
	}

	return NewDispatchRunner(f.provider, f.store, registry, opts...), nil
}

// Profiles returns the names of all registered profiles.
func (f *RunnerFactory) Profiles() []string {
	names := make([]string, 0, len(f.profiles))
	for name := range f.profiles {
		names = append(names, name)
	}
	return names
}
