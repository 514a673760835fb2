package persona

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstructionsCarryThePersonaCore(t *testing.T) {
	got := Instructions()

	require.Contains(t, got, Name)
	require.Contains(t, got, Version)
	require.Contains(t, got, strconv.Itoa(RecipeCount))
	require.Contains(t, got, strconv.Itoa(CulturalZones))
	require.Contains(t, got, "spice_sync_pulse")
	require.Contains(t, got, "ancestral knowledge")

	// Stable: the persona is a constant, not generated state.
	require.Equal(t, got, Instructions())
}
