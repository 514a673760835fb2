package tools

import (
	"context"
	"testing"

	"mashcook/internal/agent"

	"github.com/stretchr/testify/require"
)

// sampleArgs holds a complete, correctly typed argument set per tool.
var sampleArgs = map[string]string{
	"spice_sync_pulse":        `{}`,
	"generate_persian_prompt": `{"dish_concept":"Fesenjan","era":"Qajar Period","style":"retro_polaroid","emphasis":"food_textures"}`,
	"reconstruct_recipe":      `{"dish_name":"Ash Reshteh","century":"Safavid","variant":"royal","region":""}`,
	"analyze_regions":         `{"ingredient":"saffron","region":"all"}`,
	"create_narrative":        `{"dish_details":"Ghormeh Sabzi","include_emoji":true}`,
	"optimize_photography":    `{"dish":"Tahdig","lighting_style":"golden_hour"}`,
	"translate_technique":     `{"tool":"degh","modern_kitchen":true}`,
	"curate_menu":             `{"celebration":"Nowruz","region":"traditional","servings":6}`,
}

func TestAllToolsDeterministicAndNonEmpty(t *testing.T) {
	registry := agent.NewRegistry()
	Register(registry)

	all := registry.All()
	require.Len(t, all, len(sampleArgs))

	for _, tool := range all {
		t.Run(tool.Name(), func(t *testing.T) {
			args, ok := sampleArgs[tool.Name()]
			require.True(t, ok, "no sample arguments for tool")
			require.NotEmpty(t, tool.Description())
			require.NotNil(t, tool.InputSchema())

			first, err := tool.Execute(context.Background(), args)
			require.NoError(t, err)
			require.NotEmpty(t, first)

			second, err := tool.Execute(context.Background(), args)
			require.NoError(t, err)
			require.Equal(t, first, second)
		})
	}
}

func TestCurateMenuNowruz(t *testing.T) {
	m := &Menu{}
	out, err := m.Execute(context.Background(), `{"celebration":"Nowruz","region":"traditional","servings":6}`)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	require.Contains(t, out, "Nowruz")
	require.Contains(t, out, "6")
	require.Contains(t, out, "Sabzi Polo")
}

func TestCurateMenuDefaults(t *testing.T) {
	m := &Menu{}
	out, err := m.Execute(context.Background(), `{"celebration":"Mehregan","region":"","servings":0}`)
	require.NoError(t, err)
	require.Contains(t, out, "Traditional Mehregan menu")
	require.Contains(t, out, "traditional")
	require.Contains(t, out, "6 people")
}

func TestCurateMenuYalda(t *testing.T) {
	m := &Menu{}
	out, err := m.Execute(context.Background(), `{"celebration":"Yalda","region":"traditional","servings":10}`)
	require.NoError(t, err)
	require.Contains(t, out, "Fesenjan")
	require.Contains(t, out, "10 people")
}

func TestNarrativeEmojiToggle(t *testing.T) {
	n := &Narrative{}

	with, err := n.Execute(context.Background(), `{"dish_details":"Fesenjan","include_emoji":true}`)
	require.NoError(t, err)
	require.Contains(t, with, "#PersianCulinaryHeritage")

	without, err := n.Execute(context.Background(), `{"dish_details":"Fesenjan","include_emoji":false}`)
	require.NoError(t, err)
	require.NotContains(t, without, "#PersianCulinaryHeritage")
	require.Contains(t, without, "Fesenjan")
}

func TestVisualizeStyleFallback(t *testing.T) {
	v := &Visualize{}

	out, err := v.Execute(context.Background(), `{"dish_concept":"Tahchin","era":"","style":"does_not_exist","emphasis":""}`)
	require.NoError(t, err)
	require.Contains(t, out, "Retro Polaroid")
	require.Contains(t, out, "Tahchin")
	require.Contains(t, out, "Qajar Period Adaptation")
	require.Contains(t, out, "food_textures")
}

func TestTechniqueKnownAndUnknownTools(t *testing.T) {
	tr := &Technique{}

	known, err := tr.Execute(context.Background(), `{"tool":"Degh","modern_kitchen":true}`)
	require.NoError(t, err)
	require.Contains(t, known, "Dutch oven")
	require.Contains(t, known, "modern kitchen")

	unknown, err := tr.Execute(context.Background(), `{"tool":"tanoor","modern_kitchen":false}`)
	require.NoError(t, err)
	require.Contains(t, unknown, "Modern equivalent for tanoor")
	require.Contains(t, unknown, "traditional setting")
}

func TestRecipeVariants(t *testing.T) {
	r := &Recipe{}

	royal, err := r.Execute(context.Background(), `{"dish_name":"Tahchin","century":"Safavid","variant":"royal","region":""}`)
	require.NoError(t, err)
	require.Contains(t, royal, "Royal court preparation")
	require.Contains(t, royal, "Safavid Period")

	regional, err := r.Execute(context.Background(), `{"dish_name":"Mirza Ghasemi","century":"Qajar","variant":"regional","region":"Gilan"}`)
	require.NoError(t, err)
	require.Contains(t, regional, "Regional variation from Gilan")
}

func TestPulseIsStatelessHealthCheck(t *testing.T) {
	p := &Pulse{}
	out, err := p.Execute(context.Background(), `{}`)
	require.NoError(t, err)
	require.Contains(t, out, "Spice synchronization pulse acknowledged")

	again, err := p.Execute(context.Background(), `{}`)
	require.NoError(t, err)
	require.Equal(t, out, again)
}
