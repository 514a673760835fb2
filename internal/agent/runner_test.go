package agent_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"mashcook/internal/agent"
	"mashcook/internal/history"
	"mashcook/internal/tools"

	"github.com/openai/openai-go/v3/responses"
	"github.com/stretchr/testify/require"
)

// scriptedProvider replays canned responses. If the script runs out it
// repeats the last entry, which lets loop-bound tests model a provider
// that requests tools forever.
type scriptedProvider struct {
	script []scriptedTurn
	calls  int
	err    error
}

type scriptedTurn struct {
	resp   *responses.Response
	deltas []string
}

func (p *scriptedProvider) ChatStream(ctx context.Context, input []responses.ResponseInputItemUnionParam, toolParams []responses.ToolUnionParam, onToken func(string)) (*responses.Response, error) {
	if p.err != nil {
		return nil, p.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i := p.calls
	p.calls++
	if i >= len(p.script) {
		i = len(p.script) - 1
	}
	for _, d := range p.script[i].deltas {
		onToken(d)
	}
	return p.script[i].resp, nil
}

func respFromJSON(t *testing.T, raw string) *responses.Response {
	t.Helper()
	var resp responses.Response
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	return &resp
}

func finalMessageResp(t *testing.T, text string) *responses.Response {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"model": "test-model",
		"output": []map[string]any{
			{
				"type": "message",
				"role": "assistant",
				"content": []map[string]any{
					{"type": "output_text", "text": text},
				},
			},
		},
	})
	require.NoError(t, err)
	return respFromJSON(t, string(raw))
}

func toolCallResp(t *testing.T, name, arguments string) *responses.Response {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"model": "test-model",
		"output": []map[string]any{
			{
				"type":      "function_call",
				"call_id":   "call_1",
				"name":      name,
				"arguments": arguments,
			},
		},
	})
	require.NoError(t, err)
	return respFromJSON(t, string(raw))
}

func newRunner(provider *scriptedProvider, store *history.Store, opts ...agent.Option) *agent.DispatchRunner {
	registry := agent.NewRegistry()
	tools.Register(registry)
	return agent.NewDispatchRunner(provider, store, registry, opts...)
}

func collectEvents(events *[]agent.Event) func(agent.Event) {
	return func(ev agent.Event) { *events = append(*events, ev) }
}

func TestRunNoToolReturnsFinalText(t *testing.T) {
	provider := &scriptedProvider{script: []scriptedTurn{
		{resp: finalMessageResp(t, "Salam!"), deltas: []string{"Sal", "am!"}},
	}}
	store := history.NewStore()
	runner := newRunner(provider, store)

	var events []agent.Event
	err := runner.Run(context.Background(), "s1", "hello", collectEvents(&events))
	require.NoError(t, err)

	var streamed strings.Builder
	var done string
	for _, ev := range events {
		switch ev.Type {
		case agent.EventToken:
			streamed.WriteString(ev.Data.(string))
		case agent.EventDone:
			done = ev.Data.(string)
		case agent.EventToolCall, agent.EventToolResult:
			t.Fatalf("unexpected tool event: %+v", ev)
		}
	}
	require.Equal(t, "Salam!", streamed.String())
	require.Equal(t, "Salam!", done)

	// user message + assistant message committed
	require.Equal(t, 2, store.Len("s1"))
}

func TestRunTextHelper(t *testing.T) {
	provider := &scriptedProvider{script: []scriptedTurn{
		{resp: finalMessageResp(t, "Khosh amadid")},
	}}
	runner := newRunner(provider, history.NewStore())

	text, err := agent.RunText(context.Background(), runner, "s1", "hello")
	require.NoError(t, err)
	require.Equal(t, "Khosh amadid", text)
}

func TestRunSingleToolRound(t *testing.T) {
	provider := &scriptedProvider{script: []scriptedTurn{
		{resp: toolCallResp(t, "curate_menu", `{"celebration":"Nowruz","region":"traditional","servings":6}`)},
		{resp: finalMessageResp(t, "Here is your Nowruz menu."), deltas: []string{"Here is your Nowruz menu."}},
	}}
	store := history.NewStore()
	runner := newRunner(provider, store)

	var events []agent.Event
	err := runner.Run(context.Background(), "s1", "plan nowruz dinner for 6", collectEvents(&events))
	require.NoError(t, err)

	var sawCall, sawResult bool
	for _, ev := range events {
		switch ev.Type {
		case agent.EventToolCall:
			data := ev.Data.(map[string]string)
			require.Equal(t, "curate_menu", data["name"])
			sawCall = true
		case agent.EventToolResult:
			data := ev.Data.(map[string]string)
			require.Contains(t, data["content"], "Nowruz")
			require.Contains(t, data["content"], "6")
			sawResult = true
		}
	}
	require.True(t, sawCall)
	require.True(t, sawResult)

	// user + function_call + function_call_output + assistant message
	require.Equal(t, 4, store.Len("s1"))
}

func TestRunUnknownToolLeavesHistoryUnaltered(t *testing.T) {
	provider := &scriptedProvider{script: []scriptedTurn{
		{resp: toolCallResp(t, "summon_djinn", `{}`)},
	}}
	store := history.NewStore()
	runner := newRunner(provider, store)

	err := runner.Run(context.Background(), "s1", "hello", func(agent.Event) {})
	var unknownErr *agent.UnknownToolError
	require.ErrorAs(t, err, &unknownErr)
	require.Equal(t, "summon_djinn", unknownErr.Name)

	require.Equal(t, 0, store.Len("s1"))
}

func TestRunValidationErrors(t *testing.T) {
	cases := map[string]struct {
		arguments string
		param     string
	}{
		"missing required": {
			arguments: `{"celebration":"Nowruz","region":"traditional"}`,
			param:     "servings",
		},
		"mistyped": {
			arguments: `{"celebration":"Nowruz","region":"traditional","servings":"six"}`,
			param:     "servings",
		},
		"not in schema": {
			arguments: `{"celebration":"Nowruz","region":"traditional","servings":6,"wine":"none"}`,
			param:     "wine",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			provider := &scriptedProvider{script: []scriptedTurn{
				{resp: toolCallResp(t, "curate_menu", tc.arguments)},
			}}
			store := history.NewStore()
			runner := newRunner(provider, store)

			err := runner.Run(context.Background(), "s1", "hello", func(agent.Event) {})
			var valErr *agent.ValidationError
			require.ErrorAs(t, err, &valErr)
			require.Equal(t, "curate_menu", valErr.Tool)
			require.Equal(t, tc.param, valErr.Param)

			require.Equal(t, 0, store.Len("s1"))
		})
	}
}

func TestRunToolLoopExceeded(t *testing.T) {
	provider := &scriptedProvider{script: []scriptedTurn{
		{resp: toolCallResp(t, "spice_sync_pulse", `{}`)},
	}}
	store := history.NewStore()
	runner := newRunner(provider, store, agent.WithMaxToolRounds(3))

	err := runner.Run(context.Background(), "s1", "pulse forever", func(agent.Event) {})
	var loopErr *agent.ToolLoopError
	require.ErrorAs(t, err, &loopErr)
	require.Equal(t, 3, loopErr.Rounds)
	// three tool rounds ran; the fourth round was refused after its provider call
	require.Equal(t, 4, provider.calls)
	require.Equal(t, 0, store.Len("s1"))
}

func TestRunProviderErrorPassesThrough(t *testing.T) {
	sentinel := errors.New("quota exceeded")
	provider := &scriptedProvider{err: sentinel}
	store := history.NewStore()
	runner := newRunner(provider, store)

	err := runner.Run(context.Background(), "s1", "hello", func(agent.Event) {})
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 0, store.Len("s1"))
}

func TestRunCancelledBeforeProviderCall(t *testing.T) {
	provider := &scriptedProvider{script: []scriptedTurn{
		{resp: finalMessageResp(t, "never seen")},
	}}
	store := history.NewStore()
	runner := newRunner(provider, store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.Run(ctx, "s1", "hello", func(agent.Event) {})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, store.Len("s1"))
}

// cancellingTool cancels the run from inside its own execution, which
// models the client hanging up while a tool round is busy.
type cancellingTool struct {
	cancel context.CancelFunc
}

func (c *cancellingTool) Name() string        { return "slow_simmer" }
func (c *cancellingTool) Description() string { return "Simmer a stew until told to stop." }
func (c *cancellingTool) InputSchema() any {
	return map[string]any{
		"type":                 "object",
		"properties":           map[string]any{},
		"required":             []string{},
		"additionalProperties": false,
	}
}

func (c *cancellingTool) Execute(ctx context.Context, input string) (string, error) {
	c.cancel()
	return "simmered", nil
}

func TestRunCancelledDuringToolRoundDiscardsResult(t *testing.T) {
	provider := &scriptedProvider{script: []scriptedTurn{
		{resp: toolCallResp(t, "slow_simmer", `{}`)},
		{resp: finalMessageResp(t, "never seen")},
	}}
	store := history.NewStore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := agent.NewRegistry()
	registry.Register(&cancellingTool{cancel: cancel})
	runner := agent.NewDispatchRunner(provider, store, registry)

	var events []agent.Event
	err := runner.Run(ctx, "s1", "simmer the stew", collectEvents(&events))
	require.ErrorIs(t, err, context.Canceled)

	// The finished tool's output is discarded, not surfaced or committed.
	for _, ev := range events {
		require.NotEqual(t, agent.EventToolResult, ev.Type)
	}
	require.Equal(t, 1, provider.calls)
	require.Equal(t, 0, store.Len("s1"))
}

func TestScopedRegistryRejectsOutOfProfileTool(t *testing.T) {
	provider := &scriptedProvider{script: []scriptedTurn{
		{resp: toolCallResp(t, "curate_menu", `{"celebration":"Nowruz","region":"traditional","servings":6}`)},
	}}
	store := history.NewStore()

	registry := agent.NewRegistry()
	tools.Register(registry)
	factory := agent.NewRunnerFactory(provider, store, registry, map[string]*agent.Profile{
		"visualizer": {
			Name:  "visualizer",
			Tools: []string{"generate_persian_prompt", "optimize_photography"},
		},
	})

	runner, err := factory.Build("visualizer")
	require.NoError(t, err)

	runErr := runner.Run(context.Background(), "s1", "hello", func(agent.Event) {})
	var unknownErr *agent.UnknownToolError
	require.ErrorAs(t, runErr, &unknownErr)

	_, err = factory.Build("nonexistent")
	require.Error(t, err)
}
