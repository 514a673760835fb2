package agent

import (
	"context"
	"log/slog"
	"strings"

	"mashcook/internal/history"
	"mashcook/internal/llm"
	"mashcook/internal/trace"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/responses"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const defaultMaxToolRounds = 8

type Option func(*DispatchRunner)

func WithSystemPrompt(s string) Option {
	return func(r *DispatchRunner) { r.systemPrompt = s }
}

func WithMaxToolRounds(n int) Option {
	return func(r *DispatchRunner) {
		if n > 0 {
			r.maxToolRounds = n
		}
	}
}

// DispatchRunner implements the tool dispatch loop: send the session
// history plus tool schemas to the provider, and while the response
// requests tool calls, validate the arguments, execute the tool and
// feed its output back. The loop ends when the provider returns a final
// assistant message, or fails on validation, an unknown tool, a
// provider error or the round bound.
//
// Sessions are stateful: the runner holds the session lock for the
// whole run, so concurrent runs on the same session serialize. New
// turns are committed to the store only when the run succeeds; a failed
// run leaves the session history exactly as it found it.
type DispatchRunner struct {
	provider      llm.Provider
	store         *history.Store
	registry      *Registry
	tools         []responses.ToolUnionParam
	systemPrompt  string
	maxToolRounds int
}

func NewDispatchRunner(provider llm.Provider, store *history.Store, registry *Registry, opts ...Option) *DispatchRunner {
	r := &DispatchRunner{
		provider:      provider,
		store:         store,
		registry:      registry,
		maxToolRounds: defaultMaxToolRounds,
	}

	for _, opt := range opts {
		opt(r)
	}

	for _, t := range registry.All() {
		schema, _ := t.InputSchema().(map[string]any)
		r.tools = append(r.tools, responses.ToolUnionParam{
			OfFunction: &responses.FunctionToolParam{
				Name:        t.Name(),
				Description: openai.String(t.Description()),
				Parameters:  schema,
				Strict:      openai.Bool(true),
			},
		})
	}

	return r
}

func (r *DispatchRunner) Run(ctx context.Context, sessionID string, message string, emit func(Event)) error {
	truncatedMsg := message
	if len(truncatedMsg) > 200 {
		truncatedMsg = truncatedMsg[:200]
	}
	ctx, span := trace.Tracer().Start(ctx, "agent.dispatch.run",
		oteltrace.WithAttributes(
			attribute.String("agent.name", "mashcook"),
			attribute.String("session.id", sessionID),
			attribute.String("user.message", truncatedMsg),
		),
	)
	defer span.End()

	release := r.store.Acquire(sessionID)
	defer release()

	userMsg := responses.ResponseInputItemParamOfMessage(message, "user")
	input := r.store.Snapshot(sessionID)
	if r.systemPrompt != "" {
		input = append(input, responses.ResponseInputItemParamOfMessage(r.systemPrompt, "developer"))
	}
	input = append(input, userMsg)

	// Items staged for commit. Only appended to the session on success,
	// so a failed run leaves the history unaltered.
	staged := []responses.ResponseInputItemUnionParam{userMsg}

	toolRounds := 0
	for {
		if err := ctx.Err(); err != nil {
			emit(Event{Type: EventError, Data: "request cancelled"})
			return err
		}

		llmCtx, llmSpan := trace.Tracer().Start(ctx, "llm.dispatch",
			oteltrace.WithAttributes(attribute.Int("llm.tool_rounds", toolRounds)),
		)

		var deltas []string
		resp, err := r.provider.ChatStream(llmCtx, input, r.tools, func(token string) {
			deltas = append(deltas, token)
		})
		if err != nil {
			llmSpan.RecordError(err)
			llmSpan.SetStatus(codes.Error, err.Error())
			llmSpan.End()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			emit(Event{Type: EventError, Data: err.Error()})
			// Provider errors surface unmodified; retry is the caller's call.
			return err
		}

		llmSpan.SetAttributes(
			attribute.String("llm.model", string(resp.Model)),
			attribute.Int64("llm.input_tokens", resp.Usage.InputTokens),
			attribute.Int64("llm.output_tokens", resp.Usage.OutputTokens),
		)
		llmSpan.End()

		outItems := history.OutputToInput(resp.Output)
		input = append(input, outItems...)
		staged = append(staged, outItems...)

		var calls []responses.ResponseOutputItemUnion
		for _, item := range resp.Output {
			if item.Type == "function_call" {
				calls = append(calls, item)
			}
		}

		// No tool request: the assistant message is final. Stream it,
		// commit the turn and finish.
		if len(calls) == 0 {
			text := finalText(resp)
			if text == "" {
				text = strings.Join(deltas, "")
			}
			for _, d := range deltas {
				emit(Event{Type: EventToken, Data: d})
			}
			r.store.Commit(sessionID, staged)
			emit(Event{Type: EventDone, Data: text})
			return nil
		}

		toolRounds++
		if toolRounds > r.maxToolRounds {
			err := &ToolLoopError{Rounds: r.maxToolRounds}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			emit(Event{Type: EventError, Data: err.Error()})
			return err
		}

		// Tool calls run strictly sequentially: each result must reach the
		// provider before the next turn is decided.
		results, err := r.dispatch(ctx, calls, emit)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			emit(Event{Type: EventError, Data: err.Error()})
			return err
		}
		input = append(input, results...)
		staged = append(staged, results...)
	}
}

// dispatch validates and executes one round of tool calls in order,
// returning their outputs as input items for the next provider turn.
func (r *DispatchRunner) dispatch(ctx context.Context, calls []responses.ResponseOutputItemUnion, emit func(Event)) ([]responses.ResponseInputItemUnionParam, error) {
	var results []responses.ResponseInputItemUnionParam

	for _, call := range calls {
		fc := call.AsFunctionCall()

		emit(Event{Type: EventToolCall, Data: map[string]string{
			"name":      fc.Name,
			"arguments": fc.Arguments,
		}})

		tool, ok := r.registry.Get(fc.Name)
		if !ok {
			slog.Warn("unknown tool requested", "name", fc.Name)
			return nil, &UnknownToolError{Name: fc.Name}
		}

		if err := validateArgs(fc.Name, tool.InputSchema(), fc.Arguments); err != nil {
			slog.Warn("tool arguments rejected", "name", fc.Name, "error", err)
			return nil, err
		}

		result, err := withTrace(tool).Execute(ctx, fc.Arguments)
		if err != nil {
			slog.Warn("tool execution failed", "name", fc.Name, "error", err)
			return nil, err
		}

		// A cancelled run discards the tool result rather than committing it.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		results = append(results, responses.ResponseInputItemParamOfFunctionCallOutput(fc.CallID, result))
		emit(Event{Type: EventToolResult, Data: map[string]string{
			"name":    fc.Name,
			"content": result,
		}})
	}

	return results, nil
}

// finalText extracts the assistant's output text from a completed
// response.
func finalText(resp *responses.Response) string {
	var b strings.Builder
	for _, item := range resp.Output {
		if item.Type != "message" {
			continue
		}
		msg := item.AsMessage()
		for _, part := range msg.Content {
			if part.Type == "output_text" {
				b.WriteString(part.Text)
			}
		}
	}
	return b.String()
}
