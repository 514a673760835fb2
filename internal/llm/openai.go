package llm

import (
	"context"
	"fmt"
	"net/http"

	"mashcook/internal/config"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// OpenAIProvider speaks the Responses API against any OpenAI-compatible
// endpoint. All three configured provider variants go through it; only
// credentials and base URL differ.
type OpenAIProvider struct {
	client          *openai.Client
	model           string
	temperature     float64
	maxOutputTokens int64
}

// New builds the provider selected by cfg. cfg must already be validated.
func New(cfg *config.Config) (*OpenAIProvider, error) {
	var opts []option.RequestOption

	switch cfg.Provider {
	case config.ProviderOpenAI:
		opts = append(opts, option.WithAPIKey(cfg.OpenAI.APIKey))
		if cfg.OpenAI.BaseURL != "" {
			opts = append(opts, option.WithBaseURL(cfg.OpenAI.BaseURL))
		}
	case config.ProviderAnthropic:
		opts = append(opts,
			option.WithAPIKey(cfg.Anthropic.APIKey),
			option.WithBaseURL(cfg.Anthropic.BaseURL),
		)
	case config.ProviderAzure:
		opts = append(opts,
			option.WithBaseURL(cfg.Azure.Endpoint),
			option.WithHeader("api-key", cfg.Azure.APIKey),
			option.WithQueryAdd("api-version", cfg.Azure.APIVersion),
		)
	default:
		return nil, &config.Error{Reason: fmt.Sprintf("unknown provider %q", cfg.Provider)}
	}

	opts = append(opts, option.WithHTTPClient(&http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}))

	client := openai.NewClient(opts...)
	return &OpenAIProvider{
		client:          &client,
		model:           cfg.Model,
		temperature:     cfg.Temperature,
		maxOutputTokens: cfg.MaxOutputTokens,
	}, nil
}

func (o *OpenAIProvider) ChatStream(ctx context.Context, input []responses.ResponseInputItemUnionParam, tools []responses.ToolUnionParam, onToken func(string)) (*responses.Response, error) {
	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(o.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: input,
		},
		Tools:           tools,
		Temperature:     openai.Float(o.temperature),
		MaxOutputTokens: openai.Int(o.maxOutputTokens),
	}

	stream := o.client.Responses.NewStreaming(ctx, params)

	var completed *responses.Response

	for stream.Next() {
		event := stream.Current()

		switch event.Type {
		case "response.output_text.delta":
			if event.Delta != "" {
				onToken(event.Delta)
			}
		case "response.completed":
			completed = &event.Response
		case "response.failed":
			return nil, fmt.Errorf("response failed: %s", event.Response.Error.Message)
		}
	}

	if err := stream.Err(); err != nil {
		return nil, err
	}
	if completed == nil {
		return nil, fmt.Errorf("stream ended without a completed response")
	}

	return completed, nil
}
