package llm

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/edamedia/eda/internal/platform/constants"
)

// OpenAIConfig configures the OpenAI-compatible adapter.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// OpenAI implements [Client] against any OpenAI-compatible
// chat-completions endpoint using the official openai-go SDK.
type OpenAI struct {
	client openai.Client
	model  string
}

// NewOpenAI creates the adapter. BaseURL is optional; Model falls back to
// the platform default when empty.
func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm: openai api key is required")
	}

	options := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		options = append(options, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = constants.DefaultAIModel
	}

	return &OpenAI{
		client: openai.NewClient(options...),
		model:  model,
	}, nil
}

// GenerateObject performs a schema-bound chat completion using the
// json_schema response format in strict mode.
func (adapter *OpenAI) GenerateObject(context context.Context, request ObjectRequest) (*ObjectResult, error) {
	params := adapter.baseParams(request.System, request.Prompt, request.Model, request.Temperature, request.MaxTokens)

	params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
			JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
				Name:   request.SchemaName,
				Schema: request.Schema,
				Strict: openai.Bool(true),
			},
		},
	}

	completion, err := adapter.client.Chat.Completions.New(context, params)
	if err != nil {
		return nil, fmt.Errorf("llm: chat completion failed: %w", err)
	}

	content, err := extractContent(completion)
	if err != nil {
		return nil, err
	}

	// The provider promises schema-conformant JSON in strict mode, but some
	// compatible backends only approximate it. Verify before handing it on.
	var object map[string]any
	if err := json.Unmarshal([]byte(content), &object); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaParseFailure, err)
	}

	return &ObjectResult{
		JSON:  json.RawMessage(content),
		Usage: usageOf(completion),
		Model: completion.Model,
	}, nil
}

// GenerateText performs a plain chat completion.
func (adapter *OpenAI) GenerateText(context context.Context, request TextRequest) (*TextResult, error) {
	params := adapter.baseParams(request.System, request.Prompt, request.Model, request.Temperature, request.MaxTokens)

	completion, err := adapter.client.Chat.Completions.New(context, params)
	if err != nil {
		return nil, fmt.Errorf("llm: chat completion failed: %w", err)
	}

	content, err := extractContent(completion)
	if err != nil {
		return nil, err
	}

	return &TextResult{
		Text:  content,
		Usage: usageOf(completion),
		Model: completion.Model,
	}, nil
}

// baseParams builds the shared chat-completion parameters.
func (adapter *OpenAI) baseParams(system, prompt, model string, temperature float64, maxTokens int64) openai.ChatCompletionNewParams {
	if model == "" {
		model = adapter.model
	}
	if temperature == 0 {
		temperature = constants.DefaultAITemperature
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
	}

	if maxTokens > 0 {
		params.MaxTokens = openai.Int(maxTokens)
	}

	return params
}

// extractContent pulls the assistant message out of a completion,
// classifying empty and refused responses.
func extractContent(completion *openai.ChatCompletion) (string, error) {
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choice list", ErrNoObjectProduced)
	}

	message := completion.Choices[0].Message
	if message.Refusal != "" {
		return "", fmt.Errorf("%w: model refused: %s", ErrNoObjectProduced, message.Refusal)
	}
	if message.Content == "" {
		return "", fmt.Errorf("%w: empty content", ErrNoObjectProduced)
	}

	return message.Content, nil
}

func usageOf(completion *openai.ChatCompletion) Usage {
	return Usage{
		PromptTokens:     completion.Usage.PromptTokens,
		CompletionTokens: completion.Usage.CompletionTokens,
		TotalTokens:      completion.Usage.TotalTokens,
	}
}
