package writer

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/edamedia/eda/internal/ai/llm"
	"github.com/edamedia/eda/internal/ai/prompt"
	"github.com/edamedia/eda/internal/platform/apperr"
	"github.com/edamedia/eda/internal/platform/constants"
	"github.com/edamedia/eda/internal/platform/validate"
	"github.com/edamedia/eda/pkg/pointer"
	"github.com/edamedia/eda/pkg/slice"
	"github.com/edamedia/eda/pkg/slug"
)

const (
	schemaNamePost   = "generated_post"
	schemaNameTitles = "title_suggestions"

	// maxGenerationTokens caps a single completion. Articles at the top of
	// the word-count range stay well under this.
	maxGenerationTokens = 8192
)

type Service struct {
	client    llm.Client
	assembler *prompt.Assembler
	logger    *slog.Logger
}

func NewService(client llm.Client, assembler *prompt.Assembler, logger *slog.Logger) *Service {
	return &Service{
		client:    client,
		assembler: assembler,
		logger:    logger,
	}
}

// GeneratePost produces a complete article for the given topic.
func (service *Service) GeneratePost(context context.Context, cfg PostGenerationConfig) (*Result, error) {
	wordCount := cfg.WordCount
	if wordCount == 0 {
		wordCount = constants.DefaultWordCount
	}

	validator := &validate.Validator{}
	validator.Required(FieldTopic, cfg.Topic).MaxLen(FieldTopic, cfg.Topic, 300)
	validator.Range(FieldWordCount, wordCount, 100, 5000)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	systemPrompt := service.systemPrompt(context, cfg.PersonaSlug, cfg.IncludeBrandVoice, cfg.IncludeSEORules, cfg.CustomInstructions)
	userPrompt := prompt.PostGeneration(cfg.Topic, cfg.Keywords, wordCount, cfg.CustomInstructions)

	result, err := service.generatePostObject(context, systemPrompt, userPrompt, cfg.Model)
	if err != nil {
		return nil, err
	}

	service.logger.Info("post_generated",
		slog.String("topic", cfg.Topic),
		slog.String("slug", result.Data.Slug),
		slog.Int64("tokens", result.TokensUsed),
		slog.String("model", result.Model),
	)
	return result, nil
}

// RewriteContent produces an original article from source material,
// preserving facts while eliminating verbatim overlap.
func (service *Service) RewriteContent(context context.Context, cfg RewriteConfig) (*Result, error) {
	validator := &validate.Validator{}
	validator.Required(FieldSource, cfg.Source).MinLen(FieldSource, cfg.Source, 100)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	systemPrompt := service.systemPrompt(context, cfg.PersonaSlug, cfg.IncludeBrandVoice, cfg.IncludeSEORules, cfg.CustomInstructions)
	userPrompt := prompt.Rewrite(cfg.Source, cfg.CustomInstructions)

	result, err := service.generatePostObject(context, systemPrompt, userPrompt, cfg.Model)
	if err != nil {
		return nil, err
	}

	service.logger.Info("content_rewritten",
		slog.String("slug", result.Data.Slug),
		slog.Int64("tokens", result.TokensUsed),
	)
	return result, nil
}

// GenerateTitles suggests count titles for a topic.
func (service *Service) GenerateTitles(context context.Context, topic string, keywords []string, count int) ([]string, error) {
	if count <= 0 {
		count = constants.DefaultTitleCount
	}

	validator := &validate.Validator{}
	validator.Required(FieldTopic, topic)
	validator.Range(FieldCount, count, 1, 20)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	systemPrompt := service.systemPrompt(context, "", nil, nil, "")

	result, err := llm.GenerateResilientObject(context, service.client, llm.ObjectRequest{
		System:     systemPrompt,
		Prompt:     prompt.Titles(topic, keywords, count),
		SchemaName: schemaNameTitles,
		Schema:     titleListSchema(),
		Model:      "",
	})
	if err != nil {
		return nil, apperr.Upstream("Title generation failed", err)
	}

	var payload struct {
		Titles []string `json:"titles"`
	}
	if err := json.Unmarshal(result.JSON, &payload); err != nil {
		return nil, apperr.Upstream("Title generation returned an unreadable payload", err)
	}

	// Models occasionally pad the list with blank entries.
	titles := slice.Filter(
		slice.Map(payload.Titles, strings.TrimSpace),
		func(title string) bool { return title != "" },
	)

	if len(titles) > count {
		titles = titles[:count]
	}
	return titles, nil
}

// GenerateExcerpt produces a short summary for existing content.
func (service *Service) GenerateExcerpt(context context.Context, content string, maxLen int) (string, error) {
	if maxLen <= 0 {
		maxLen = 300
	}

	validator := &validate.Validator{}
	validator.Required(FieldContent, content)
	if err := validator.Err(); err != nil {
		return "", err
	}

	return service.generateFreeText(context, prompt.Excerpt(content, maxLen))
}

// GenerateMetaDescription produces an SEO meta description for existing content.
func (service *Service) GenerateMetaDescription(context context.Context, title, content string, keywords []string) (string, error) {
	validator := &validate.Validator{}
	validator.Required("title", title)
	validator.Required(FieldContent, content)
	if err := validator.Err(); err != nil {
		return "", err
	}

	return service.generateFreeText(context, prompt.MetaDescription(title, content, keywords))
}

// ImproveContent rewrites content in place following the given focus.
func (service *Service) ImproveContent(context context.Context, content, instructions string) (string, error) {
	validator := &validate.Validator{}
	validator.Required(FieldContent, content)
	if err := validator.Err(); err != nil {
		return "", err
	}

	return service.generateFreeText(context, prompt.Improve(content, instructions))
}

// # Internals

// systemPrompt assembles the layered system prompt. The brand-voice and
// SEO layers are on unless explicitly disabled.
func (service *Service) systemPrompt(context context.Context, personaSlug string, brandVoice, seoRules *bool, custom string) string {
	return service.assembler.BuildSystemPrompt(context, prompt.ContextConfig{
		PersonaSlug:        personaSlug,
		IncludeBrandVoice:  pointer.Fallback(brandVoice, true),
		IncludeSEORules:    pointer.Fallback(seoRules, true),
		CustomInstructions: custom,
	})
}

// generatePostObject runs the resilient structured generation for the
// article schema and finishes the payload server-side (slug derivation).
func (service *Service) generatePostObject(context context.Context, systemPrompt, userPrompt, model string) (*Result, error) {
	generated, err := llm.GenerateResilientObject(context, service.client, llm.ObjectRequest{
		System:     systemPrompt,
		Prompt:     userPrompt,
		SchemaName: schemaNamePost,
		Schema:     generatedPostSchema(),
		Model:      model,
		MaxTokens:  maxGenerationTokens,
	})
	if err != nil {
		return nil, apperr.Upstream("Content generation failed", err)
	}

	var post GeneratedPost
	if err := json.Unmarshal(generated.JSON, &post); err != nil {
		return nil, apperr.Upstream("Content generation returned an unreadable payload", err)
	}

	if strings.TrimSpace(post.Title) == "" || strings.TrimSpace(post.Content) == "" {
		return nil, apperr.Upstream("Content generation returned an incomplete article", nil)
	}

	post.Slug = slug.From(post.Title)

	return &Result{
		Data:       post,
		TokensUsed: generated.Usage.TotalTokens,
		Model:      generated.Model,
		Cost:       0,
	}, nil
}

// generateFreeText runs a plain text generation and trims the result.
func (service *Service) generateFreeText(context context.Context, userPrompt string) (string, error) {
	systemPrompt := service.systemPrompt(context, "", nil, nil, "")

	result, err := service.client.GenerateText(context, llm.TextRequest{
		System: systemPrompt,
		Prompt: userPrompt,
	})
	if err != nil {
		return "", apperr.Upstream("Content generation failed", err)
	}

	return strings.TrimSpace(llm.StripCodeFence(result.Text)), nil
}
