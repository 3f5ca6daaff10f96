package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/edamedia/eda/internal/platform/ctxutil"
)

// rawJSONDirective is appended to the user prompt on the free-text retry.
const rawJSONDirective = "Responda SOMENTE com um objeto JSON valido, sem blocos de codigo, " +
	"sem comentarios e sem texto antes ou depois do objeto."

// fieldVariants maps the canonical field names to the variant spellings
// models occasionally produce in free-text mode. A variant is promoted
// only when the canonical key is absent from the payload.
var fieldVariants = map[string][]string{
	"content":           {"body", "text"},
	"suggestedTags":     {"tags"},
	"suggestedCategory": {"category"},
}

// GenerateResilientObject wraps client.GenerateObject with a one-shot
// free-text fallback.
//
// The fallback fires only for classified structured-output failures
// ([ErrSchemaParseFailure], [ErrNoObjectProduced]). It re-invokes the model
// in free-text mode with an explicit raw-JSON directive, strips any code
// fences, and normalizes known field-name variants. If the fallback payload
// still does not parse, the ORIGINAL structured error is returned so the
// caller sees the primary failure, not the rescue attempt's.
func GenerateResilientObject(context context.Context, client Client, request ObjectRequest) (*ObjectResult, error) {
	result, primaryErr := client.GenerateObject(context, request)
	if primaryErr == nil {
		return result, nil
	}

	if !IsClassified(primaryErr) {
		return nil, primaryErr
	}

	ctxutil.GetLogger(context).Warn("structured_generation_fallback",
		slog.String("schema", request.SchemaName),
		slog.Any("error", primaryErr),
	)

	textResult, err := client.GenerateText(context, TextRequest{
		System:      request.System,
		Prompt:      request.Prompt + "\n\n" + rawJSONDirective,
		Model:       request.Model,
		Temperature: request.Temperature,
		MaxTokens:   request.MaxTokens,
	})
	if err != nil {
		return nil, primaryErr
	}

	payload := StripCodeFence(textResult.Text)

	var object map[string]any
	if err := json.Unmarshal([]byte(payload), &object); err != nil {
		return nil, primaryErr
	}

	normalizeFieldVariants(object)

	normalized, err := json.Marshal(object)
	if err != nil {
		return nil, primaryErr
	}

	return &ObjectResult{
		JSON:  normalized,
		Usage: textResult.Usage,
		Model: textResult.Model,
	}, nil
}

// StripCodeFence removes a surrounding Markdown code fence, with or
// without a language tag, from a model response.
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)

	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")

	// Drop the language tag on the opening fence line, if any.
	if newline := strings.IndexByte(trimmed, '\n'); newline >= 0 {
		firstLine := strings.TrimSpace(trimmed[:newline])
		if firstLine == "" || isLanguageTag(firstLine) {
			trimmed = trimmed[newline+1:]
		}
	}

	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func isLanguageTag(line string) bool {
	if len(line) > 16 {
		return false
	}
	for _, r := range line {
		isLower := r >= 'a' && r <= 'z'
		isDigit := r >= '0' && r <= '9'
		if !isLower && !isDigit {
			return false
		}
	}
	return true
}

// normalizeFieldVariants promotes known variant keys to their canonical
// names, in place, without overwriting canonical values that are present.
func normalizeFieldVariants(object map[string]any) {
	for canonical, variants := range fieldVariants {
		if _, exists := object[canonical]; exists {
			continue
		}
		for _, variant := range variants {
			if value, ok := object[variant]; ok {
				object[canonical] = value
				delete(object, variant)
				break
			}
		}
	}
}
