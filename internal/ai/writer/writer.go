// Package writer is the application service that turns editorial requests
// into ready-to-persist post payloads using the llm and prompt layers.
package writer

// PostGenerationConfig describes a full-article generation request.
//
// IncludeBrandVoice and IncludeSEORules default to true when omitted from
// the request payload.
type PostGenerationConfig struct {
	Topic              string   `json:"topic"`
	Keywords           []string `json:"keywords"`
	WordCount          int      `json:"word_count"`
	PersonaSlug        string   `json:"persona"`
	Model              string   `json:"model"`
	IncludeBrandVoice  *bool    `json:"include_brand_voice"`
	IncludeSEORules    *bool    `json:"include_seo_rules"`
	CustomInstructions string   `json:"custom_instructions"`
}

// RewriteConfig describes a rewrite-from-source request.
type RewriteConfig struct {
	Source             string `json:"source"`
	PersonaSlug        string `json:"persona"`
	Model              string `json:"model"`
	IncludeBrandVoice  *bool  `json:"include_brand_voice"`
	IncludeSEORules    *bool  `json:"include_seo_rules"`
	CustomInstructions string `json:"custom_instructions"`
}

// GeneratedPost is the structured article payload produced by the model.
// Field names mirror the generation schema; Slug is derived server-side
// from the title and never requested from the model.
type GeneratedPost struct {
	Title             string   `json:"title"`
	Slug              string   `json:"slug"`
	Excerpt           string   `json:"excerpt"`
	Content           string   `json:"content"`
	MetaDescription   string   `json:"metaDescription"`
	SuggestedTags     []string `json:"suggestedTags"`
	SuggestedCategory string   `json:"suggestedCategory"`
}

// Result wraps a generated post with its generation accounting.
type Result struct {
	Data       GeneratedPost `json:"data"`
	TokensUsed int64         `json:"tokens_used"`
	Model      string        `json:"model"`
	// Cost is reported as zero: there is no provider pricing table in the
	// system, and cost accounting happens downstream in billing exports.
	Cost float64 `json:"cost"`
}

// Global field names for validation
const (
	FieldTopic     = "topic"
	FieldSource    = "source"
	FieldWordCount = "word_count"
	FieldContent   = "content"
	FieldCount     = "count"
)
