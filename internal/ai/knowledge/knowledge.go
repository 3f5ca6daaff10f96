// Package knowledge holds the editorial identities and reusable knowledge
// blocks that shape AI-generated content.
//
// A Persona defines WHO is writing (voice, role, base prompt). A
// KnowledgeBlock defines WHAT the writer must respect (brand guidelines,
// SEO rules). Both are resolved through a layered chain: database row,
// then static catalog, so generation keeps working even when the store
// is empty or unreachable.
package knowledge

import "time"

// # Tones

const (
	ToneProfessional = "professional"
	ToneCasual       = "casual"
	ToneDidactic     = "didactic"
	ToneProvocative  = "provocative"
)

// Tones returns the allowed tone vocabulary.
func Tones() []string {
	return []string{ToneProfessional, ToneCasual, ToneDidactic, ToneProvocative}
}

// # Entities

// Persona represents an editorial writing identity.
type Persona struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	Description   string    `json:"description"`
	BasePrompt    string    `json:"base_prompt"`
	PreferredTone string    `json:"preferred_tone"`
	IsActive      bool      `json:"is_active"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// KnowledgeBlock is a reusable chunk of editorial context injected into
// system prompts by name.
type KnowledgeBlock struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Position  int       `json:"position"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Global field names for validation
const (
	FieldSlug       = "slug"
	FieldName       = "name"
	FieldBasePrompt = "base_prompt"
	FieldTone       = "preferred_tone"
	FieldContent    = "content"
)
