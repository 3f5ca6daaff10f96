// Copyright (c) 2026 Eda Media. All rights reserved.

package prompt_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edamedia/eda/internal/ai/knowledge"
	"github.com/edamedia/eda/internal/ai/prompt"
)

func newAssembler() *prompt.Assembler {
	// nil repository: only the static catalog participates, which makes
	// assembled prompts fully deterministic for assertions.
	return prompt.NewAssembler(knowledge.NewResolver(nil))
}

/*
TestBuildSystemPrompt_SectionOrdering verifies that a fully-toggled prompt
contains every section in the contractual order.
*/
func TestBuildSystemPrompt_SectionOrdering(t *testing.T) {
	assembler := newAssembler()

	result := assembler.BuildSystemPrompt(context.Background(), prompt.ContextConfig{
		IncludeBrandVoice:  true,
		IncludeSEORules:    true,
		CustomInstructions: "Cite a resolucao normativa da ANS.",
	})

	basePrompt := knowledge.CatalogPersona(knowledge.DefaultPersonaSlug).BasePrompt

	positions := []int{
		strings.Index(result, basePrompt),
		strings.Index(result, prompt.HeaderEditorialGuidelines),
		strings.Index(result, prompt.HeaderSEORules),
		strings.Index(result, prompt.HeaderCustomInstructions),
		strings.Index(result, prompt.OutputFormatDirective),
	}

	for i, position := range positions {
		require.GreaterOrEqual(t, position, 0, "section %d missing", i)
		if i > 0 {
			assert.Greater(t, position, positions[i-1], "section %d out of order", i)
		}
	}
}

/*
TestBuildSystemPrompt_ToggleIndependence verifies that flipping one layer
toggle never changes the text contributed by the other layers.
*/
func TestBuildSystemPrompt_ToggleIndependence(t *testing.T) {
	assembler := newAssembler()
	ctx := context.Background()

	testCases := []struct {
		name       string
		cfg        prompt.ContextConfig
		wantBrand  bool
		wantSEO    bool
		wantCustom bool
	}{
		{
			name: "all off",
			cfg:  prompt.ContextConfig{},
		},
		{
			name:      "brand voice only",
			cfg:       prompt.ContextConfig{IncludeBrandVoice: true},
			wantBrand: true,
		},
		{
			name:    "seo only",
			cfg:     prompt.ContextConfig{IncludeSEORules: true},
			wantSEO: true,
		},
		{
			name:       "custom only",
			cfg:        prompt.ContextConfig{CustomInstructions: "Use tom institucional."},
			wantCustom: true,
		},
		{
			name:      "brand voice with custom",
			cfg:       prompt.ContextConfig{IncludeBrandVoice: true, CustomInstructions: "Use tom institucional."},
			wantBrand: true, wantCustom: true,
		},
	}

	basePrompt := knowledge.CatalogPersona(knowledge.DefaultPersonaSlug).BasePrompt

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := assembler.BuildSystemPrompt(ctx, testCase.cfg)

			// Persona and directive are always present.
			assert.True(t, strings.HasPrefix(result, basePrompt))
			assert.True(t, strings.HasSuffix(result, prompt.OutputFormatDirective))

			assert.Equal(t, testCase.wantBrand, strings.Contains(result, prompt.HeaderEditorialGuidelines))
			assert.Equal(t, testCase.wantSEO, strings.Contains(result, prompt.HeaderSEORules))
			assert.Equal(t, testCase.wantCustom, strings.Contains(result, prompt.HeaderCustomInstructions))
		})
	}
}

/*
TestBuildSystemPrompt_BlankCustomInstructions verifies that whitespace-only
custom instructions do not produce an empty section.
*/
func TestBuildSystemPrompt_BlankCustomInstructions(t *testing.T) {
	assembler := newAssembler()

	result := assembler.BuildSystemPrompt(context.Background(), prompt.ContextConfig{
		CustomInstructions: "   \n\t ",
	})

	assert.NotContains(t, result, prompt.HeaderCustomInstructions)
}

/*
TestBuildSystemPrompt_PersonaSelection verifies that a named persona
replaces the default base prompt and that unknown slugs degrade to the
default persona.
*/
func TestBuildSystemPrompt_PersonaSelection(t *testing.T) {
	assembler := newAssembler()
	ctx := context.Background()

	columnist := assembler.BuildSystemPrompt(ctx, prompt.ContextConfig{PersonaSlug: "eda-coluna"})
	assert.True(t, strings.HasPrefix(columnist, knowledge.CatalogPersona("eda-coluna").BasePrompt))

	unknown := assembler.BuildSystemPrompt(ctx, prompt.ContextConfig{PersonaSlug: "no-such-persona"})
	fallback := assembler.BuildSystemPrompt(ctx, prompt.ContextConfig{})
	assert.Equal(t, fallback, unknown)
}

/*
TestPostGeneration_OptionalInputs verifies template substitution for the
post-generation user prompt.
*/
func TestPostGeneration_OptionalInputs(t *testing.T) {
	full := prompt.PostGeneration("reajuste de planos de saude", []string{"ANS", " reajuste "}, 900, "cite fontes oficiais")

	assert.Contains(t, full, "reajuste de planos de saude")
	assert.Contains(t, full, "900 palavras")
	assert.Contains(t, full, "ANS, reajuste")
	assert.Contains(t, full, "cite fontes oficiais")

	minimal := prompt.PostGeneration("telemedicina", nil, 800, "")

	assert.Contains(t, minimal, "telemedicina")
	assert.NotContains(t, minimal, "Palavras-chave")
	assert.NotContains(t, minimal, "Orientacoes adicionais")
}
