// Copyright (c) 2026 Eda Media. All rights reserved.

package knowledge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edamedia/eda/internal/ai/knowledge"
	"github.com/edamedia/eda/internal/platform/dberr"
)

// stubRepository is an in-memory Repository for resolver tests.
type stubRepository struct {
	personas map[string]*knowledge.Persona
	blocks   map[string]*knowledge.KnowledgeBlock
	err      error
}

func (stub *stubRepository) ActivePersona(_ context.Context, slug string) (*knowledge.Persona, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	if persona, ok := stub.personas[slug]; ok {
		return persona, nil
	}
	return nil, dberr.ErrNotFound
}

func (stub *stubRepository) ActiveKnowledgeBlock(_ context.Context, slug string) (*knowledge.KnowledgeBlock, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	if block, ok := stub.blocks[slug]; ok {
		return block, nil
	}
	return nil, dberr.ErrNotFound
}

/*
TestResolvePersona_StoreWins verifies that a database persona shadows the
static catalog entry with the same slug.
*/
func TestResolvePersona_StoreWins(t *testing.T) {
	repo := &stubRepository{
		personas: map[string]*knowledge.Persona{
			knowledge.DefaultPersonaSlug: {
				Slug:       knowledge.DefaultPersonaSlug,
				Name:       "Eda Pro (editado)",
				BasePrompt: "Prompt editado pela redacao.",
			},
		},
	}
	resolver := knowledge.NewResolver(repo)

	persona := resolver.ResolvePersona(context.Background(), knowledge.DefaultPersonaSlug)

	require.NotNil(t, persona)
	assert.Equal(t, "Eda Pro (editado)", persona.Name)
	assert.Equal(t, "Prompt editado pela redacao.", persona.BasePrompt)
}

/*
TestResolvePersona_FallbackChain verifies the full degradation chain:
store miss falls back to catalog, unknown slug falls back to the default
persona, and the result is always non-nil.
*/
func TestResolvePersona_FallbackChain(t *testing.T) {
	testCases := []struct {
		name         string
		repo         knowledge.Repository
		slug         string
		expectedSlug string
	}{
		{
			name:         "nil repo uses catalog",
			repo:         nil,
			slug:         knowledge.DefaultPersonaSlug,
			expectedSlug: knowledge.DefaultPersonaSlug,
		},
		{
			name:         "empty slug selects default",
			repo:         &stubRepository{},
			slug:         "",
			expectedSlug: knowledge.DefaultPersonaSlug,
		},
		{
			name:         "unknown slug degrades to default",
			repo:         &stubRepository{},
			slug:         "no-such-persona",
			expectedSlug: knowledge.DefaultPersonaSlug,
		},
		{
			name:         "store outage degrades to catalog",
			repo:         &stubRepository{err: errors.New("connection refused")},
			slug:         "eda-coluna",
			expectedSlug: "eda-coluna",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			resolver := knowledge.NewResolver(testCase.repo)

			persona := resolver.ResolvePersona(context.Background(), testCase.slug)

			require.NotNil(t, persona)
			assert.Equal(t, testCase.expectedSlug, persona.Slug)
			assert.NotEmpty(t, persona.BasePrompt)
		})
	}
}

/*
TestResolvePersona_Deterministic verifies that repeated resolution of the
same slug yields the same persona.
*/
func TestResolvePersona_Deterministic(t *testing.T) {
	resolver := knowledge.NewResolver(nil)

	first := resolver.ResolvePersona(context.Background(), "no-such-persona")
	second := resolver.ResolvePersona(context.Background(), "no-such-persona")

	assert.Equal(t, first, second)
}

/*
TestResolveKnowledge verifies block resolution: store first, catalog as
fallback, nil for unknown slugs.
*/
func TestResolveKnowledge(t *testing.T) {
	repo := &stubRepository{
		blocks: map[string]*knowledge.KnowledgeBlock{
			"compliance": {Slug: "compliance", Content: "Regras internas de compliance."},
		},
	}
	resolver := knowledge.NewResolver(repo)

	// 1. Store hit
	block := resolver.ResolveKnowledge(context.Background(), "compliance")
	require.NotNil(t, block)
	assert.Equal(t, "Regras internas de compliance.", block.Content)

	// 2. Catalog fallback
	block = resolver.ResolveKnowledge(context.Background(), knowledge.BlockBrandVoice)
	require.NotNil(t, block)
	assert.NotEmpty(t, block.Content)

	// 3. Unknown slug
	assert.Nil(t, resolver.ResolveKnowledge(context.Background(), "no-such-block"))
}
