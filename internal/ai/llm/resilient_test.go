// Copyright (c) 2026 Eda Media. All rights reserved.

package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edamedia/eda/internal/ai/llm"
)

// stubClient scripts the object and text calls independently.
type stubClient struct {
	objectResult *llm.ObjectResult
	objectErr    error
	textResult   *llm.TextResult
	textErr      error

	objectCalls int
	textCalls   int
	lastPrompt  string
}

func (stub *stubClient) GenerateObject(_ context.Context, _ llm.ObjectRequest) (*llm.ObjectResult, error) {
	stub.objectCalls++
	return stub.objectResult, stub.objectErr
}

func (stub *stubClient) GenerateText(_ context.Context, request llm.TextRequest) (*llm.TextResult, error) {
	stub.textCalls++
	stub.lastPrompt = request.Prompt
	return stub.textResult, stub.textErr
}

/*
TestGenerateResilientObject_PrimarySuccess verifies that a successful
structured call never triggers the free-text fallback.
*/
func TestGenerateResilientObject_PrimarySuccess(t *testing.T) {
	client := &stubClient{
		objectResult: &llm.ObjectResult{JSON: json.RawMessage(`{"title":"ok"}`)},
	}

	result, err := llm.GenerateResilientObject(context.Background(), client, llm.ObjectRequest{})

	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"ok"}`, string(result.JSON))
	assert.Equal(t, 1, client.objectCalls)
	assert.Zero(t, client.textCalls)
}

/*
TestGenerateResilientObject_UnclassifiedBypass verifies that provider-level
failures (auth, quota, network) propagate untouched without a fallback
attempt.
*/
func TestGenerateResilientObject_UnclassifiedBypass(t *testing.T) {
	providerErr := errors.New("401 invalid api key")
	client := &stubClient{objectErr: providerErr}

	result, err := llm.GenerateResilientObject(context.Background(), client, llm.ObjectRequest{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, providerErr)
	assert.Zero(t, client.textCalls)
}

/*
TestGenerateResilientObject_FallbackNormalization verifies the rescue path:
classified failure, fenced free-text JSON, variant field names promoted to
their canonical spellings.
*/
func TestGenerateResilientObject_FallbackNormalization(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected map[string]any
	}{
		{
			name: "fenced payload with body and tags variants",
			text: "```json\n{\"title\":\"t\",\"body\":\"corpo\",\"tags\":[\"ans\"]}\n```",
			expected: map[string]any{
				"title":         "t",
				"content":       "corpo",
				"suggestedTags": []any{"ans"},
			},
		},
		{
			name: "text variant and category variant",
			text: "{\"text\":\"corpo\",\"category\":\"saude\"}",
			expected: map[string]any{
				"content":           "corpo",
				"suggestedCategory": "saude",
			},
		},
		{
			name: "canonical keys win over variants",
			text: "{\"content\":\"canonico\",\"body\":\"variante\"}",
			expected: map[string]any{
				"content": "canonico",
				"body":    "variante",
			},
		},
		{
			name: "bare fence without language tag",
			text: "```\n{\"title\":\"t\"}\n```",
			expected: map[string]any{
				"title": "t",
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			client := &stubClient{
				objectErr:  llm.ErrSchemaParseFailure,
				textResult: &llm.TextResult{Text: testCase.text},
			}

			result, err := llm.GenerateResilientObject(context.Background(), client, llm.ObjectRequest{Prompt: "gere o artigo"})

			require.NoError(t, err)
			require.Equal(t, 1, client.textCalls)

			var payload map[string]any
			require.NoError(t, json.Unmarshal(result.JSON, &payload))
			assert.Equal(t, testCase.expected, payload)

			// The retry prompt must carry the raw-JSON directive.
			assert.Contains(t, client.lastPrompt, "gere o artigo")
			assert.Contains(t, client.lastPrompt, "SOMENTE")
		})
	}
}

/*
TestGenerateResilientObject_OriginalErrorFidelity verifies that when the
fallback also fails, the caller receives the PRIMARY structured error, not
the fallback's.
*/
func TestGenerateResilientObject_OriginalErrorFidelity(t *testing.T) {
	testCases := []struct {
		name string
		stub *stubClient
	}{
		{
			name: "fallback text call fails",
			stub: &stubClient{
				objectErr: llm.ErrNoObjectProduced,
				textErr:   errors.New("timeout"),
			},
		},
		{
			name: "fallback payload is not JSON",
			stub: &stubClient{
				objectErr:  llm.ErrSchemaParseFailure,
				textResult: &llm.TextResult{Text: "desculpe, nao consigo gerar JSON"},
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result, err := llm.GenerateResilientObject(context.Background(), testCase.stub, llm.ObjectRequest{})

			assert.Nil(t, result)
			assert.ErrorIs(t, err, testCase.stub.objectErr)
		})
	}
}

/*
TestStripCodeFence covers the fence-stripping edge cases.
*/
func TestStripCodeFence(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, llm.StripCodeFence(testCase.input))
		})
	}
}
