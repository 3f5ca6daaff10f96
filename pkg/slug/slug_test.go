// Copyright (c) 2026 Eda Media. All rights reserved.

package slug_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edamedia/eda/pkg/slug"
)

/*
TestFrom verifies the slug derivation pipeline against representative
editorial titles, including accented Portuguese input.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain_ascii", "Telemedicine in Brazil", "telemedicine-in-brazil"},
		{"accents_stripped", "Saúde Digital é o Futuro", "saude-digital-e-o-futuro"},
		{"punctuation_collapsed", "ANS Define Novas Regras!!", "ans-define-novas-regras"},
		{"mixed_symbols", "Plano de Saúde: o que muda em 2026?", "plano-de-saude-o-que-muda-em-2026"},
		{"leading_trailing_garbage", "--- Olá, Mundo! ---", "ola-mundo"},
		{"already_a_slug", "ans-define-novas-regras", "ans-define-novas-regras"},
		{"digits_preserved", "Top 10 Hospitais", "top-10-hospitais"},
		{"empty_input", "", ""},
		{"symbols_only", "!!! ???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestFrom_Idempotent verifies that re-slugging a slug is a no-op, so stored
slugs can be passed back through the pipeline safely.
*/
func TestFrom_Idempotent(t *testing.T) {
	inputs := []string{
		"ANS Define Novas Regras!!",
		"Saúde Digital é o Futuro",
		"   espaços   em   excesso   ",
		"çãõéüñ",
	}

	for _, input := range inputs {
		once := slug.From(input)
		twice := slug.From(once)
		assert.Equal(t, once, twice, "From must be idempotent for %q", input)
	}
}

/*
TestFrom_OutputAlphabet verifies that every output contains only lowercase
ASCII letters, digits, and single interior hyphens.
*/
func TestFrom_OutputAlphabet(t *testing.T) {
	valid := regexp.MustCompile(`^$|^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	inputs := []string{
		"ANS Define Novas Regras!!",
		"Crônicas do SUS — edição #42",
		"___underscore___",
		"emoji 🚑 ambulância",
	}

	for _, input := range inputs {
		got := slug.From(input)
		assert.Regexp(t, valid, got, "invalid slug alphabet for %q -> %q", input, got)
	}
}
