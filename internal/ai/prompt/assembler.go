// Package prompt assembles layered system prompts for the content engine.
//
// A system prompt is built from fixed-order sections: the persona base
// prompt, the optional editorial and SEO knowledge blocks, optional custom
// instructions, and the closing output-format directive. The section order
// is a contract: downstream prompt-tuning and regression tests depend on it.
package prompt

import (
	"context"
	"strings"

	"github.com/edamedia/eda/internal/ai/knowledge"
)

// Section headers injected between prompt layers.
const (
	HeaderEditorialGuidelines = "### DIRETRIZES EDITORIAIS"
	HeaderSEORules            = "### REGRAS DE SEO E FORMATACAO"
	HeaderCustomInstructions  = "### INSTRUCOES ADICIONAIS"
)

// OutputFormatDirective closes every system prompt. It instructs the model
// to answer with the structured payload only, never wrapped in code fences.
const OutputFormatDirective = "Responda exatamente no formato estruturado solicitado. " +
	"Nao envolva a resposta em blocos de codigo nem adicione texto fora do formato pedido."

// ContextConfig selects which layers participate in a system prompt.
//
// An empty PersonaSlug selects the default persona. The two Include toggles
// are strictly additive: flipping one never changes the text contributed by
// the other layers.
type ContextConfig struct {
	PersonaSlug        string
	IncludeBrandVoice  bool
	IncludeSEORules    bool
	CustomInstructions string
}

// Assembler builds system prompts from resolved personas and knowledge blocks.
type Assembler struct {
	resolver *knowledge.Resolver
}

func NewAssembler(resolver *knowledge.Resolver) *Assembler {
	return &Assembler{resolver: resolver}
}

// BuildSystemPrompt assembles the layered system prompt for cfg.
//
// Sections appear in fixed order: persona base prompt, editorial
// guidelines, SEO rules, custom instructions, output-format directive.
// Toggled-off or unresolvable layers are omitted entirely, leaving the
// remaining sections untouched.
func (assembler *Assembler) BuildSystemPrompt(context context.Context, cfg ContextConfig) string {
	persona := assembler.resolver.ResolvePersona(context, cfg.PersonaSlug)

	sections := []string{persona.BasePrompt}

	if cfg.IncludeBrandVoice {
		if block := assembler.resolver.ResolveKnowledge(context, knowledge.BlockBrandVoice); block != nil {
			sections = append(sections, HeaderEditorialGuidelines+"\n"+block.Content)
		}
	}

	if cfg.IncludeSEORules {
		if block := assembler.resolver.ResolveKnowledge(context, knowledge.BlockSEORules); block != nil {
			sections = append(sections, HeaderSEORules+"\n"+block.Content)
		}
	}

	if custom := strings.TrimSpace(cfg.CustomInstructions); custom != "" {
		sections = append(sections, HeaderCustomInstructions+"\n"+custom)
	}

	sections = append(sections, OutputFormatDirective)

	return strings.Join(sections, "\n\n")
}
