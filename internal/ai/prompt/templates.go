package prompt

import (
	"fmt"
	"strings"
)

// # User Prompt Templates
//
// Each builder produces the user-role message for one generation operation.
// Optional inputs collapse to an empty string instead of leaving template
// placeholders behind.

// PostGeneration builds the user prompt for a full article.
func PostGeneration(topic string, keywords []string, wordCount int, extra string) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Escreva um artigo completo sobre o tema: %s\n", topic)
	fmt.Fprintf(&builder, "Extensao alvo: aproximadamente %d palavras.\n", wordCount)

	if joined := joinKeywords(keywords); joined != "" {
		fmt.Fprintf(&builder, "Palavras-chave a contemplar: %s\n", joined)
	}

	if extra = strings.TrimSpace(extra); extra != "" {
		fmt.Fprintf(&builder, "Orientacoes adicionais: %s\n", extra)
	}

	builder.WriteString("Entregue titulo, resumo (excerpt), corpo em Markdown, meta descricao, tags sugeridas e categoria sugerida.")
	return builder.String()
}

// Rewrite builds the user prompt for rewriting existing material.
func Rewrite(source string, extra string) string {
	var builder strings.Builder

	builder.WriteString("Reescreva integralmente o material abaixo como um artigo original da Eda.\n")
	builder.WriteString("Preserve todos os fatos, numeros e declaracoes, mas elimine qualquer sobreposicao literal com o texto de origem.\n")

	if extra = strings.TrimSpace(extra); extra != "" {
		fmt.Fprintf(&builder, "Orientacoes adicionais: %s\n", extra)
	}

	builder.WriteString("\n--- MATERIAL DE ORIGEM ---\n")
	builder.WriteString(source)
	return builder.String()
}

// Titles builds the user prompt for title suggestions.
func Titles(topic string, keywords []string, count int) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Sugira %d titulos jornalisticos para um artigo sobre: %s\n", count, topic)

	if joined := joinKeywords(keywords); joined != "" {
		fmt.Fprintf(&builder, "Palavras-chave a contemplar: %s\n", joined)
	}

	builder.WriteString("Cada titulo deve ter ate 65 caracteres e refletir fielmente o tema.")
	return builder.String()
}

// Excerpt builds the user prompt for a short article summary.
func Excerpt(content string, maxLen int) string {
	return fmt.Sprintf(
		"Escreva um resumo (excerpt) de ate %d caracteres para o artigo abaixo, em uma unica frase atraente e fiel ao conteudo.\n\n%s",
		maxLen, content,
	)
}

// MetaDescription builds the user prompt for an SEO meta description.
func MetaDescription(title, content string, keywords []string) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Escreva uma meta descricao de 120 a 160 caracteres para o artigo \"%s\".\n", title)

	if joined := joinKeywords(keywords); joined != "" {
		fmt.Fprintf(&builder, "Inclua naturalmente: %s\n", joined)
	}

	builder.WriteString("\n--- ARTIGO ---\n")
	builder.WriteString(content)
	return builder.String()
}

// Improve builds the user prompt for targeted content improvement.
func Improve(content string, instructions string) string {
	var builder strings.Builder

	builder.WriteString("Melhore o texto abaixo mantendo o idioma, os fatos e a estrutura em Markdown.\n")

	if instructions = strings.TrimSpace(instructions); instructions != "" {
		fmt.Fprintf(&builder, "Foco da melhoria: %s\n", instructions)
	}

	builder.WriteString("Responda apenas com o texto melhorado, sem comentarios.\n")
	builder.WriteString("\n--- TEXTO ---\n")
	builder.WriteString(content)
	return builder.String()
}

// joinKeywords normalizes and comma-joins the keyword list.
func joinKeywords(keywords []string) string {
	cleaned := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if trimmed := strings.TrimSpace(keyword); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return strings.Join(cleaned, ", ")
}
