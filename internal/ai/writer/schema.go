package writer

// # Generation Schemas
//
// Raw JSON-schema maps handed to the model provider in strict mode. Strict
// structured output requires every property to be listed in "required" and
// additionalProperties to be false; the optional category is expressed as
// a nullable type instead.

// generatedPostSchema is the schema for full articles and rewrites.
func generatedPostSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Titulo jornalistico do artigo, ate 65 caracteres.",
			},
			"excerpt": map[string]any{
				"type":        "string",
				"description": "Resumo curto do artigo em uma frase.",
			},
			"content": map[string]any{
				"type":        "string",
				"description": "Corpo completo do artigo em Markdown.",
			},
			"metaDescription": map[string]any{
				"type":        "string",
				"description": "Meta descricao de SEO entre 120 e 160 caracteres.",
			},
			"suggestedTags": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Tags tematicas sugeridas.",
			},
			"suggestedCategory": map[string]any{
				"type":        []string{"string", "null"},
				"description": "Categoria editorial sugerida, se aplicavel.",
			},
		},
		"required": []string{
			"title", "excerpt", "content", "metaDescription",
			"suggestedTags", "suggestedCategory",
		},
		"additionalProperties": false,
	}
}

// titleListSchema is the schema for title suggestions.
func titleListSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"titles": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Lista de titulos sugeridos.",
			},
		},
		"required":             []string{"titles"},
		"additionalProperties": false,
	}
}
