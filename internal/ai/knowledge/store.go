package knowledge

import "context"

type Repository interface {
	ActivePersona(context context.Context, slug string) (*Persona, error)
	ActiveKnowledgeBlock(context context.Context, slug string) (*KnowledgeBlock, error)
}
