package knowledge

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edamedia/eda/internal/platform/database/schema"
	"github.com/edamedia/eda/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ActivePersona(context context.Context, slug string) (*Persona, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = true
	`,
		schema.AIPersona.ID, schema.AIPersona.Slug, schema.AIPersona.Name, schema.AIPersona.Role,
		schema.AIPersona.Description, schema.AIPersona.BasePrompt, schema.AIPersona.PreferredTone,
		schema.AIPersona.IsActive, schema.AIPersona.IsDefault, schema.AIPersona.CreatedAt, schema.AIPersona.UpdatedAt,
		schema.AIPersona.Table, schema.AIPersona.Slug, schema.AIPersona.IsActive,
	)

	persona := &Persona{}
	err := repository.db.QueryRow(context, query, slug).Scan(
		&persona.ID, &persona.Slug, &persona.Name, &persona.Role,
		&persona.Description, &persona.BasePrompt, &persona.PreferredTone,
		&persona.IsActive, &persona.IsDefault, &persona.CreatedAt, &persona.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_active_persona")
	}

	return persona, nil
}

func (repository *PostgresRepository) ActiveKnowledgeBlock(context context.Context, slug string) (*KnowledgeBlock, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = true
	`,
		schema.AIKnowledgeBlock.ID, schema.AIKnowledgeBlock.Slug, schema.AIKnowledgeBlock.Name,
		schema.AIKnowledgeBlock.Content, schema.AIKnowledgeBlock.Tags, schema.AIKnowledgeBlock.Position,
		schema.AIKnowledgeBlock.IsActive, schema.AIKnowledgeBlock.CreatedAt, schema.AIKnowledgeBlock.UpdatedAt,
		schema.AIKnowledgeBlock.Table, schema.AIKnowledgeBlock.Slug, schema.AIKnowledgeBlock.IsActive,
	)

	block := &KnowledgeBlock{}
	err := repository.db.QueryRow(context, query, slug).Scan(
		&block.ID, &block.Slug, &block.Name,
		&block.Content, &block.Tags, &block.Position,
		&block.IsActive, &block.CreatedAt, &block.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_active_knowledge_block")
	}

	return block, nil
}
