// Copyright (c) 2026 Eda Media. All rights reserved.

package sponsor

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edamedia/eda/internal/platform/database/schema"
	"github.com/edamedia/eda/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var sponsorColumns = strings.Join([]string{
	schema.ContentSponsor.ID, schema.ContentSponsor.Name, schema.ContentSponsor.Slug,
	schema.ContentSponsor.LogoURL, schema.ContentSponsor.WebsiteURL, schema.ContentSponsor.Description,
	schema.ContentSponsor.Tier, schema.ContentSponsor.IsActive,
	schema.ContentSponsor.CreatedAt, schema.ContentSponsor.UpdatedAt,
}, ", ")

func scanSponsor(row interface{ Scan(...any) error }) (*Sponsor, error) {
	sponsor := &Sponsor{}
	err := row.Scan(
		&sponsor.ID, &sponsor.Name, &sponsor.Slug,
		&sponsor.LogoURL, &sponsor.WebsiteURL, &sponsor.Description,
		&sponsor.Tier, &sponsor.IsActive,
		&sponsor.CreatedAt, &sponsor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sponsor, nil
}

func (repository *PostgresRepository) findBy(context context.Context, column, value string) (*Sponsor, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		sponsorColumns, schema.ContentSponsor.Table, column,
	)

	sponsor, err := scanSponsor(repository.pool.QueryRow(context, query, value))
	if err != nil {
		return nil, dberr.Wrap(err, "find_sponsor")
	}
	return sponsor, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Sponsor, error) {
	return repository.findBy(context, schema.ContentSponsor.ID, id)
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Sponsor, error) {
	return repository.findBy(context, schema.ContentSponsor.Slug, slug)
}

func (repository *PostgresRepository) List(context context.Context, activeOnly bool) ([]*Sponsor, error) {

	// Tier ordering is resolved in SQL so pagination-free listing stays
	// consistent with the public wall.
	tierRank := fmt.Sprintf(`CASE %s
		WHEN 'diamond' THEN 4
		WHEN 'gold' THEN 3
		WHEN 'silver' THEN 2
		ELSE 1 END`, schema.ContentSponsor.Tier)

	where := ""
	if activeOnly {
		where = fmt.Sprintf(" WHERE %s = true", schema.ContentSponsor.IsActive)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s DESC, %s ASC`,
		sponsorColumns, schema.ContentSponsor.Table, where, tierRank, schema.ContentSponsor.Name,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sponsors")
	}
	defer rows.Close()

	sponsors := []*Sponsor{}
	for rows.Next() {
		sponsor, err := scanSponsor(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_sponsor")
		}
		sponsors = append(sponsors, sponsor)
	}

	return sponsors, dberr.Wrap(rows.Err(), "list_sponsors")
}

func (repository *PostgresRepository) Create(context context.Context, sponsor *Sponsor) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ContentSponsor.Table,
		schema.ContentSponsor.ID, schema.ContentSponsor.Name, schema.ContentSponsor.Slug,
		schema.ContentSponsor.LogoURL, schema.ContentSponsor.WebsiteURL, schema.ContentSponsor.Description,
		schema.ContentSponsor.Tier, schema.ContentSponsor.IsActive,
		schema.ContentSponsor.CreatedAt, schema.ContentSponsor.UpdatedAt,
		schema.ContentSponsor.CreatedAt, schema.ContentSponsor.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		sponsor.ID, sponsor.Name, sponsor.Slug,
		sponsor.LogoURL, sponsor.WebsiteURL, sponsor.Description,
		sponsor.Tier, sponsor.IsActive,
	).Scan(&sponsor.CreatedAt, &sponsor.UpdatedAt)

	return dberr.Wrap(err, "create_sponsor")
}

func (repository *PostgresRepository) Update(context context.Context, sponsor *Sponsor) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.ContentSponsor.Table,
		schema.ContentSponsor.Name, schema.ContentSponsor.Slug, schema.ContentSponsor.LogoURL,
		schema.ContentSponsor.WebsiteURL, schema.ContentSponsor.Description, schema.ContentSponsor.Tier,
		schema.ContentSponsor.IsActive,
		schema.ContentSponsor.UpdatedAt,
		schema.ContentSponsor.ID,
		schema.ContentSponsor.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		sponsor.ID, sponsor.Name, sponsor.Slug,
		sponsor.LogoURL, sponsor.WebsiteURL, sponsor.Description,
		sponsor.Tier, sponsor.IsActive,
	).Scan(&sponsor.UpdatedAt)

	return dberr.Wrap(err, "update_sponsor")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentSponsor.Table, schema.ContentSponsor.ID,
	)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_sponsor")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
