// Copyright (c) 2026 Eda Media. All rights reserved.

package banner

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

var bannerColumns = strings.Join([]string{
	schema.ContentBanner.ID, schema.ContentBanner.Title, schema.ContentBanner.ImageURL,
	schema.ContentBanner.TargetURL, schema.ContentBanner.Placement, schema.ContentBanner.Position,
	schema.ContentBanner.IsActive, schema.ContentBanner.StartsAt, schema.ContentBanner.EndsAt,
	schema.ContentBanner.CreatedAt, schema.ContentBanner.UpdatedAt,
}, ", ")

func scanBanner(row interface{ Scan(...any) error }) (*Banner, error) {
	banner := &Banner{}
	err := row.Scan(
		&banner.ID, &banner.Title, &banner.ImageURL,
		&banner.TargetURL, &banner.Placement, &banner.Position,
		&banner.IsActive, &banner.StartsAt, &banner.EndsAt,
		&banner.CreatedAt, &banner.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return banner, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Banner, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		bannerColumns, schema.ContentBanner.Table, schema.ContentBanner.ID,
	)

	banner, err := scanBanner(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_banner")
	}
	return banner, nil
}

func (repository *PostgresRepository) FindLiveByPlacement(context context.Context, placement Placement) ([]*Banner, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		  AND %s = true
		  AND (%s IS NULL OR %s <= NOW())
		  AND (%s IS NULL OR %s >= NOW())
		ORDER BY %s ASC
	`,
		bannerColumns, schema.ContentBanner.Table,
		schema.ContentBanner.Placement,
		schema.ContentBanner.IsActive,
		schema.ContentBanner.StartsAt, schema.ContentBanner.StartsAt,
		schema.ContentBanner.EndsAt, schema.ContentBanner.EndsAt,
		schema.ContentBanner.Position,
	)

	return repository.queryBanners(context, query, placement)
}

func (repository *PostgresRepository) List(context context.Context) ([]*Banner, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s, %s ASC`,
		bannerColumns, schema.ContentBanner.Table,
		schema.ContentBanner.Placement, schema.ContentBanner.Position,
	)

	return repository.queryBanners(context, query)
}

func (repository *PostgresRepository) queryBanners(context context.Context, query string, args ...any) ([]*Banner, error) {
	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_banners")
	}
	defer rows.Close()

	banners := []*Banner{}
	for rows.Next() {
		banner, err := scanBanner(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_banner")
		}
		banners = append(banners, banner)
	}

	return banners, dberr.Wrap(rows.Err(), "list_banners")
}

func (repository *PostgresRepository) Create(context context.Context, banner *Banner) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ContentBanner.Table,
		schema.ContentBanner.ID, schema.ContentBanner.Title, schema.ContentBanner.ImageURL,
		schema.ContentBanner.TargetURL, schema.ContentBanner.Placement, schema.ContentBanner.Position,
		schema.ContentBanner.IsActive, schema.ContentBanner.StartsAt, schema.ContentBanner.EndsAt,
		schema.ContentBanner.CreatedAt, schema.ContentBanner.UpdatedAt,
		schema.ContentBanner.CreatedAt, schema.ContentBanner.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		banner.ID, banner.Title, banner.ImageURL,
		banner.TargetURL, banner.Placement, banner.Position,
		banner.IsActive, banner.StartsAt, banner.EndsAt,
	).Scan(&banner.CreatedAt, &banner.UpdatedAt)

	return dberr.Wrap(err, "create_banner")
}

func (repository *PostgresRepository) Update(context context.Context, banner *Banner) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.ContentBanner.Table,
		schema.ContentBanner.Title, schema.ContentBanner.ImageURL, schema.ContentBanner.TargetURL,
		schema.ContentBanner.Placement, schema.ContentBanner.Position, schema.ContentBanner.IsActive,
		schema.ContentBanner.StartsAt, schema.ContentBanner.EndsAt,
		schema.ContentBanner.UpdatedAt,
		schema.ContentBanner.ID,
		schema.ContentBanner.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		banner.ID, banner.Title, banner.ImageURL, banner.TargetURL,
		banner.Placement, banner.Position, banner.IsActive,
		banner.StartsAt, banner.EndsAt,
	).Scan(&banner.UpdatedAt)

	return dberr.Wrap(err, "update_banner")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentBanner.Table, schema.ContentBanner.ID,
	)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_banner")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
