// Copyright (c) 2026 Eda Media. All rights reserved.

package setting

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

var settingColumns = strings.Join(schema.SystemSetting.Columns(), ", ")

func scanSetting(row interface{ Scan(...any) error }) (*Setting, error) {
	entry := &Setting{}
	err := row.Scan(&entry.Key, &entry.Value, &entry.Description, &entry.UpdatedBy, &entry.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (repository *PostgresRepository) FindByKey(context context.Context, key string) (*Setting, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		settingColumns, schema.SystemSetting.Table, schema.SystemSetting.Key,
	)

	entry, err := scanSetting(repository.pool.QueryRow(context, query, key))
	if err != nil {
		return nil, dberr.Wrap(err, "find_setting")
	}
	return entry, nil
}

func (repository *PostgresRepository) List(context context.Context) ([]*Setting, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		settingColumns, schema.SystemSetting.Table, schema.SystemSetting.Key,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_settings")
	}
	defer rows.Close()

	settings := []*Setting{}
	for rows.Next() {
		entry, err := scanSetting(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_setting")
		}
		settings = append(settings, entry)
	}

	return settings, dberr.Wrap(rows.Err(), "list_settings")
}

func (repository *PostgresRepository) Upsert(context context.Context, setting *Setting) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (%s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s
	`,
		schema.SystemSetting.Table,
		schema.SystemSetting.Key, schema.SystemSetting.Value, schema.SystemSetting.Description,
		schema.SystemSetting.UpdatedBy, schema.SystemSetting.UpdatedAt,
		schema.SystemSetting.Key,
		schema.SystemSetting.Value, schema.SystemSetting.Value,
		schema.SystemSetting.Description, schema.SystemSetting.Description,
		schema.SystemSetting.UpdatedBy, schema.SystemSetting.UpdatedBy,
		schema.SystemSetting.UpdatedAt,
		schema.SystemSetting.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		setting.Key, setting.Value, setting.Description, setting.UpdatedBy,
	).Scan(&setting.UpdatedAt)

	return dberr.Wrap(err, "upsert_setting")
}

func (repository *PostgresRepository) Delete(context context.Context, key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.SystemSetting.Table, schema.SystemSetting.Key,
	)

	cmd, err := repository.pool.Exec(context, query, key)
	if err != nil {
		return dberr.Wrap(err, "delete_setting")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
