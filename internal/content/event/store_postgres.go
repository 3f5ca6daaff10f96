// Copyright (c) 2026 Eda Media. All rights reserved.

package event

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

var eventColumns = strings.Join([]string{
	schema.ContentEvent.ID, schema.ContentEvent.Title, schema.ContentEvent.Slug,
	schema.ContentEvent.Description, schema.ContentEvent.Location,
	schema.ContentEvent.StartsAt, schema.ContentEvent.EndsAt,
	schema.ContentEvent.RegistrationURL, schema.ContentEvent.IsPublished,
	schema.ContentEvent.CreatedAt, schema.ContentEvent.UpdatedAt,
}, ", ")

func scanEvent(row interface{ Scan(...any) error }) (*Event, error) {
	event := &Event{}
	err := row.Scan(
		&event.ID, &event.Title, &event.Slug,
		&event.Description, &event.Location,
		&event.StartsAt, &event.EndsAt,
		&event.RegistrationURL, &event.IsPublished,
		&event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (repository *PostgresRepository) findBy(context context.Context, column, value string) (*Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		eventColumns, schema.ContentEvent.Table, column, schema.ContentEvent.DeletedAt,
	)

	event, err := scanEvent(repository.pool.QueryRow(context, query, value))
	if err != nil {
		return nil, dberr.Wrap(err, "find_event")
	}
	return event, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Event, error) {
	return repository.findBy(context, schema.ContentEvent.ID, id)
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Event, error) {
	return repository.findBy(context, schema.ContentEvent.Slug, slug)
}

func (repository *PostgresRepository) List(context context.Context, publishedOnly, upcomingOnly bool, limit, offset int) ([]*Event, int, error) {
	var queryBuilder strings.Builder

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s IS NULL
	`, eventColumns, schema.ContentEvent.Table, schema.ContentEvent.DeletedAt))

	if publishedOnly {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = true", schema.ContentEvent.IsPublished))
	}
	if upcomingOnly {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s > NOW()", schema.ContentEvent.StartsAt))
	}

	// The agenda reads chronologically; soonest event first.
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC LIMIT $1 OFFSET $2", schema.ContentEvent.StartsAt))

	rows, err := repository.pool.Query(context, queryBuilder.String(), limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_events")
	}
	defer rows.Close()

	events := []*Event{}
	total := 0
	for rows.Next() {
		event := &Event{}
		err := rows.Scan(
			&event.ID, &event.Title, &event.Slug,
			&event.Description, &event.Location,
			&event.StartsAt, &event.EndsAt,
			&event.RegistrationURL, &event.IsPublished,
			&event.CreatedAt, &event.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_event")
		}
		events = append(events, event)
	}

	return events, total, dberr.Wrap(rows.Err(), "list_events")
}

func (repository *PostgresRepository) Create(context context.Context, event *Event) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ContentEvent.Table,
		schema.ContentEvent.ID, schema.ContentEvent.Title, schema.ContentEvent.Slug,
		schema.ContentEvent.Description, schema.ContentEvent.Location,
		schema.ContentEvent.StartsAt, schema.ContentEvent.EndsAt,
		schema.ContentEvent.RegistrationURL, schema.ContentEvent.IsPublished,
		schema.ContentEvent.CreatedAt, schema.ContentEvent.UpdatedAt,
		schema.ContentEvent.CreatedAt, schema.ContentEvent.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		event.ID, event.Title, event.Slug,
		event.Description, event.Location,
		event.StartsAt, event.EndsAt,
		event.RegistrationURL, event.IsPublished,
	).Scan(&event.CreatedAt, &event.UpdatedAt)

	return dberr.Wrap(err, "create_event")
}

func (repository *PostgresRepository) Update(context context.Context, event *Event) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.ContentEvent.Table,
		schema.ContentEvent.Title, schema.ContentEvent.Description, schema.ContentEvent.Location,
		schema.ContentEvent.StartsAt, schema.ContentEvent.EndsAt, schema.ContentEvent.RegistrationURL,
		schema.ContentEvent.UpdatedAt,
		schema.ContentEvent.ID, schema.ContentEvent.DeletedAt,
		schema.ContentEvent.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		event.ID, event.Title, event.Description, event.Location,
		event.StartsAt, event.EndsAt, event.RegistrationURL,
	).Scan(&event.UpdatedAt)

	return dberr.Wrap(err, "update_event")
}

func (repository *PostgresRepository) SetPublished(context context.Context, id string, published bool) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.ContentEvent.Table, schema.ContentEvent.IsPublished, schema.ContentEvent.UpdatedAt,
		schema.ContentEvent.ID, schema.ContentEvent.DeletedAt,
	)

	cmd, err := repository.pool.Exec(context, query, id, published)
	if err != nil {
		return dberr.Wrap(err, "set_event_published")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.ContentEvent.Table, schema.ContentEvent.DeletedAt,
		schema.ContentEvent.ID, schema.ContentEvent.DeletedAt,
	)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "soft_delete_event")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
