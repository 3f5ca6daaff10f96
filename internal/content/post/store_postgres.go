// Copyright (c) 2026 Eda Media. All rights reserved.

package post

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edamedia/eda/internal/platform/database/schema"
	"github.com/edamedia/eda/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
//
// Discovery uses the stored tsvector column with websearch_to_tsquery and
// a window-function total so list queries stay a single round-trip.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// postColumns is the scan list shared by every single-post lookup.
var postColumns = strings.Join([]string{
	schema.ContentPost.ID, schema.ContentPost.AuthorID, schema.ContentPost.Title,
	schema.ContentPost.Slug, schema.ContentPost.Excerpt, schema.ContentPost.Content,
	schema.ContentPost.ContentHTML, schema.ContentPost.CoverURL, schema.ContentPost.Category,
	schema.ContentPost.Tags, schema.ContentPost.MetaDescription, schema.ContentPost.Status,
	schema.ContentPost.AIGenerated, schema.ContentPost.PublishedAt,
	schema.ContentPost.CreatedAt, schema.ContentPost.UpdatedAt,
}, ", ")

func scanPost(row interface{ Scan(...any) error }, post *Post) error {
	return row.Scan(
		&post.ID, &post.AuthorID, &post.Title,
		&post.Slug, &post.Excerpt, &post.Content,
		&post.ContentHTML, &post.CoverURL, &post.Category,
		&post.Tags, &post.MetaDescription, &post.Status,
		&post.AIGenerated, &post.PublishedAt,
		&post.CreatedAt, &post.UpdatedAt,
	)
}

func (repository *PostgresRepository) findBy(context context.Context, column, value string) (*Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		postColumns, schema.ContentPost.Table, column, schema.ContentPost.DeletedAt,
	)

	post := &Post{}
	if err := scanPost(repository.pool.QueryRow(context, query, value), post); err != nil {
		return nil, dberr.Wrap(err, "find_post")
	}
	return post, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Post, error) {
	return repository.findBy(context, schema.ContentPost.ID, id)
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Post, error) {
	return repository.findBy(context, schema.ContentPost.Slug, slug)
}

func (repository *PostgresRepository) SlugExists(context context.Context, slug string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1 AND %s IS NULL)`,
		schema.ContentPost.Table, schema.ContentPost.Slug, schema.ContentPost.DeletedAt,
	)

	var exists bool
	if err := repository.pool.QueryRow(context, query, slug).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "slug_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Post, int, error) {

	// Dynamic WHERE construction; the window function avoids a second
	// COUNT query.
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s IS NULL
	`, postColumns, schema.ContentPost.Table, schema.ContentPost.DeletedAt))

	if len(filter.Status) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = ANY($%d)", schema.ContentPost.Status, argID))
		args = append(args, filter.Status)
		argID++
	}

	if filter.Category != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.ContentPost.Category, argID))
		args = append(args, filter.Category)
		argID++
	}

	if filter.Tag != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND $%d = ANY(%s)", argID, schema.ContentPost.Tags))
		args = append(args, filter.Tag)
		argID++
	}

	if filter.AuthorID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.ContentPost.AuthorID, argID))
		args = append(args, filter.AuthorID)
		argID++
	}

	if filter.AIGenerated != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.ContentPost.AIGenerated, argID))
		args = append(args, *filter.AIGenerated)
		argID++
	}

	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s @@ websearch_to_tsquery('portuguese', $%d)",
			schema.ContentPost.SearchVector, argID))
		args = append(args, filter.Query)
		argID++
	}

	queryBuilder.WriteString(orderClause(filter))

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts")
	}
	defer rows.Close()

	posts := []*Post{}
	total := 0
	for rows.Next() {
		post := &Post{}
		err := rows.Scan(
			&post.ID, &post.AuthorID, &post.Title,
			&post.Slug, &post.Excerpt, &post.Content,
			&post.ContentHTML, &post.CoverURL, &post.Category,
			&post.Tags, &post.MetaDescription, &post.Status,
			&post.AIGenerated, &post.PublishedAt,
			&post.CreatedAt, &post.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, post)
	}

	return posts, total, dberr.Wrap(rows.Err(), "list_posts")
}

// orderClause maps the filter's sort key onto a safe, fixed column set.
func orderClause(filter Filter) string {
	direction := "DESC"
	if strings.EqualFold(filter.SortDir, "asc") {
		direction = "ASC"
	}

	switch filter.Sort {
	case "published":
		return fmt.Sprintf(" ORDER BY %s %s NULLS LAST", schema.ContentPost.PublishedAt, direction)
	case "title":
		return fmt.Sprintf(" ORDER BY %s %s", schema.ContentPost.Title, direction)
	case "updated":
		return fmt.Sprintf(" ORDER BY %s %s", schema.ContentPost.UpdatedAt, direction)
	default:
		return fmt.Sprintf(" ORDER BY %s %s", schema.ContentPost.CreatedAt, direction)
	}
}

func (repository *PostgresRepository) Create(context context.Context, post *Post) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ContentPost.Table,
		schema.ContentPost.ID, schema.ContentPost.AuthorID, schema.ContentPost.Title,
		schema.ContentPost.Slug, schema.ContentPost.Excerpt, schema.ContentPost.Content,
		schema.ContentPost.ContentHTML, schema.ContentPost.CoverURL, schema.ContentPost.Category,
		schema.ContentPost.Tags, schema.ContentPost.MetaDescription, schema.ContentPost.Status,
		schema.ContentPost.AIGenerated, schema.ContentPost.CreatedAt, schema.ContentPost.UpdatedAt,
		schema.ContentPost.CreatedAt, schema.ContentPost.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		post.ID, post.AuthorID, post.Title,
		post.Slug, post.Excerpt, post.Content,
		post.ContentHTML, post.CoverURL, post.Category,
		post.Tags, post.MetaDescription, post.Status,
		post.AIGenerated,
	).Scan(&post.CreatedAt, &post.UpdatedAt)

	return dberr.Wrap(err, "create_post")
}

func (repository *PostgresRepository) Update(context context.Context, post *Post) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.ContentPost.Table,
		schema.ContentPost.Title, schema.ContentPost.Excerpt, schema.ContentPost.Content,
		schema.ContentPost.ContentHTML, schema.ContentPost.CoverURL, schema.ContentPost.Category,
		schema.ContentPost.Tags, schema.ContentPost.MetaDescription,
		schema.ContentPost.UpdatedAt,
		schema.ContentPost.ID, schema.ContentPost.DeletedAt,
		schema.ContentPost.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		post.ID, post.Title, post.Excerpt, post.Content,
		post.ContentHTML, post.CoverURL, post.Category,
		post.Tags, post.MetaDescription,
	).Scan(&post.UpdatedAt)

	return dberr.Wrap(err, "update_post")
}

func (repository *PostgresRepository) SetStatus(context context.Context, id string, status Status) error {

	// publishedat is written once, on the first transition to published.
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2,
		    %s = CASE WHEN $2 = 'published' AND %s IS NULL THEN NOW() ELSE %s END,
		    %s = NOW()
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.ContentPost.Table,
		schema.ContentPost.Status,
		schema.ContentPost.PublishedAt, schema.ContentPost.PublishedAt, schema.ContentPost.PublishedAt,
		schema.ContentPost.UpdatedAt,
		schema.ContentPost.ID, schema.ContentPost.DeletedAt,
	)

	cmd, err := repository.pool.Exec(context, query, id, status)
	if err != nil {
		return dberr.Wrap(err, "set_post_status")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.ContentPost.Table, schema.ContentPost.DeletedAt,
		schema.ContentPost.ID, schema.ContentPost.DeletedAt,
	)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "soft_delete_post")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
