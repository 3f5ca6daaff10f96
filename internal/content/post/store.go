// Copyright (c) 2026 Eda Media. All rights reserved.

package post

import "context"

// # Post Data Access

// Repository is the persistence contract for editorial posts.
type Repository interface {
	FindByID(context context.Context, id string) (*Post, error)

	// FindBySlug returns the active post with the given slug regardless of
	// publication status. Callers enforce visibility rules.
	FindBySlug(context context.Context, slug string) (*Post, error)

	// SlugExists reports whether an active post already owns the slug.
	SlugExists(context context.Context, slug string) (bool, error)

	// List returns a filtered page of posts plus the total match count.
	List(context context.Context, filter Filter, limit, offset int) ([]*Post, int, error)

	Create(context context.Context, post *Post) error
	Update(context context.Context, post *Post) error

	// SetStatus transitions the post's publication state. publishedAt is
	// only written when transitioning to published.
	SetStatus(context context.Context, id string, status Status) error

	SoftDelete(context context.Context, id string) error
}
