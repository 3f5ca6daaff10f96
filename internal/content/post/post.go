// Copyright (c) 2026 Eda Media. All rights reserved.

/*
Package post defines the editorial article domain for the Eda publication.

It manages the lifecycle of blog posts from draft to publication, including
markdown content with pre-rendered HTML, SEO metadata, categorization, and
full-text discovery.

Core Responsibility:

  - Lifecycle: draft → published → archived, with soft deletion.
  - Authoring: posts belong to an author; editors can manage any post.
  - AI provenance: posts created from the generation pipeline are flagged.

This package is the source of truth for all article data models.
*/
package post

import "time"

// # Domain Enums

// Status represents the publication state of a post.
type Status string

const (
	// StatusDraft is the initial state; drafts are invisible to the public API.
	StatusDraft Status = "draft"

	// StatusPublished makes the post visible on the public surface.
	StatusPublished Status = "published"

	// StatusArchived hides a previously published post without deleting it.
	StatusArchived Status = "archived"
)

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// # Core Entities

// Post is the central aggregate of the editorial domain. Content is stored
// as markdown; ContentHTML is rendered at write time and served verbatim.
type Post struct {
	ID              string     `json:"id"`
	AuthorID        string     `json:"author_id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"`
	ContentHTML     string     `json:"content_html,omitempty"`
	CoverURL        string     `json:"cover_url,omitempty"`
	Category        string     `json:"category,omitempty"`
	Tags            []string   `json:"tags"`
	MetaDescription string     `json:"meta_description,omitempty"`
	Status          Status     `json:"status"`
	AIGenerated     bool       `json:"ai_generated"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"-"` // nil = active; non-nil = soft-deleted
}

// IsPublished reports whether the post is visible to the public surface.
func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished && p.DeletedAt == nil
}

// # Search & Filtering

// Filter holds the parameters for a filtered post list query.
type Filter struct {
	Status      []Status `json:"status,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tag         string   `json:"tag,omitempty"`
	AuthorID    string   `json:"author_id,omitempty"`
	AIGenerated *bool    `json:"ai_generated,omitempty"`
	Query       string   `json:"q,omitempty"`        // Full-text search term
	Sort        string   `json:"sort,omitempty"`     // latest, published, title
	SortDir     string   `json:"sort_dir,omitempty"` // "asc" or "desc"
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldID              = "id"
	FieldTitle           = "title"
	FieldSlug            = "slug"
	FieldExcerpt         = "excerpt"
	FieldContent         = "content"
	FieldCoverURL        = "cover_url"
	FieldCategory        = "category"
	FieldTags            = "tags"
	FieldMetaDescription = "meta_description"
	FieldStatus          = "status"
)
