// Copyright (c) 2026 Eda Media. All rights reserved.

package post

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/edamedia/eda/internal/ai/writer"
	"github.com/edamedia/eda/internal/platform/apperr"
	"github.com/edamedia/eda/internal/platform/sec"
	"github.com/edamedia/eda/internal/platform/validate"
	"github.com/edamedia/eda/pkg/slug"
	"github.com/edamedia/eda/pkg/uuid"
)

// # Service Layer

// Service orchestrates the editorial post lifecycle.
//
// Authorization follows an ownership model: authors manage their own posts,
// editors and admins manage any post.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// canManage reports whether the actor may mutate the given post.
func canManage(actor *sec.AuthClaims, target *Post) bool {
	return actor.Role.AtLeast(sec.RoleEditor) || actor.UserID == target.AuthorID
}

// # Creation

// CreateInput holds the data to author a new post. Slug is derived from
// the title when absent.
type CreateInput struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Excerpt         string   `json:"excerpt"`
	Content         string   `json:"content"`
	CoverURL        string   `json:"cover_url"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	MetaDescription string   `json:"meta_description"`
}

// Create authors a new draft post.
func (service *Service) Create(context context.Context, actor *sec.AuthClaims, input CreateInput) (*Post, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)
	validator.Required(FieldContent, input.Content)
	validator.MaxLen(FieldExcerpt, input.Excerpt, 500)
	validator.MaxLen(FieldMetaDescription, input.MetaDescription, 300)
	if input.Slug != "" {
		validator.Slug(FieldSlug, input.Slug)
	}
	if input.CoverURL != "" {
		validator.URL(FieldCoverURL, input.CoverURL)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.create(context, actor.UserID, input, false)
}

// CreateFromGeneration persists the payload produced by the AI writing
// pipeline as a draft owned by the requesting user. The post is flagged as
// AI-generated for editorial provenance.
func (service *Service) CreateFromGeneration(context context.Context, actor *sec.AuthClaims, generated writer.GeneratedPost) (*Post, error) {
	if generated.Title == "" || generated.Content == "" {
		return nil, apperr.Unprocessable("Generated payload is missing title or content")
	}

	created, err := service.create(context, actor.UserID, CreateInput{
		Title:           generated.Title,
		Slug:            generated.Slug,
		Excerpt:         generated.Excerpt,
		Content:         generated.Content,
		Category:        generated.SuggestedCategory,
		Tags:            generated.SuggestedTags,
		MetaDescription: generated.MetaDescription,
	}, true)
	if err != nil {
		return nil, err
	}

	service.logger.Info("ai_post_persisted",
		slog.String("post_id", created.ID),
		slog.String("author_id", actor.UserID),
	)
	return created, nil
}

func (service *Service) create(context context.Context, authorID string, input CreateInput, aiGenerated bool) (*Post, error) {
	baseSlug := input.Slug
	if baseSlug == "" {
		baseSlug = slug.From(input.Title)
	}

	uniqueSlug, err := service.ensureUniqueSlug(context, baseSlug)
	if err != nil {
		return nil, err
	}

	html, err := renderHTML(input.Content)
	if err != nil {
		return nil, err
	}

	post := &Post{
		ID:              uuid.New(),
		AuthorID:        authorID,
		Title:           input.Title,
		Slug:            uniqueSlug,
		Excerpt:         input.Excerpt,
		Content:         input.Content,
		ContentHTML:     html,
		CoverURL:        input.CoverURL,
		Category:        input.Category,
		Tags:            input.Tags,
		MetaDescription: input.MetaDescription,
		Status:          StatusDraft,
		AIGenerated:     aiGenerated,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if err := service.repository.Create(context, post); err != nil {
		return nil, err
	}

	service.logger.Info("post_created",
		slog.String("post_id", post.ID),
		slog.String("slug", post.Slug),
		slog.Bool("ai_generated", aiGenerated),
	)
	return post, nil
}

// ensureUniqueSlug appends a numeric suffix until the slug is free.
func (service *Service) ensureUniqueSlug(context context.Context, base string) (string, error) {
	if base == "" {
		return "", validate.RequiredError(FieldSlug, "A slug could not be derived from the title")
	}

	candidate := base
	for attempt := 2; ; attempt++ {
		exists, err := service.repository.SlugExists(context, candidate)
		if err != nil {
			return "", fmt.Errorf("post: slug lookup failed: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		if attempt > 50 {
			return "", apperr.Conflict("Could not allocate a unique slug for this title")
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}
}

// # Retrieval

// GetByID returns a post by ID for the editorial surface.
func (service *Service) GetByID(context context.Context, id string) (*Post, error) {
	return service.repository.FindByID(context, id)
}

// GetPublishedBySlug returns a post for the public surface. Drafts and
// archived posts are indistinguishable from missing ones.
func (service *Service) GetPublishedBySlug(context context.Context, postSlug string) (*Post, error) {
	found, err := service.repository.FindBySlug(context, postSlug)
	if err != nil {
		return nil, err
	}
	if !found.IsPublished() {
		return nil, apperr.NotFound("Post")
	}
	return found, nil
}

// List returns a filtered page of posts for the editorial surface.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Post, int, error) {
	return service.repository.List(context, filter, limit, offset)
}

// ListPublished returns the public feed: published posts only, newest
// publication first, regardless of what the caller put in the filter.
func (service *Service) ListPublished(context context.Context, filter Filter, limit, offset int) ([]*Post, int, error) {
	filter.Status = []Status{StatusPublished}
	if filter.Sort == "" {
		filter.Sort = "published"
	}
	return service.repository.List(context, filter, limit, offset)
}

// # Mutation

// UpdateInput defines the mutable subset of post fields. Nil pointers mean
// "leave unchanged".
type UpdateInput struct {
	Title           *string
	Excerpt         *string
	Content         *string
	CoverURL        *string
	Category        *string
	Tags            []string
	MetaDescription *string
}

// Update applies a partial set of changes. Changing the content re-renders
// the stored HTML; changing the title does NOT re-derive the slug, since
// published URLs must stay stable.
func (service *Service) Update(context context.Context, actor *sec.AuthClaims, id string, input UpdateInput) (*Post, error) {
	existing, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, existing) {
		return nil, apperr.Forbidden("You can only edit your own posts")
	}

	validator := &validate.Validator{}
	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title).MaxLen(FieldTitle, *input.Title, 200)
	}
	if input.Excerpt != nil {
		validator.MaxLen(FieldExcerpt, *input.Excerpt, 500)
	}
	if input.MetaDescription != nil {
		validator.MaxLen(FieldMetaDescription, *input.MetaDescription, 300)
	}
	if input.CoverURL != nil && *input.CoverURL != "" {
		validator.URL(FieldCoverURL, *input.CoverURL)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Title != nil {
		existing.Title = *input.Title
	}
	if input.Excerpt != nil {
		existing.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		existing.Content = *input.Content
		html, err := renderHTML(*input.Content)
		if err != nil {
			return nil, err
		}
		existing.ContentHTML = html
	}
	if input.CoverURL != nil {
		existing.CoverURL = *input.CoverURL
	}
	if input.Category != nil {
		existing.Category = *input.Category
	}
	if input.Tags != nil {
		existing.Tags = input.Tags
	}
	if input.MetaDescription != nil {
		existing.MetaDescription = *input.MetaDescription
	}

	if err := service.repository.Update(context, existing); err != nil {
		return nil, err
	}

	service.logger.Info("post_updated", slog.String("post_id", id))
	return existing, nil
}

// Publish transitions a draft or archived post to published.
func (service *Service) Publish(context context.Context, actor *sec.AuthClaims, id string) (*Post, error) {
	return service.transition(context, actor, id, StatusPublished)
}

// Archive hides a published post from the public surface.
func (service *Service) Archive(context context.Context, actor *sec.AuthClaims, id string) (*Post, error) {
	return service.transition(context, actor, id, StatusArchived)
}

func (service *Service) transition(context context.Context, actor *sec.AuthClaims, id string, status Status) (*Post, error) {
	existing, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, existing) {
		return nil, apperr.Forbidden("You can only manage your own posts")
	}
	if existing.Status == status {
		return existing, nil
	}

	if err := service.repository.SetStatus(context, id, status); err != nil {
		return nil, err
	}

	existing.Status = status
	if status == StatusPublished && existing.PublishedAt == nil {
		now := time.Now()
		existing.PublishedAt = &now
	}

	service.logger.Info("post_status_changed",
		slog.String("post_id", id),
		slog.String("status", string(status)),
	)
	return existing, nil
}

// Delete soft-deletes a post.
func (service *Service) Delete(context context.Context, actor *sec.AuthClaims, id string) error {
	existing, err := service.repository.FindByID(context, id)
	if err != nil {
		return err
	}
	if !canManage(actor, existing) {
		return apperr.Forbidden("You can only delete your own posts")
	}

	if err := service.repository.SoftDelete(context, id); err != nil {
		return err
	}

	service.logger.Info("post_deleted", slog.String("post_id", id))
	return nil
}
