// Copyright (c) 2026 Eda Media. All rights reserved.

package post_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edamedia/eda/internal/ai/writer"
	"github.com/edamedia/eda/internal/content/post"
	"github.com/edamedia/eda/internal/platform/apperr"
	"github.com/edamedia/eda/internal/platform/dberr"
	"github.com/edamedia/eda/internal/platform/sec"
)

// # Stub Repository

type memoryRepository struct {
	posts map[string]*post.Post
}

func newMemoryRepository(seed ...*post.Post) *memoryRepository {
	repo := &memoryRepository{posts: map[string]*post.Post{}}
	for _, p := range seed {
		repo.posts[p.ID] = p
	}
	return repo
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*post.Post, error) {
	if p, ok := r.posts[id]; ok && p.DeletedAt == nil {
		return p, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) FindBySlug(_ context.Context, slug string) (*post.Post, error) {
	for _, p := range r.posts {
		if p.Slug == slug && p.DeletedAt == nil {
			return p, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, p := range r.posts {
		if p.Slug == slug && p.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) List(_ context.Context, filter post.Filter, _, _ int) ([]*post.Post, int, error) {
	matched := []*post.Post{}
	for _, p := range r.posts {
		if p.DeletedAt != nil {
			continue
		}
		if len(filter.Status) > 0 {
			hit := false
			for _, status := range filter.Status {
				if p.Status == status {
					hit = true
				}
			}
			if !hit {
				continue
			}
		}
		matched = append(matched, p)
	}
	return matched, len(matched), nil
}

func (r *memoryRepository) Create(_ context.Context, p *post.Post) error {
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.posts[p.ID] = p
	return nil
}

func (r *memoryRepository) Update(_ context.Context, p *post.Post) error {
	if _, ok := r.posts[p.ID]; !ok {
		return dberr.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	r.posts[p.ID] = p
	return nil
}

func (r *memoryRepository) SetStatus(_ context.Context, id string, status post.Status) error {
	p, ok := r.posts[id]
	if !ok {
		return dberr.ErrNotFound
	}
	p.Status = status
	if status == post.StatusPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
	return nil
}

func (r *memoryRepository) SoftDelete(_ context.Context, id string) error {
	p, ok := r.posts[id]
	if !ok || p.DeletedAt != nil {
		return dberr.ErrNotFound
	}
	now := time.Now()
	p.DeletedAt = &now
	return nil
}

func newService(repo post.Repository) *post.Service {
	return post.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func authorClaims(userID string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, Role: sec.RoleAuthor}
}

func editorClaims(userID string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, Role: sec.RoleEditor}
}

// # Creation

/*
TestCreate verifies slug derivation from a Portuguese title and that the
markdown body is rendered to HTML at write time.
*/
func TestCreate(t *testing.T) {
	service := newService(newMemoryRepository())

	created, err := service.Create(context.Background(), authorClaims("u1"), post.CreateInput{
		Title:   "ANS Define Novas Regras!!",
		Content: "## Resumo\n\nTexto do artigo.",
	})

	require.NoError(t, err)
	assert.Equal(t, "ans-define-novas-regras", created.Slug)
	assert.Equal(t, post.StatusDraft, created.Status)
	assert.False(t, created.AIGenerated)
	assert.Contains(t, created.ContentHTML, "<h2")
	assert.Contains(t, created.ContentHTML, "Texto do artigo")
}

/*
TestCreate_SlugCollision verifies that a second post with the same title
gets a numbered slug instead of failing.
*/
func TestCreate_SlugCollision(t *testing.T) {
	service := newService(newMemoryRepository(&post.Post{
		ID:   "p1",
		Slug: "telemedicina-no-brasil",
	}))

	created, err := service.Create(context.Background(), authorClaims("u1"), post.CreateInput{
		Title:   "Telemedicina no Brasil",
		Content: "corpo",
	})

	require.NoError(t, err)
	assert.Equal(t, "telemedicina-no-brasil-2", created.Slug)
}

func TestCreate_Validation(t *testing.T) {
	service := newService(newMemoryRepository())

	_, err := service.Create(context.Background(), authorClaims("u1"), post.CreateInput{
		Title: "Sem corpo",
	})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

/*
TestCreateFromGeneration verifies persistence of an AI payload: the draft
carries the provenance flag and reuses the generated slug.
*/
func TestCreateFromGeneration(t *testing.T) {
	service := newService(newMemoryRepository())

	created, err := service.CreateFromGeneration(context.Background(), editorClaims("ed1"), writer.GeneratedPost{
		Title:             "Telemedicina em 2026",
		Slug:              "telemedicina-em-2026",
		Excerpt:           "Resumo",
		Content:           "Corpo do artigo",
		MetaDescription:   "Meta",
		SuggestedTags:     []string{"saude digital"},
		SuggestedCategory: "Tecnologia",
	})

	require.NoError(t, err)
	assert.True(t, created.AIGenerated)
	assert.Equal(t, "telemedicina-em-2026", created.Slug)
	assert.Equal(t, "Tecnologia", created.Category)
	assert.Equal(t, []string{"saude digital"}, created.Tags)
	assert.Equal(t, post.StatusDraft, created.Status)
}

func TestCreateFromGeneration_IncompletePayload(t *testing.T) {
	service := newService(newMemoryRepository())

	_, err := service.CreateFromGeneration(context.Background(), editorClaims("ed1"), writer.GeneratedPost{
		Title: "Sem conteudo",
	})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "UNPROCESSABLE", appErr.Code)
}

// # Visibility

func TestGetPublishedBySlug_HidesDrafts(t *testing.T) {
	service := newService(newMemoryRepository(&post.Post{
		ID:     "p1",
		Slug:   "rascunho",
		Status: post.StatusDraft,
	}))

	_, err := service.GetPublishedBySlug(context.Background(), "rascunho")

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

// # Authorization

func TestUpdate_OwnershipModel(t *testing.T) {
	repo := newMemoryRepository(&post.Post{
		ID:       "p1",
		AuthorID: "owner",
		Title:    "Original",
		Content:  "corpo",
		Status:   post.StatusDraft,
	})
	service := newService(repo)
	newTitle := "Alterado"

	t.Run("other author forbidden", func(t *testing.T) {
		_, err := service.Update(context.Background(), authorClaims("intruder"), "p1", post.UpdateInput{Title: &newTitle})
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
	})

	t.Run("editor can edit any post", func(t *testing.T) {
		updated, err := service.Update(context.Background(), editorClaims("ed1"), "p1", post.UpdateInput{Title: &newTitle})
		require.NoError(t, err)
		assert.Equal(t, "Alterado", updated.Title)
	})
}

/*
TestUpdate_ContentReRendersHTML verifies that editing the markdown body
refreshes the stored HTML while the slug stays stable.
*/
func TestUpdate_ContentReRendersHTML(t *testing.T) {
	repo := newMemoryRepository(&post.Post{
		ID:          "p1",
		AuthorID:    "owner",
		Title:       "Original",
		Slug:        "original",
		Content:     "velho",
		ContentHTML: "<p>velho</p>\n",
		Status:      post.StatusDraft,
	})
	service := newService(repo)

	newContent := "# Novo titulo\n\nNovo corpo."
	newTitle := "Titulo Mudou Completamente"
	updated, err := service.Update(context.Background(), authorClaims("owner"), "p1", post.UpdateInput{
		Title:   &newTitle,
		Content: &newContent,
	})

	require.NoError(t, err)
	assert.Contains(t, updated.ContentHTML, "<h1")
	assert.Equal(t, "original", updated.Slug)
}

// # Lifecycle

func TestPublishAndArchive(t *testing.T) {
	repo := newMemoryRepository(&post.Post{
		ID:       "p1",
		AuthorID: "owner",
		Status:   post.StatusDraft,
	})
	service := newService(repo)

	published, err := service.Publish(context.Background(), authorClaims("owner"), "p1")
	require.NoError(t, err)
	assert.Equal(t, post.StatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)
	firstPublication := *published.PublishedAt

	archived, err := service.Archive(context.Background(), authorClaims("owner"), "p1")
	require.NoError(t, err)
	assert.Equal(t, post.StatusArchived, archived.Status)

	// Republishing keeps the original publication timestamp.
	republished, err := service.Publish(context.Background(), authorClaims("owner"), "p1")
	require.NoError(t, err)
	require.NotNil(t, republished.PublishedAt)
	assert.Equal(t, firstPublication, *republished.PublishedAt)
}

func TestDelete(t *testing.T) {
	repo := newMemoryRepository(&post.Post{
		ID:       "p1",
		AuthorID: "owner",
		Slug:     "artigo",
	})
	service := newService(repo)

	require.NoError(t, service.Delete(context.Background(), authorClaims("owner"), "p1"))

	_, err := service.GetByID(context.Background(), "p1")
	assert.Error(t, err)
}
