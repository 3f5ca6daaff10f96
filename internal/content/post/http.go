// Copyright (c) 2026 Eda Media. All rights reserved.

package post

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edamedia/eda/internal/ai/writer"
	"github.com/edamedia/eda/internal/platform/middleware"
	requestutil "github.com/edamedia/eda/internal/platform/request"
	"github.com/edamedia/eda/internal/platform/respond"
	"github.com/edamedia/eda/internal/platform/sec"
	"github.com/edamedia/eda/pkg/convert"
	"github.com/edamedia/eda/pkg/pagination"
	"github.com/edamedia/eda/pkg/query"
)

// Handler implements the HTTP layer for editorial posts.
type Handler struct {
	postService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{postService: service}
}

// Routes returns the /posts router. The public feed lives at the root;
// the editorial surface is nested under /manage.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public surface
	router.Get("/", handler.listPublished)
	router.Get("/{slug}", handler.getPublished)

	// Editorial surface
	router.Group(func(editorial chi.Router) {
		editorial.Use(middleware.RequireRole(sec.RoleAuthor))

		editorial.Post("/", handler.create)
		editorial.Post("/from-generation", handler.createFromGeneration)
		editorial.Get("/manage", handler.list)
		editorial.Get("/manage/{id}", handler.getByID)
		editorial.Patch("/manage/{id}", handler.update)
		editorial.Post("/manage/{id}/publish", handler.publish)
		editorial.Post("/manage/{id}/archive", handler.archive)
		editorial.Delete("/manage/{id}", handler.remove)
	})

	return router
}

// # Public Endpoints

func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := Filter{
		Category: request.URL.Query().Get("category"),
		Tag:      request.URL.Query().Get("tag"),
		Query:    request.URL.Query().Get("q"),
	}

	posts, total, err := handler.postService.ListPublished(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getPublished(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.postService.GetPublishedBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

// # Editorial Endpoints

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.postService.Create(request.Context(), claims, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler) createFromGeneration(responseWriter http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(responseWriter, request, err)
		return
	}

	var payload writer.GeneratedPost
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(responseWriter, request, err)
		return
	}

	created, err := handler.postService.CreateFromGeneration(request.Context(), claims, payload)
	if err != nil {
		respond.Error(responseWriter, request, err)
		return
	}

	respond.Created(responseWriter, created)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	values := request.URL.Query()

	filter := Filter{
		Category: values.Get("category"),
		Tag:      values.Get("tag"),
		AuthorID: values.Get("author_id"),
		Query:    values.Get("q"),
		Sort:     values.Get("sort"),
		SortDir:  values.Get("sort_dir"),
	}
	for _, raw := range query.StringSlice(values.Get("status")) {
		if status := Status(raw); status.IsValid() {
			filter.Status = append(filter.Status, status)
		}
	}
	if raw := values.Get("ai_generated"); raw != "" {
		aiGenerated := convert.ToBool(raw)
		filter.AIGenerated = &aiGenerated
	}

	posts, total, err := handler.postService.List(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.postService.GetByID(request.Context(), chi.URLParam(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input struct {
		Title           *string  `json:"title"`
		Excerpt         *string  `json:"excerpt"`
		Content         *string  `json:"content"`
		CoverURL        *string  `json:"cover_url"`
		Category        *string  `json:"category"`
		Tags            []string `json:"tags"`
		MetaDescription *string  `json:"meta_description"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.postService.Update(request.Context(), claims, chi.URLParam(request, "id"), UpdateInput{
		Title:           input.Title,
		Excerpt:         input.Excerpt,
		Content:         input.Content,
		CoverURL:        input.CoverURL,
		Category:        input.Category,
		Tags:            input.Tags,
		MetaDescription: input.MetaDescription,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) publish(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, handler.postService.Publish)
}

func (handler *Handler) archive(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, handler.postService.Archive)
}

func (handler *Handler) transition(
	writer http.ResponseWriter,
	request *http.Request,
	operation func(ctx context.Context, actor *sec.AuthClaims, id string) (*Post, error),
) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := operation(request.Context(), claims, chi.URLParam(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.postService.Delete(request.Context(), claims, chi.URLParam(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
