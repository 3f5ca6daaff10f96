// Copyright (c) 2026 Eda Media. All rights reserved.

package sponsor

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edamedia/eda/internal/platform/middleware"
	requestutil "github.com/edamedia/eda/internal/platform/request"
	"github.com/edamedia/eda/internal/platform/respond"
	"github.com/edamedia/eda/internal/platform/sec"
)

// Handler implements the HTTP layer for sponsor management.
type Handler struct {
	sponsorService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{sponsorService: service}
}

// Routes returns the /sponsors router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public sponsor wall
	router.Get("/wall", handler.wall)
	router.Get("/wall/{slug}", handler.getBySlug)

	// Editorial management
	router.Group(func(editorial chi.Router) {
		editorial.Use(middleware.RequireRole(sec.RoleEditor))

		editorial.Get("/", handler.list)
		editorial.Get("/{id}", handler.getByID)
		editorial.Post("/", handler.create)
		editorial.Put("/{id}", handler.update)
		editorial.Delete("/{id}", handler.remove)
	})

	return router
}

func (handler *Handler) wall(writer http.ResponseWriter, request *http.Request) {
	sponsors, err := handler.sponsorService.Wall(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sponsors)
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	sponsor, err := handler.sponsorService.GetBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sponsor)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	sponsors, err := handler.sponsorService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sponsors)
}

func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	sponsor, err := handler.sponsorService.GetByID(request.Context(), chi.URLParam(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sponsor)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.sponsorService.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.sponsorService.Update(request.Context(), chi.URLParam(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.sponsorService.Delete(request.Context(), chi.URLParam(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
