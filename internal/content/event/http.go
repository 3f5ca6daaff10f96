// Copyright (c) 2026 Eda Media. All rights reserved.

package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edamedia/eda/internal/platform/middleware"
	requestutil "github.com/edamedia/eda/internal/platform/request"
	"github.com/edamedia/eda/internal/platform/respond"
	"github.com/edamedia/eda/internal/platform/sec"
	"github.com/edamedia/eda/pkg/convert"
	"github.com/edamedia/eda/pkg/pagination"
)

// Handler implements the HTTP layer for the editorial agenda.
type Handler struct {
	eventService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{eventService: service}
}

// Routes returns the /events router. The public agenda lives under /agenda;
// the editorial surface is at the root.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public agenda
	router.Get("/agenda", handler.agenda)
	router.Get("/agenda/{slug}", handler.getPublished)

	// Editorial management
	router.Group(func(editorial chi.Router) {
		editorial.Use(middleware.RequireRole(sec.RoleEditor))

		editorial.Get("/", handler.list)
		editorial.Get("/{id}", handler.getByID)
		editorial.Post("/", handler.create)
		editorial.Put("/{id}", handler.update)
		editorial.Patch("/{id}/visibility", handler.setVisibility)
		editorial.Delete("/{id}", handler.remove)
	})

	return router
}

func (handler *Handler) agenda(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	upcomingOnly := true
	if raw := request.URL.Query().Get("upcoming"); raw != "" {
		upcomingOnly = convert.ToBool(raw)
	}

	events, total, err := handler.eventService.Agenda(request.Context(), upcomingOnly, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, events, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getPublished(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.eventService.GetPublishedBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	events, total, err := handler.eventService.List(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, events, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.eventService.GetByID(request.Context(), chi.URLParam(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.eventService.Create(request.Context(), input)
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

	updated, err := handler.eventService.Update(request.Context(), chi.URLParam(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) setVisibility(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Published bool `json:"published"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.eventService.SetPublished(request.Context(), chi.URLParam(request, "id"), input.Published); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.eventService.Delete(request.Context(), chi.URLParam(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
