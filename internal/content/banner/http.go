// Copyright (c) 2026 Eda Media. All rights reserved.

package banner

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edamedia/eda/internal/platform/middleware"
	requestutil "github.com/edamedia/eda/internal/platform/request"
	"github.com/edamedia/eda/internal/platform/respond"
	"github.com/edamedia/eda/internal/platform/sec"
)

// Handler implements the HTTP layer for banner management.
type Handler struct {
	bannerService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{bannerService: service}
}

// Routes returns the /banners router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public: live banners for one placement slot
	router.Get("/live", handler.live)

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

func (handler *Handler) live(writer http.ResponseWriter, request *http.Request) {
	placement := Placement(request.URL.Query().Get("placement"))

	banners, err := handler.bannerService.LiveByPlacement(request.Context(), placement)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, banners)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	banners, err := handler.bannerService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, banners)
}

func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	banner, err := handler.bannerService.GetByID(request.Context(), chi.URLParam(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, banner)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.bannerService.Create(request.Context(), input)
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

	updated, err := handler.bannerService.Update(request.Context(), chi.URLParam(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.bannerService.Delete(request.Context(), chi.URLParam(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
