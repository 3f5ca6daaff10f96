// Copyright (c) 2026 Eda Media. All rights reserved.

package setting

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edamedia/eda/internal/platform/middleware"
	requestutil "github.com/edamedia/eda/internal/platform/request"
	"github.com/edamedia/eda/internal/platform/respond"
	"github.com/edamedia/eda/internal/platform/sec"
)

// Handler implements the admin-only HTTP layer for settings.
type Handler struct {
	settingService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{settingService: service}
}

// Routes returns the /settings router. Everything is admin-only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Get("/", handler.list)
	router.Get("/{key}", handler.get)
	router.Put("/{key}", handler.set)
	router.Delete("/{key}", handler.remove)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	settings, err := handler.settingService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, settings)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.settingService.Get(request.Context(), chi.URLParam(request, "key"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

func (handler *Handler) set(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input SetInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	saved, err := handler.settingService.Set(request.Context(), chi.URLParam(request, "key"), input, claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, saved)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.settingService.Delete(request.Context(), chi.URLParam(request, "key")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
