package writer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edamedia/eda/internal/platform/middleware"
	requestutil "github.com/edamedia/eda/internal/platform/request"
	"github.com/edamedia/eda/internal/platform/respond"
	"github.com/edamedia/eda/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Generation is an editorial tool, never a public surface.
	router.Use(middleware.RequireRole(sec.RoleEditor))

	router.Post("/generate-post", handler.generatePost)
	router.Post("/rewrite", handler.rewriteContent)
	router.Post("/titles", handler.generateTitles)
	router.Post("/excerpt", handler.generateExcerpt)
	router.Post("/meta-description", handler.generateMetaDescription)
	router.Post("/improve", handler.improveContent)
}

func (handler *Handler) generatePost(writer http.ResponseWriter, request *http.Request) {
	var cfg PostGenerationConfig
	if err := requestutil.DecodeJSON(request, &cfg); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.GeneratePost(request.Context(), cfg)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) rewriteContent(writer http.ResponseWriter, request *http.Request) {
	var cfg RewriteConfig
	if err := requestutil.DecodeJSON(request, &cfg); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.RewriteContent(request.Context(), cfg)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) generateTitles(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Topic    string   `json:"topic"`
		Keywords []string `json:"keywords"`
		Count    int      `json:"count"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	titles, err := handler.service.GenerateTitles(request.Context(), input.Topic, input.Keywords, input.Count)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{"titles": titles})
}

func (handler *Handler) generateExcerpt(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Content   string `json:"content"`
		MaxLength int    `json:"max_length"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	excerpt, err := handler.service.GenerateExcerpt(request.Context(), input.Content, input.MaxLength)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{"excerpt": excerpt})
}

func (handler *Handler) generateMetaDescription(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Title    string   `json:"title"`
		Content  string   `json:"content"`
		Keywords []string `json:"keywords"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	description, err := handler.service.GenerateMetaDescription(request.Context(), input.Title, input.Content, input.Keywords)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{"meta_description": description})
}

func (handler *Handler) improveContent(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Content      string `json:"content"`
		Instructions string `json:"instructions"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	improved, err := handler.service.ImproveContent(request.Context(), input.Content, input.Instructions)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{"content": improved})
}
