// Copyright (c) 2026 Eda Media. All rights reserved.

package banner

import (
	"context"
	"log/slog"
	"time"

	"github.com/edamedia/eda/internal/platform/apperr"
	"github.com/edamedia/eda/internal/platform/validate"
	"github.com/edamedia/eda/pkg/uuid"
)

// Service orchestrates banner management.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// Input holds the full banner payload for create and update.
type Input struct {
	Title     string     `json:"title"`
	ImageURL  string     `json:"image_url"`
	TargetURL string     `json:"target_url"`
	Placement Placement  `json:"placement"`
	Position  int        `json:"position"`
	IsActive  bool       `json:"is_active"`
	StartsAt  *time.Time `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
}

func (service *Service) validateInput(input Input) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 150)
	validator.Required(FieldImageURL, input.ImageURL).URL(FieldImageURL, input.ImageURL)
	if input.TargetURL != "" {
		validator.URL(FieldTargetURL, input.TargetURL)
	}
	validator.Custom(FieldPlacement, !input.Placement.IsValid(), "Unknown placement slot")
	if err := validator.Err(); err != nil {
		return err
	}

	if input.StartsAt != nil && input.EndsAt != nil && input.EndsAt.Before(*input.StartsAt) {
		return apperr.Unprocessable("Display window ends before it starts")
	}
	return nil
}

// LiveByPlacement returns the banners to display in a slot right now.
func (service *Service) LiveByPlacement(context context.Context, placement Placement) ([]*Banner, error) {
	if !placement.IsValid() {
		return nil, validate.RequiredError(FieldPlacement, "Unknown placement slot")
	}
	return service.repository.FindLiveByPlacement(context, placement)
}

// List returns every banner for the admin surface.
func (service *Service) List(context context.Context) ([]*Banner, error) {
	return service.repository.List(context)
}

func (service *Service) GetByID(context context.Context, id string) (*Banner, error) {
	return service.repository.FindByID(context, id)
}

// Create registers a new banner.
func (service *Service) Create(context context.Context, input Input) (*Banner, error) {
	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	banner := &Banner{
		ID:        uuid.New(),
		Title:     input.Title,
		ImageURL:  input.ImageURL,
		TargetURL: input.TargetURL,
		Placement: input.Placement,
		Position:  input.Position,
		IsActive:  input.IsActive,
		StartsAt:  input.StartsAt,
		EndsAt:    input.EndsAt,
	}

	if err := service.repository.Create(context, banner); err != nil {
		return nil, err
	}

	service.logger.Info("banner_created",
		slog.String("banner_id", banner.ID),
		slog.String("placement", string(banner.Placement)),
	)
	return banner, nil
}

// Update replaces a banner's full payload.
func (service *Service) Update(context context.Context, id string, input Input) (*Banner, error) {
	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	banner, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	banner.Title = input.Title
	banner.ImageURL = input.ImageURL
	banner.TargetURL = input.TargetURL
	banner.Placement = input.Placement
	banner.Position = input.Position
	banner.IsActive = input.IsActive
	banner.StartsAt = input.StartsAt
	banner.EndsAt = input.EndsAt

	if err := service.repository.Update(context, banner); err != nil {
		return nil, err
	}

	service.logger.Info("banner_updated", slog.String("banner_id", id))
	return banner, nil
}

// Delete permanently removes a banner. Banners carry no editorial history,
// so deletion is physical.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repository.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("banner_deleted", slog.String("banner_id", id))
	return nil
}
