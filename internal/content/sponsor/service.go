// Copyright (c) 2026 Eda Media. All rights reserved.

package sponsor

import (
	"context"
	"log/slog"

	"github.com/edamedia/eda/internal/platform/validate"
	"github.com/edamedia/eda/pkg/slug"
	"github.com/edamedia/eda/pkg/uuid"
)

// Service orchestrates sponsor management.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// Input holds the full sponsor payload for create and update.
type Input struct {
	Name        string `json:"name"`
	LogoURL     string `json:"logo_url"`
	WebsiteURL  string `json:"website_url"`
	Description string `json:"description"`
	Tier        Tier   `json:"tier"`
	IsActive    bool   `json:"is_active"`
}

func validateInput(input Input) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 120)
	validator.Required(FieldLogoURL, input.LogoURL).URL(FieldLogoURL, input.LogoURL)
	if input.WebsiteURL != "" {
		validator.URL(FieldWebsiteURL, input.WebsiteURL)
	}
	validator.Custom(FieldTier, !input.Tier.IsValid(), "Unknown sponsor tier")
	return validator.Err()
}

// Wall returns the active sponsors for the public sponsor wall.
func (service *Service) Wall(context context.Context) ([]*Sponsor, error) {
	return service.repository.List(context, true)
}

// List returns every sponsor for the admin surface.
func (service *Service) List(context context.Context) ([]*Sponsor, error) {
	return service.repository.List(context, false)
}

func (service *Service) GetByID(context context.Context, id string) (*Sponsor, error) {
	return service.repository.FindByID(context, id)
}

func (service *Service) GetBySlug(context context.Context, sponsorSlug string) (*Sponsor, error) {
	return service.repository.FindBySlug(context, sponsorSlug)
}

// Create registers a new sponsor. The slug is derived from the name; a
// duplicate name surfaces as a conflict from the unique index.
func (service *Service) Create(context context.Context, input Input) (*Sponsor, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	sponsor := &Sponsor{
		ID:          uuid.New(),
		Name:        input.Name,
		Slug:        slug.From(input.Name),
		LogoURL:     input.LogoURL,
		WebsiteURL:  input.WebsiteURL,
		Description: input.Description,
		Tier:        input.Tier,
		IsActive:    input.IsActive,
	}

	if err := service.repository.Create(context, sponsor); err != nil {
		return nil, err
	}

	service.logger.Info("sponsor_created",
		slog.String("sponsor_id", sponsor.ID),
		slog.String("tier", string(sponsor.Tier)),
	)
	return sponsor, nil
}

// Update replaces a sponsor's payload. The slug follows the name so the
// public URL always matches the displayed brand.
func (service *Service) Update(context context.Context, id string, input Input) (*Sponsor, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	sponsor, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	sponsor.Name = input.Name
	sponsor.Slug = slug.From(input.Name)
	sponsor.LogoURL = input.LogoURL
	sponsor.WebsiteURL = input.WebsiteURL
	sponsor.Description = input.Description
	sponsor.Tier = input.Tier
	sponsor.IsActive = input.IsActive

	if err := service.repository.Update(context, sponsor); err != nil {
		return nil, err
	}

	service.logger.Info("sponsor_updated", slog.String("sponsor_id", id))
	return sponsor, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repository.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("sponsor_deleted", slog.String("sponsor_id", id))
	return nil
}
