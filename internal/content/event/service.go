// Copyright (c) 2026 Eda Media. All rights reserved.

package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/edamedia/eda/internal/platform/apperr"
	"github.com/edamedia/eda/internal/platform/validate"
	"github.com/edamedia/eda/pkg/slug"
	"github.com/edamedia/eda/pkg/uuid"
)

// Service orchestrates the editorial agenda.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// Input holds the full event payload for create and update.
type Input struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	StartsAt        time.Time  `json:"starts_at"`
	EndsAt          *time.Time `json:"ends_at"`
	RegistrationURL string     `json:"registration_url"`
}

func validateInput(input Input) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)
	validator.Custom(FieldStartsAt, input.StartsAt.IsZero(), "This field is required")
	if input.RegistrationURL != "" {
		validator.URL(FieldRegistrationURL, input.RegistrationURL)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	if input.EndsAt != nil && input.EndsAt.Before(input.StartsAt) {
		return apperr.Unprocessable("Event ends before it starts")
	}
	return nil
}

// Agenda returns the public event listing. Unpublished events never appear.
func (service *Service) Agenda(context context.Context, upcomingOnly bool, limit, offset int) ([]*Event, int, error) {
	return service.repository.List(context, true, upcomingOnly, limit, offset)
}

// List returns every event for the editorial surface.
func (service *Service) List(context context.Context, limit, offset int) ([]*Event, int, error) {
	return service.repository.List(context, false, false, limit, offset)
}

func (service *Service) GetByID(context context.Context, id string) (*Event, error) {
	return service.repository.FindByID(context, id)
}

// GetPublishedBySlug returns an event for the public agenda page.
func (service *Service) GetPublishedBySlug(context context.Context, eventSlug string) (*Event, error) {
	found, err := service.repository.FindBySlug(context, eventSlug)
	if err != nil {
		return nil, err
	}
	if !found.IsPublished {
		return nil, apperr.NotFound("Event")
	}
	return found, nil
}

// Create registers a new unpublished event.
func (service *Service) Create(context context.Context, input Input) (*Event, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	event := &Event{
		ID:              uuid.New(),
		Title:           input.Title,
		Slug:            slug.From(input.Title),
		Description:     input.Description,
		Location:        input.Location,
		StartsAt:        input.StartsAt,
		EndsAt:          input.EndsAt,
		RegistrationURL: input.RegistrationURL,
		IsPublished:     false,
	}

	if err := service.repository.Create(context, event); err != nil {
		return nil, err
	}

	service.logger.Info("event_created", slog.String("event_id", event.ID), slog.String("slug", event.Slug))
	return event, nil
}

// Update replaces an event's payload. The slug stays stable once created.
func (service *Service) Update(context context.Context, id string, input Input) (*Event, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	event, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.Location = input.Location
	event.StartsAt = input.StartsAt
	event.EndsAt = input.EndsAt
	event.RegistrationURL = input.RegistrationURL

	if err := service.repository.Update(context, event); err != nil {
		return nil, err
	}

	service.logger.Info("event_updated", slog.String("event_id", id))
	return event, nil
}

// SetPublished toggles an event's visibility on the public agenda.
func (service *Service) SetPublished(context context.Context, id string, published bool) error {
	if err := service.repository.SetPublished(context, id, published); err != nil {
		return err
	}

	service.logger.Info("event_visibility_changed",
		slog.String("event_id", id),
		slog.Bool("published", published),
	)
	return nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repository.SoftDelete(context, id); err != nil {
		return err
	}

	service.logger.Info("event_deleted", slog.String("event_id", id))
	return nil
}
