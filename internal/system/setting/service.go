// Copyright (c) 2026 Eda Media. All rights reserved.

package setting

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/edamedia/eda/internal/platform/validate"
	"github.com/edamedia/eda/pkg/convert"
)

// Keys are dot-separated lowercase identifiers, e.g. "site.contact_email".
var keyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`)

// Service orchestrates site-wide settings.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// Get returns a setting by key.
func (service *Service) Get(context context.Context, key string) (*Setting, error) {
	return service.repository.FindByKey(context, key)
}

// GetString returns a setting's value, or fallback when the key is absent.
func (service *Service) GetString(context context.Context, key, fallback string) string {
	found, err := service.repository.FindByKey(context, key)
	if err != nil {
		return fallback
	}
	return found.Value
}

// GetBool returns a setting's value as a boolean, or fallback when absent.
func (service *Service) GetBool(context context.Context, key string, fallback bool) bool {
	found, err := service.repository.FindByKey(context, key)
	if err != nil {
		return fallback
	}
	return convert.ToBool(found.Value)
}

// List returns every setting for the admin surface.
func (service *Service) List(context context.Context) ([]*Setting, error) {
	return service.repository.List(context)
}

// SetInput is the upsert payload for a setting.
type SetInput struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Set creates or replaces a setting. updatedBy records the acting admin.
func (service *Service) Set(context context.Context, key string, input SetInput, updatedBy string) (*Setting, error) {
	validator := &validate.Validator{}
	validator.Required(FieldKey, key).MaxLen(FieldKey, key, 100)
	validator.Custom(FieldKey, key != "" && !keyPattern.MatchString(key), "Keys are lowercase dot-separated identifiers")
	validator.MaxLen(FieldValue, input.Value, 10000)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	entry := &Setting{
		Key:         key,
		Value:       input.Value,
		Description: input.Description,
		UpdatedBy:   updatedBy,
	}
	if err := service.repository.Upsert(context, entry); err != nil {
		return nil, err
	}

	service.logger.Info("setting_updated",
		slog.String("key", key),
		slog.String("updated_by", updatedBy),
	)
	return entry, nil
}

// Delete removes a setting. Readers fall back to their defaults afterwards.
func (service *Service) Delete(context context.Context, key string) error {
	if err := service.repository.Delete(context, key); err != nil {
		return err
	}

	service.logger.Info("setting_deleted", slog.String("key", key))
	return nil
}
