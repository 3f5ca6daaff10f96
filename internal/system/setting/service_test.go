// Copyright (c) 2026 Eda Media. All rights reserved.

package setting_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edamedia/eda/internal/platform/apperr"
	"github.com/edamedia/eda/internal/platform/dberr"
	"github.com/edamedia/eda/internal/system/setting"
)

type memoryRepository struct {
	settings map[string]*setting.Setting
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{settings: map[string]*setting.Setting{}}
}

func (r *memoryRepository) FindByKey(_ context.Context, key string) (*setting.Setting, error) {
	if entry, ok := r.settings[key]; ok {
		return entry, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) List(_ context.Context) ([]*setting.Setting, error) {
	all := []*setting.Setting{}
	for _, entry := range r.settings {
		all = append(all, entry)
	}
	return all, nil
}

func (r *memoryRepository) Upsert(_ context.Context, entry *setting.Setting) error {
	entry.UpdatedAt = time.Now()
	r.settings[entry.Key] = entry
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, key string) error {
	if _, ok := r.settings[key]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.settings, key)
	return nil
}

func newService() *setting.Service {
	return setting.NewService(newMemoryRepository(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSet_AndTypedGetters(t *testing.T) {
	service := newService()
	ctx := context.Background()

	_, err := service.Set(ctx, "site.contact_email", setting.SetInput{Value: "redacao@eda.med.br"}, "admin-1")
	require.NoError(t, err)
	_, err = service.Set(ctx, "features.comments_enabled", setting.SetInput{Value: "true"}, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, "redacao@eda.med.br", service.GetString(ctx, "site.contact_email", "fallback"))
	assert.True(t, service.GetBool(ctx, "features.comments_enabled", false))
}

func TestGet_FallbackWhenAbsent(t *testing.T) {
	service := newService()
	ctx := context.Background()

	assert.Equal(t, "default", service.GetString(ctx, "site.missing", "default"))
	assert.True(t, service.GetBool(ctx, "features.missing", true))
}

func TestSet_RejectsMalformedKeys(t *testing.T) {
	service := newService()

	cases := []string{"", "Site.Email", "site..email", "9starts_with_digit", "has spaces"}

	for _, key := range cases {
		t.Run(key, func(t *testing.T) {
			_, err := service.Set(context.Background(), key, setting.SetInput{Value: "x"}, "admin-1")

			require.Error(t, err)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestSet_ReplacesExistingValue(t *testing.T) {
	service := newService()
	ctx := context.Background()

	_, err := service.Set(ctx, "site.tagline", setting.SetInput{Value: "old"}, "admin-1")
	require.NoError(t, err)
	updated, err := service.Set(ctx, "site.tagline", setting.SetInput{Value: "new"}, "admin-2")
	require.NoError(t, err)

	assert.Equal(t, "new", updated.Value)
	assert.Equal(t, "admin-2", updated.UpdatedBy)
}
