// Copyright (c) 2026 Eda Media. All rights reserved.

package banner_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edamedia/eda/internal/content/banner"
	"github.com/edamedia/eda/internal/platform/apperr"
	"github.com/edamedia/eda/internal/platform/dberr"
)

// # Stub Repository

type memoryRepository struct {
	banners map[string]*banner.Banner
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{banners: map[string]*banner.Banner{}}
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*banner.Banner, error) {
	if b, ok := r.banners[id]; ok {
		return b, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) FindLiveByPlacement(_ context.Context, placement banner.Placement) ([]*banner.Banner, error) {
	now := time.Now()
	live := []*banner.Banner{}
	for _, b := range r.banners {
		if b.Placement == placement && b.IsLive(now) {
			live = append(live, b)
		}
	}
	return live, nil
}

func (r *memoryRepository) List(_ context.Context) ([]*banner.Banner, error) {
	all := []*banner.Banner{}
	for _, b := range r.banners {
		all = append(all, b)
	}
	return all, nil
}

func (r *memoryRepository) Create(_ context.Context, b *banner.Banner) error {
	r.banners[b.ID] = b
	return nil
}

func (r *memoryRepository) Update(_ context.Context, b *banner.Banner) error {
	if _, ok := r.banners[b.ID]; !ok {
		return dberr.ErrNotFound
	}
	r.banners[b.ID] = b
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.banners[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.banners, id)
	return nil
}

func newService(repo banner.Repository) *banner.Service {
	return banner.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// # Tests

func TestIsLive(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name     string
		banner   banner.Banner
		expected bool
	}{
		{"active without window", banner.Banner{IsActive: true}, true},
		{"inactive", banner.Banner{IsActive: false}, false},
		{"inside window", banner.Banner{IsActive: true, StartsAt: &past, EndsAt: &future}, true},
		{"before window opens", banner.Banner{IsActive: true, StartsAt: &future}, false},
		{"after window closes", banner.Banner{IsActive: true, EndsAt: &past}, false},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.banner.IsLive(now))
		})
	}
}

func TestCreate_Validation(t *testing.T) {
	service := newService(newMemoryRepository())

	cases := []struct {
		name  string
		input banner.Input
	}{
		{"missing title", banner.Input{ImageURL: "https://cdn.eda.med.br/b.png", Placement: banner.PlacementHomeHero}},
		{"bad image url", banner.Input{Title: "Campanha", ImageURL: "not-a-url", Placement: banner.PlacementHomeHero}},
		{"unknown placement", banner.Input{Title: "Campanha", ImageURL: "https://cdn.eda.med.br/b.png", Placement: "popup"}},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), testCase.input)

			require.Error(t, err)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestCreate_InvertedWindow(t *testing.T) {
	service := newService(newMemoryRepository())

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(-24 * time.Hour)

	_, err := service.Create(context.Background(), banner.Input{
		Title:     "Semana da Saúde",
		ImageURL:  "https://cdn.eda.med.br/semana.png",
		Placement: banner.PlacementHomeSidebar,
		StartsAt:  &start,
		EndsAt:    &end,
	})

	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "UNPROCESSABLE", appErr.Code)
}

func TestLiveByPlacement(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	live, err := service.Create(context.Background(), banner.Input{
		Title:     "Congresso 2026",
		ImageURL:  "https://cdn.eda.med.br/congresso.png",
		Placement: banner.PlacementHomeHero,
		IsActive:  true,
	})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), banner.Input{
		Title:     "Rascunho",
		ImageURL:  "https://cdn.eda.med.br/rascunho.png",
		Placement: banner.PlacementHomeHero,
		IsActive:  false,
	})
	require.NoError(t, err)

	found, err := service.LiveByPlacement(context.Background(), banner.PlacementHomeHero)
	require.NoError(t, err)

	require.Len(t, found, 1)
	assert.Equal(t, live.ID, found[0].ID)
}

func TestLiveByPlacement_UnknownSlot(t *testing.T) {
	service := newService(newMemoryRepository())

	_, err := service.LiveByPlacement(context.Background(), "popup")

	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}
