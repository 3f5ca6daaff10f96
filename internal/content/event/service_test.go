// Copyright (c) 2026 Eda Media. All rights reserved.

package event_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edamedia/eda/internal/content/event"
	"github.com/edamedia/eda/internal/platform/apperr"
	"github.com/edamedia/eda/internal/platform/dberr"
)

// # Stub Repository

type memoryRepository struct {
	events map[string]*event.Event
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{events: map[string]*event.Event{}}
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*event.Event, error) {
	if e, ok := r.events[id]; ok && e.DeletedAt == nil {
		return e, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) FindBySlug(_ context.Context, slug string) (*event.Event, error) {
	for _, e := range r.events {
		if e.Slug == slug && e.DeletedAt == nil {
			return e, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) List(_ context.Context, publishedOnly, upcomingOnly bool, limit, offset int) ([]*event.Event, int, error) {
	now := time.Now()
	matched := []*event.Event{}
	for _, e := range r.events {
		if e.DeletedAt != nil {
			continue
		}
		if publishedOnly && !e.IsPublished {
			continue
		}
		if upcomingOnly && !e.IsUpcoming(now) {
			continue
		}
		matched = append(matched, e)
	}
	return matched, len(matched), nil
}

func (r *memoryRepository) Create(_ context.Context, e *event.Event) error {
	r.events[e.ID] = e
	return nil
}

func (r *memoryRepository) Update(_ context.Context, e *event.Event) error {
	if _, ok := r.events[e.ID]; !ok {
		return dberr.ErrNotFound
	}
	r.events[e.ID] = e
	return nil
}

func (r *memoryRepository) SetPublished(_ context.Context, id string, published bool) error {
	e, ok := r.events[id]
	if !ok || e.DeletedAt != nil {
		return dberr.ErrNotFound
	}
	e.IsPublished = published
	return nil
}

func (r *memoryRepository) SoftDelete(_ context.Context, id string) error {
	e, ok := r.events[id]
	if !ok || e.DeletedAt != nil {
		return dberr.ErrNotFound
	}
	now := time.Now()
	e.DeletedAt = &now
	return nil
}

func newService(repo event.Repository) *event.Service {
	return event.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validInput() event.Input {
	return event.Input{
		Title:    "Congresso Brasileiro de Saúde Digital",
		Location: "São Paulo",
		StartsAt: time.Date(2026, 11, 10, 9, 0, 0, 0, time.UTC),
	}
}

// # Tests

func TestCreate(t *testing.T) {
	service := newService(newMemoryRepository())

	created, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "congresso-brasileiro-de-saude-digital", created.Slug)
	assert.False(t, created.IsPublished, "new events start hidden from the agenda")
}

func TestCreate_Validation(t *testing.T) {
	service := newService(newMemoryRepository())

	cases := []struct {
		name  string
		mutate func(*event.Input)
	}{
		{"missing title", func(input *event.Input) { input.Title = "" }},
		{"missing start", func(input *event.Input) { input.StartsAt = time.Time{} }},
		{"bad registration url", func(input *event.Input) { input.RegistrationURL = "not-a-url" }},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			input := validInput()
			testCase.mutate(&input)

			_, err := service.Create(context.Background(), input)

			require.Error(t, err)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestCreate_InvertedWindow(t *testing.T) {
	service := newService(newMemoryRepository())

	input := validInput()
	end := input.StartsAt.Add(-2 * time.Hour)
	input.EndsAt = &end

	_, err := service.Create(context.Background(), input)

	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "UNPROCESSABLE", appErr.Code)
}

func TestUpdate_SlugStaysStable(t *testing.T) {
	service := newService(newMemoryRepository())

	created, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)

	input := validInput()
	input.Title = "Congresso Renomeado"

	updated, err := service.Update(context.Background(), created.ID, input)
	require.NoError(t, err)

	assert.Equal(t, "Congresso Renomeado", updated.Title)
	assert.Equal(t, created.Slug, updated.Slug)
}

func TestAgenda_HidesUnpublished(t *testing.T) {
	service := newService(newMemoryRepository())

	hidden, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)

	input := validInput()
	input.Title = "Webinar de Telemedicina"
	visible, err := service.Create(context.Background(), input)
	require.NoError(t, err)

	require.NoError(t, service.SetPublished(context.Background(), visible.ID, true))

	events, total, err := service.Agenda(context.Background(), true, 20, 0)
	require.NoError(t, err)

	require.Equal(t, 1, total)
	assert.Equal(t, visible.ID, events[0].ID)

	_, err = service.GetPublishedBySlug(context.Background(), hidden.Slug)
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
