// Copyright (c) 2026 Eda Media. All rights reserved.

// Package event manages editorial events (conferences, webinars, award
// ceremonies) listed on the publication's agenda.
package event

import (
	"context"
	"time"
)

// Event is a scheduled editorial event. Unpublished events are only
// visible to the editorial surface.
type Event struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Description     string     `json:"description,omitempty"`
	Location        string     `json:"location,omitempty"` // Free text; "Online" for virtual events
	StartsAt        time.Time  `json:"starts_at"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	RegistrationURL string     `json:"registration_url,omitempty"`
	IsPublished     bool       `json:"is_published"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"-"`
}

// IsUpcoming reports whether the event has not yet started.
func (e *Event) IsUpcoming(now time.Time) bool {
	return e.StartsAt.After(now)
}

// Repository is the persistence contract for events.
type Repository interface {
	FindByID(context context.Context, id string) (*Event, error)
	FindBySlug(context context.Context, slug string) (*Event, error)

	// List returns events plus the total count. publishedOnly restricts
	// to the public agenda; upcomingOnly drops events that already started.
	List(context context.Context, publishedOnly, upcomingOnly bool, limit, offset int) ([]*Event, int, error)

	Create(context context.Context, event *Event) error
	Update(context context.Context, event *Event) error
	SetPublished(context context.Context, id string, published bool) error
	SoftDelete(context context.Context, id string) error
}

const (
	FieldTitle           = "title"
	FieldDescription     = "description"
	FieldStartsAt        = "starts_at"
	FieldEndsAt          = "ends_at"
	FieldRegistrationURL = "registration_url"
)
