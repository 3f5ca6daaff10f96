// Copyright (c) 2026 Eda Media. All rights reserved.

// Package banner manages placement-keyed promotional banners with an
// optional activation window.
package banner

import (
	"context"
	"time"
)

// Placement identifies a fixed advertising slot on the public site.
type Placement string

const (
	PlacementHomeHero    Placement = "home_hero"
	PlacementHomeSidebar Placement = "home_sidebar"
	PlacementPostFooter  Placement = "post_footer"
	PlacementNewsletter  Placement = "newsletter"
)

// IsValid reports whether p is a recognised [Placement] value.
func (p Placement) IsValid() bool {
	switch p {
	case PlacementHomeHero, PlacementHomeSidebar, PlacementPostFooter, PlacementNewsletter:
		return true
	}
	return false
}

// Banner is a promotional image bound to a placement slot. StartsAt and
// EndsAt bound the display window; nil means unbounded on that side.
type Banner struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	ImageURL  string     `json:"image_url"`
	TargetURL string     `json:"target_url"`
	Placement Placement  `json:"placement"`
	Position  int        `json:"position"` // Sort order within the placement
	IsActive  bool       `json:"is_active"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsLive reports whether the banner should be displayed at the given instant.
func (b *Banner) IsLive(now time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartsAt != nil && now.Before(*b.StartsAt) {
		return false
	}
	if b.EndsAt != nil && now.After(*b.EndsAt) {
		return false
	}
	return true
}

// Repository is the persistence contract for banners.
type Repository interface {
	FindByID(context context.Context, id string) (*Banner, error)

	// FindLiveByPlacement returns active banners inside their display
	// window, ordered by position.
	FindLiveByPlacement(context context.Context, placement Placement) ([]*Banner, error)

	List(context context.Context) ([]*Banner, error)
	Create(context context.Context, banner *Banner) error
	Update(context context.Context, banner *Banner) error
	Delete(context context.Context, id string) error
}

const (
	FieldTitle     = "title"
	FieldImageURL  = "image_url"
	FieldTargetURL = "target_url"
	FieldPlacement = "placement"
)
