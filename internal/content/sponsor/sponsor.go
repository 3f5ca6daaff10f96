// Copyright (c) 2026 Eda Media. All rights reserved.

// Package sponsor manages the commercial partners displayed on the
// publication's sponsor wall and inside sponsored content.
package sponsor

import (
	"context"
	"time"
)

// Tier ranks a sponsor's commercial package.
type Tier string

const (
	TierDiamond Tier = "diamond"
	TierGold    Tier = "gold"
	TierSilver  Tier = "silver"
	TierPartner Tier = "partner"
)

// IsValid reports whether t is a recognised [Tier] value.
func (t Tier) IsValid() bool {
	switch t {
	case TierDiamond, TierGold, TierSilver, TierPartner:
		return true
	}
	return false
}

// rank orders tiers for display, highest first.
func (t Tier) rank() int {
	switch t {
	case TierDiamond:
		return 4
	case TierGold:
		return 3
	case TierSilver:
		return 2
	case TierPartner:
		return 1
	default:
		return 0
	}
}

// Before reports whether t sorts ahead of other on the sponsor wall.
func (t Tier) Before(other Tier) bool {
	return t.rank() > other.rank()
}

// Sponsor is a commercial partner record.
type Sponsor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	LogoURL     string    `json:"logo_url"`
	WebsiteURL  string    `json:"website_url,omitempty"`
	Description string    `json:"description,omitempty"`
	Tier        Tier      `json:"tier"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Repository is the persistence contract for sponsors.
type Repository interface {
	FindByID(context context.Context, id string) (*Sponsor, error)
	FindBySlug(context context.Context, slug string) (*Sponsor, error)

	// List returns sponsors ordered by tier rank then name. activeOnly
	// restricts to the public wall.
	List(context context.Context, activeOnly bool) ([]*Sponsor, error)

	Create(context context.Context, sponsor *Sponsor) error
	Update(context context.Context, sponsor *Sponsor) error
	Delete(context context.Context, id string) error
}

const (
	FieldName       = "name"
	FieldLogoURL    = "logo_url"
	FieldWebsiteURL = "website_url"
	FieldTier       = "tier"
)
