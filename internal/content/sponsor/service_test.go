// Copyright (c) 2026 Eda Media. All rights reserved.

package sponsor_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edamedia/eda/internal/content/sponsor"
	"github.com/edamedia/eda/internal/platform/apperr"
	"github.com/edamedia/eda/internal/platform/dberr"
)

// # Stub Repository

type memoryRepository struct {
	sponsors map[string]*sponsor.Sponsor
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{sponsors: map[string]*sponsor.Sponsor{}}
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*sponsor.Sponsor, error) {
	if s, ok := r.sponsors[id]; ok {
		return s, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) FindBySlug(_ context.Context, slug string) (*sponsor.Sponsor, error) {
	for _, s := range r.sponsors {
		if s.Slug == slug {
			return s, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) List(_ context.Context, activeOnly bool) ([]*sponsor.Sponsor, error) {
	matched := []*sponsor.Sponsor{}
	for _, s := range r.sponsors {
		if activeOnly && !s.IsActive {
			continue
		}
		matched = append(matched, s)
	}

	// Mirror the store's tier-then-name ordering.
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Tier != matched[j].Tier {
			return matched[i].Tier.Before(matched[j].Tier)
		}
		return matched[i].Name < matched[j].Name
	})
	return matched, nil
}

func (r *memoryRepository) Create(_ context.Context, s *sponsor.Sponsor) error {
	r.sponsors[s.ID] = s
	return nil
}

func (r *memoryRepository) Update(_ context.Context, s *sponsor.Sponsor) error {
	if _, ok := r.sponsors[s.ID]; !ok {
		return dberr.ErrNotFound
	}
	r.sponsors[s.ID] = s
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.sponsors[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.sponsors, id)
	return nil
}

func newService(repo sponsor.Repository) *sponsor.Service {
	return sponsor.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func createSponsor(t *testing.T, service *sponsor.Service, name string, tier sponsor.Tier, active bool) *sponsor.Sponsor {
	t.Helper()

	created, err := service.Create(context.Background(), sponsor.Input{
		Name:     name,
		LogoURL:  "https://cdn.eda.med.br/logos/sponsor.png",
		Tier:     tier,
		IsActive: active,
	})
	require.NoError(t, err)
	return created
}

// # Tests

func TestTierOrdering(t *testing.T) {
	assert.True(t, sponsor.TierDiamond.Before(sponsor.TierGold))
	assert.True(t, sponsor.TierGold.Before(sponsor.TierSilver))
	assert.True(t, sponsor.TierSilver.Before(sponsor.TierPartner))
	assert.False(t, sponsor.TierPartner.Before(sponsor.TierDiamond))
}

func TestCreate(t *testing.T) {
	service := newService(newMemoryRepository())

	created := createSponsor(t, service, "Clinica Horizonte", sponsor.TierGold, true)

	assert.Equal(t, "clinica-horizonte", created.Slug)
	assert.Equal(t, sponsor.TierGold, created.Tier)
}

func TestCreate_Validation(t *testing.T) {
	service := newService(newMemoryRepository())

	cases := []struct {
		name  string
		input sponsor.Input
	}{
		{"missing name", sponsor.Input{LogoURL: "https://cdn.eda.med.br/l.png", Tier: sponsor.TierGold}},
		{"bad logo url", sponsor.Input{Name: "Clinica", LogoURL: "not-a-url", Tier: sponsor.TierGold}},
		{"unknown tier", sponsor.Input{Name: "Clinica", LogoURL: "https://cdn.eda.med.br/l.png", Tier: "platinum"}},
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

func TestWall_TierRankAndActivity(t *testing.T) {
	service := newService(newMemoryRepository())

	createSponsor(t, service, "Parceiro Local", sponsor.TierPartner, true)
	createSponsor(t, service, "Hospital Central", sponsor.TierDiamond, true)
	createSponsor(t, service, "Lab Antigo", sponsor.TierGold, false)

	wall, err := service.Wall(context.Background())
	require.NoError(t, err)

	require.Len(t, wall, 2, "inactive sponsors stay off the wall")
	assert.Equal(t, "Hospital Central", wall[0].Name)
	assert.Equal(t, "Parceiro Local", wall[1].Name)
}

/*
TestUpdate_SlugFollowsName verifies that renaming a sponsor renames its
public wall URL, unlike posts and events whose slugs stay frozen.
*/
func TestUpdate_SlugFollowsName(t *testing.T) {
	service := newService(newMemoryRepository())

	created := createSponsor(t, service, "Clinica Horizonte", sponsor.TierSilver, true)

	updated, err := service.Update(context.Background(), created.ID, sponsor.Input{
		Name:     "Clinica Horizonte Azul",
		LogoURL:  created.LogoURL,
		Tier:     sponsor.TierSilver,
		IsActive: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "clinica-horizonte-azul", updated.Slug)
}
