package knowledge

import (
	"context"
	"errors"
	"log/slog"

	"github.com/edamedia/eda/internal/platform/ctxutil"
	"github.com/edamedia/eda/internal/platform/dberr"
)

// Resolver looks up personas and knowledge blocks through the layered
// chain: database store, then static catalog.
//
// # Guarantees
//
// ResolvePersona never fails: an unknown slug or a store outage always
// degrades to the catalog, and ultimately to the default persona. Store
// errors are logged and swallowed so that content generation stays
// available when the ai schema is empty or the database is down.
type Resolver struct {
	repo Repository
}

// NewResolver creates a Resolver. repo may be nil, in which case only the
// static catalog is consulted.
func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// ResolvePersona returns the persona for slug. An empty slug selects the
// default persona. The result is never nil.
func (resolver *Resolver) ResolvePersona(context context.Context, slug string) *Persona {
	if slug == "" {
		slug = DefaultPersonaSlug
	}

	if resolver.repo != nil {
		persona, err := resolver.repo.ActivePersona(context, slug)
		if err == nil {
			return persona
		}
		if !errors.Is(err, dberr.ErrNotFound) {
			ctxutil.GetLogger(context).Warn("persona_store_unavailable",
				slog.String("slug", slug),
				slog.Any("error", err),
			)
		}
	}

	if persona := CatalogPersona(slug); persona != nil {
		return persona
	}

	// Unknown slug: fall back to the default editorial identity.
	return CatalogPersona(DefaultPersonaSlug)
}

// ResolveKnowledge returns the knowledge block for slug, or nil when the
// block exists neither in the store nor in the catalog.
func (resolver *Resolver) ResolveKnowledge(context context.Context, slug string) *KnowledgeBlock {
	if resolver.repo != nil {
		block, err := resolver.repo.ActiveKnowledgeBlock(context, slug)
		if err == nil {
			return block
		}
		if !errors.Is(err, dberr.ErrNotFound) {
			ctxutil.GetLogger(context).Warn("knowledge_store_unavailable",
				slog.String("slug", slug),
				slog.Any("error", err),
			)
		}
	}

	return CatalogBlock(slug)
}
