// Copyright (c) 2026 Eda Media. All rights reserved.

// Package setting manages site-wide key-value configuration editable from
// the admin surface, such as contact addresses and feature toggles.
package setting

import (
	"context"
	"time"
)

// Setting is a single site-wide configuration entry. Values are stored as
// strings; callers interpret them with the typed getters on [Service].
type Setting struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	UpdatedBy   string    `json:"updated_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Repository is the persistence contract for settings.
type Repository interface {
	FindByKey(context context.Context, key string) (*Setting, error)
	List(context context.Context) ([]*Setting, error)

	// Upsert inserts the setting or replaces its value if the key exists.
	Upsert(context context.Context, setting *Setting) error

	Delete(context context.Context, key string) error
}

const (
	FieldKey   = "key"
	FieldValue = "value"
)
