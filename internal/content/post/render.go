// Copyright (c) 2026 Eda Media. All rights reserved.

package post

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// renderHTML converts a post's markdown body to HTML. Rendering happens at
// write time so the public read path serves the stored HTML verbatim.
func renderHTML(markdown string) (string, error) {
	var buffer bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buffer); err != nil {
		return "", fmt.Errorf("post: markdown rendering failed: %w", err)
	}
	return buffer.String(), nil
}
