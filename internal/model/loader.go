// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import "context"

// Loader is the interface for a format-specific document loader.
type Loader interface {
	// Load reads and decodes the document at path.
	Load(ctx context.Context, path string) (*Document, error)
	// Parse decodes an in-memory document; filename is used for diagnostics.
	Parse(ctx context.Context, src []byte, filename string) (*Document, error)
	// Extensions lists the file extensions the loader handles, dot included.
	Extensions() []string
}
