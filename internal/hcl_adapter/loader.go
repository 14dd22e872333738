// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/plantgo/internal/ctxlog"
	"github.com/specialistvlad/plantgo/internal/errors"
	"github.com/specialistvlad/plantgo/internal/model"
)

// Loader is the HCL-specific implementation of the model.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements model.Loader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// Load parses the HCL file at path.
func (l *Loader) Load(ctx context.Context, path string) (*model.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader reading file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.InvalidDocument(path, fmt.Errorf("failed to parse HCL: %w", diags))
	}
	return l.translate(ctx, file, path)
}

// Parse decodes HCL source held in memory.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*model.Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.InvalidDocument(filename, fmt.Errorf("failed to parse HCL: %w", diags))
	}
	return l.translate(ctx, file, filename)
}

func (l *Loader) translate(ctx context.Context, file *hcl.File, path string) (*model.Document, error) {
	logger := ctxlog.FromContext(ctx).With("file", path)
	ctx = ctxlog.WithLogger(ctx, logger)

	doc, diags := translateDocument(ctx, file.Body, model.NewFSInfo(path))
	if diags.HasErrors() {
		return nil, errors.InvalidDocument(path, fmt.Errorf("failed to decode HCL: %w", diags))
	}
	logger.Debug("HCL document translated.", "entries", len(doc.Entries), "world", doc.Name)
	return doc, nil
}
