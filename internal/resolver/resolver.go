// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package resolver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/specialistvlad/plantgo/internal/ctxlog"
	"github.com/specialistvlad/plantgo/internal/errors"
	"github.com/specialistvlad/plantgo/internal/model"
)

const fileScheme = "file"

// Resolver maps URIs to files and loads them with the matching loader.
type Resolver struct {
	loaders map[string]model.Loader
	exts    []string
	paths   map[string][]string
}

// New creates a resolver dispatching to the given loaders by extension.
// Extensions are tried in the order the loaders are passed.
func New(loaders ...model.Loader) *Resolver {
	r := &Resolver{
		loaders: make(map[string]model.Loader),
		paths:   make(map[string][]string),
	}
	for _, l := range loaders {
		for _, ext := range l.Extensions() {
			ext = strings.ToLower(ext)
			if _, ok := r.loaders[ext]; ok {
				continue
			}
			r.loaders[ext] = l
			r.exts = append(r.exts, ext)
		}
	}
	return r
}

// AddPath registers dir as a search root for scheme (e.g. "model").
func (r *Resolver) AddPath(scheme, dir string) error {
	scheme = strings.TrimSuffix(scheme, "://")
	if scheme == "" || scheme == fileScheme {
		return fmt.Errorf("invalid package scheme '%s'", scheme)
	}
	if dir == "" {
		return fmt.Errorf("empty directory for scheme '%s'", scheme)
	}
	r.paths[scheme] = append(r.paths[scheme], filepath.Clean(dir))
	return nil
}

// Schemes returns the registered schemes in sorted order.
func (r *Resolver) Schemes() []string {
	out := make([]string, 0, len(r.paths))
	for s := range r.paths {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Extensions lists every extension the resolver can load.
func (r *Resolver) Extensions() []string {
	return append([]string(nil), r.exts...)
}

// Supports reports whether path has an extension with a registered loader.
func (r *Resolver) Supports(path string) bool {
	_, ok := r.loaders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Resolve locates uri relative to the including document and loads it.
func (r *Resolver) Resolve(ctx context.Context, uri string, from *model.FSInfo) (*model.Document, error) {
	path, err := r.ResolvePath(uri, from)
	if err != nil {
		return nil, err
	}
	doc, err := r.Load(ctx, path)
	if err != nil {
		return nil, errors.Resolution(uri, err)
	}
	return doc, nil
}

// ResolvePath returns the absolute file path uri refers to without loading it.
func (r *Resolver) ResolvePath(uri string, from *model.FSInfo) (string, error) {
	if uri == "" {
		return "", errors.Resolution(uri, fmt.Errorf("empty URI"))
	}

	scheme, rest, hasScheme := strings.Cut(uri, "://")
	if !hasScheme || scheme == fileScheme {
		if !hasScheme {
			rest = uri
		}
		return r.resolveFile(uri, rest, from)
	}
	return r.resolvePackage(uri, scheme, rest)
}

// Load reads path with the loader registered for its extension.
func (r *Resolver) Load(ctx context.Context, path string) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loader, ok := r.loaders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("no loader for '%s' (supported: %s)", path, strings.Join(r.exts, ", "))
	}
	ctxlog.FromContext(ctx).Debug("Loading model document.", "path", path)
	return loader.Load(ctx, path)
}

func (r *Resolver) resolveFile(uri, path string, from *model.FSInfo) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(from.Dir(), path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Resolution(uri, err)
	}
	if err := r.checkFile(abs); err != nil {
		return "", errors.Resolution(uri, err)
	}
	return abs, nil
}

func (r *Resolver) resolvePackage(uri, scheme, rest string) (string, error) {
	dirs, ok := r.paths[scheme]
	if !ok {
		return "", errors.Resolution(uri, fmt.Errorf("unknown scheme '%s'", scheme))
	}
	rest = strings.Trim(rest, "/")
	if rest == "" {
		return "", errors.Resolution(uri, fmt.Errorf("missing package name"))
	}
	if strings.Contains("/"+rest+"/", "/../") {
		return "", errors.Resolution(uri, fmt.Errorf("'..' is not allowed in package URIs"))
	}

	rel := filepath.FromSlash(rest)
	for _, dir := range dirs {
		for _, candidate := range r.candidates(filepath.Join(dir, rel)) {
			if r.checkFile(candidate) == nil {
				return filepath.Abs(candidate)
			}
		}
	}
	return "", errors.Resolution(uri, fmt.Errorf("not found under %s", strings.Join(dirs, ", ")))
}

// candidates lists the files base may denote, most specific first.
func (r *Resolver) candidates(base string) []string {
	var out []string
	if r.Supports(base) {
		out = append(out, base)
	}
	for _, ext := range r.exts {
		out = append(out, base+ext)
	}
	for _, ext := range r.exts {
		out = append(out, filepath.Join(base, "model"+ext))
	}
	return out
}

func (r *Resolver) checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("'%s' is a directory", path)
	}
	if !r.Supports(path) {
		return fmt.Errorf("unsupported file type '%s'", filepath.Ext(path))
	}
	return nil
}
