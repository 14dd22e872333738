// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package scopedname

import (
	"fmt"
	"slices"
	"strings"
)

// Separator delimits scope segments.
const Separator = "::"

// Name is a scoped name split into its segments. The last segment is the
// local name; the preceding ones are the enclosing scopes, outermost first.
// The zero value is the empty root scope.
type Name struct {
	Segments []string
}

// Parse splits a canonical scoped name into its segments.
func Parse(raw string) (Name, error) {
	if raw == "" {
		return Name{}, fmt.Errorf("scoped name cannot be empty")
	}
	segments := strings.Split(raw, Separator)
	for _, s := range segments {
		if strings.TrimSpace(s) == "" {
			return Name{}, fmt.Errorf("scoped name %q contains an empty segment", raw)
		}
		if strings.Contains(s, ":") {
			return Name{}, fmt.Errorf("scoped name %q contains a stray ':'", raw)
		}
	}
	return Name{Segments: segments}, nil
}

// Join concatenates non-empty parts with the separator.
func Join(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, Separator)
}

// String serializes the Name into its canonical form.
func (n Name) String() string {
	return strings.Join(n.Segments, Separator)
}

// IsQualified reports whether the name has at least one enclosing scope.
func (n Name) IsQualified() bool {
	return len(n.Segments) > 1
}

// Child returns the name of local inside n. n is not modified.
func (n Name) Child(local string) Name {
	return Name{Segments: append(slices.Clone(n.Segments), local)}
}
