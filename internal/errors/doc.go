// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package errors provides the structured error type reported by the plant,
// the assembler and the document resolver.
//
// Every error carries a Kind. Callers branch on the kind instead of parsing
// messages:
//
//	if errors.IsKind(err, errors.KindAmbiguousName) {
//		// retry with an explicit model instance
//	}
//
// The sentinel values (ErrNotFound, ErrAmbiguousName, ...) match any error of
// the same kind through the standard library's errors.Is. Messages are
// written for people authoring model files and always name the offending
// entity, instance or document.
package errors
