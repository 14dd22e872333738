// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package registry tracks model instances.
//
// A model instance is the namespace created by one load of a description
// document. The registry hands out stable, never-reused integer handles and
// enforces that instance names are unique across the whole plant. It is
// append-only: instances are never removed by callers. The only way the
// registry shrinks is Truncate, which the assembler uses to roll back the
// instances of a load that failed before it was committed.
package registry
