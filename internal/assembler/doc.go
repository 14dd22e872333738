// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package assembler turns parsed documents into model instances of a plant.
//
// # Composition
//
// Includes are assembled in one of two modes, depending on where they
// appear:
//
//   - Independent: an include listed at the top level of a world document
//     becomes its own model instance, named by the include's name override
//     or by the included model's declared name.
//
//   - Composite: an include inside a model becomes a fresh sub-instance
//     named "<container>::<name>". Every entity of the sub-instance is then
//     re-exposed inside the container as "<name>::<entity>", so the
//     container's own joints and frames can refer to parts of its
//     sub-models. Nesting qualifies names at every level.
//
// # Atomicity
//
// A failed AddModel call leaves the plant exactly as it found it. AddModels
// commits entry by entry; on failure the entries already committed stay and
// their handles are returned along with the error.
package assembler
