// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package plant provides the Plant, the in-memory kinematic model assembled
// from description documents.
//
// # Core Concepts
//
//   - Model instance: the namespace created by one load of a document. A new
//     plant already holds two: WorldModelInstance, which owns the single
//     predefined body "world", and DefaultModelInstance.
//
//   - Entities: bodies, joints, frames and joint actuators. Each one has a
//     stable per-kind index, a name, and an owning model instance. Every body
//     also owns a body frame with the same name.
//
//   - Scoped and unscoped lookup: Get<Kind>ByNameIn resolves a name inside
//     one instance and is never ambiguous. Get<Kind>ByName resolves a name
//     across all instances and only succeeds while exactly one instance binds
//     it; once a name is loaded twice under different instances every
//     unscoped query for it fails with an ambiguous-name error.
//
//   - Finalization: Finalize is a one-way transition after which the
//     structure can no longer change. A finalized plant is read-only and safe
//     for concurrent readers.
//
// The Plant performs no locking. Mutations must be serialized by the caller,
// which in practice is a single assembler.
package plant
