// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package entitystore provides the append-only, per-kind tables that hold the
// bodies, joints, frames and joint actuators of a plant.
//
// # Characteristics
//
//   - **Arena-style:** each Table hands out a dense, monotonically increasing
//     index. Indices are stable and are never reused by committed inserts, so
//     other subsystems can keep them as back-references.
//   - **Owned:** every entry is tagged with the model instance that owns it.
//   - **Indexed by name:** a NameIndex maps (instance, name) to an index and
//     keeps, for every name, the set of instances binding it. An unscoped
//     lookup is ambiguous exactly when that set holds two or more instances.
//   - **Aliased:** composite models re-expose entities of their sub-models
//     under qualified names. An alias is a name binding that points at an
//     existing entry; it obeys the same uniqueness rule as a real entry but
//     does not create one.
//
// # Concurrency Model
//
// Tables are not safe for concurrent mutation. They are populated by a single
// assembler goroutine and become read-only once the owning plant is
// finalized, after which concurrent reads need no synchronization.
package entitystore
