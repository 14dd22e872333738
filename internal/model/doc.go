// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the format-agnostic representation of a parsed
// description document. Loaders for concrete formats (HCL, YAML) produce a
// Document; the assembler consumes it and populates a plant.
//
// # Core Concepts
//
//   - Document: one parsed file. It holds an ordered list of top-level
//     entries, each either an inline Model or an Include of another file.
//     A model file holds exactly one Model entry; a world file may hold any
//     number of both kinds.
//
//   - Model: a named set of links (rigid bodies), frames, joints and joint
//     actuators, plus the Includes it composes.
//
//   - Include: a reference to another document through a URI, with an
//     optional local name for the resulting sub-model.
//
//   - FSInfo: the source path of every element, used in error messages and
//     as the base for resolving relative include URIs.
//
// The model holds plain values only. Validation that needs the plant (name
// uniqueness, reference resolution) belongs to the assembler.
package model
