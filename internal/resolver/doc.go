// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package resolver turns include URIs into loaded model documents.
//
// Three URI shapes are understood:
//
//   - scheme://name[/rest] for schemes registered with AddPath. Every
//     directory registered for the scheme is tried in order, first as
//     <dir>/name/rest.<ext> and then as <dir>/name/rest/model.<ext>.
//   - file://path, resolved like a plain path.
//   - plain paths, absolute or relative to the including document.
//
// The loader is chosen by file extension. Every failure is reported as an
// errors.KindResolution error wrapping the cause.
package resolver
