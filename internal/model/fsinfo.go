// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines FSInfo, which links parsed elements back to the file they
// were read from.
//
// The path serves two purposes. Error messages name the file that holds the
// offending definition, and relative include URIs are resolved against the
// directory of the including document.
package model

import "path/filepath"

// FSInfo stores file system metadata for a parsed element.
type FSInfo struct {
	FilePath string
}

// NewFSInfo creates FSInfo for filePath.
func NewFSInfo(filePath string) *FSInfo {
	return &FSInfo{
		FilePath: filePath,
	}
}

// Dir returns the directory containing the file, or "." when unknown.
func (f *FSInfo) Dir() string {
	if f == nil || f.FilePath == "" {
		return "."
	}
	return filepath.Dir(f.FilePath)
}

// String returns the file path, or "<memory>" for documents built in code.
func (f *FSInfo) String() string {
	if f == nil || f.FilePath == "" {
		return "<memory>"
	}
	return f.FilePath
}
