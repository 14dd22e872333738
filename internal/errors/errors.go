// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Kind categorizes the error.
type Kind string

const (
	KindDuplicateInstanceName Kind = "duplicate_instance_name"
	KindDuplicateEntityName   Kind = "duplicate_entity_name"
	KindAmbiguousName         Kind = "ambiguous_name"
	KindNotFound              Kind = "not_found"
	KindInvalidJointDamping   Kind = "invalid_joint_damping"
	KindPlantFinalized        Kind = "plant_finalized"
	KindAlreadyFinalized      Kind = "already_finalized"
	KindResolution            Kind = "resolution"
	KindInvalidDocument       Kind = "invalid_document"
)

// Sentinels for use with the standard library's errors.Is.
var (
	ErrDuplicateInstanceName = &Error{Kind: KindDuplicateInstanceName}
	ErrDuplicateEntityName   = &Error{Kind: KindDuplicateEntityName}
	ErrAmbiguousName         = &Error{Kind: KindAmbiguousName}
	ErrNotFound              = &Error{Kind: KindNotFound}
	ErrInvalidJointDamping   = &Error{Kind: KindInvalidJointDamping}
	ErrPlantFinalized        = &Error{Kind: KindPlantFinalized}
	ErrAlreadyFinalized      = &Error{Kind: KindAlreadyFinalized}
	ErrResolution            = &Error{Kind: KindResolution}
	ErrInvalidDocument       = &Error{Kind: KindInvalidDocument}
)

// Error is the structured error type used throughout the module.
type Error struct {
	Kind Kind
	// Entity is the human readable entity kind ("Body", "Joint actuator", ...).
	Entity string
	// Name is the offending entity, instance, joint or document name.
	Name string
	// Instances lists the model instances involved, e.g. every instance
	// containing an ambiguous name.
	Instances []string
	Detail    string
	Cause     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Detail != "" {
		b.WriteString(e.Detail)
	} else {
		b.WriteString(string(e.Kind))
		if e.Name != "" {
			b.WriteString(": ")
			b.WriteString(e.Name)
		}
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err's chain contains an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return stderrors.Is(err, &Error{Kind: kind})
}

// As is a convenience wrapper around the standard library's errors.As for *Error.
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrors.As(err, &e)
	return e, ok
}

// DuplicateInstanceName reports a model instance name that is already registered.
func DuplicateInstanceName(name string) *Error {
	return &Error{
		Kind: KindDuplicateInstanceName,
		Name: name,
		Detail: fmt.Sprintf("This model already contains a model instance named '%s'. "+
			"Model instance names must be unique within a given model.", name),
	}
}

// DuplicateEntityName reports a second entity of the same kind and name in one instance.
func DuplicateEntityName(entity, name, instance string) *Error {
	return &Error{
		Kind:      KindDuplicateEntityName,
		Entity:    entity,
		Name:      name,
		Instances: []string{instance},
		Detail: fmt.Sprintf("Model instance '%s' already contains a %s named '%s'. "+
			"%s names must be unique within a model instance.", instance, strings.ToLower(entity), name, entity),
	}
}

// EmptyName reports an entity, alias or instance registered without a name.
// An empty instance means the offending name is the instance's own.
func EmptyName(entity, instance string) *Error {
	e := &Error{Kind: KindInvalidDocument, Entity: entity}
	if instance == "" {
		e.Detail = fmt.Sprintf("%s name cannot be empty.", entity)
		return e
	}
	e.Instances = []string{instance}
	e.Detail = fmt.Sprintf("%s name cannot be empty in model instance '%s'.", entity, instance)
	return e
}

// AmbiguousName reports an unscoped lookup of a name present in several instances.
func AmbiguousName(entity, name string, instances []string) *Error {
	return &Error{
		Kind:      KindAmbiguousName,
		Entity:    entity,
		Name:      name,
		Instances: instances,
		Detail:    fmt.Sprintf("%s %s appears in multiple model instances.", entity, name),
	}
}

// NotFound reports a missing entity. An empty instance means an unscoped lookup.
func NotFound(entity, name, instance string) *Error {
	e := &Error{Kind: KindNotFound, Entity: entity, Name: name}
	if instance == "" {
		e.Detail = fmt.Sprintf("There is no %s named '%s' in the model.", strings.ToLower(entity), name)
		return e
	}
	e.Instances = []string{instance}
	e.Detail = fmt.Sprintf("There is no %s named '%s' in model instance '%s'.", strings.ToLower(entity), name, instance)
	return e
}

// InvalidJointDamping reports a joint declared with negative damping.
func InvalidJointDamping(joint string, damping float64) *Error {
	return &Error{
		Kind:   KindInvalidJointDamping,
		Entity: "Joint",
		Name:   joint,
		Detail: fmt.Sprintf("Joint damping is negative for joint '%s'. "+
			"Joint damping must be a non-negative number (got %g).", joint, damping),
	}
}

// PlantFinalized reports a structural mutation attempted after Finalize.
func PlantFinalized(operation string) *Error {
	return &Error{
		Kind:   KindPlantFinalized,
		Name:   operation,
		Detail: fmt.Sprintf("Cannot %s: the plant has been finalized and its structure is read-only.", operation),
	}
}

// AlreadyFinalized reports a second call to Finalize.
func AlreadyFinalized() *Error {
	return &Error{
		Kind:   KindAlreadyFinalized,
		Detail: "The plant has already been finalized.",
	}
}

// Resolution wraps a failure to resolve or load an included document.
func Resolution(uri string, cause error) *Error {
	return &Error{
		Kind:   KindResolution,
		Name:   uri,
		Detail: fmt.Sprintf("failed to resolve '%s'", uri),
		Cause:  cause,
	}
}

// InvalidDocument reports a document that parsed but does not describe a valid model.
func InvalidDocument(source string, cause error) *Error {
	return &Error{
		Kind:   KindInvalidDocument,
		Name:   source,
		Detail: fmt.Sprintf("invalid model document %s", source),
		Cause:  cause,
	}
}
