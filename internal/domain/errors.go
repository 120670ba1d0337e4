// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package domain

import (
	"errors"
	"fmt"
)

// Kind tags the variant carried by a [Failure].
type Kind int

const (
	// KindGeneric is an otherwise unclassified business failure.
	KindGeneric Kind = iota

	// KindNotFound reports that an entity does not exist in a repository.
	KindNotFound

	// KindInvalid reports that caller-supplied input was rejected.
	KindInvalid
)

// String returns a lowercase label for k, suitable for metrics and logs.
func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Sentinels matched by [Failure.Is]. Every failure matches
// ErrDomainFailure; the more specific ones match their own kind only.
var (
	// ErrDomainFailure matches any [Failure].
	ErrDomainFailure = errors.New("domain failure")

	// ErrEntityNotFound matches failures of kind [KindNotFound].
	ErrEntityNotFound = errors.New("entity not found")

	// ErrInvalidInput matches failures of kind [KindInvalid].
	ErrInvalidInput = errors.New("invalid input")
)

// Failure is the tagged error type produced by business operations.
//
// Name is an explicit human-readable label of the component (or field, for
// [KindInvalid]) that failed. EntityID and Repository are set for
// [KindNotFound]; Reason is set for [KindInvalid]. Err keeps an optional
// underlying cause for logging; it is never shown to clients.
type Failure struct {
	Kind       Kind
	Name       string
	EntityID   string
	Repository string
	Reason     string
	Err        error
}

// Generic returns a [KindGeneric] failure raised by the component name.
func Generic(name string) *Failure {
	return &Failure{Kind: KindGeneric, Name: name}
}

// NotFound returns a [KindNotFound] failure for entityID in repositoryName.
func NotFound(entityID, repositoryName string) *Failure {
	return &Failure{
		Kind:       KindNotFound,
		Name:       "EntityNotFound",
		EntityID:   entityID,
		Repository: repositoryName,
	}
}

// Invalid returns a [KindInvalid] failure for the input field name.
func Invalid(name, reason string) *Failure {
	return &Failure{Kind: KindInvalid, Name: name, Reason: reason}
}

// Wrap attaches cause to f and returns f.
func (f *Failure) Wrap(cause error) *Failure {
	f.Err = cause
	return f
}

func (f *Failure) Error() string {
	var msg string
	switch f.Kind {
	case KindNotFound:
		msg = fmt.Sprintf("entity %s not found in %s", f.EntityID, f.Repository)
	case KindInvalid:
		msg = fmt.Sprintf("invalid %s: %s", f.Name, f.Reason)
	default:
		msg = fmt.Sprintf("%s failed", f.Name)
	}

	if f.Err != nil {
		return msg + ": " + f.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (f *Failure) Unwrap() error {
	return f.Err
}

// Is reports whether target is one of the package sentinels matching f.
func (f *Failure) Is(target error) bool {
	switch target {
	case ErrDomainFailure:
		return true
	case ErrEntityNotFound:
		return f.Kind == KindNotFound
	case ErrInvalidInput:
		return f.Kind == KindInvalid
	default:
		return false
	}
}

// AsFailure extracts the first [*Failure] in err's chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
