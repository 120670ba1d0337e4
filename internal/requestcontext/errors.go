// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package requestcontext

import "errors"

var (
	// ErrAlreadyActive is returned by BeginRequest when the context already
	// carries an open request scope. Beginning twice is a programming error.
	ErrAlreadyActive = errors.New("request context is already active")

	// ErrNoActiveContext is returned by the accessors when they are called
	// outside an open request scope.
	ErrNoActiveContext = errors.New("no active request context")
)
