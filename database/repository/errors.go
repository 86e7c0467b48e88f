// Package repository defines errors shared by the per-entity repository
// packages so that handlers can map store outcomes to HTTP statuses without
// inspecting driver errors.
package repository

import "errors"

// ErrNotFound is returned when an operation targets an identifier that does
// not match any document. A syntactically invalid ObjectID is reported the
// same way; it can never silently match.
var ErrNotFound = errors.New("document not found")

// ErrDuplicateEmail is returned when a user insert violates the unique
// email index.
var ErrDuplicateEmail = errors.New("email already registered")
