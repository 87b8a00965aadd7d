package ctrl

import "errors"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a resource already exists.
var ErrAlreadyExists = errors.New("already exists")

// ErrInvalidInput is returned for empty or structurally invalid tokens.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidOrExpired is returned when a one-time token has no row in
// storage: consumed, never issued, or swept.
var ErrInvalidOrExpired = errors.New("token is invalid or expired")

// ErrDeviceRevoked is returned when a revoked device presents an
// otherwise valid proof.
var ErrDeviceRevoked = errors.New("device is revoked")
