package validation

import "errors"

var ErrMissingFields = errors.New("required fields are missing")
var ErrEmptyBody = errors.New("request body is empty")
var ErrInvalidJSON = errors.New("request body is not valid json")
var ErrBodyConsumed = errors.New("request body was already consumed")

// Machine-readable codes attached to validation failures.
const (
	CodeMissingFields = "MISSING_FIELDS"
	CodeEmptyBody     = "EMPTY_BODY"
	CodeInvalidJSON   = "INVALID_JSON"
	CodeBodyConsumed  = "BODY_CONSUMED"
	CodeInvalidToken  = "INVALID_TOKEN"
	CodeTokenExpired  = "TOKEN_EXPIRED"
)
