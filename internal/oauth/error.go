package oauth

import "errors"

var (
	ErrUnknownProvider    = errors.New("unknown oauth provider")
	ErrProviderReported   = errors.New("provider reported an error")
	ErrMissingStateCookie = errors.New("missing oauth state cookie")
	ErrInvalidState       = errors.New("oauth state mismatch")
	ErrNoVerifiedEmail    = errors.New("provider profile has no verified email")
	ErrMalformedProfile   = errors.New("malformed provider profile")
)
