package config

import "time"

type ctxKey string

const (
	UidKey ctxKey = "uid"
	IpKey  ctxKey = "ip"
	UaKey  ctxKey = "ua"
)

const (
	SessionDuration      = time.Hour * 24 * 7
	AccessTokenDuration  = time.Minute * 15
	RefreshTokenDuration = time.Hour * 24 * 30
	MagicLinkDuration    = time.Minute * 15
	ResetTokenDuration   = time.Hour
	VerifyTokenDuration  = time.Hour * 24
)

const (
	OAuthStateCookie    = "oauth_state"
	OAuthVerifierCookie = "oauth_code_verifier"
	OAuthCookieMaxAge   = 600
)

const MinPasswordLen = 8

const (
	RecoveryRateLimit  = 5
	RecoveryRateWindow = time.Minute
)
