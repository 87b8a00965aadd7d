package utils

import (
	"net/http"

	"github.com/JMURv/authcore/internal/config"
)

// CookiePolicy is the process-wide cookie configuration, read-only after
// startup.
type CookiePolicy struct {
	SessionName string
	Domain      string
	Secure      bool
}

func NewCookiePolicy(conf config.Config) CookiePolicy {
	return CookiePolicy{
		SessionName: conf.Auth.SessionCookie,
		Domain:      conf.Auth.CookieDomain,
		Secure:      conf.Auth.CookieSecure,
	}
}

func (p CookiePolicy) SetSession(w http.ResponseWriter, sessionID string, maxAge int) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     p.SessionName,
			Value:    sessionID,
			MaxAge:   maxAge,
			Path:     "/",
			Domain:   p.Domain,
			HttpOnly: true,
			Secure:   p.Secure,
			SameSite: http.SameSiteLaxMode,
		},
	)
}

// ClearSession expires the session cookie (Max-Age=0 on the wire).
func (p CookiePolicy) ClearSession(w http.ResponseWriter) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     p.SessionName,
			Value:    "",
			MaxAge:   -1,
			Path:     "/",
			Domain:   p.Domain,
			HttpOnly: true,
			Secure:   p.Secure,
			SameSite: http.SameSiteLaxMode,
		},
	)
}

func (p CookiePolicy) ReadSession(r *http.Request) string {
	c, err := r.Cookie(p.SessionName)
	if err != nil {
		return ""
	}
	return c.Value
}

// SetOAuthState sets the short-lived CSRF state cookie and, when verifier
// is non-empty, the PKCE verifier cookie.
func (p CookiePolicy) SetOAuthState(w http.ResponseWriter, state, verifier string) {
	http.SetCookie(w, p.oauthCookie(config.OAuthStateCookie, state, config.OAuthCookieMaxAge))
	if verifier != "" {
		http.SetCookie(w, p.oauthCookie(config.OAuthVerifierCookie, verifier, config.OAuthCookieMaxAge))
	}
}

func (p CookiePolicy) ClearOAuthState(w http.ResponseWriter) {
	http.SetCookie(w, p.oauthCookie(config.OAuthStateCookie, "", -1))
	http.SetCookie(w, p.oauthCookie(config.OAuthVerifierCookie, "", -1))
}

func (p CookiePolicy) ReadOAuthState(r *http.Request) (state, verifier string) {
	if c, err := r.Cookie(config.OAuthStateCookie); err == nil {
		state = c.Value
	}
	if c, err := r.Cookie(config.OAuthVerifierCookie); err == nil {
		verifier = c.Value
	}
	return state, verifier
}

func (p CookiePolicy) oauthCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   maxAge,
		Path:     "/",
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
