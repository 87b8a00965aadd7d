package oauth

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// googleStrategy derives the profile from the OIDC ID token returned by
// the token endpoint. The token arrives over TLS directly from Google, so
// its claims are read without a second signature check. PKCE is required.
type googleStrategy struct {
	conf *oauth2.Config
}

func (s *googleStrategy) Name() Provider { return ProviderGoogle }
func (s *googleStrategy) UsesPKCE() bool { return true }

func (s *googleStrategy) AuthCodeURL(state, verifier string) string {
	return s.conf.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
}

type googleIDClaims struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	jwt.RegisteredClaims
}

func (s *googleStrategy) Exchange(ctx context.Context, code, verifier string) (*Profile, error) {
	token, err := s.conf.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, err
	}

	raw, ok := token.Extra("id_token").(string)
	if !ok || raw == "" {
		return nil, ErrMalformedProfile
	}

	claims := googleIDClaims{}
	if _, _, err = jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProfile, err)
	}

	if claims.Sub == "" {
		return nil, ErrMalformedProfile
	}

	// Google reports verification explicitly and unverified addresses are
	// rejected outright.
	if !claims.EmailVerified {
		return nil, ErrNoVerifiedEmail
	}

	return &Profile{
		ExternalID:    claims.Sub,
		Email:         claims.Email,
		Name:          claims.Name,
		AvatarURL:     claims.Picture,
		EmailVerified: true,
	}, nil
}

// githubStrategy fetches the profile from the REST userinfo endpoints.
// No PKCE; the verified primary email is resolved via /user/emails.
type githubStrategy struct {
	conf *oauth2.Config
}

const (
	githubUserURL   = "https://api.github.com/user"
	githubEmailsURL = "https://api.github.com/user/emails"
)

func (s *githubStrategy) Name() Provider { return ProviderGithub }
func (s *githubStrategy) UsesPKCE() bool { return false }

func (s *githubStrategy) AuthCodeURL(state, _ string) string {
	return s.conf.AuthCodeURL(state)
}

type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

func (s *githubStrategy) Exchange(ctx context.Context, code, _ string) (*Profile, error) {
	token, err := s.conf.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	client := s.conf.Client(ctx, token)

	u := githubUser{}
	if err = getJSON(ctx, client, githubUserURL, &u); err != nil {
		return nil, err
	}

	if u.ID == 0 {
		return nil, ErrMalformedProfile
	}

	emails := make([]githubEmail, 0, 4)
	if err = getJSON(ctx, client, githubEmailsURL, &emails); err != nil {
		return nil, err
	}

	email := ""
	for i := range emails {
		if emails[i].Primary && emails[i].Verified {
			email = emails[i].Email
			break
		}
	}

	if email == "" {
		return nil, ErrNoVerifiedEmail
	}

	name := u.Name
	if name == "" {
		name = u.Login
	}

	return &Profile{
		ExternalID:    fmt.Sprintf("%d", u.ID),
		Email:         email,
		Name:          name,
		AvatarURL:     u.AvatarURL,
		EmailVerified: true,
	}, nil
}

func getJSON(ctx context.Context, client *http.Client, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("%w: %s: %s", ErrMalformedProfile, res.Status, body)
	}

	return json.NewDecoder(res.Body).Decode(dest)
}
