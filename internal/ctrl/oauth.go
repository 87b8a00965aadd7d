package ctrl

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/JMURv/authcore/internal/auth"
	"github.com/JMURv/authcore/internal/dto"
	md "github.com/JMURv/authcore/internal/models"
	"github.com/JMURv/authcore/internal/oauth"
	"github.com/JMURv/authcore/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

type oauthRepo interface {
	GetUserByOAuth(ctx context.Context, provider, externalID string) (*md.User, error)
	LinkOAuthAccount(ctx context.Context, provider, externalID string, uid uuid.UUID) error
}

// BeginOAuth starts the login initiation phase: CSRF state, an optional
// PKCE verifier and the provider authorization URL. Cookie handling is the
// HTTP boundary's job; this returns the values to set.
func (c *Controller) BeginOAuth(ctx context.Context, provider string) (*dto.OAuthBegin, error) {
	const op = "oauth.BeginOAuth.ctrl"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	s, err := c.providers.Get(provider)
	if err != nil {
		return nil, err
	}

	state, err := auth.NewOpaqueToken()
	if err != nil {
		return nil, err
	}

	res := &dto.OAuthBegin{State: state, UsesPKCE: s.UsesPKCE()}
	if s.UsesPKCE() {
		res.Verifier = oauth2.GenerateVerifier()
	}

	res.URL = s.AuthCodeURL(state, res.Verifier)
	return res, nil
}

// CompleteOAuth runs the callback phase: CSRF check, code exchange,
// profile normalization, account upsert and session issuance.
func (c *Controller) CompleteOAuth(
	ctx context.Context,
	d *dto.DeviceRequest,
	req *dto.OAuthCallbackRequest,
) (*dto.ConsumeLinkResult, error) {
	const op = "oauth.CompleteOAuth.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	s, err := c.providers.Get(req.Provider)
	if err != nil {
		return nil, err
	}

	if req.ProviderError != "" {
		return nil, fmt.Errorf("%w: %s", oauth.ErrProviderReported, req.ProviderError)
	}

	if req.CookieState == "" {
		return nil, oauth.ErrMissingStateCookie
	}

	if subtle.ConstantTimeCompare([]byte(req.CookieState), []byte(req.State)) != 1 {
		return nil, oauth.ErrInvalidState
	}

	profile, err := s.Exchange(ctx, req.Code, req.Verifier)
	if err != nil {
		zap.L().Info("oauth exchange failed", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	u, err := c.upsertOAuthUser(ctx, string(s.Name()), profile)
	if err != nil {
		return nil, err
	}

	sessionID, err := c.createSession(ctx, u.ID, d)
	if err != nil {
		return nil, err
	}

	return &dto.ConsumeLinkResult{
		User:      u.Public(),
		SessionID: sessionID,
	}, nil
}

// upsertOAuthUser resolves a normalized profile to a local user keyed by
// (provider, externalID), creating or refreshing it as needed.
func (c *Controller) upsertOAuthUser(
	ctx context.Context,
	provider string,
	profile *oauth.Profile,
) (*md.User, error) {
	u, err := c.repo.GetUserByOAuth(ctx, provider, profile.ExternalID)
	if err == nil {
		if u.Name != profile.Name || u.Avatar != profile.AvatarURL {
			if uerr := c.repo.UpdateUserProfile(ctx, u.ID, profile.Name, profile.AvatarURL); uerr != nil {
				zap.L().Warn("failed to refresh oauth profile", zap.Error(uerr))
			} else {
				u.Name = profile.Name
				u.Avatar = profile.AvatarURL
			}
		}

		return u, nil
	}

	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	// First login through this provider. Reuse an existing account with
	// the same verified email before minting a new one.
	u, err = c.repo.GetUserByEmail(ctx, normalizeEmail(profile.Email))
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}

		u = &md.User{
			Email:           normalizeEmail(profile.Email),
			Name:            profile.Name,
			Avatar:          profile.AvatarURL,
			IsEmailVerified: profile.EmailVerified,
		}

		uid, cerr := c.repo.CreateUser(ctx, u)
		if cerr != nil {
			return nil, cerr
		}
		u.ID = uid
	}

	if err = c.repo.LinkOAuthAccount(ctx, provider, profile.ExternalID, u.ID); err != nil {
		return nil, err
	}

	return u, nil
}
