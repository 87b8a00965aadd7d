package ctrl

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/authcore/internal/auth"
	"github.com/JMURv/authcore/internal/config"
	"github.com/JMURv/authcore/internal/dto"
	md "github.com/JMURv/authcore/internal/models"
	"github.com/JMURv/authcore/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type refreshRepo interface {
	CreateRefreshToken(ctx context.Context, t *md.RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, hash string) (*md.RefreshToken, error)
	// RevokeRefreshToken is a compare-and-swap: it reports whether this
	// call flipped the token from live to revoked.
	RevokeRefreshToken(ctx context.Context, id uuid.UUID) (bool, error)
	TouchRefreshToken(ctx context.Context, id uuid.UUID, usedAt time.Time) error
	GetUserRefreshTokens(ctx context.Context, uid uuid.UUID) ([]*md.RefreshToken, error)
	RevokeAllRefreshTokens(ctx context.Context, uid uuid.UUID) error
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}

// GenPair issues a signed access token plus an opaque refresh token. Only
// the refresh token's hash reaches storage.
func (c *Controller) GenPair(ctx context.Context, uid uuid.UUID, email string) (*dto.TokenPair, error) {
	const op = "token.GenPair.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	access, err := c.au.NewAccess(ctx, uid, email)
	if err != nil {
		return nil, err
	}

	refresh, err := auth.NewOpaqueToken()
	if err != nil {
		return nil, err
	}

	err = c.repo.CreateRefreshToken(
		ctx, &md.RefreshToken{
			ID:        uuid.New(),
			UserID:    uid,
			TokenHash: auth.HashToken(refresh),
			ExpiresAt: time.Now().Add(config.RefreshTokenDuration),
		},
	)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{Access: access, Refresh: refresh}, nil
}

func (c *Controller) AuthenticateTokens(
	ctx context.Context,
	req *dto.EmailAndPasswordRequest,
) (*dto.TokenPair, error) {
	const op = "token.AuthenticateTokens.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.authenticatePassword(ctx, req)
	if err != nil {
		return nil, err
	}

	return c.GenPair(ctx, u.ID, u.Email)
}

// RotateRefresh exchanges a live refresh token for a successor pair. The
// predecessor is revoked first; if the successor insert then fails the
// user re-authenticates rather than keeping a live token.
func (c *Controller) RotateRefresh(ctx context.Context, refresh string) (*dto.TokenPair, error) {
	const op = "token.RotateRefresh.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if refresh == "" {
		return nil, ErrInvalidInput
	}

	t, err := c.repo.GetRefreshTokenByHash(ctx, auth.HashToken(refresh))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, auth.ErrInvalidToken
		}

		return nil, err
	}

	if t.Revoked {
		return nil, auth.ErrTokenRevoked
	}

	if !t.ExpiresAt.After(time.Now()) {
		return nil, auth.ErrTokenExpired
	}

	won, err := c.repo.RevokeRefreshToken(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	// Another request rotated this token first.
	if !won {
		zap.L().Info(
			"concurrent refresh rotation lost",
			zap.String("op", op),
			zap.String("userID", t.UserID.String()),
		)

		return nil, auth.ErrTokenRevoked
	}

	if err = c.repo.TouchRefreshToken(ctx, t.ID, time.Now()); err != nil {
		zap.L().Warn("failed to update last_used_at", zap.String("op", op), zap.Error(err))
	}

	u, err := c.repo.GetUserByID(ctx, t.UserID)
	if err != nil {
		return nil, err
	}

	return c.GenPair(ctx, u.ID, u.Email)
}

func (c *Controller) GetUserRefreshTokens(ctx context.Context, uid uuid.UUID) ([]*md.RefreshToken, error) {
	const op = "token.GetUserRefreshTokens.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.repo.GetUserRefreshTokens(ctx, uid)
}

// Cleanup sweeps expired sessions, refresh tokens and link tokens. It is
// invoked externally; the core owns no timers.
func (c *Controller) Cleanup(ctx context.Context) (*dto.CleanupResponse, error) {
	const op = "token.Cleanup.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	sessions, err := c.repo.DeleteExpiredSessions(ctx)
	if err != nil {
		return nil, err
	}

	tokens, err := c.repo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		return nil, err
	}

	links, err := c.repo.DeleteExpiredLinkTokens(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.CleanupResponse{
		Sessions:      sessions,
		RefreshTokens: tokens,
		LinkTokens:    links,
	}, nil
}
