package ctrl

import (
	"context"
	"time"

	"github.com/JMURv/authcore/internal/auth"
	"github.com/JMURv/authcore/internal/config"
	"github.com/JMURv/authcore/internal/dto"
	md "github.com/JMURv/authcore/internal/models"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type sessionRepo interface {
	CreateSession(ctx context.Context, s *md.Session) error
	GetSession(ctx context.Context, id string) (*md.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByUser(ctx context.Context, uid uuid.UUID) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// createSession issues a high-entropy opaque token and persists it. The
// token doubles as the session id.
func (c *Controller) createSession(ctx context.Context, uid uuid.UUID, d *dto.DeviceRequest) (string, error) {
	const op = "session.createSession.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	token, err := auth.NewOpaqueToken()
	if err != nil {
		return "", err
	}

	s := &md.Session{
		ID:        token,
		UserID:    uid,
		ExpiresAt: time.Now().Add(config.SessionDuration),
	}
	if d != nil {
		s.IP = d.IP
		s.UA = d.UA
	}

	if err = c.repo.CreateSession(ctx, s); err != nil {
		return "", err
	}

	return token, nil
}

// ValidateSession resolves a session token to its owning user's public
// projection. Absence, expiry and storage failures all collapse into
// {user: null}: a broken store must never validate anyone.
func (c *Controller) ValidateSession(ctx context.Context, token string) *dto.SessionResponse {
	const op = "session.ValidateSession.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	none := &dto.SessionResponse{User: nil}
	if token == "" {
		return none
	}

	s, err := c.repo.GetSession(ctx, token)
	if err != nil {
		zap.L().Debug("session lookup failed", zap.String("op", op), zap.Error(err))
		return none
	}

	// Expiry is checked against wall-clock time on every call. Expired
	// rows stay put until the cleanup sweep.
	if !s.ExpiresAt.After(time.Now()) {
		return none
	}

	u, err := c.repo.GetUserByID(ctx, s.UserID)
	if err != nil {
		zap.L().Debug("session owner lookup failed", zap.String("op", op), zap.Error(err))
		return none
	}

	return &dto.SessionResponse{User: u.Public()}
}

func (c *Controller) Logout(ctx context.Context, sessionID string) error {
	const op = "session.Logout.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if sessionID == "" {
		return ErrInvalidInput
	}

	return c.repo.DeleteSession(ctx, sessionID)
}

// revokeAllCredentials drops every session and refresh token of a user.
// Used for credential-compromise containment after password reset.
func (c *Controller) revokeAllCredentials(ctx context.Context, uid uuid.UUID) error {
	if err := c.repo.DeleteSessionsByUser(ctx, uid); err != nil {
		return err
	}

	return c.repo.RevokeAllRefreshTokens(ctx, uid)
}
