package ctrl

import (
	"context"
	"database/sql"
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

type linkTokenRepo interface {
	CreateLinkToken(ctx context.Context, t *md.LinkToken) error
	// ConsumeLinkToken deletes the row and returns it. Under concurrent
	// consumption exactly one caller gets the row, the rest get
	// repo.ErrNotFound.
	ConsumeLinkToken(ctx context.Context, token string) (*md.LinkToken, error)
	DeleteLinkTokensByUser(ctx context.Context, uid uuid.UUID, purpose md.TokenPurpose) error
	DeleteExpiredLinkTokens(ctx context.Context) (int64, error)
}

func linkTokenTTL(purpose md.TokenPurpose) time.Duration {
	switch purpose {
	case md.PurposePasswordReset:
		return config.ResetTokenDuration
	case md.PurposeVerifyEmail:
		return config.VerifyTokenDuration
	default:
		return config.MagicLinkDuration
	}
}

// requestLinkToken issues a single-use token for an account, if it exists.
// The response is byte-identical either way; only the delivery side effect
// distinguishes the cases.
func (c *Controller) requestLinkToken(
	ctx context.Context,
	req *dto.EmailRequest,
	purpose md.TokenPurpose,
) (*dto.RequestLinkResponse, error) {
	const op = "magiclink.requestLinkToken.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &dto.RequestLinkResponse{Success: true, Email: req.Email}

	u, err := c.repo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			zap.L().Error("link token user lookup failed", zap.String("op", op), zap.Error(err))
		}

		return res, nil
	}

	// At most one live token per user and purpose.
	if err = c.repo.DeleteLinkTokensByUser(ctx, u.ID, purpose); err != nil {
		zap.L().Error("failed to drop stale link tokens", zap.String("op", op), zap.Error(err))
		return res, nil
	}

	value, err := auth.NewOpaqueToken()
	if err != nil {
		return res, nil
	}

	t := &md.LinkToken{
		Token:     value,
		Purpose:   purpose,
		UserID:    u.ID,
		Email:     u.Email,
		ExpiresAt: time.Now().Add(linkTokenTTL(purpose)),
	}
	if req.ReturnTo != "" {
		t.ReturnTo = sql.NullString{String: req.ReturnTo, Valid: true}
	}

	if err = c.repo.CreateLinkToken(ctx, t); err != nil {
		zap.L().Error("failed to store link token", zap.String("op", op), zap.Error(err))
		return res, nil
	}

	if err = c.sender.SendLinkToken(ctx, t); err != nil {
		zap.L().Error("failed to deliver link token", zap.String("op", op), zap.Error(err))
	}

	return res, nil
}

func (c *Controller) RequestMagicLink(ctx context.Context, req *dto.EmailRequest) (*dto.RequestLinkResponse, error) {
	return c.requestLinkToken(ctx, req, md.PurposeMagicLink)
}

func (c *Controller) RequestPasswordReset(ctx context.Context, req *dto.EmailRequest) (*dto.RequestLinkResponse, error) {
	return c.requestLinkToken(ctx, req, md.PurposePasswordReset)
}

// consumeLinkToken enforces single use: the delete happens before any
// downstream step, so a later failure can never resurrect the token.
func (c *Controller) consumeLinkToken(
	ctx context.Context,
	token string,
	purpose md.TokenPurpose,
) (*md.LinkToken, *md.User, error) {
	if token == "" {
		return nil, nil, ErrInvalidInput
	}

	t, err := c.repo.ConsumeLinkToken(ctx, token)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrInvalidOrExpired
		}

		return nil, nil, err
	}

	if t.Purpose != purpose {
		return nil, nil, ErrInvalidOrExpired
	}

	if !t.ExpiresAt.After(time.Now()) {
		return nil, nil, auth.ErrTokenExpired
	}

	u, err := c.repo.GetUserByID(ctx, t.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrNotFound
		}

		return nil, nil, err
	}

	return t, u, nil
}

// ConsumeMagicLink trades a magic-link token for a fresh session. Token
// deletion, the email-verified update and session creation are separate
// storage calls, not one transaction; a crash in between consumes the
// token without a session, which fails safe.
func (c *Controller) ConsumeMagicLink(
	ctx context.Context,
	token string,
	d *dto.DeviceRequest,
) (*dto.ConsumeLinkResult, error) {
	const op = "magiclink.ConsumeMagicLink.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	t, u, err := c.consumeLinkToken(ctx, token, md.PurposeMagicLink)
	if err != nil {
		return nil, err
	}

	// Possession of the emailed link proves the address.
	if !u.IsEmailVerified {
		if err = c.repo.SetEmailVerified(ctx, u.ID); err != nil {
			zap.L().Error("failed to mark email verified", zap.String("op", op), zap.Error(err))
		} else {
			u.IsEmailVerified = true
		}
	}

	sessionID, err := c.createSession(ctx, u.ID, d)
	if err != nil {
		return nil, err
	}

	return &dto.ConsumeLinkResult{
		User:      u.Public(),
		SessionID: sessionID,
		ReturnTo:  t.ReturnTo.String,
	}, nil
}

// ResetPassword consumes a reset token, installs the new hash and revokes
// every session and refresh token the user had.
func (c *Controller) ResetPassword(ctx context.Context, token, password string) error {
	const op = "magiclink.ResetPassword.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if len(password) < config.MinPasswordLen {
		return auth.ErrWeakPassword
	}

	_, u, err := c.consumeLinkToken(ctx, token, md.PurposePasswordReset)
	if err != nil {
		return err
	}

	hash, err := c.hasher.HashPassword(password)
	if err != nil {
		return err
	}

	if err = c.repo.SetUserPassword(ctx, u.ID, hash); err != nil {
		return err
	}

	return c.revokeAllCredentials(ctx, u.ID)
}

func (c *Controller) VerifyEmail(ctx context.Context, token string) (string, error) {
	const op = "magiclink.VerifyEmail.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	t, u, err := c.consumeLinkToken(ctx, token, md.PurposeVerifyEmail)
	if err != nil {
		return "", err
	}

	if !u.IsEmailVerified {
		if err = c.repo.SetEmailVerified(ctx, u.ID); err != nil {
			return "", err
		}
	}

	return t.ReturnTo.String, nil
}
