package ctrl

import (
	"context"
	"errors"
	"strings"

	"github.com/JMURv/authcore/internal/auth"
	"github.com/JMURv/authcore/internal/config"
	"github.com/JMURv/authcore/internal/dto"
	md "github.com/JMURv/authcore/internal/models"
	"github.com/JMURv/authcore/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

type userRepo interface {
	GetUserByID(ctx context.Context, uid uuid.UUID) (*md.User, error)
	GetUserByEmail(ctx context.Context, email string) (*md.User, error)
	CreateUser(ctx context.Context, u *md.User) (uuid.UUID, error)
	UpdateUserProfile(ctx context.Context, uid uuid.UUID, name, avatar string) error
	SetUserPassword(ctx context.Context, uid uuid.UUID, hash string) error
	SetEmailVerified(ctx context.Context, uid uuid.UUID) error
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (c *Controller) Register(
	ctx context.Context,
	d *dto.DeviceRequest,
	req *dto.RegisterRequest,
) (*dto.RegisterResponse, error) {
	const op = "user.Register.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if len(req.Password) < config.MinPasswordLen {
		return nil, auth.ErrWeakPassword
	}

	hash, err := c.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &md.User{
		Email:    normalizeEmail(req.Email),
		Password: hash,
		Name:     req.Name,
	}

	uid, err := c.repo.CreateUser(ctx, u)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}

		return nil, err
	}
	u.ID = uid

	sessionID, err := c.createSession(ctx, uid, d)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		User:      u.Public(),
		SessionID: sessionID,
	}, nil
}

func (c *Controller) Authenticate(
	ctx context.Context,
	d *dto.DeviceRequest,
	req *dto.EmailAndPasswordRequest,
) (*dto.LoginResponse, error) {
	const op = "user.Authenticate.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.authenticatePassword(ctx, req)
	if err != nil {
		return nil, err
	}

	sessionID, err := c.createSession(ctx, u.ID, d)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{SessionID: sessionID}, nil
}

// authenticatePassword resolves email+password to a user. Missing account
// and wrong password are indistinguishable to the caller.
func (c *Controller) authenticatePassword(
	ctx context.Context,
	req *dto.EmailAndPasswordRequest,
) (*md.User, error) {
	u, err := c.repo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, auth.ErrInvalidCredentials
		}

		return nil, err
	}

	// OAuth-only and passwordless accounts carry no hash at all.
	if u.Password == "" {
		return nil, auth.ErrInvalidCredentials
	}

	if err = c.hasher.ComparePasswords([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return u, nil
}
