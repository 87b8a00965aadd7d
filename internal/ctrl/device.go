package ctrl

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/authcore/internal/deviceauth"
	"github.com/JMURv/authcore/internal/dto"
	md "github.com/JMURv/authcore/internal/models"
	"github.com/JMURv/authcore/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type deviceRepo interface {
	GetDevice(ctx context.Context, platform md.DevicePlatform, deviceID string) (*md.Device, error)
	UpsertDevice(ctx context.Context, d *md.Device) (uuid.UUID, error)
	TouchDevice(ctx context.Context, id uuid.UUID, usedAt time.Time) error
	// ListUserDevices orders by last_used_at DESC with never-used devices
	// last, tie-broken by registered_at DESC.
	ListUserDevices(ctx context.Context, uid uuid.UUID) ([]*md.Device, error)
	RevokeDevice(ctx context.Context, uid, id uuid.UUID) error
}

func keyAlgorithmFor(platform md.DevicePlatform) string {
	if platform == md.PlatformWeb3 {
		return "secp256k1"
	}
	return "es256"
}

// verifyProof runs the platform-selected verification strategy against the
// claimed key material.
func (c *Controller) verifyProof(
	platform md.DevicePlatform,
	publicKey, message, signature, assertion string,
) error {
	switch platform {
	case md.PlatformWeb3:
		return deviceauth.VerifyWalletSignature(publicKey, []byte(message), signature)
	case md.PlatformIOS, md.PlatformAndroid:
		_, err := c.attest.Verify(assertion)
		return err
	default:
		return ErrInvalidInput
	}
}

// RegisterDevice binds a proven device identity to a user and issues a
// session. The proof only vouches for the key, never for ownership of the
// claimed email: existing accounts gain devices through an authenticated
// request only, unauthenticated registration may only create a new user.
func (c *Controller) RegisterDevice(
	ctx context.Context,
	d *dto.DeviceRequest,
	req *dto.RegisterDeviceRequest,
) (*dto.DeviceAuthResponse, error) {
	const op = "device.RegisterDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	platform := md.DevicePlatform(req.Platform)
	switch platform {
	case md.PlatformWeb3, md.PlatformIOS, md.PlatformAndroid:
	default:
		return nil, ErrInvalidInput
	}

	// A revoked row is dead for good; re-registration is rejected before
	// the proof is examined, same as VerifyDevice.
	existing, err := c.repo.GetDevice(ctx, platform, req.DeviceID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.Status != md.DeviceActive {
		return nil, ErrDeviceRevoked
	}

	if err = c.verifyProof(platform, req.PublicKey, req.Message, req.Signature, req.Assertion); err != nil {
		return nil, err
	}

	var u *md.User
	if req.AuthUserID != uuid.Nil {
		u, err = c.repo.GetUserByID(ctx, req.AuthUserID)
		if err != nil {
			return nil, err
		}
	} else {
		u, err = c.repo.GetUserByEmail(ctx, normalizeEmail(req.Email))
		if err == nil {
			return nil, ErrAlreadyExists
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}

		u = &md.User{
			Email: normalizeEmail(req.Email),
			Name:  req.Name,
		}

		uid, cerr := c.repo.CreateUser(ctx, u)
		if cerr != nil {
			return nil, cerr
		}
		u.ID = uid
	}

	alg := req.KeyAlgorithm
	if alg == "" {
		alg = keyAlgorithmFor(platform)
	}

	device := &md.Device{
		DeviceID:     req.DeviceID,
		UserID:       u.ID,
		Platform:     platform,
		PublicKey:    req.PublicKey,
		KeyAlgorithm: alg,
		Status:       md.DeviceActive,
	}

	id, err := c.repo.UpsertDevice(ctx, device)
	if err != nil {
		return nil, err
	}
	device.ID = id

	if err = c.repo.TouchDevice(ctx, id, time.Now()); err != nil {
		zap.L().Warn("failed to update device last_used_at", zap.String("op", op), zap.Error(err))
	}

	sessionID, err := c.createSession(ctx, u.ID, d)
	if err != nil {
		return nil, err
	}

	return &dto.DeviceAuthResponse{
		User:      u.Public(),
		Device:    device,
		SessionID: sessionID,
	}, nil
}

// VerifyDevice authenticates a previously registered device. A revoked
// device fails before its proof is even examined.
func (c *Controller) VerifyDevice(
	ctx context.Context,
	d *dto.DeviceRequest,
	req *dto.VerifyDeviceRequest,
) (*dto.DeviceAuthResponse, error) {
	const op = "device.VerifyDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	platform := md.DevicePlatform(req.Platform)
	device, err := c.repo.GetDevice(ctx, platform, req.DeviceID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	if device.Status != md.DeviceActive {
		return nil, ErrDeviceRevoked
	}

	if err = c.verifyProof(platform, device.PublicKey, req.Message, req.Signature, req.Assertion); err != nil {
		return nil, err
	}

	u, err := c.repo.GetUserByID(ctx, device.UserID)
	if err != nil {
		return nil, err
	}

	if err = c.repo.TouchDevice(ctx, device.ID, time.Now()); err != nil {
		zap.L().Warn("failed to update device last_used_at", zap.String("op", op), zap.Error(err))
	}

	sessionID, err := c.createSession(ctx, u.ID, d)
	if err != nil {
		return nil, err
	}

	return &dto.DeviceAuthResponse{
		User:      u.Public(),
		Device:    device,
		SessionID: sessionID,
	}, nil
}

func (c *Controller) ListDevices(ctx context.Context, uid uuid.UUID) ([]*md.Device, error) {
	const op = "device.ListDevices.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.repo.ListUserDevices(ctx, uid)
}

// RevokeDevice is a one-way transition; the row stays for audit.
func (c *Controller) RevokeDevice(ctx context.Context, uid, id uuid.UUID) error {
	const op = "device.RevokeDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.RevokeDevice(ctx, uid, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}

		return err
	}

	return nil
}
