package ctrl

import (
	"context"

	"github.com/JMURv/authcore/internal/auth"
	"github.com/JMURv/authcore/internal/auth/jwt"
	"github.com/JMURv/authcore/internal/deviceauth"
	"github.com/JMURv/authcore/internal/dto"
	md "github.com/JMURv/authcore/internal/models"
	"github.com/JMURv/authcore/internal/oauth"
	"github.com/google/uuid"
)

// AppRepo is the CredentialStore port. Backends translate these calls into
// their own query protocol; the core only sees rows or an error.
type AppRepo interface {
	userRepo
	sessionRepo
	refreshRepo
	linkTokenRepo
	oauthRepo
	deviceRepo
}

type AppCtrl interface {
	Register(ctx context.Context, d *dto.DeviceRequest, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Authenticate(ctx context.Context, d *dto.DeviceRequest, req *dto.EmailAndPasswordRequest) (*dto.LoginResponse, error)
	ValidateSession(ctx context.Context, token string) *dto.SessionResponse
	Logout(ctx context.Context, sessionID string) error

	GenPair(ctx context.Context, uid uuid.UUID, email string) (*dto.TokenPair, error)
	AuthenticateTokens(ctx context.Context, req *dto.EmailAndPasswordRequest) (*dto.TokenPair, error)
	RotateRefresh(ctx context.Context, refresh string) (*dto.TokenPair, error)
	GetUserRefreshTokens(ctx context.Context, uid uuid.UUID) ([]*md.RefreshToken, error)

	RequestMagicLink(ctx context.Context, req *dto.EmailRequest) (*dto.RequestLinkResponse, error)
	ConsumeMagicLink(ctx context.Context, token string, d *dto.DeviceRequest) (*dto.ConsumeLinkResult, error)
	RequestPasswordReset(ctx context.Context, req *dto.EmailRequest) (*dto.RequestLinkResponse, error)
	ResetPassword(ctx context.Context, token, password string) error
	VerifyEmail(ctx context.Context, token string) (string, error)

	BeginOAuth(ctx context.Context, provider string) (*dto.OAuthBegin, error)
	CompleteOAuth(ctx context.Context, d *dto.DeviceRequest, req *dto.OAuthCallbackRequest) (*dto.ConsumeLinkResult, error)

	RegisterDevice(ctx context.Context, d *dto.DeviceRequest, req *dto.RegisterDeviceRequest) (*dto.DeviceAuthResponse, error)
	VerifyDevice(ctx context.Context, d *dto.DeviceRequest, req *dto.VerifyDeviceRequest) (*dto.DeviceAuthResponse, error)
	ListDevices(ctx context.Context, uid uuid.UUID) ([]*md.Device, error)
	RevokeDevice(ctx context.Context, uid, id uuid.UUID) error

	Cleanup(ctx context.Context) (*dto.CleanupResponse, error)
}

// ProviderRegistry resolves a named OAuth provider strategy.
type ProviderRegistry interface {
	Get(name string) (oauth.Strategy, error)
}

// AttestationVerifier validates mobile-platform integrity tokens.
type AttestationVerifier interface {
	Verify(tokenStr string) (*deviceauth.IntegrityClaims, error)
}

// TokenSender delivers one-time link tokens to their owner. The smtp
// package provides the default; callers may inject a callback instead.
type TokenSender interface {
	SendLinkToken(ctx context.Context, t *md.LinkToken) error
}

type Controller struct {
	au        jwt.Port
	repo      AppRepo
	hasher    auth.PasswordHasher
	providers ProviderRegistry
	attest    AttestationVerifier
	sender    TokenSender
}

func New(
	au jwt.Port,
	repo AppRepo,
	hasher auth.PasswordHasher,
	providers ProviderRegistry,
	attest AttestationVerifier,
	sender TokenSender,
) *Controller {
	return &Controller{
		au:        au,
		repo:      repo,
		hasher:    hasher,
		providers: providers,
		attest:    attest,
		sender:    sender,
	}
}
