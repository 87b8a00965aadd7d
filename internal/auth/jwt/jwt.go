package jwt

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"time"

	"github.com/JMURv/authcore/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Port interface {
	NewAccess(ctx context.Context, uid uuid.UUID, email string) (string, error)
	VerifyAccess(ctx context.Context, tokenStr string) (Claims, error)
}

// Core signs and verifies access tokens. ES256 is the single permitted
// algorithm; anything else is rejected before any cryptographic operation,
// at sign time via the key check and at verify time via the keyfunc.
type Core struct {
	key      *ecdsa.PrivateKey
	issuer   string
	audience string
	ttl      time.Duration
}

type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func New(conf config.Config) (*Core, error) {
	key, err := jwt.ParseECPrivateKeyFromPEM([]byte(conf.Auth.PrivateKeyPEM))
	if err != nil {
		return nil, err
	}

	if key.Curve != elliptic.P256() {
		return nil, ErrInvalidKey
	}

	return &Core{
		key:      key,
		issuer:   conf.Auth.Issuer,
		audience: conf.Auth.Audience,
		ttl:      config.AccessTokenDuration,
	}, nil
}

func Must(conf config.Config) *Core {
	c, err := New(conf)
	if err != nil {
		zap.L().Fatal("failed to init token signer", zap.Error(err))
	}
	return c
}

func (c *Core) NewAccess(ctx context.Context, uid uuid.UUID, email string) (string, error) {
	const op = "auth.NewAccess.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	if c.issuer != "" {
		claims.Issuer = c.issuer
	}
	if c.audience != "" {
		claims.Audience = jwt.ClaimStrings{c.audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(c.key)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.String("op", op),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) VerifyAccess(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.VerifyAccess.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}
	if c.audience != "" {
		opts = append(opts, jwt.WithAudience(c.audience))
	}

	claims := Claims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodES256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return &c.key.PublicKey, nil
		},
		opts...,
	)
	if err != nil {
		zap.L().Debug(
			"failed to verify access token",
			zap.String("op", op),
			zap.Error(err),
		)

		return claims, ErrInvalidToken
	}

	if !token.Valid {
		return claims, ErrInvalidToken
	}

	return claims, nil
}
