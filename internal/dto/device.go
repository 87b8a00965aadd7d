package dto

import (
	md "github.com/JMURv/authcore/internal/models"
	"github.com/google/uuid"
)

// DeviceRequest carries per-request client info captured by middleware.
type DeviceRequest struct {
	IP string `json:"ip"`
	UA string `json:"ua"`
}

type RegisterDeviceRequest struct {
	DeviceID string `json:"deviceId" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=web3 ios android"`

	// Wallet address for web3, base64 public key otherwise.
	PublicKey    string `json:"publicKey" validate:"required"`
	KeyAlgorithm string `json:"keyAlgorithm"`

	// Proof of key possession: signed challenge for web3,
	// attestation token for mobile platforms.
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Assertion string `json:"assertion"`

	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`

	// AuthUserID is resolved from the session cookie by the handler,
	// never from the body. Non-nil binds the device to that account.
	AuthUserID uuid.UUID `json:"-"`
}

type VerifyDeviceRequest struct {
	DeviceID  string `json:"deviceId" validate:"required"`
	Platform  string `json:"platform" validate:"required,oneof=web3 ios android"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Assertion string `json:"assertion"`
}

type DeviceAuthResponse struct {
	User      *md.PublicUser `json:"user"`
	Device    *md.Device     `json:"device"`
	SessionID string         `json:"sessionId"`
}
