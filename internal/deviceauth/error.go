package deviceauth

import "errors"

var (
	// ErrSignatureRecovery covers malformed signatures and failed public-key
	// recovery. Distinct from ErrSignatureMismatch: recovery worked but the
	// address does not belong to the claimed signer.
	ErrSignatureRecovery = errors.New("signature recovery failed")
	ErrSignatureMismatch = errors.New("recovered address does not match")

	ErrMalformedAttestation  = errors.New("malformed attestation token")
	ErrUnknownKeyID          = errors.New("unknown attestation key id")
	ErrUnexpectedSignMethod  = errors.New("unexpected attestation signing method")
	ErrMissingClaims         = errors.New("attestation token misses required claims")
	ErrUnknownVerdict        = errors.New("unrecognized integrity verdict")
	ErrInsufficientIntegrity = errors.New("device integrity verdict is insufficient")
)
