package deviceauth

import (
	"crypto/ecdsa"
	"os"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	VerdictDeviceIntegrity  = "MEETS_DEVICE_INTEGRITY"
	VerdictStrongIntegrity  = "MEETS_STRONG_INTEGRITY"
	VerdictBasicIntegrity   = "MEETS_BASIC_INTEGRITY"
	VerdictVirtualIntegrity = "MEETS_VIRTUAL_INTEGRITY"
)

type RequestDetails struct {
	RequestPackageName string `json:"requestPackageName"`
	Nonce              string `json:"nonce"`
	TimestampMillis    int64  `json:"timestampMillis,string"`
}

type DeviceIntegrity struct {
	DeviceRecognitionVerdict []string `json:"deviceRecognitionVerdict"`
}

type AppIntegrity struct {
	AppRecognitionVerdict string `json:"appRecognitionVerdict"`
	PackageName           string `json:"packageName"`
}

type IntegrityClaims struct {
	RequestDetails  *RequestDetails  `json:"requestDetails"`
	DeviceIntegrity *DeviceIntegrity `json:"deviceIntegrity"`
	AppIntegrity    *AppIntegrity    `json:"appIntegrity"`
	jwt.RegisteredClaims
}

// AttestationVerifier checks mobile-platform integrity tokens: a compact JWS
// signed with one of the platform's published keys, selected by key id.
type AttestationVerifier struct {
	keys    map[string]*ecdsa.PublicKey
	lenient bool
}

func NewAttestationVerifier(keys map[string]*ecdsa.PublicKey, lenient bool) *AttestationVerifier {
	return &AttestationVerifier{keys: keys, lenient: lenient}
}

// LoadKeySet reads a JSON file mapping key id to PEM-encoded ECDSA public key.
func LoadKeySet(path string) (map[string]*ecdsa.PublicKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	pems := map[string]string{}
	if err = json.Unmarshal(raw, &pems); err != nil {
		return nil, err
	}

	keys := make(map[string]*ecdsa.PublicKey, len(pems))
	for kid, pemStr := range pems {
		key, err := jwt.ParseECPublicKeyFromPEM([]byte(pemStr))
		if err != nil {
			return nil, err
		}
		keys[kid] = key
	}

	return keys, nil
}

// Verify parses and validates an attestation token, returning its claims.
// The verdict set must contain at least one device-level value; basic-only
// never passes and unrecognized verdicts are rejected regardless of the
// lenient flag.
func (v *AttestationVerifier) Verify(tokenStr string) (*IntegrityClaims, error) {
	claims := &IntegrityClaims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodES256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			kid, ok := token.Header["kid"].(string)
			if !ok {
				return nil, ErrUnknownKeyID
			}

			key, ok := v.keys[kid]
			if !ok {
				return nil, ErrUnknownKeyID
			}

			return key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}),
	)
	if err != nil {
		zap.L().Debug("attestation token rejected", zap.Error(err))
		return nil, ErrMalformedAttestation
	}

	if !token.Valid {
		return nil, ErrMalformedAttestation
	}

	if claims.RequestDetails == nil || claims.DeviceIntegrity == nil {
		return nil, ErrMissingClaims
	}

	if err = v.checkVerdicts(claims.DeviceIntegrity.DeviceRecognitionVerdict); err != nil {
		return nil, err
	}

	return claims, nil
}

func (v *AttestationVerifier) checkVerdicts(verdicts []string) error {
	ok := false
	for _, verdict := range verdicts {
		switch verdict {
		case VerdictDeviceIntegrity, VerdictStrongIntegrity:
			ok = true
		case VerdictVirtualIntegrity:
			// Emulator-grade, acceptable only when configured lenient.
			if v.lenient {
				ok = true
			}
		case VerdictBasicIntegrity:
			// Recognized but never sufficient on its own.
		default:
			return ErrUnknownVerdict
		}
	}

	if !ok {
		return ErrInsufficientIntegrity
	}

	return nil
}
