package deviceauth

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

const personalMessagePrefix = "\x19Ethereum Signed Message:\n"

func keccak256(chunks ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil)
}

// HashPersonalMessage applies the EIP-191 prefix scheme before hashing:
// keccak256("\x19Ethereum Signed Message:\n" + len(msg) + msg).
func HashPersonalMessage(msg []byte) []byte {
	return keccak256([]byte(personalMessagePrefix), []byte(fmt.Sprintf("%d", len(msg))), msg)
}

// RecoverAddress recovers the signer address from a 65-byte r||s||v
// signature over the EIP-191 hash of msg. v is accepted as {27,28} or {0,1}.
func RecoverAddress(msg []byte, signature string) (string, error) {
	sig, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSignatureRecovery, err)
	}

	if len(sig) != 65 {
		return "", fmt.Errorf("%w: expected 65 bytes, got %d", ErrSignatureRecovery, len(sig))
	}

	v := sig[64]
	if v == 27 || v == 28 {
		v -= 27
	}
	if v > 1 {
		return "", fmt.Errorf("%w: invalid recovery byte %d", ErrSignatureRecovery, sig[64])
	}

	// RecoverCompact wants the recovery flag first: [v+27, r, s].
	compact := make([]byte, 65)
	compact[0] = v + 27
	copy(compact[1:33], sig[:32])
	copy(compact[33:], sig[32:64])

	pub, _, err := ecdsa.RecoverCompact(compact, HashPersonalMessage(msg))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSignatureRecovery, err)
	}

	// Address is the low 20 bytes of keccak256 of the uncompressed public
	// key without its 0x04 format byte.
	sum := keccak256(pub.SerializeUncompressed()[1:])
	return "0x" + hex.EncodeToString(sum[12:]), nil
}

// VerifyWalletSignature checks that signature over msg was produced by the
// holder of address.
func VerifyWalletSignature(address string, msg []byte, signature string) error {
	recovered, err := RecoverAddress(msg, signature)
	if err != nil {
		return err
	}

	if !strings.EqualFold(recovered, address) {
		return ErrSignatureMismatch
	}

	return nil
}
