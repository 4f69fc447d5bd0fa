// Package keys wraps secp256k1 key generation, signing, and verification
// shared by claims, transactions, and block headers (spec §3, §6). It is
// grounded on the original vrrb_core/src/keypair.rs, translated to Go's
// crypto/ecdsa atop github.com/decred/dcrd/dcrec/secp256k1/v4, a direct
// teacher dependency.
package keys

import (
	stdecdsa "crypto/ecdsa"
	"crypto/sha256"
	"fmt"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/vrrb-chain/vrrb-core/primitives"
)

// KeyPair holds a secp256k1 private/public key pair used to sign claims,
// transactions, and block headers.
type KeyPair struct {
	Private *secp256k1.PrivateKey
	Public  *secp256k1.PublicKey
}

// Generate creates a fresh secp256k1 key pair.
func Generate() (*KeyPair, error) {
	sk, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("keys: generate: %w", err)
	}
	return &KeyPair{Private: sk, Public: sk.PubKey()}, nil
}

// FromSecretBytes rebuilds a KeyPair from a 32-byte secret, as persisted in
// the hex-encoded keypair file (spec §6).
func FromSecretBytes(secret []byte) (*KeyPair, error) {
	if len(secret) != 32 {
		return nil, fmt.Errorf("keys: secret must be 32 bytes, got %d", len(secret))
	}
	sk := secp256k1.PrivKeyFromBytes(secret)
	return &KeyPair{Private: sk, Public: sk.PubKey()}, nil
}

// SecretBytes returns the 32-byte scalar backing the private key, as
// persisted hex-encoded in the keypair file (spec §6).
func (kp *KeyPair) SecretBytes() []byte {
	b := kp.Private.Serialize()
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// SerializedPublic returns the 33-byte compressed public key.
func (kp *KeyPair) SerializedPublic() primitives.PublicKey {
	return primitives.PublicKey(kp.Public.SerializeCompressed())
}

// Address derives the 20-byte address for this key pair: the low 20 bytes
// of SHA-256(compressed pubkey).
func (kp *KeyPair) Address() primitives.Address {
	return AddressFromPublicKey(kp.SerializedPublic())
}

// AddressFromPublicKey derives an address from a serialized public key.
func AddressFromPublicKey(pub primitives.PublicKey) primitives.Address {
	h := sha256.Sum256(pub)
	return primitives.BytesToAddress(h[:])
}

// Sign signs the SHA-256 digest of payload with ECDSA over secp256k1,
// matching spec §6's transaction/claim signature rule.
func (kp *KeyPair) Sign(payload []byte) ([]byte, error) {
	digest := sha256.Sum256(payload)
	sig := ecdsa.Sign(kp.Private, digest[:])
	return sig.Serialize(), nil
}

// Verify checks an ECDSA signature over SHA-256(payload) against a
// serialized compressed public key.
func Verify(pub primitives.PublicKey, payload, sig []byte) error {
	pk, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return fmt.Errorf("keys: invalid public key: %w", err)
	}

	signature, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return fmt.Errorf("keys: invalid signature encoding: %w", err)
	}

	digest := sha256.Sum256(payload)
	if !signature.Verify(digest[:], pk) {
		return fmt.Errorf("keys: signature verification failed")
	}
	return nil
}

// ToStdPrivateKey converts to the stdlib crypto/ecdsa representation, used
// where a dependency (e.g. the VRF package) expects *ecdsa.PrivateKey.
func (kp *KeyPair) ToStdPrivateKey() *stdecdsa.PrivateKey {
	return kp.Private.ToECDSA()
}

// ToStdPublicKey converts to the stdlib crypto/ecdsa representation.
func (kp *KeyPair) ToStdPublicKey() *stdecdsa.PublicKey {
	return kp.Public.ToECDSA()
}
