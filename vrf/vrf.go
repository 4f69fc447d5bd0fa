// Package vrf implements the deterministic, publicly verifiable pseudorandom
// stream described in spec §4.A, grounded on the teacher's own VRF
// dependency (github.com/vechain/go-ecvrf) and on the original
// vrrb_vrf/src/vvrf.rs, which wraps the same secp256k1-sha256-tai VRF suite
// from the `vrf` Rust crate.
package vrf

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	ecvrf "github.com/vechain/go-ecvrf"
)

// ProofSize is the length, in bytes, of a secp256k1-sha256-tai VRF proof:
// a compressed curve point (33) plus a challenge (16) plus a scalar (32).
const ProofSize = 81

// BetaSize is the length of the VRF output hash.
const BetaSize = 32

// Kind enumerates the VRF error kinds from spec §4.A / §7.
type Kind uint8

const (
	ErrInvalidProof Kind = iota
	ErrInvalidPublicKey
	ErrInvalidMessage
)

// Error reports a VRF failure kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrInvalidPublicKey:
		return fmt.Sprintf("vrf: invalid public key: %v", e.Err)
	case ErrInvalidMessage:
		return fmt.Sprintf("vrf: invalid message: %v", e.Err)
	default:
		return fmt.Sprintf("vrf: invalid proof: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Output is the pair (proof, beta) produced by Prove; RNGFromBeta derives
// the rng from Beta.
type Output struct {
	Proof [ProofSize]byte
	Beta  [BetaSize]byte
}

// Prove computes (proof, beta) over message m under secret key sk. It is
// infallible for a valid secp256k1 private key, matching spec §4.A.
func Prove(sk *ecdsa.PrivateKey, m []byte) (Output, error) {
	beta, pi, err := ecvrf.Secp256k1Sha256Tai.Prove(sk, m)
	if err != nil {
		return Output{}, &Error{Kind: ErrInvalidMessage, Err: err}
	}

	var out Output
	if len(pi) != ProofSize {
		return Output{}, &Error{Kind: ErrInvalidProof, Err: fmt.Errorf("unexpected proof length %d", len(pi))}
	}
	copy(out.Proof[:], pi)
	copy(out.Beta[:], beta)
	return out, nil
}

// Verify recomputes beta from (pk, m, proof) and returns it if the proof is
// valid, recreating the InvalidProof/InvalidPublicKey/InvalidMessage
// taxonomy from spec §4.A.
func Verify(pk *ecdsa.PublicKey, proof [ProofSize]byte, m []byte) ([BetaSize]byte, error) {
	if pk == nil {
		return [BetaSize]byte{}, &Error{Kind: ErrInvalidPublicKey, Err: fmt.Errorf("nil public key")}
	}

	beta, err := ecvrf.Secp256k1Sha256Tai.Verify(pk, m, proof[:])
	if err != nil {
		return [BetaSize]byte{}, &Error{Kind: ErrInvalidProof, Err: err}
	}

	var out [BetaSize]byte
	copy(out[:], beta)
	return out, nil
}

// PublicKeyFromPrivate derives the secp256k1 public key for sk, using the
// same curve (S256) the rest of the claim/block/transaction signing
// machinery uses (keys package).
func PublicKeyFromPrivate(sk *ecdsa.PrivateKey) *ecdsa.PublicKey {
	return &sk.PublicKey
}

// GenerateKey creates a new secp256k1 key pair suitable for VRF proving.
func GenerateKey() (*ecdsa.PrivateKey, error) {
	return crypto.GenerateKey()
}
