package vrf

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/chacha20"
)

// RNG is a deterministic pseudorandom stream keyed by a VRF beta value,
// matching spec §4.A: "rng_from(beta) -> PRNG", grounded on the original's
// rand_chacha::ChaCha20Rng::from_seed(hash) and reimplemented here with
// golang.org/x/crypto/chacha20 (a teacher dependency via golang.org/x/crypto).
type RNG struct {
	cipher *chacha20.Cipher
}

// RNGFromBeta seeds a new RNG from a 32-byte VRF output.
func RNGFromBeta(beta [BetaSize]byte) *RNG {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(beta[:], nonce[:])
	if err != nil {
		// beta is always 32 bytes and the nonce is always 12 zero bytes,
		// so construction cannot fail.
		panic(err)
	}
	return &RNG{cipher: c}
}

// fill draws n deterministic keystream bytes from the stream.
func (r *RNG) fill(n int) []byte {
	buf := make([]byte, n)
	r.cipher.XORKeyStream(buf, buf)
	return buf
}

func (r *RNG) Uint8() uint8 { return r.fill(1)[0] }

func (r *RNG) Uint16() uint16 { return binary.BigEndian.Uint16(r.fill(2)) }

func (r *RNG) Uint32() uint32 { return binary.BigEndian.Uint32(r.fill(4)) }

func (r *RNG) Uint64() uint64 { return binary.BigEndian.Uint64(r.fill(8)) }

func (r *RNG) Uint128() *big.Int { return new(big.Int).SetBytes(r.fill(16)) }

// uintInRange performs unbiased rejection sampling: it draws candidates of
// width bytes until one falls within [0, ceil) where ceil is the largest
// multiple of span (hi-lo+1) not exceeding the modulus 2^(8*width), then
// folds it into [lo, hi]. Plain modulo would be biased whenever span does
// not evenly divide the modulus; spec §4.A requires this be avoided.
func (r *RNG) uintInRange(width int, lo, hi uint64) uint64 {
	span := hi - lo + 1
	if span == 0 {
		// full-width range: no rejection needed.
		return lo + r.drawWidth(width)
	}

	modulus := new(big.Int).Lsh(big.NewInt(1), uint(width*8))
	limit := new(big.Int).Sub(modulus, new(big.Int).Mod(modulus, new(big.Int).SetUint64(span)))

	for {
		candidate := new(big.Int).SetUint64(r.drawWidth(width))
		if candidate.Cmp(limit) < 0 {
			return lo + candidate.Uint64()%span
		}
	}
}

func (r *RNG) drawWidth(width int) uint64 {
	switch width {
	case 1:
		return uint64(r.Uint8())
	case 2:
		return uint64(r.Uint16())
	case 4:
		return uint64(r.Uint32())
	default:
		return r.Uint64()
	}
}

func (r *RNG) Uint8InRange(lo, hi uint8) uint8 {
	return uint8(r.uintInRange(1, uint64(lo), uint64(hi)))
}

func (r *RNG) Uint16InRange(lo, hi uint16) uint16 {
	return uint16(r.uintInRange(2, uint64(lo), uint64(hi)))
}

func (r *RNG) Uint32InRange(lo, hi uint32) uint32 {
	return uint32(r.uintInRange(4, uint64(lo), uint64(hi)))
}

func (r *RNG) Uint64InRange(lo, hi uint64) uint64 {
	return r.uintInRange(8, lo, hi)
}

// Uint128InRange performs the same unbiased rejection sampling over the
// full 128-bit width, for callers that need the widest range (spec §4.A
// lists w up to 128).
func (r *RNG) Uint128InRange(lo, hi *big.Int) *big.Int {
	span := new(big.Int).Add(new(big.Int).Sub(hi, lo), big.NewInt(1))
	modulus := new(big.Int).Lsh(big.NewInt(1), 128)
	limit := new(big.Int).Sub(modulus, new(big.Int).Mod(modulus, span))

	for {
		candidate := new(big.Int).SetBytes(r.fill(16))
		if candidate.Cmp(limit) < 0 {
			return new(big.Int).Add(lo, new(big.Int).Mod(candidate, span))
		}
	}
}

// Word draws a single word from the fixed dictionary.
func (r *RNG) Word() string {
	return wordlist[r.Uint32InRange(0, uint32(len(wordlist)-1))]
}

// Words draws n words from the fixed dictionary.
func (r *RNG) Words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = r.Word()
	}
	return out
}

// Phrase joins n words drawn from the fixed dictionary with single spaces,
// matching the original's space-joined phrase sampling.
func (r *RNG) Phrase(n int) string {
	words := r.Words(n)
	out := words[0]
	for _, w := range words[1:] {
		out += " " + w
	}
	return out
}
