package primitives

import "crypto/sha256"

func sha256Sum(data []byte) Bytes32 {
	return sha256.Sum256(data)
}

// Sha256 hashes the concatenation of the given byte slices, matching the
// canonical-payload hashing rule used throughout the block and transaction
// formats (spec §6): fields are concatenated in a fixed order, then hashed
// with SHA-256 as a single pass.
func Sha256(parts ...[]byte) Bytes32 {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	var out Bytes32
	copy(out[:], h.Sum(nil))
	return out
}

// Uint64Bytes renders v as big-endian bytes, the fixed-width integer
// encoding used by every canonical payload in spec §6.
func Uint64Bytes(v uint64) []byte {
	b := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

// Int64Bytes renders v's two's-complement bit pattern as big-endian bytes.
func Int64Bytes(v int64) []byte { return Uint64Bytes(uint64(v)) }
