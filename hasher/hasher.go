// Package hasher provides the 32-byte digest primitive used to derive name
// identifiers.
//
// The registry contracts hash with the original (pre-NIST) Keccak-256, not
// SHA3-256. The two differ only in padding, so mixing them up silently
// produces identifiers for a different namespace.
package hasher

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Size is the digest length in bytes.
const Size = 32

// Hasher computes a fixed-width digest of an arbitrary byte string.
//
// Implementations must be deterministic and safe for concurrent use.
type Hasher interface {
	Sum(data []byte) [Size]byte
}

// Func adapts a plain function to a Hasher.
type Func func(data []byte) [Size]byte

func (f Func) Sum(data []byte) [Size]byte { return f(data) }

// Keccak256 is the legacy Keccak-256 hash.
type Keccak256 struct{}

func (Keccak256) Sum(data []byte) [Size]byte {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(data)
	var out [Size]byte
	h.Sum(out[:0])
	return out
}

// Default is the hasher used when callers do not inject one.
var Default Hasher = Keccak256{}

// Sum returns Keccak-256(data).
func Sum(data []byte) [Size]byte {
	return Default.Sum(data)
}

// Hex returns "0x" followed by the lowercase hex Keccak-256 of data.
func Hex(data []byte) string {
	sum := Sum(data)
	return "0x" + hex.EncodeToString(sum[:])
}
