package hasher

import (
	"encoding/hex"
	"testing"
)

func TestKeccak256_KnownVectors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		// Keccak-256 of the empty string; SHA3-256 would be a7ffc6f8...
		{"", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"eth", "4f5b812789fc606be1b3b16908db13fc7a9adf7ca72641f84d75b47069d3d7f0"},
		{"dot", "ce159cf34380757d1932a8e4a74e85e85957b0a7a52d9c566c0a3c8d6133d0f7"},
	}
	for _, tc := range cases {
		got := Keccak256{}.Sum([]byte(tc.in))
		if hex.EncodeToString(got[:]) != tc.want {
			t.Fatalf("Keccak256(%q) = %x, want %s", tc.in, got, tc.want)
		}
	}
}

func TestHex_Prefixed(t *testing.T) {
	got := Hex([]byte("alice"))
	want := "0x9c0257114eb9399a2985f8e75dad7600c5d89fe3824ffa99ec1c3eb8bf3b0501"
	if got != want {
		t.Fatalf("Hex(alice) = %s, want %s", got, want)
	}
}

func TestFunc_Adapter(t *testing.T) {
	var calls int
	h := Func(func(data []byte) [Size]byte {
		calls++
		var out [Size]byte
		copy(out[:], data)
		return out
	})
	got := h.Sum([]byte{1, 2, 3})
	if calls != 1 || got[0] != 1 || got[2] != 3 || got[3] != 0 {
		t.Fatalf("unexpected Func result %x (calls=%d)", got, calls)
	}
}
