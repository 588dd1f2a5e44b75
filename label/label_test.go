package label

import (
	"crypto/sha256"
	"strings"
	"testing"

	"github.com/hzy1919/pns-sdk/compliance"
	"github.com/hzy1919/pns-sdk/hasher"
	"github.com/hzy1919/pns-sdk/namehash"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, l := range []string{"alice", "eth", "", "xn--bcher-kva"} {
		lh, ok := namehash.LabelHashOf(l)
		if !ok {
			t.Fatalf("LabelHashOf(%q) not ok", l)
		}
		enc := Encode(lh)
		if len(enc) != EncodedLen || !IsEncoded(enc) {
			t.Fatalf("Encode(%q) = %q, not a bracketed label", l, enc)
		}
		got, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(%q): %v", enc, err)
		}
		if "0x"+got != lh.Hex() {
			t.Fatalf("round trip mismatch: got %s want %s", got, lh.Hex()[2:])
		}
	}
}

func TestDecode_FormatErrors(t *testing.T) {
	hex64 := strings.Repeat("ab", 32)
	cases := []struct {
		name   string
		token  string
		ruleID string
	}{
		{"63 inner", "[" + hex64[:63] + "]", "PNS-LABEL-002"},
		{"65 inner", "[" + hex64 + "a]", "PNS-LABEL-002"},
		{"missing open", "x" + hex64 + "]", "PNS-LABEL-001"},
		{"missing close", "[" + hex64 + "x", "PNS-LABEL-001"},
		{"no brackets", hex64, "PNS-LABEL-001"},
		{"empty", "", "PNS-LABEL-001"},
		{"non hex", "[" + strings.Repeat("zz", 32) + "]", "PNS-LABEL-003"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.token)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !IsFormatError(err) {
				t.Fatalf("expected FormatError, got %v", err)
			}
			if got := RuleID(err); got != tc.ruleID {
				t.Fatalf("RuleID = %q, want %q", got, tc.ruleID)
			}
		})
	}
}

func TestDecode_LegacyAcceptsNonHex(t *testing.T) {
	token := "[" + strings.Repeat("zz", 32) + "]"
	got, err := DecodeWithOptions(token, Options{Mode: compliance.Legacy})
	if err != nil {
		t.Fatalf("legacy decode: %v", err)
	}
	if got != strings.Repeat("zz", 32) {
		t.Fatalf("legacy decode returned %q", got)
	}
	// Shape is still enforced in legacy mode.
	if _, err := DecodeWithOptions("[ab]", Options{Mode: compliance.Legacy}); !IsFormatError(err) {
		t.Fatalf("legacy decode must still reject bad length, got %v", err)
	}
}

func TestDecode_PreservesCase(t *testing.T) {
	inner := strings.Repeat("AB", 32)
	got, err := Decode("[" + inner + "]")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != inner {
		t.Fatalf("Decode must return inner characters unchanged, got %q", got)
	}
}

func TestHash(t *testing.T) {
	if _, ok, err := Hash(namehash.RootLabel); ok || err != nil {
		t.Fatalf("Hash(root) = ok %v err %v, want sentinel", ok, err)
	}

	want, _ := namehash.LabelHashOf("alice")
	got, ok, err := Hash("alice")
	if err != nil || !ok || got != want {
		t.Fatalf("Hash(alice) = %s %v %v", got, ok, err)
	}

	// A bracketed label is its own hash.
	got, ok, err = Hash(Encode(want))
	if err != nil || !ok || got != want {
		t.Fatalf("Hash(encoded) = %s %v %v", got, ok, err)
	}

	if _, _, err := Hash("[" + strings.Repeat("g", 64) + "]"); !IsFormatError(err) {
		t.Fatalf("Hash(bad encoded) err = %v, want FormatError", err)
	}
}

func TestHashWith_UsesEngine(t *testing.T) {
	e := namehash.Engine{Hasher: hasher.Func(sha256.Sum256)}
	got, ok, err := HashWith(e, "alice")
	if err != nil || !ok {
		t.Fatalf("HashWith(alice) ok=%v err=%v", ok, err)
	}
	if want := namehash.LabelHash(sha256.Sum256([]byte("alice"))); got != want {
		t.Fatalf("HashWith(alice) = %s, want %s", got, want)
	}

	// Bracketed labels are decoded, never hashed, whatever the engine.
	kec, _ := namehash.LabelHashOf("alice")
	if got, _, _ := HashWith(e, Encode(kec)); got != kec {
		t.Fatalf("HashWith(encoded) = %s, want %s", got, kec)
	}
}

func TestSplitFirst(t *testing.T) {
	if got := First("sub.alice.dot"); got != "sub" {
		t.Fatalf("First = %q", got)
	}
	if got := First("alice"); got != "alice" {
		t.Fatalf("First = %q", got)
	}
	if got := Split("a.b.dot"); len(got) != 3 || got[2] != "dot" {
		t.Fatalf("Split = %v", got)
	}
}
