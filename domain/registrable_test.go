package domain

import (
	"strings"
	"testing"
)

func TestIsValidRegistrableName(t *testing.T) {
	cases := []struct {
		raw    string
		want   bool
		reason Reason
	}{
		{"alice", true, ""},
		{"alice.dot", true, ""},
		{"ALICE", true, ""},
		// The bound applies to the suffixed name, so short labels pass.
		{"ab", true, ""},
		{"", false, ReasonLabelChars},
		{"sub.alice", false, ReasonSubdomain},
		{"-alice", false, ReasonHyphen},
		{"a_b", false, ReasonLabelChars},
		{strings.Repeat("a", 59), true, ""},
		{strings.Repeat("a", 60), false, ReasonLength},
		{strings.Repeat("a", 60) + ".dot", false, ReasonLength},
	}
	for _, tc := range cases {
		err := CheckRegistrableName(tc.raw)
		if got := IsValidRegistrableName(tc.raw); got != tc.want {
			t.Fatalf("IsValidRegistrableName(%q) = %v, want %v (err=%v)", tc.raw, got, tc.want, err)
		}
		if got := ReasonOf(err); got != tc.reason {
			t.Fatalf("CheckRegistrableName(%q) reason = %q, want %q", tc.raw, got, tc.reason)
		}
	}
}

func TestTLDHelpers(t *testing.T) {
	cases := []struct{ in, suffixed, removed string }{
		{"alice", "alice.dot", "alice"},
		{"alice.dot", "alice.dot", "alice"},
		{"sub.alice.dot", "sub.alice.dot", "sub.alice"},
		{"a.dotty", "aty.dot", "aty"},
	}
	for _, tc := range cases {
		if got := SuffixTLD(tc.in); got != tc.suffixed {
			t.Fatalf("SuffixTLD(%q) = %q, want %q", tc.in, got, tc.suffixed)
		}
		if got := RemoveTLD(tc.in); got != tc.removed {
			t.Fatalf("RemoveTLD(%q) = %q, want %q", tc.in, got, tc.removed)
		}
	}
}

func TestTrimTLD(t *testing.T) {
	cases := map[string]string{
		"alice":         "alice",
		"alice.dot":     "alice",
		"a.dotty":       "a.dotty",
		"dotty.dot.dot": "dotty.dot",
		"dot":           "dot",
	}
	for in, want := range cases {
		if got := TrimTLD(in); got != want {
			t.Fatalf("TrimTLD(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRegistrableLengthBound(t *testing.T) {
	// 59 + len(".dot") = 63 < MaxRegistrableLength; one more is rejected.
	if !IsValidRegistrableName(strings.Repeat("a", MaxRegistrableLength-len(tldSuffix)-1)) {
		t.Fatalf("longest registrable name rejected")
	}
	err := CheckRegistrableName(strings.Repeat("a", MaxRegistrableLength-len(tldSuffix)))
	if ReasonOf(err) != ReasonLength {
		t.Fatalf("got %v, want ReasonLength", err)
	}
}
