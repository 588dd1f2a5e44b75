package domain

import "strings"

// TLD is the service's own top-level label.
const TLD = "dot"

const tldSuffix = "." + TLD

// MaxRegistrableLength bounds a registrable name including its ".dot"
// suffix, exclusive.
const MaxRegistrableLength = 64

// IsValidRegistrableName reports whether raw, suffixed with the service TLD
// when it is not already, is a registrable single-label name.
func IsValidRegistrableName(raw string) bool {
	return CheckRegistrableName(raw) == nil
}

// CheckRegistrableName is IsValidRegistrableName with a reason.
//
// The length bound applies to the suffixed name and is exclusive on both ends.
func CheckRegistrableName(raw string) error {
	name := raw
	if !strings.HasSuffix(raw, tldSuffix) {
		name = raw + tldSuffix
	}
	if len(name) <= 3 || len(name) >= MaxRegistrableLength {
		return nameError("PNS-DOM-020", ReasonLength, raw)
	}
	return Check(name, Options{NoSubdomains: true})
}

// SuffixTLD returns label with exactly one trailing ".dot". The first
// ".dot" occurrence is removed before appending.
func SuffixTLD(label string) string {
	return RemoveTLD(label) + tldSuffix
}

// TrimTLD removes a trailing ".dot" from name, if present. Unlike RemoveTLD
// it never touches ".dot" inside a label, so "a.dotty" is returned unchanged.
func TrimTLD(name string) string {
	return strings.TrimSuffix(name, tldSuffix)
}

// RemoveTLD removes the first ".dot" occurrence from name.
func RemoveTLD(name string) string {
	return strings.Replace(name, tldSuffix, "", 1)
}
