// Package label converts between literal labels and the bracketed
// "[<64 hex>]" placeholder used when a label's preimage is unknown.
package label

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/hzy1919/pns-sdk/compliance"
	"github.com/hzy1919/pns-sdk/namehash"
)

// EncodedLen is the length of a bracketed label: two brackets and 64 hex digits.
const EncodedLen = 66

// Options controls decoding strictness. The zero value is compliance.Strict.
type Options struct {
	Mode compliance.Mode
}

// Encode renders a labelhash in bracketed form.
func Encode(lh namehash.LabelHash) string {
	return "[" + hex.EncodeToString(lh[:]) + "]"
}

// IsEncoded reports whether token has the bracketed shape. It does not
// inspect the characters between the brackets.
func IsEncoded(token string) bool {
	return strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]") && len(token) == EncodedLen
}

// Decode returns the 64 hex characters inside a bracketed label, unchanged.
func Decode(token string) (string, error) {
	return DecodeWithOptions(token, Options{})
}

// DecodeWithOptions is Decode with an explicit compliance mode. Legacy mode
// checks delimiters and length only.
func DecodeWithOptions(token string, opts Options) (string, error) {
	if !strings.HasPrefix(token, "[") || !strings.HasSuffix(token, "]") {
		return "", newError(KindFormat, "PNS-LABEL-001", "expected encoded labelhash in [hash] form")
	}
	if len(token) != EncodedLen {
		return "", newError(KindFormat, "PNS-LABEL-002",
			fmt.Sprintf("encoded labelhash must be %d characters, got %d", EncodedLen, len(token)))
	}
	inner := token[1 : len(token)-1]
	if opts.Mode == compliance.Legacy {
		return inner, nil
	}
	if _, err := hex.DecodeString(inner); err != nil {
		return "", wrapError(KindFormat, "PNS-LABEL-003", "encoded labelhash is not hex", err)
	}
	return inner, nil
}

// DecodeHash decodes a bracketed label into its 32-byte labelhash.
func DecodeHash(token string) (namehash.LabelHash, error) {
	inner, err := Decode(token)
	if err != nil {
		return namehash.LabelHash{}, err
	}
	lh, err := namehash.ParseLabelHash(inner)
	if err != nil {
		return namehash.LabelHash{}, wrapError(KindInternal, "PNS-LABEL-900", "decoded labelhash did not parse", err)
	}
	return lh, nil
}

// Hash returns the labelhash a registry expects for label.
//
// The root placeholder has no labelhash (ok == false). A bracketed label
// stands for its own hash and is decoded rather than re-hashed; a malformed
// bracketed label is an error. Anything else is hashed literally.
func Hash(label string) (lh namehash.LabelHash, ok bool, err error) {
	return HashWith(namehash.Engine{}, label)
}

// HashWith is Hash with literal labels hashed by e.
func HashWith(e namehash.Engine, label string) (lh namehash.LabelHash, ok bool, err error) {
	if label == namehash.RootLabel {
		return namehash.LabelHash{}, false, nil
	}
	if IsEncoded(label) {
		lh, err := DecodeHash(label)
		if err != nil {
			return namehash.LabelHash{}, false, err
		}
		return lh, true, nil
	}
	lh, _ = e.LabelHash(label)
	return lh, true, nil
}

// Split splits a dotted name into its labels, leftmost first.
func Split(name string) []string {
	return strings.Split(name, ".")
}

// First returns the leftmost label of name.
func First(name string) string {
	first, _, _ := strings.Cut(name, ".")
	return first
}
