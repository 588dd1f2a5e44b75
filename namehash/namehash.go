// Package namehash derives the 32-byte identifiers that key every registry
// record.
//
// A Node identifies a full dotted name; a LabelHash identifies a single label
// in isolation. The two live in different namespaces and are kept as distinct
// types so one cannot be passed where the other is expected.
package namehash

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/hzy1919/pns-sdk/hasher"
)

// RootLabel is the placeholder label for the namespace root. It has no
// labelhash.
const RootLabel = "[root]"

// Node is the canonical identifier of a name within the hierarchy.
type Node [hasher.Size]byte

// Root is the node of the empty name: 32 zero bytes.
var Root Node

func (n Node) IsRoot() bool { return n == Root }

// Hex returns "0x" followed by 64 lowercase hex characters.
func (n Node) Hex() string { return "0x" + hex.EncodeToString(n[:]) }

func (n Node) String() string { return n.Hex() }

// LabelHash is the digest of a single label.
type LabelHash [hasher.Size]byte

// Hex returns "0x" followed by 64 lowercase hex characters.
func (l LabelHash) Hex() string { return "0x" + hex.EncodeToString(l[:]) }

func (l LabelHash) String() string { return l.Hex() }

// ParseNode parses a 64-character hex string, with or without a 0x prefix.
func ParseNode(s string) (Node, error) {
	var n Node
	if err := parse32(s, n[:]); err != nil {
		return Root, fmt.Errorf("namehash: invalid node %q: %w", s, err)
	}
	return n, nil
}

// ParseLabelHash parses a 64-character hex string, with or without a 0x prefix.
func ParseLabelHash(s string) (LabelHash, error) {
	var l LabelHash
	if err := parse32(s, l[:]); err != nil {
		return LabelHash{}, fmt.Errorf("namehash: invalid labelhash %q: %w", s, err)
	}
	return l, nil
}

func parse32(s string, dst []byte) error {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 2*hasher.Size {
		return fmt.Errorf("want %d hex characters, got %d", 2*hasher.Size, len(s))
	}
	_, err := hex.Decode(dst, []byte(s))
	return err
}

// Engine folds names with an injectable hash. The zero value uses Keccak-256.
type Engine struct {
	Hasher hasher.Hasher
}

func (e Engine) digest() hasher.Hasher {
	if e.Hasher == nil {
		return hasher.Default
	}
	return e.Hasher
}

// Node computes the namehash of a dotted name.
//
// Labels are split on '.' with no escaping and folded from the rightmost
// (root-adjacent) label to the leftmost:
//
//	node = H(node || H(label))
//
// The empty name yields Root. Bracket-encoded labels are hashed literally;
// callers that hold "[<hash>]" placeholders must resolve them first.
func (e Engine) Node(name string) Node {
	node := Root
	if name == "" {
		return node
	}
	h := e.digest()
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		lh := h.Sum([]byte(labels[i]))
		node = e.Child(node, lh)
	}
	return node
}

// Child derives the node of a direct child of parent.
func (e Engine) Child(parent Node, label LabelHash) Node {
	var buf [2 * hasher.Size]byte
	copy(buf[:hasher.Size], parent[:])
	copy(buf[hasher.Size:], label[:])
	return e.digest().Sum(buf[:])
}

// LabelHash hashes a single label.
//
// RootLabel has no labelhash: ok is false and the returned value must not be
// used. Every other label, including the empty string, yields ok == true.
func (e Engine) LabelHash(label string) (lh LabelHash, ok bool) {
	if label == RootLabel {
		return LabelHash{}, false
	}
	return e.digest().Sum([]byte(label)), true
}

var defaultEngine Engine

// Compute returns the Keccak-256 namehash of name.
func Compute(name string) Node { return defaultEngine.Node(name) }

// Subnode returns the node of label under parent.
func Subnode(parent Node, label string) (Node, bool) {
	lh, ok := defaultEngine.LabelHash(label)
	if !ok {
		return Root, false
	}
	return defaultEngine.Child(parent, lh), true
}

// LabelHashOf returns the Keccak-256 labelhash of label. See Engine.LabelHash.
func LabelHashOf(label string) (LabelHash, bool) { return defaultEngine.LabelHash(label) }
