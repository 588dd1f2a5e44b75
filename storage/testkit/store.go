// Package testkit holds a conformance suite every storage.Store must pass.
package testkit

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hzy1919/pns-sdk/model"
	"github.com/hzy1919/pns-sdk/namehash"
	"github.com/hzy1919/pns-sdk/storage"
)

// NewStore constructs a fresh, empty Store instance for a test.
// The returned Store MUST be isolated from other tests.
type NewStore func(t *testing.T) storage.Store

func RunStoreConformance(t *testing.T, newStore NewStore) {
	t.Helper()

	node := namehash.Compute("conformance.dot")

	t.Run("PutGetRoundTrip", func(t *testing.T) {
		s := newStore(t)
		want := storage.Record{
			Owner:       "0x00000000000000000000000000000000000000aa",
			Resolver:    "0x00000000000000000000000000000000000000bb",
			TTL:         300,
			Addrs:       map[model.CoinType][]byte{60: {1, 2, 3}, 354: {4}},
			Texts:       map[string]string{"url": "https://example.org"},
			Contenthash: []byte{0xe3, 0x01},
		}
		if err := s.Put(node, want); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, err := s.Get(node)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Owner != want.Owner || got.Resolver != want.Resolver || got.TTL != want.TTL {
			t.Fatalf("header mismatch: got %+v", got)
		}
		for ct, b := range want.Addrs {
			if !bytes.Equal(got.Addrs[ct], b) {
				t.Fatalf("addr %d: got %x want %x", ct, got.Addrs[ct], b)
			}
		}
		if got.Texts["url"] != want.Texts["url"] {
			t.Fatalf("text mismatch: %q", got.Texts["url"])
		}
		if !bytes.Equal(got.Contenthash, want.Contenthash) {
			t.Fatalf("contenthash mismatch: %x", got.Contenthash)
		}
	})

	t.Run("PutReplaces", func(t *testing.T) {
		s := newStore(t)
		if err := s.Put(node, storage.Record{TTL: 1, Texts: map[string]string{"a": "b"}}); err != nil {
			t.Fatalf("Put(1) failed: %v", err)
		}
		if err := s.Put(node, storage.Record{TTL: 2}); err != nil {
			t.Fatalf("Put(2) failed: %v", err)
		}
		got, err := s.Get(node)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.TTL != 2 || len(got.Texts) != 0 {
			t.Fatalf("Put did not replace record: %+v", got)
		}
	})

	t.Run("GetReturnsCopy", func(t *testing.T) {
		s := newStore(t)
		if err := s.Put(node, storage.Record{Contenthash: []byte{1}}); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, err := s.Get(node)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		got.Contenthash[0] = 9
		again, err := s.Get(node)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if again.Contenthash[0] != 1 {
			t.Fatalf("Get aliased stored bytes")
		}
	})

	t.Run("HasAndNotFound", func(t *testing.T) {
		s := newStore(t)
		if s.Has(node) {
			t.Fatalf("Has returned true for missing node")
		}
		_, err := s.Get(node)
		if !storage.IsNotFound(err) {
			t.Fatalf("Get missing: got err=%v want ErrNotFound", err)
		}
		if err := s.Put(node, storage.Record{}); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if !s.Has(node) {
			t.Fatalf("Has returned false after Put")
		}
	})

	t.Run("RejectRoot", func(t *testing.T) {
		s := newStore(t)
		if err := s.Put(namehash.Root, storage.Record{}); !errors.Is(err, storage.ErrInvalidNode) {
			t.Fatalf("Put root: got %v want ErrInvalidNode", err)
		}
		if _, err := s.Get(namehash.Root); !errors.Is(err, storage.ErrInvalidNode) {
			t.Fatalf("Get root: got %v want ErrInvalidNode", err)
		}
		if s.Has(namehash.Root) {
			t.Fatalf("Has should be false for root")
		}
	})
}
