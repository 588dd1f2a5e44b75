package storage_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/multierr"

	"github.com/hzy1919/pns-sdk/model"
	"github.com/hzy1919/pns-sdk/namehash"
	"github.com/hzy1919/pns-sdk/storage"
	"github.com/hzy1919/pns-sdk/storage/memory"
	"github.com/hzy1919/pns-sdk/storage/testkit"
)

type failingStore struct{ err error }

func (f failingStore) Get(namehash.Node) (storage.Record, error) { return storage.Record{}, f.err }
func (f failingStore) Put(namehash.Node, storage.Record) error   { return f.err }
func (f failingStore) Has(namehash.Node) bool                    { return false }

func TestMultiStore_Conformance(t *testing.T) {
	testkit.RunStoreConformance(t, func(t *testing.T) storage.Store {
		return storage.MultiStore{Stores: []storage.Store{memory.New(), memory.New()}}
	})
}

func TestMultiStore_Fallback(t *testing.T) {
	first, second := memory.New(), memory.New()
	node := namehash.Compute("alice.dot")
	if err := second.Put(node, storage.Record{TTL: 7}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	m := storage.MultiStore{Stores: []storage.Store{first, second}}
	got, err := m.Get(node)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TTL != 7 {
		t.Fatalf("TTL=%d want 7", got.TTL)
	}
	if !m.Has(node) {
		t.Fatalf("Has=false")
	}

	boom := errors.New("boom")
	m = storage.MultiStore{Stores: []storage.Store{failingStore{err: boom}, second}}
	if _, err := m.Get(node); !errors.Is(err, boom) {
		t.Fatalf("Get: got %v want boom", err)
	}
	if err := (storage.MultiStore{}).Put(node, storage.Record{}); err == nil {
		t.Fatalf("Put on empty MultiStore should fail")
	}
}

func TestReplicatingStore_Conformance(t *testing.T) {
	testkit.RunStoreConformance(t, func(t *testing.T) storage.Store {
		return storage.ReplicatingStore{Backends: []storage.NamedStore{
			{Name: "a", Store: memory.New()},
			{Name: "b", Store: memory.New()},
		}}
	})
}

func TestReplicatingStore_WritesAllAndCollectsErrors(t *testing.T) {
	a, b := memory.New(), memory.New()
	node := namehash.Compute("bob.dot")
	r := storage.ReplicatingStore{Backends: []storage.NamedStore{
		{Name: "a", Store: a},
		{Name: "bad1", Store: failingStore{err: errors.New("x")}},
		{Name: "b", Store: b},
		{Name: "bad2", Store: nil},
	}}
	err := r.Put(node, storage.Record{TTL: 1})
	if got := len(multierr.Errors(err)); got != 2 {
		t.Fatalf("expected 2 errors, got %d (%v)", got, err)
	}
	if !a.Has(node) || !b.Has(node) {
		t.Fatalf("healthy backends were not written")
	}
}

func TestRegistry_UnknownNodeReadsEmpty(t *testing.T) {
	r := storage.NewRegistry(memory.New())
	ctx := context.Background()
	node := namehash.Compute("nobody.dot")

	owner, err := r.Owner(ctx, node)
	if err != nil || owner != model.EmptyAddress {
		t.Fatalf("Owner=%q err=%v", owner, err)
	}
	res, err := r.Resolver(ctx, node)
	if err != nil || res != model.EmptyAddress {
		t.Fatalf("Resolver=%q err=%v", res, err)
	}
	addr, err := r.Addr(ctx, node, 60)
	if err != nil || len(addr) != 0 {
		t.Fatalf("Addr=%x err=%v", addr, err)
	}
}

func TestRegistry_Records(t *testing.T) {
	r := storage.NewRegistry(memory.New())
	ctx := context.Background()
	node := namehash.Compute("alice.dot")
	owner := model.Address("0x00000000000000000000000000000000000000a1")

	if err := r.SetRecord(ctx, node, owner, "0x00000000000000000000000000000000000000b2", 60); err != nil {
		t.Fatalf("SetRecord: %v", err)
	}
	if err := r.SetText(ctx, node, "url", "https://alice.example"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	if err := r.SetAddr(ctx, node, 354, []byte{1, 2}); err != nil {
		t.Fatalf("SetAddr: %v", err)
	}
	if err := r.SetContenthash(ctx, node, []byte{0xe3}); err != nil {
		t.Fatalf("SetContenthash: %v", err)
	}

	got, err := r.Owner(ctx, node)
	if err != nil || got != owner {
		t.Fatalf("Owner=%q err=%v", got, err)
	}
	ttl, _ := r.TTL(ctx, node)
	if ttl != 60 {
		t.Fatalf("TTL=%d", ttl)
	}
	txt, _ := r.Text(ctx, node, "url")
	if txt != "https://alice.example" {
		t.Fatalf("Text=%q", txt)
	}
	addr, _ := r.Addr(ctx, node, 354)
	if !bytes.Equal(addr, []byte{1, 2}) {
		t.Fatalf("Addr=%x", addr)
	}
	ch, _ := r.Contenthash(ctx, node)
	if !bytes.Equal(ch, []byte{0xe3}) {
		t.Fatalf("Contenthash=%x", ch)
	}
}

func TestRegistry_Subnode(t *testing.T) {
	r := storage.NewRegistry(memory.New())
	ctx := context.Background()
	parent := namehash.Compute("alice.dot")
	lh, _ := namehash.LabelHashOf("sub")
	owner := model.Address("0x00000000000000000000000000000000000000c3")

	child, err := r.SetSubnodeOwner(ctx, parent, lh, owner)
	if err != nil {
		t.Fatalf("SetSubnodeOwner: %v", err)
	}
	if child != namehash.Compute("sub.alice.dot") {
		t.Fatalf("child node %s != namehash(sub.alice.dot)", child)
	}
	got, _ := r.Owner(ctx, child)
	if got != owner {
		t.Fatalf("Owner=%q", got)
	}
}

func TestRegistry_Subname(t *testing.T) {
	r := storage.NewRegistry(memory.New())
	ctx := context.Background()
	parent := namehash.Compute("alice.dot")
	owner := model.Address("0x00000000000000000000000000000000000000c3")
	res := model.Address("0x00000000000000000000000000000000000000d4")

	child, err := r.SetSubnameOwner(ctx, parent, "sub", owner)
	if err != nil {
		t.Fatalf("SetSubnameOwner: %v", err)
	}
	lh, _ := namehash.LabelHashOf("sub")
	if want := r.Engine.Child(parent, lh); child != want {
		t.Fatalf("child %s != Child(parent, labelhash(sub)) %s", child, want)
	}
	if child != namehash.Compute("sub.alice.dot") {
		t.Fatalf("child node %s != namehash(sub.alice.dot)", child)
	}

	if err := r.SetSubnameRecord(ctx, parent, "www", owner, res, 7); err != nil {
		t.Fatalf("SetSubnameRecord: %v", err)
	}
	www := namehash.Compute("www.alice.dot")
	gotRes, _ := r.Resolver(ctx, www)
	ttl, _ := r.TTL(ctx, www)
	if gotRes != res || ttl != 7 {
		t.Fatalf("www resolver=%q ttl=%d", gotRes, ttl)
	}

	if _, err := r.SetSubnameOwner(ctx, parent, namehash.RootLabel, owner); !errors.Is(err, storage.ErrInvalidNode) {
		t.Fatalf("SetSubnameOwner(root label): got %v", err)
	}
}

func TestRegistry_RejectsRootAndCanceled(t *testing.T) {
	r := storage.NewRegistry(memory.New())
	if err := r.SetOwner(context.Background(), namehash.Root, "0x1"); !errors.Is(err, storage.ErrInvalidNode) {
		t.Fatalf("SetOwner(root): got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Owner(ctx, namehash.Compute("a.dot")); !errors.Is(err, context.Canceled) {
		t.Fatalf("Owner(canceled): got %v", err)
	}
}

func TestRegistry_ConcurrentTextWrites(t *testing.T) {
	r := storage.NewRegistry(memory.New())
	ctx := context.Background()
	node := namehash.Compute("busy.dot")
	keys := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	var wg sync.WaitGroup
	for _, k := range keys {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			if err := r.SetText(ctx, node, k, k); err != nil {
				t.Errorf("SetText(%s): %v", k, err)
			}
		}(k)
	}
	wg.Wait()
	for _, k := range keys {
		if v, _ := r.Text(ctx, node, k); v != k {
			t.Fatalf("Text(%s)=%q, lost update", k, v)
		}
	}
}
