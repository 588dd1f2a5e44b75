package storage

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/hzy1919/pns-sdk/namehash"
)

// NamedStore associates a Store with a stable backend name.
type NamedStore struct {
	Name  string
	Store Store
}

// ReplicatingStore writes to all configured backends and reads with ordered
// fallback.
//
// Put attempts every backend even after a failure and reports all failures
// together, so one broken mirror does not hide another.
type ReplicatingStore struct {
	Backends []NamedStore
}

var _ Store = (*ReplicatingStore)(nil)

func (r ReplicatingStore) Put(node namehash.Node, rec Record) error {
	if len(r.Backends) == 0 {
		return fmt.Errorf("storage: ReplicatingStore has no backends")
	}
	var err error
	for _, b := range r.Backends {
		if b.Store == nil {
			err = multierr.Append(err, fmt.Errorf("storage: nil store for backend %q", b.Name))
			continue
		}
		if perr := b.Store.Put(node, rec); perr != nil {
			err = multierr.Append(err, fmt.Errorf("storage: backend %q: %w", b.Name, perr))
		}
	}
	return err
}

func (r ReplicatingStore) Get(node namehash.Node) (Record, error) {
	for _, b := range r.Backends {
		if b.Store == nil {
			continue
		}
		rec, err := b.Store.Get(node)
		if err == nil {
			return rec, nil
		}
		if IsNotFound(err) {
			continue
		}
		return Record{}, err
	}
	return Record{}, ErrNotFound
}

func (r ReplicatingStore) Has(node namehash.Node) bool {
	for _, b := range r.Backends {
		if b.Store != nil && b.Store.Has(node) {
			return true
		}
	}
	return false
}
