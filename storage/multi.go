package storage

import (
	"errors"

	"github.com/hzy1919/pns-sdk/namehash"
)

// MultiStore provides deterministic, ordered fallback across multiple stores.
//
// Lookup order is the slice order in Stores; callers MUST supply a fixed order.
// Put is defined to write only to the first store.
type MultiStore struct {
	Stores []Store
}

func (m MultiStore) Put(node namehash.Node, rec Record) error {
	if len(m.Stores) == 0 {
		return errors.New("storage: MultiStore has no stores")
	}
	return m.Stores[0].Put(node, rec)
}

func (m MultiStore) Get(node namehash.Node) (Record, error) {
	for _, s := range m.Stores {
		rec, err := s.Get(node)
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

func (m MultiStore) Has(node namehash.Node) bool {
	for _, s := range m.Stores {
		if s.Has(node) {
			return true
		}
	}
	return false
}
