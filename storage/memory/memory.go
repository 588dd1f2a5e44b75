// Package memory is an in-process storage.Store for tests and short-lived
// mirrors.
package memory

import (
	"sync"

	"github.com/hzy1919/pns-sdk/namehash"
	"github.com/hzy1919/pns-sdk/storage"
)

type Store struct {
	mu      sync.RWMutex
	records map[namehash.Node]storage.Record
}

func New() *Store {
	return &Store{records: make(map[namehash.Node]storage.Record)}
}

func (s *Store) Put(node namehash.Node, rec storage.Record) error {
	if node.IsRoot() {
		return storage.ErrInvalidNode
	}
	s.mu.Lock()
	s.records[node] = rec.Clone()
	s.mu.Unlock()
	return nil
}

func (s *Store) Get(node namehash.Node) (storage.Record, error) {
	if node.IsRoot() {
		return storage.Record{}, storage.ErrInvalidNode
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[node]
	if !ok {
		return storage.Record{}, storage.ErrNotFound
	}
	return rec.Clone(), nil
}

func (s *Store) Has(node namehash.Node) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[node]
	return ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
