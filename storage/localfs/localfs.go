package localfs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hzy1919/pns-sdk/namehash"
	"github.com/hzy1919/pns-sdk/storage"
)

// Store is a local filesystem-backed record store.
//
// Each node is one JSON file named by its namehash. Writes go to a temp file
// that is renamed into place, so a reader never sees a partial record.
type Store struct {
	root string
}

// New constructs a filesystem store rooted at root. The directory will be created if needed.
func New(root string) (*Store, error) {
	if root == "" {
		return nil, errors.New("localfs: root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Store{root: root}, nil
}

func (s *Store) Put(node namehash.Node, rec storage.Record) error {
	if node.IsRoot() {
		return storage.ErrInvalidNode
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("localfs: encode %s: %w", node, err)
	}

	path := s.pathFor(node)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func (s *Store) Get(node namehash.Node) (storage.Record, error) {
	if node.IsRoot() {
		return storage.Record{}, storage.ErrInvalidNode
	}
	b, err := os.ReadFile(s.pathFor(node))
	if err != nil {
		if os.IsNotExist(err) {
			return storage.Record{}, storage.ErrNotFound
		}
		return storage.Record{}, err
	}
	var rec storage.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return storage.Record{}, fmt.Errorf("localfs: decode %s: %w", node, err)
	}
	return rec, nil
}

func (s *Store) Has(node namehash.Node) bool {
	if node.IsRoot() {
		return false
	}
	_, err := os.Stat(s.pathFor(node))
	return err == nil
}

// pathFor shards by the first namehash byte: <root>/<xx>/<0x...>.json.
func (s *Store) pathFor(node namehash.Node) string {
	h := node.Hex()
	return filepath.Join(s.root, h[2:4], h+".json")
}
