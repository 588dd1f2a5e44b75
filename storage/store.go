package storage

import (
	"github.com/hzy1919/pns-sdk/model"
	"github.com/hzy1919/pns-sdk/namehash"
)

// Record is everything the registry and resolver hold for one node.
type Record struct {
	Owner       model.Address             `json:"owner,omitempty"`
	Resolver    model.Address             `json:"resolver,omitempty"`
	TTL         uint64                    `json:"ttl,omitempty"`
	Addrs       map[model.CoinType][]byte `json:"addrs,omitempty"`
	Texts       map[string]string         `json:"texts,omitempty"`
	Contenthash []byte                    `json:"contenthash,omitempty"`
}

// Clone returns a deep copy so callers cannot alias stored state.
func (r Record) Clone() Record {
	out := r
	if r.Addrs != nil {
		out.Addrs = make(map[model.CoinType][]byte, len(r.Addrs))
		for k, v := range r.Addrs {
			out.Addrs[k] = append([]byte(nil), v...)
		}
	}
	if r.Texts != nil {
		out.Texts = make(map[string]string, len(r.Texts))
		for k, v := range r.Texts {
			out.Texts[k] = v
		}
	}
	if r.Contenthash != nil {
		out.Contenthash = append([]byte(nil), r.Contenthash...)
	}
	return out
}

// Store is a minimal node-keyed record store.
//
// Contract:
// - Put replaces the whole record for the node.
// - Get MUST return ErrNotFound when the node is absent.
// - Get returns a copy; mutating it does not change the store.
// - The root node is not a storable name and yields ErrInvalidNode.
type Store interface {
	Get(node namehash.Node) (Record, error)
	Put(node namehash.Node, rec Record) error
	Has(node namehash.Node) bool
}
