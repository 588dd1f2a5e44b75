package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/hzy1919/pns-sdk/model"
	"github.com/hzy1919/pns-sdk/namehash"
)

// Registry serves registry and resolver reads and writes from a Store, so a
// client can run fully offline against a local mirror.
//
// Reads of unknown nodes behave like contract reads: zero values, with the
// owner and resolver reported as model.EmptyAddress.
type Registry struct {
	Store  Store
	Engine namehash.Engine

	mu sync.Mutex
}

func NewRegistry(s Store) *Registry { return &Registry{Store: s} }

func (r *Registry) load(node namehash.Node) (Record, error) {
	rec, err := r.Store.Get(node)
	if IsNotFound(err) {
		return Record{}, nil
	}
	return rec, err
}

// update applies fn to the node's record under the registry lock.
func (r *Registry) update(ctx context.Context, node namehash.Node, fn func(*Record)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if node.IsRoot() {
		return ErrInvalidNode
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, err := r.load(node)
	if err != nil {
		return err
	}
	fn(&rec)
	return r.Store.Put(node, rec)
}

func (r *Registry) read(ctx context.Context, node namehash.Node) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(node)
}

func orEmpty(a model.Address) model.Address {
	if a == "" {
		return model.EmptyAddress
	}
	return a
}

func (r *Registry) Owner(ctx context.Context, node namehash.Node) (model.Address, error) {
	rec, err := r.read(ctx, node)
	return orEmpty(rec.Owner), err
}

func (r *Registry) Resolver(ctx context.Context, node namehash.Node) (model.Address, error) {
	rec, err := r.read(ctx, node)
	return orEmpty(rec.Resolver), err
}

func (r *Registry) TTL(ctx context.Context, node namehash.Node) (uint64, error) {
	rec, err := r.read(ctx, node)
	return rec.TTL, err
}

func (r *Registry) SetOwner(ctx context.Context, node namehash.Node, owner model.Address) error {
	return r.update(ctx, node, func(rec *Record) { rec.Owner = owner })
}

func (r *Registry) SetResolver(ctx context.Context, node namehash.Node, resolver model.Address) error {
	return r.update(ctx, node, func(rec *Record) { rec.Resolver = resolver })
}

func (r *Registry) SetTTL(ctx context.Context, node namehash.Node, ttl uint64) error {
	return r.update(ctx, node, func(rec *Record) { rec.TTL = ttl })
}

func (r *Registry) SetRecord(ctx context.Context, node namehash.Node, owner, resolver model.Address, ttl uint64) error {
	return r.update(ctx, node, func(rec *Record) {
		rec.Owner, rec.Resolver, rec.TTL = owner, resolver, ttl
	})
}

func (r *Registry) SetSubnodeOwner(ctx context.Context, parent namehash.Node, label namehash.LabelHash, owner model.Address) (namehash.Node, error) {
	child := r.Engine.Child(parent, label)
	if err := r.SetOwner(ctx, child, owner); err != nil {
		return namehash.Root, err
	}
	return child, nil
}

func (r *Registry) SetSubnodeRecord(ctx context.Context, parent namehash.Node, label namehash.LabelHash, owner, resolver model.Address, ttl uint64) error {
	return r.SetRecord(ctx, r.Engine.Child(parent, label), owner, resolver, ttl)
}

func (r *Registry) subname(parent namehash.Node, subname string) (namehash.Node, error) {
	lh, ok := r.Engine.LabelHash(subname)
	if !ok {
		return namehash.Root, fmt.Errorf("%w: %s has no labelhash", ErrInvalidNode, subname)
	}
	return r.Engine.Child(parent, lh), nil
}

func (r *Registry) SetSubnameOwner(ctx context.Context, parent namehash.Node, subname string, owner model.Address) (namehash.Node, error) {
	child, err := r.subname(parent, subname)
	if err != nil {
		return namehash.Root, err
	}
	if err := r.SetOwner(ctx, child, owner); err != nil {
		return namehash.Root, err
	}
	return child, nil
}

func (r *Registry) SetSubnameRecord(ctx context.Context, parent namehash.Node, subname string, owner, resolver model.Address, ttl uint64) error {
	child, err := r.subname(parent, subname)
	if err != nil {
		return err
	}
	return r.SetRecord(ctx, child, owner, resolver, ttl)
}

func (r *Registry) Addr(ctx context.Context, node namehash.Node, coin model.CoinType) ([]byte, error) {
	rec, err := r.read(ctx, node)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), rec.Addrs[coin]...), nil
}

func (r *Registry) Text(ctx context.Context, node namehash.Node, key string) (string, error) {
	rec, err := r.read(ctx, node)
	return rec.Texts[key], err
}

func (r *Registry) Contenthash(ctx context.Context, node namehash.Node) ([]byte, error) {
	rec, err := r.read(ctx, node)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), rec.Contenthash...), nil
}

func (r *Registry) SetAddr(ctx context.Context, node namehash.Node, coin model.CoinType, addr []byte) error {
	return r.update(ctx, node, func(rec *Record) {
		if rec.Addrs == nil {
			rec.Addrs = make(map[model.CoinType][]byte)
		}
		rec.Addrs[coin] = append([]byte(nil), addr...)
	})
}

func (r *Registry) SetText(ctx context.Context, node namehash.Node, key, value string) error {
	return r.update(ctx, node, func(rec *Record) {
		if rec.Texts == nil {
			rec.Texts = make(map[string]string)
		}
		rec.Texts[key] = value
	})
}

func (r *Registry) SetContenthash(ctx context.Context, node namehash.Node, hash []byte) error {
	return r.update(ctx, node, func(rec *Record) {
		rec.Contenthash = append([]byte(nil), hash...)
	})
}
