// Package client is the name-keyed front end to a name service deployment.
//
// Every operation derives the namehash node (or labelhash) locally and then
// calls one of the collaborator interfaces below. Those interfaces are the
// boundary to contract calls, which this module does not implement; any
// binding that satisfies them can be plugged in, including the offline
// storage.Registry.
package client

import (
	"context"
	"errors"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/hzy1919/pns-sdk/model"
	"github.com/hzy1919/pns-sdk/namehash"
)

// Registry owns the node -> (owner, resolver, ttl) mapping.
type Registry interface {
	Owner(ctx context.Context, node namehash.Node) (model.Address, error)
	Resolver(ctx context.Context, node namehash.Node) (model.Address, error)
	TTL(ctx context.Context, node namehash.Node) (uint64, error)

	SetOwner(ctx context.Context, node namehash.Node, owner model.Address) error
	SetResolver(ctx context.Context, node namehash.Node, resolver model.Address) error
	SetTTL(ctx context.Context, node namehash.Node, ttl uint64) error
	SetRecord(ctx context.Context, node namehash.Node, owner, resolver model.Address, ttl uint64) error
	SetSubnodeOwner(ctx context.Context, parent namehash.Node, label namehash.LabelHash, owner model.Address) (namehash.Node, error)
	SetSubnodeRecord(ctx context.Context, parent namehash.Node, label namehash.LabelHash, owner, resolver model.Address, ttl uint64) error

	// The subname variants take the plain label and hash it on the registry side.
	SetSubnameOwner(ctx context.Context, parent namehash.Node, subname string, owner model.Address) (namehash.Node, error)
	SetSubnameRecord(ctx context.Context, parent namehash.Node, subname string, owner, resolver model.Address, ttl uint64) error
}

// Resolver holds the records of a node.
type Resolver interface {
	Addr(ctx context.Context, node namehash.Node, coin model.CoinType) ([]byte, error)
	Text(ctx context.Context, node namehash.Node, key string) (string, error)
	Contenthash(ctx context.Context, node namehash.Node) ([]byte, error)

	SetAddr(ctx context.Context, node namehash.Node, coin model.CoinType, addr []byte) error
	SetText(ctx context.Context, node namehash.Node, key, value string) error
	SetContenthash(ctx context.Context, node namehash.Node, hash []byte) error
}

// Registrar sells second-level names under the service TLD. Labels are
// identified by labelhash for reads and by plain label for purchases.
type Registrar interface {
	Available(ctx context.Context, label namehash.LabelHash) (bool, error)
	NameExpires(ctx context.Context, label namehash.LabelHash) (time.Time, error)
	RentPrice(ctx context.Context, label string, duration time.Duration) (*big.Int, error)
	Register(ctx context.Context, label string, owner model.Address, duration time.Duration) error
	Renew(ctx context.Context, label string, duration time.Duration) error
}

// ErrNoRegistrar is returned by registrar operations on a Client built
// without WithRegistrar.
var ErrNoRegistrar = errors.New("client: no registrar configured")

// Client maps human-readable names onto collaborator calls.
type Client struct {
	registry        Registry
	resolver        Resolver
	registrar       Registrar
	engine          namehash.Engine
	coinTypes       map[string]model.CoinType
	defaultResolver model.Address
	log             *zap.Logger
}

type Option func(*Client)

func WithRegistrar(r Registrar) Option { return func(c *Client) { c.registrar = r } }

// WithCoinTypes replaces the ticker -> coin type table.
func WithCoinTypes(m map[string]model.CoinType) Option {
	return func(c *Client) {
		c.coinTypes = make(map[string]model.CoinType, len(m))
		for k, v := range m {
			c.coinTypes[k] = v
		}
	}
}

// WithDefaultResolver sets the resolver used by SetResolver when none is given.
func WithDefaultResolver(a model.Address) Option {
	return func(c *Client) { c.defaultResolver = a }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithEngine overrides the namehash engine, e.g. to inject a test hasher.
func WithEngine(e namehash.Engine) Option { return func(c *Client) { c.engine = e } }

func New(registry Registry, resolver Resolver, opts ...Option) *Client {
	c := &Client{
		registry:  registry,
		resolver:  resolver,
		coinTypes: model.DefaultCoinTypes(),
		log:       zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Node returns the namehash of name.
func (c *Client) Node(name string) namehash.Node { return c.engine.Node(name) }

func (c *Client) coinType(symbol string) (model.CoinType, error) {
	ct, ok := c.coinTypes[symbol]
	if !ok {
		return 0, model.NewError(model.ErrUnknownCoin, "unknown coin symbol "+symbol)
	}
	return ct, nil
}
