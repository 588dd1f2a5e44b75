package client

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hzy1919/pns-sdk/contenturi"
	"github.com/hzy1919/pns-sdk/label"
	"github.com/hzy1919/pns-sdk/model"
	"github.com/hzy1919/pns-sdk/namehash"
)

func (c *Client) Owner(ctx context.Context, name string) (model.Address, error) {
	return c.registry.Owner(ctx, c.Node(name))
}

// ResolverOf returns the resolver contract recorded for name.
func (c *Client) ResolverOf(ctx context.Context, name string) (model.Address, error) {
	return c.registry.Resolver(ctx, c.Node(name))
}

func (c *Client) TTL(ctx context.Context, name string) (uint64, error) {
	return c.registry.TTL(ctx, c.Node(name))
}

// Addr returns the address record for a coin symbol as 0x-hex. An unset
// record reads as model.EmptyAddress.
func (c *Client) Addr(ctx context.Context, name, symbol string) (string, error) {
	ct, err := c.coinType(symbol)
	if err != nil {
		return "", err
	}
	b, err := c.resolver.Addr(ctx, c.Node(name), ct)
	if err != nil {
		c.log.Warn("addr lookup failed", zap.String("name", name), zap.String("coin", symbol), zap.Error(err))
		return "", err
	}
	if len(b) == 0 {
		return string(model.EmptyAddress), nil
	}
	return "0x" + hex.EncodeToString(b), nil
}

func (c *Client) Text(ctx context.Context, name, key string) (string, error) {
	return c.resolver.Text(ctx, c.Node(name), key)
}

// Content renders the content record of name as a URI. Records written as
// binary contenthashes are decoded; anything else is shown as the base58 of
// the raw bytes under ipfs://.
func (c *Client) Content(ctx context.Context, name string) (model.Content, error) {
	raw, err := c.resolver.Contenthash(ctx, c.Node(name))
	if err != nil {
		c.log.Warn("contenthash lookup failed", zap.String("name", name), zap.Error(err))
		return model.Content{ContentType: model.ContentTypeError}, err
	}
	if len(raw) == 0 {
		return model.Content{ContentType: model.ContentTypeHash}, nil
	}
	if u, err := contenturi.ParseContenthash(raw); err == nil {
		return model.Content{Value: u.String(), ContentType: model.ContentTypeHash}, nil
	}
	return model.Content{Value: contenturi.Encode(contenturi.IPFS, raw), ContentType: model.ContentTypeHash}, nil
}

// DomainDetails gathers ownership, text, address and content records of name.
func (c *Client) DomainDetails(ctx context.Context, name string) (model.DomainDetails, error) {
	node := c.Node(name)
	d := model.DomainDetails{
		Name:  name,
		Label: label.First(name),
		Node:  node.Hex(),
	}
	if lh, ok, err := label.Hash(d.Label); err != nil {
		return d, err
	} else if ok {
		d.LabelHash = lh.Hex()
	}

	var err error
	if d.Resolver, err = c.registry.Resolver(ctx, node); err != nil {
		return d, fmt.Errorf("resolver: %w", err)
	}
	if d.TTL, err = c.registry.TTL(ctx, node); err != nil {
		return d, fmt.Errorf("ttl: %w", err)
	}
	if d.Owner, err = c.registry.Owner(ctx, node); err != nil {
		return d, fmt.Errorf("owner: %w", err)
	}

	for _, key := range model.TextRecordKeys {
		v, err := c.resolver.Text(ctx, node, key)
		if err != nil {
			return d, fmt.Errorf("text %s: %w", key, err)
		}
		d.TextRecords = append(d.TextRecords, model.KeyValue{Key: key, Value: v})
	}

	content, err := c.Content(ctx, name)
	if err != nil {
		return d, fmt.Errorf("content: %w", err)
	}
	d.Content = content.Value
	if u, ok := contenturi.Parse(content.Value); ok {
		d.ContentType = string(u.Protocol)
	}

	for _, sym := range model.AddrSymbols {
		if _, ok := c.coinTypes[sym]; !ok {
			continue
		}
		v, err := c.Addr(ctx, name, sym)
		if err != nil {
			return d, fmt.Errorf("addr %s: %w", sym, err)
		}
		d.Addrs = append(d.Addrs, model.KeyValue{Key: sym, Value: v})
	}
	return d, nil
}

func (c *Client) SetOwner(ctx context.Context, name string, owner model.Address) error {
	return c.registry.SetOwner(ctx, c.Node(name), owner)
}

// SetResolver points name at resolver, or at the default resolver when
// resolver is empty.
func (c *Client) SetResolver(ctx context.Context, name string, resolver model.Address) error {
	if resolver == "" {
		resolver = c.defaultResolver
	}
	if resolver == "" {
		return model.NewError(model.ErrInvalidName, "no resolver given and no default configured")
	}
	return c.registry.SetResolver(ctx, c.Node(name), resolver)
}

func (c *Client) SetTTL(ctx context.Context, name string, ttl uint64) error {
	return c.registry.SetTTL(ctx, c.Node(name), ttl)
}

func (c *Client) SetRecord(ctx context.Context, name string, owner, resolver model.Address, ttl uint64) error {
	return c.registry.SetRecord(ctx, c.Node(name), owner, resolver, ttl)
}

// SetAddr stores a 0x-hex address for a coin symbol.
func (c *Client) SetAddr(ctx context.Context, name, symbol, value string) error {
	ct, err := c.coinType(symbol)
	if err != nil {
		return err
	}
	b, err := hex.DecodeString(strings.TrimPrefix(value, "0x"))
	if err != nil {
		return model.NewError(model.ErrInvalidName, fmt.Sprintf("address %q is not hex", value))
	}
	return c.resolver.SetAddr(ctx, c.Node(name), ct, b)
}

func (c *Client) SetText(ctx context.Context, name, key, value string) error {
	return c.resolver.SetText(ctx, c.Node(name), key, value)
}

// SetContent stores an ipfs:// or ipns:// pointer as a binary contenthash.
func (c *Client) SetContent(ctx context.Context, name, value string) error {
	u, ok := contenturi.Parse(value)
	if !ok {
		return contenturi.ErrNoProtocol
	}
	b, err := contenturi.Contenthash(u)
	if err != nil {
		return err
	}
	return c.resolver.SetContenthash(ctx, c.Node(name), b)
}

// SetDomainDetails writes the non-empty text and address records and the
// content pointer, in that order.
func (c *Client) SetDomainDetails(ctx context.Context, name string, texts, addrs []model.KeyValue, content string) error {
	for _, kv := range texts {
		if kv.Value == "" {
			continue
		}
		if err := c.SetText(ctx, name, kv.Key, kv.Value); err != nil {
			return err
		}
	}
	for _, kv := range addrs {
		if kv.Value == "" {
			continue
		}
		if err := c.SetAddr(ctx, name, kv.Key, kv.Value); err != nil {
			return err
		}
	}
	if content != "" {
		return c.SetContent(ctx, name, content)
	}
	return nil
}

func (c *Client) subnodeLabel(sub string) (namehash.LabelHash, error) {
	lh, ok, err := label.HashWith(c.engine, sub)
	if err != nil {
		return lh, model.NewError(model.ErrInvalidLabel, err.Error())
	}
	if !ok {
		return lh, model.NewError(model.ErrInvalidLabel, "the root label cannot name a subnode")
	}
	return lh, nil
}

// SetSubnodeOwner assigns sub.name to owner and returns the new node.
// sub may be a bracketed labelhash.
func (c *Client) SetSubnodeOwner(ctx context.Context, name, sub string, owner model.Address) (namehash.Node, error) {
	lh, err := c.subnodeLabel(sub)
	if err != nil {
		return namehash.Root, err
	}
	return c.registry.SetSubnodeOwner(ctx, c.Node(name), lh, owner)
}

func (c *Client) SetSubnodeRecord(ctx context.Context, name, sub string, owner, resolver model.Address, ttl uint64) error {
	lh, err := c.subnodeLabel(sub)
	if err != nil {
		return err
	}
	return c.registry.SetSubnodeRecord(ctx, c.Node(name), lh, owner, resolver, ttl)
}

// checkSubname rejects labels a registry would hash into the wrong child:
// the root placeholder and bracketed labelhashes, which belong to
// SetSubnodeOwner.
func checkSubname(sub string) error {
	if sub == namehash.RootLabel {
		return model.NewError(model.ErrInvalidLabel, "the root label cannot name a subnode")
	}
	if label.IsEncoded(sub) {
		return model.NewError(model.ErrInvalidLabel, "encoded label "+sub+" must go through SetSubnodeOwner")
	}
	return nil
}

// SetSubnameOwner assigns sub.name to owner, handing the plain label to the
// registry.
func (c *Client) SetSubnameOwner(ctx context.Context, name, sub string, owner model.Address) (namehash.Node, error) {
	if err := checkSubname(sub); err != nil {
		return namehash.Root, err
	}
	return c.registry.SetSubnameOwner(ctx, c.Node(name), sub, owner)
}

func (c *Client) SetSubnameRecord(ctx context.Context, name, sub string, owner, resolver model.Address, ttl uint64) error {
	if err := checkSubname(sub); err != nil {
		return err
	}
	return c.registry.SetSubnameRecord(ctx, c.Node(name), sub, owner, resolver, ttl)
}
