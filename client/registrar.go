package client

import (
	"context"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/hzy1919/pns-sdk/domain"
	"github.com/hzy1919/pns-sdk/label"
	"github.com/hzy1919/pns-sdk/model"
	"github.com/hzy1919/pns-sdk/namehash"
)

func (c *Client) labelHash(l string) (namehash.LabelHash, error) {
	lh, ok, err := label.HashWith(c.engine, domain.TrimTLD(l))
	if err != nil {
		return lh, model.NewError(model.ErrInvalidLabel, err.Error())
	}
	if !ok {
		return lh, model.NewError(model.ErrInvalidLabel, "the root label cannot be registered")
	}
	return lh, nil
}

// Available reports whether label (with or without the TLD) can be registered.
func (c *Client) Available(ctx context.Context, l string) (bool, error) {
	if c.registrar == nil {
		return false, ErrNoRegistrar
	}
	lh, err := c.labelHash(l)
	if err != nil {
		return false, err
	}
	return c.registrar.Available(ctx, lh)
}

func (c *Client) NameExpires(ctx context.Context, l string) (time.Time, error) {
	if c.registrar == nil {
		return time.Time{}, ErrNoRegistrar
	}
	lh, err := c.labelHash(l)
	if err != nil {
		return time.Time{}, err
	}
	return c.registrar.NameExpires(ctx, lh)
}

func (c *Client) RentPrice(ctx context.Context, l string, duration time.Duration) (*big.Int, error) {
	if c.registrar == nil {
		return nil, ErrNoRegistrar
	}
	return c.registrar.RentPrice(ctx, domain.TrimTLD(l), duration)
}

// Register buys label for owner. The label is checked with
// domain.IsValidRegistrableName before the registrar is called.
func (c *Client) Register(ctx context.Context, l string, owner model.Address, duration time.Duration) error {
	if c.registrar == nil {
		return ErrNoRegistrar
	}
	if err := domain.CheckRegistrableName(l); err != nil {
		return model.NewError(model.ErrInvalidName, err.Error())
	}
	bare := domain.TrimTLD(l)
	c.log.Info("register", zap.String("label", bare), zap.String("owner", string(owner)), zap.Duration("duration", duration))
	return c.registrar.Register(ctx, bare, owner, duration)
}

func (c *Client) Renew(ctx context.Context, l string, duration time.Duration) error {
	if c.registrar == nil {
		return ErrNoRegistrar
	}
	bare := domain.TrimTLD(l)
	c.log.Info("renew", zap.String("label", bare), zap.Duration("duration", duration))
	return c.registrar.Renew(ctx, bare, duration)
}
