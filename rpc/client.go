package rpc

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/hzy1919/pns-sdk/namehash"
)

// Client calls a NameHash gRPC service.
type Client struct {
	cc     *grpc.ClientConn
	client NameHashClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration
}

func Dial(target string, opts DialOptions) (*Client, error) {
	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	cc, err := grpc.DialContext(ctx, target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return NewClient(cc), nil
}

// NewClient wraps an existing connection.
func NewClient(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc, client: NewNameHashClient(cc)}
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

func (c *Client) Namehash(ctx context.Context, name string) (namehash.Node, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()
	reply, err := c.client.Namehash(ctx, wrapperspb.String(name))
	if err != nil {
		return namehash.Root, err
	}
	return toNode(reply.GetValue())
}

// LabelHash returns ok == false for the root placeholder label.
func (c *Client) LabelHash(ctx context.Context, l string) (namehash.LabelHash, bool, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()
	reply, err := c.client.LabelHash(ctx, wrapperspb.String(l))
	if status.Code(err) == codes.NotFound {
		return namehash.LabelHash{}, false, nil
	}
	if err != nil {
		return namehash.LabelHash{}, false, mapLabelRPC(err)
	}
	n, err := toNode(reply.GetValue())
	return namehash.LabelHash(n), err == nil, err
}

func (c *Client) DecodeLabel(ctx context.Context, token string) (string, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()
	reply, err := c.client.DecodeLabel(ctx, wrapperspb.String(token))
	if err != nil {
		return "", mapLabelRPC(err)
	}
	return reply.GetValue(), nil
}

func (c *Client) Validate(ctx context.Context, name string) (bool, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()
	reply, err := c.client.Validate(ctx, wrapperspb.String(name))
	if err != nil {
		return false, err
	}
	return reply.GetValue(), nil
}

func (c *Client) DecodeContent(ctx context.Context, text string) ([]byte, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()
	reply, err := c.client.DecodeContent(ctx, wrapperspb.String(text))
	if err != nil {
		return nil, mapContentRPC(err)
	}
	return reply.GetValue(), nil
}

func (c *Client) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, c.Timeout)
}

func toNode(b []byte) (namehash.Node, error) {
	var n namehash.Node
	if len(b) != len(n) {
		return n, fmt.Errorf("rpc: expected %d hash bytes, got %d", len(n), len(b))
	}
	copy(n[:], b)
	return n, nil
}
