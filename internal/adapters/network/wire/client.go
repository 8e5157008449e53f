package wire

import (
	"context"
	"sync"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client implements ports.Transport over gRPC.
type Client struct {
	address string
	opts    []grpc.DialOption

	mu   sync.RWMutex
	conn *grpc.ClientConn
}

// NewClient creates an unconnected client for address (host:port).
func NewClient(address string, opts ...grpc.DialOption) *Client {
	return &Client{address: address, opts: opts}
}

// Connect opens the channel and checks the remote answers Describe.
func (c *Client) Connect(ctx context.Context) error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	}, c.opts...)

	conn, err := grpc.NewClient(c.address, opts...)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create wire client"), "remote", c.address)
	}

	var resp DescribeResponse
	if err := conn.Invoke(ctx, methodDescribe, &DescribeRequest{}, &resp); err != nil {
		_ = conn.Close()
		return fromStatus(err, c.address)
	}

	c.mu.Lock()
	old := c.conn
	c.conn = conn
	c.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
	return nil
}

func (c *Client) invoke(ctx context.Context, method string, req, resp any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return zerr.With(zerr.Wrap(domain.ErrTransportNotConnected, "connect before use"), "remote", c.address)
	}
	if err := conn.Invoke(ctx, method, req, resp); err != nil {
		return fromStatus(err, c.address)
	}
	return nil
}

// Push uploads one serialized bit.
func (c *Client) Push(ctx context.Context, payload domain.Payload) error {
	return c.invoke(ctx, methodPush, &PushRequest{Payload: payload}, &PushResponse{})
}

// Fetch returns serialized bits in request order.
func (c *Client) Fetch(ctx context.Context, ids []string, withDependencies bool) ([]domain.Payload, error) {
	var resp FetchResponse
	if err := c.invoke(ctx, methodFetch, &FetchRequest{IDs: ids, WithDependencies: withDependencies}, &resp); err != nil {
		return nil, err
	}
	return resp.Payloads, nil
}

// Search queries the remote index.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	var resp SearchResponse
	if err := c.invoke(ctx, methodSearch, &SearchRequest{Query: query}, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// DescribeScope reports the remote scope identity.
func (c *Client) DescribeScope(ctx context.Context) (domain.ScopeDescription, error) {
	var resp DescribeResponse
	if err := c.invoke(ctx, methodDescribe, &DescribeRequest{}, &resp); err != nil {
		return domain.ScopeDescription{}, err
	}
	return resp.Scope, nil
}

// List returns every id the remote owns.
func (c *Client) List(ctx context.Context) ([]string, error) {
	var resp ListResponse
	if err := c.invoke(ctx, methodList, &ListRequest{}, &resp); err != nil {
		return nil, err
	}
	return resp.IDs, nil
}

// Close releases the channel. The client can be connected again.
func (c *Client) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}
