// Package remote wraps a transport into a typed client of one remote scope.
package remote

import (
	"context"
	"fmt"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Client talks to one remote scope through a connected transport.
type Client struct {
	remote    domain.Remote
	codec     ports.ArchiveCodec
	transport ports.Transport
}

// Connect validates the remote's host, dials it and connects the transport.
func Connect(
	ctx context.Context,
	network ports.Network,
	codec ports.ArchiveCodec,
	remote domain.Remote,
) (*Client, error) {
	if _, _, err := remote.Endpoint(); err != nil {
		return nil, err
	}
	transport, err := network.Dial(remote)
	if err != nil {
		return nil, err
	}
	if err := transport.Connect(ctx); err != nil {
		_ = transport.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to connect"), "remote", remote.Alias)
	}
	return &Client{remote: remote, codec: codec, transport: transport}, nil
}

// Remote returns the remote this client talks to.
func (c *Client) Remote() domain.Remote {
	return c.remote
}

// Push serializes bit and uploads it.
func (c *Client) Push(ctx context.Context, bit *domain.Bit) error {
	contents, err := c.codec.Encode(bit)
	if err != nil {
		return err
	}
	id := bit.ID()
	payload := domain.Payload{ID: id.Local().String(), Name: id.FullName(), Contents: contents}
	if err := c.transport.Push(ctx, payload); err != nil {
		return zerr.With(zerr.Wrap(err, "push failed"), "remote", c.remote.Alias)
	}
	return nil
}

// Fetch downloads ids. Without dependencies the result holds exactly one bit
// per id in request order; with them, each id's closure precedes it.
// Every returned bit is attributed to this remote, whichever scope the remote
// got it from.
func (c *Client) Fetch(ctx context.Context, ids domain.BitIDs, withDependencies bool) (domain.Bits, error) {
	if len(ids) == 0 {
		return domain.Bits{}, nil
	}
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.Local().String()
	}

	payloads, err := c.transport.Fetch(ctx, raw, withDependencies)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "fetch failed"), "remote", c.remote.Alias)
	}
	if !withDependencies && len(payloads) != len(ids) {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrBitNotFound, fmt.Sprintf("expected %d bits, got %d", len(ids), len(payloads))),
			"remote", c.remote.Alias,
		)
	}

	bits := make(domain.Bits, 0, len(payloads))
	for _, payload := range payloads {
		bit, err := c.codec.Decode(payload.Contents)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "undecodable payload"), "payload", payload.ID)
		}
		bits = append(bits, bit.WithScope(c.remote.Alias))
	}

	if !withDependencies {
		for i, bit := range bits {
			if !sameBit(ids[i], bit.ID()) {
				return nil, zerr.With(
					zerr.Wrap(domain.ErrBitNotFound, "remote answered out of order"),
					"id", ids[i].String(),
				)
			}
		}
	}
	return bits, nil
}

// sameBit compares the addressing part of a requested id with a fetched one.
// Unversioned requests match any version.
func sameBit(requested, got domain.BitID) bool {
	if requested.Box != got.Box || requested.Name != got.Name {
		return false
	}
	return !requested.HasVersion() || requested.Version == got.Version
}

// Search queries the remote's index.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	return c.transport.Search(ctx, query)
}

// List returns the ids the remote owns, attributed to this remote.
func (c *Client) List(ctx context.Context) (domain.BitIDs, error) {
	raw, err := c.transport.List(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := domain.ParseBitIDs(raw)
	if err != nil {
		return nil, err
	}
	for i, id := range ids {
		ids[i] = id.WithScope(c.remote.Alias)
	}
	return ids, nil
}

// Describe reports the remote scope's identity.
func (c *Client) Describe(ctx context.Context) (domain.ScopeDescription, error) {
	return c.transport.DescribeScope(ctx)
}

// Close releases the transport.
func (c *Client) Close() error {
	return c.transport.Close()
}

// FetchMany fetches ids that may belong to several remotes with one call per
// distinct remote, run in parallel. Without dependencies the result keeps the
// request order; with them, each group's closure is concatenated in the order
// the groups first appear. Ids must all carry a scope.
func FetchMany(
	ctx context.Context,
	network ports.Network,
	codec ports.ArchiveCodec,
	remotes domain.Remotes,
	ids domain.BitIDs,
	withDependencies bool,
) (domain.Bits, error) {
	groups := ids.GroupByScope()
	owners := make([]domain.Remote, len(groups))
	for i, group := range groups {
		r, err := remotes.Get(group.Scope)
		if err != nil {
			return nil, err
		}
		owners[i] = r
	}
	results := make([]domain.Bits, len(groups))

	g, ctx := errgroup.WithContext(ctx)
	for i, group := range groups {
		g.Go(func() error {
			client, err := Connect(ctx, network, codec, owners[i])
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			bits, err := client.Fetch(ctx, group.IDs, withDependencies)
			if err != nil {
				return err
			}
			results[i] = bits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if withDependencies {
		var out domain.Bits
		for _, bits := range results {
			out = append(out, bits...)
		}
		return out.Dedupe(), nil
	}

	out := make(domain.Bits, len(ids))
	for i, group := range groups {
		for j, pos := range group.Positions {
			out[pos] = results[i][j]
		}
	}
	return out, nil
}
