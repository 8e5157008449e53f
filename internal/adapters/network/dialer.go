// Package network selects the transport for a remote host.
package network

import (
	"sync"

	"go.trai.ch/bit/internal/adapters/network/wire"
	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
)

// Dialer implements ports.Network for file:// and bit:// hosts.
type Dialer struct {
	mu       sync.RWMutex
	opener   ports.ScopeOpener
	wireOpts []grpc.DialOption
}

// NewDialer creates a Dialer. File transports need SetOpener before they can connect.
func NewDialer(wireOpts ...grpc.DialOption) *Dialer {
	return &Dialer{wireOpts: wireOpts}
}

// SetOpener sets the opener used by file transports.
func (d *Dialer) SetOpener(opener ports.ScopeOpener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opener = opener
}

// Dial returns an unconnected transport for the remote.
func (d *Dialer) Dial(remote domain.Remote) (ports.Transport, error) {
	scheme, address, err := remote.Endpoint()
	if err != nil {
		return nil, err
	}

	switch scheme {
	case domain.SchemeFile:
		d.mu.RLock()
		opener := d.opener
		d.mu.RUnlock()
		return NewFSTransport(address, opener), nil
	case domain.SchemeBit:
		return wire.NewClient(address, d.wireOpts...), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidRemote, "unsupported scheme"), "host", remote.Host)
	}
}
