package domain

import (
	"net"
	"net/url"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// SchemeFile addresses a scope on the local filesystem.
	SchemeFile = "file"

	// SchemeBit addresses a scope served over the wire protocol.
	SchemeBit = "bit"

	// primaryMarker suffixes a raw alias that should be used as the default remote.
	primaryMarker = "!"
)

// Remote is a named handle to another scope.
type Remote struct {
	Alias   string
	Host    string
	Primary bool
}

// NewRemote builds a remote from a raw alias. A trailing "!" marks it primary and is stripped.
func NewRemote(rawAlias, host string) Remote {
	alias := strings.TrimSpace(rawAlias)
	primary := strings.HasSuffix(alias, primaryMarker)
	return Remote{
		Alias:   strings.TrimSuffix(alias, primaryMarker),
		Host:    strings.TrimSpace(host),
		Primary: primary,
	}
}

// RawAlias returns the alias as written in configuration, including the primary marker.
func (r Remote) RawAlias() string {
	if r.Primary {
		return r.Alias + primaryMarker
	}
	return r.Alias
}

// Endpoint validates the host and splits it into scheme and address.
// file:// hosts must carry an absolute path; bit:// hosts must carry host:port.
func (r Remote) Endpoint() (scheme, address string, err error) {
	invalid := func(reason string) error {
		return zerr.With(zerr.With(zerr.Wrap(ErrInvalidRemote, reason), "alias", r.Alias), "host", r.Host)
	}

	u, perr := url.Parse(r.Host)
	if perr != nil {
		return "", "", invalid("unparsable host")
	}

	switch u.Scheme {
	case SchemeFile:
		path := u.Host + u.Path
		if path == "" || !filepath.IsAbs(path) {
			return "", "", invalid("file remote requires an absolute path")
		}
		return SchemeFile, filepath.Clean(path), nil
	case SchemeBit:
		if _, port, serr := net.SplitHostPort(u.Host); serr != nil || port == "" {
			return "", "", invalid("bit remote requires host:port")
		}
		return SchemeBit, u.Host, nil
	default:
		return "", "", invalid("unsupported scheme")
	}
}

// Remotes indexes remotes by alias.
type Remotes map[string]Remote

// RemotesFromMap parses an alias to host map as found in configuration files.
func RemotesFromMap(raw map[string]string) Remotes {
	out := make(Remotes, len(raw))
	for alias, host := range raw {
		r := NewRemote(alias, host)
		out[r.Alias] = r
	}
	return out
}

// ToMap is the inverse of RemotesFromMap.
func (rs Remotes) ToMap() map[string]string {
	out := make(map[string]string, len(rs))
	for _, r := range rs {
		out[r.RawAlias()] = r.Host
	}
	return out
}

// MergeRemotes overlays local on global. Local entries win on alias collision.
func MergeRemotes(global, local Remotes) Remotes {
	out := make(Remotes, len(global)+len(local))
	for alias, r := range global {
		out[alias] = r
	}
	for alias, r := range local {
		out[alias] = r
	}
	return out
}

// Get returns the remote registered under alias.
func (rs Remotes) Get(alias string) (Remote, error) {
	r, ok := rs[strings.TrimPrefix(alias, "@")]
	if !ok {
		return Remote{}, zerr.With(zerr.Wrap(ErrRemoteNotFound, "unknown alias"), "alias", alias)
	}
	return r, nil
}

// Resolve returns the remote owning id. Ids without a scope have no remote.
func (rs Remotes) Resolve(id BitID) (Remote, error) {
	if id.Scope == "" {
		return Remote{}, zerr.With(zerr.Wrap(ErrRemoteNotFound, "local id has no remote"), "id", id.String())
	}
	r, ok := rs[id.Scope]
	if !ok {
		return Remote{}, zerr.With(zerr.Wrap(ErrRemoteNotFound, "no remote for scope"), "id", id.String())
	}
	return r, nil
}

// List returns the remotes sorted by alias.
func (rs Remotes) List() []Remote {
	out := make([]Remote, 0, len(rs))
	for _, r := range rs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Alias < out[j].Alias })
	return out
}

// Primary returns the first primary remote by alias order.
func (rs Remotes) Primary() (Remote, bool) {
	for _, r := range rs.List() {
		if r.Primary {
			return r, true
		}
	}
	return Remote{}, false
}
