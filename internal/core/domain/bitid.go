package domain

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// LatestVersion asks resolution for the highest stored version.
const LatestVersion = "latest"

var segmentRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// BitID addresses a bit by scope, box, name and version.
// An empty Scope means the bit belongs to the local scope.
type BitID struct {
	Scope   string
	Box     string
	Name    string
	Version string
}

// ParseBitID parses the [scope/]box/name[@version] grammar.
// A leading "@" on the scope is accepted; "@this" denotes the local scope.
// Concrete versions are normalized to their canonical semver form.
func ParseBitID(raw string) (BitID, error) {
	malformed := func(reason string) error {
		return zerr.With(zerr.Wrap(ErrMalformedID, reason), "id", raw)
	}

	s := strings.TrimSpace(raw)
	if s == "" {
		return BitID{}, malformed("empty id")
	}

	var version string
	if at := strings.LastIndex(s, "@"); at > 0 && at > strings.LastIndex(s, "/") {
		version = s[at+1:]
		s = s[:at]
		if version == "" {
			return BitID{}, malformed("empty version")
		}
	}

	parts := strings.Split(s, "/")
	var id BitID
	switch len(parts) {
	case 2:
		id = BitID{Box: parts[0], Name: parts[1]}
	case 3:
		id = BitID{Scope: normalizeScope(parts[0]), Box: parts[1], Name: parts[2]}
		if id.Scope != "" && !segmentRegex.MatchString(id.Scope) {
			return BitID{}, malformed("invalid scope")
		}
	default:
		return BitID{}, malformed("wrong number of segments")
	}

	if !segmentRegex.MatchString(id.Box) || !segmentRegex.MatchString(id.Name) {
		return BitID{}, malformed("invalid box or name")
	}

	if version != "" && version != LatestVersion {
		v, err := semver.NewVersion(version)
		if err != nil {
			return BitID{}, zerr.With(zerr.Wrap(ErrMalformedID, "invalid version"), "id", raw)
		}
		version = v.String()
	}
	id.Version = version

	return id, nil
}

// MustParseBitID is like ParseBitID but panics on error.
func MustParseBitID(raw string) BitID {
	id, err := ParseBitID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

func normalizeScope(scope string) string {
	if scope == LocalScopeMarker {
		return ""
	}
	return strings.TrimPrefix(scope, "@")
}

// IsLocal reports whether the id belongs to the scope named localName.
func (id BitID) IsLocal(localName string) bool {
	return id.Scope == "" || id.Scope == localName
}

// HasVersion reports whether the id pins a concrete version.
func (id BitID) HasVersion() bool {
	return id.Version != "" && id.Version != LatestVersion
}

// WithVersion returns a copy of id pinned to version.
func (id BitID) WithVersion(version string) BitID {
	id.Version = version
	return id
}

// WithScope returns a copy of id owned by scope.
func (id BitID) WithScope(scope string) BitID {
	id.Scope = normalizeScope(scope)
	return id
}

// Local returns a copy of id with the scope cleared.
func (id BitID) Local() BitID {
	id.Scope = ""
	return id
}

// String formats the id in the [scope/]box/name[@version] grammar.
func (id BitID) String() string {
	var b strings.Builder
	if id.Scope != "" {
		b.WriteString(id.Scope)
		b.WriteByte('/')
	}
	b.WriteString(id.Box)
	b.WriteByte('/')
	b.WriteString(id.Name)
	if id.Version != "" {
		b.WriteByte('@')
		b.WriteString(id.Version)
	}
	return b.String()
}

// Key is the deduplication key over all four fields.
func (id BitID) Key() string {
	return id.Scope + "/" + id.Box + "/" + id.Name + "@" + id.Version
}

// FullName returns box/name.
func (id BitID) FullName() string {
	return id.Box + "/" + id.Name
}

// MarshalText encodes the id in its string grammar.
func (id BitID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the id from its string grammar.
func (id *BitID) UnmarshalText(text []byte) error {
	parsed, err := ParseBitID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
