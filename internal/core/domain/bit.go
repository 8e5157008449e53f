package domain

import (
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Bit is a versioned unit of code together with its metadata.
type Bit struct {
	// Scope is the owning scope. Empty for bits owned by the local scope.
	Scope string
	Meta  BitJSON
	Impl  []byte
	Spec  []byte
	// Dist holds build output keyed by slash separated relative path.
	Dist map[string][]byte
}

// NewBit creates an unbuilt bit.
func NewBit(meta BitJSON, impl, spec []byte) *Bit {
	return &Bit{Meta: meta, Impl: impl, Spec: spec}
}

// ID returns the address of the bit.
func (b *Bit) ID() BitID {
	return BitID{
		Scope:   b.Scope,
		Box:     b.Meta.Box,
		Name:    b.Meta.Name,
		Version: b.Meta.Version,
	}
}

// Dependencies parses the declared dependency ids.
func (b *Bit) Dependencies() (BitIDs, error) {
	return ParseBitIDs(b.Meta.Dependencies)
}

// Validate checks that the bit is structurally sound.
func (b *Bit) Validate() error {
	if b == nil {
		return zerr.Wrap(ErrValidation, "nil bit")
	}
	if err := b.Meta.Validate(); err != nil {
		return err
	}
	if len(b.Impl) == 0 {
		return zerr.With(zerr.Wrap(ErrValidation, "empty implementation"), "bit", b.ID().String())
	}
	return nil
}

// WithScope returns a shallow copy owned by scope.
func (b *Bit) WithScope(scope string) *Bit {
	c := *b
	c.Scope = normalizeScope(scope)
	return &c
}

// Checksum hashes the metadata and every payload.
func (b *Bit) Checksum() (uint64, error) {
	meta, err := b.Meta.Encode()
	if err != nil {
		return 0, err
	}

	h := xxhash.New()
	write := func(tag string, data []byte) {
		_, _ = h.WriteString(tag)
		_, _ = h.Write([]byte{0})
		_, _ = h.Write(data)
		_, _ = h.Write([]byte{0})
	}

	write(BitJSONName, meta)
	write(b.Meta.Impl, b.Impl)
	if b.Meta.Spec != "" {
		write(b.Meta.Spec, b.Spec)
	}
	for _, path := range b.DistPaths() {
		write(DistDirName+"/"+path, b.Dist[path])
	}

	return h.Sum64(), nil
}

// DistPaths returns the build output paths in sorted order.
func (b *Bit) DistPaths() []string {
	paths := make([]string, 0, len(b.Dist))
	for p := range b.Dist {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Bits is an ordered set of bits.
type Bits []*Bit

// IDs returns the id of every bit in order.
func (bs Bits) IDs() BitIDs {
	ids := make(BitIDs, len(bs))
	for i, b := range bs {
		ids[i] = b.ID()
	}
	return ids
}

// Dedupe drops later bits whose id key was already seen.
func (bs Bits) Dedupe() Bits {
	seen := make(map[string]struct{}, len(bs))
	out := make(Bits, 0, len(bs))
	for _, b := range bs {
		key := b.ID().Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, b)
	}
	return out
}
