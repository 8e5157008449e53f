package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/zerr"
)

func newBit(box, name, version string, deps ...string) *domain.Bit {
	meta := domain.NewBitJSON(box, name, version)
	meta.Dependencies = deps
	return domain.NewBit(meta, []byte("module.exports = 1;\n"), nil)
}

func TestBit_Validate(t *testing.T) {
	tests := []struct {
		name    string
		bit     *domain.Bit
		wantErr bool
	}{
		{name: "valid", bit: newBit("utils", "pad", "1.0.0")},
		{name: "valid with deps", bit: newBit("utils", "trim", "1.0.0", "utils/pad@1.0.0")},
		{name: "bad version", bit: newBit("utils", "pad", "one"), wantErr: true},
		{name: "bad name", bit: newBit("utils", "p/ad", "1.0.0"), wantErr: true},
		{name: "bad dependency", bit: newBit("utils", "trim", "1.0.0", "pad"), wantErr: true},
		{name: "self dependency", bit: newBit("utils", "pad", "1.0.0", "utils/pad@0.9.0"), wantErr: true},
		{name: "empty impl", bit: domain.NewBit(domain.NewBitJSON("utils", "pad", "1.0.0"), nil, nil), wantErr: true},
		{name: "nil", bit: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bit.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBit_ValidateMetadata(t *testing.T) {
	err := newBit("utils", "pad", "x.y").Validate()
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "x.y", zErr.Metadata()["version"])
}

func TestBit_Dependencies(t *testing.T) {
	b := newBit("utils", "trim", "1.0.0", "utils/pad@1.0.0", "origin/str/left@2.0.0")

	deps, err := b.Dependencies()
	require.NoError(t, err)
	assert.Equal(t, []string{"utils/pad@1.0.0", "origin/str/left@2.0.0"}, deps.Strings())
}

func TestBit_Checksum(t *testing.T) {
	a := newBit("utils", "pad", "1.0.0")
	b := newBit("utils", "pad", "1.0.0")

	sumA, err := a.Checksum()
	require.NoError(t, err)
	sumB, err := b.Checksum()
	require.NoError(t, err)
	assert.Equal(t, sumA, sumB)

	b.Dist = map[string][]byte{"index.js": []byte("built")}
	sumC, err := b.Checksum()
	require.NoError(t, err)
	assert.NotEqual(t, sumA, sumC)
}

func TestBits_Dedupe(t *testing.T) {
	bits := domain.Bits{
		newBit("utils", "pad", "1.0.0"),
		newBit("utils", "trim", "1.0.0"),
		newBit("utils", "pad", "1.0.0"),
	}

	assert.Equal(t, []string{"utils/pad@1.0.0", "utils/trim@1.0.0"}, bits.Dedupe().IDs().Strings())
}

func TestBit_WithScope(t *testing.T) {
	b := newBit("utils", "pad", "1.0.0")
	remote := b.WithScope("@origin")

	assert.Equal(t, "origin/utils/pad@1.0.0", remote.ID().String())
	assert.Empty(t, b.Scope)
}
