package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bit/internal/core/domain"
)

func TestParseBitID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.BitID
	}{
		{
			name: "box and name",
			raw:  "utils/pad",
			want: domain.BitID{Box: "utils", Name: "pad"},
		},
		{
			name: "with version",
			raw:  "utils/pad@1.0.0",
			want: domain.BitID{Box: "utils", Name: "pad", Version: "1.0.0"},
		},
		{
			name: "latest",
			raw:  "utils/pad@latest",
			want: domain.BitID{Box: "utils", Name: "pad", Version: "latest"},
		},
		{
			name: "with scope",
			raw:  "origin/utils/pad@2.1.0",
			want: domain.BitID{Scope: "origin", Box: "utils", Name: "pad", Version: "2.1.0"},
		},
		{
			name: "at prefixed scope",
			raw:  "@origin/utils/pad",
			want: domain.BitID{Scope: "origin", Box: "utils", Name: "pad"},
		},
		{
			name: "local marker",
			raw:  "@this/utils/pad@1.0.0",
			want: domain.BitID{Box: "utils", Name: "pad", Version: "1.0.0"},
		},
		{
			name: "short version is canonicalized",
			raw:  "utils/pad@1.2",
			want: domain.BitID{Box: "utils", Name: "pad", Version: "1.2.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseBitID(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBitID_Malformed(t *testing.T) {
	tests := []string{
		"",
		"pad",
		"a/b/c/d",
		"utils/pad@",
		"utils/pad@not-a-version",
		"utils/p ad",
		"/pad",
		"utils/",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := domain.ParseBitID(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedID)
		})
	}
}

func TestBitID_String(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "utils/pad", want: "utils/pad"},
		{raw: "utils/pad@1.0.0", want: "utils/pad@1.0.0"},
		{raw: "@origin/utils/pad@1.0.0", want: "origin/utils/pad@1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.MustParseBitID(tt.raw).String())
		})
	}
}

func TestBitID_IsLocal(t *testing.T) {
	assert.True(t, domain.MustParseBitID("utils/pad").IsLocal("mine"))
	assert.True(t, domain.MustParseBitID("mine/utils/pad").IsLocal("mine"))
	assert.False(t, domain.MustParseBitID("origin/utils/pad").IsLocal("mine"))
}

func TestBitID_TextRoundTrip(t *testing.T) {
	id := domain.MustParseBitID("origin/utils/pad@1.0.0")

	text, err := id.MarshalText()
	require.NoError(t, err)

	var got domain.BitID
	require.NoError(t, got.UnmarshalText(text))
	assert.Equal(t, id, got)
}

func TestBitIDs_Dedupe(t *testing.T) {
	ids, err := domain.ParseBitIDs([]string{"a/x@1.0.0", "a/y@1.0.0", "a/x@1.0.0", "a/x@2.0.0"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a/x@1.0.0", "a/y@1.0.0", "a/x@2.0.0"}, ids.Dedupe().Strings())
}

func TestBitIDs_GroupByScope(t *testing.T) {
	ids, err := domain.ParseBitIDs([]string{"r1/a/x@1.0.0", "r2/a/y@1.0.0", "r1/a/z@1.0.0", "a/w@1.0.0"})
	require.NoError(t, err)

	groups := ids.GroupByScope()
	require.Len(t, groups, 3)

	assert.Equal(t, "r1", groups[0].Scope)
	assert.Equal(t, []string{"r1/a/x@1.0.0", "r1/a/z@1.0.0"}, groups[0].IDs.Strings())
	assert.Equal(t, []int{0, 2}, groups[0].Positions)

	assert.Equal(t, "r2", groups[1].Scope)
	assert.Equal(t, []int{1}, groups[1].Positions)

	assert.Empty(t, groups[2].Scope)
	assert.Equal(t, []int{3}, groups[2].Positions)
}
