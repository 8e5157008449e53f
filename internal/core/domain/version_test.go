package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bit/internal/core/domain"
)

func TestResolveLatest(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		want   string
		wantOK bool
	}{
		{name: "highest wins", input: []string{"1.0.0", "2.0.0", "1.2.0"}, want: "2.0.0", wantOK: true},
		{name: "numeric not lexical", input: []string{"1.9.0", "1.10.0"}, want: "1.10.0", wantOK: true},
		{name: "prerelease sorts lower", input: []string{"2.0.0", "2.0.0-rc.1"}, want: "2.0.0", wantOK: true},
		{name: "invalid entries ignored", input: []string{"tmp", "0.1.0"}, want: "0.1.0", wantOK: true},
		{name: "equal versions keep first", input: []string{"v1.0.0", "1.0.0"}, want: "v1.0.0", wantOK: true},
		{name: "empty", input: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.ResolveLatest(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveLatest_Deterministic(t *testing.T) {
	orders := [][]string{
		{"1.0.0", "1.2.0", "2.0.0"},
		{"2.0.0", "1.0.0", "1.2.0"},
		{"1.2.0", "2.0.0", "1.0.0"},
	}
	for _, order := range orders {
		got, ok := domain.ResolveLatest(order)
		assert.True(t, ok)
		assert.Equal(t, "2.0.0", got)
	}
}

func TestSortVersions(t *testing.T) {
	versions := domain.SortVersions([]string{"1.0.0", "3.0.0", "2.0.0", "2.0.0"})

	got := make([]string, 0, len(versions))
	for _, v := range versions {
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"3.0.0", "2.0.0", "1.0.0"}, got)
}
