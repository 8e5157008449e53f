package indexer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bit/internal/adapters/indexer"
	"go.trai.ch/bit/internal/core/domain"
)

func bitOf(box, name, version, description, impl string) *domain.Bit {
	meta := domain.NewBitJSON(box, name, version)
	meta.Description = description
	return domain.NewBit(meta, []byte(impl), nil)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "leftPad", want: []string{"left", "pad"}},
		{in: "is_empty-string value", want: []string{"is", "empty", "string", "value"}},
		{in: "parseHTTPResponse", want: []string{"parse", "http", "response"}},
		{in: "utils/pad pad", want: []string{"utils", "pad"}},
		{in: "utf8Encode", want: []string{"utf8", "encode"}},
		{in: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, indexer.Tokenize(tt.in))
		})
	}
}

func TestNewDocument(t *testing.T) {
	doc, err := indexer.NewDocument(bitOf("str", "leftPad", "1.0.0", "pads strings",
		"function leftPad(s) {}\nexports.padStart = leftPad;\n"))
	require.NoError(t, err)

	assert.Equal(t, "str/leftPad@1.0.0", doc.ID)
	assert.Equal(t, []string{"leftPad", "padStart"}, doc.Functions)
	assert.Equal(t, []string{"str", "left", "pad", "pads", "strings", "start"}, doc.Tokens)
	assert.NotEmpty(t, doc.Checksum)
}

func TestIndexer_IndexAndSearch(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	idx := indexer.New()

	require.NoError(t, idx.Index(ctx, root, bitOf("str", "leftPad", "1.0.0", "pad a string on the left", "x")))
	require.NoError(t, idx.Index(ctx, root, bitOf("str", "rightPad", "1.0.0", "pad a string on the right", "x")))
	require.NoError(t, idx.Index(ctx, root, bitOf("math", "sum", "1.0.0", "adds numbers", "x")))

	results, err := idx.Search(ctx, root, "left pad")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "str/leftPad@1.0.0", results[0].ID)
	assert.Equal(t, 2, results[0].Score)
	assert.Equal(t, "str/rightPad@1.0.0", results[1].ID)
	assert.Equal(t, 1, results[1].Score)

	results, err = idx.Search(ctx, root, "num")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "math", results[0].Box)

	results, err = idx.Search(ctx, root, "   ")
	require.NoError(t, err)
	assert.Empty(t, results)

	assert.FileExists(t, filepath.Join(root, domain.CacheDirName, domain.IndexFileName))
}

func TestIndexer_NewVersionReplacesDocument(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	idx := indexer.New()

	require.NoError(t, idx.Index(ctx, root, bitOf("str", "pad", "1.0.0", "old", "x")))
	require.NoError(t, idx.Index(ctx, root, bitOf("str", "pad", "2.0.0", "new", "x")))

	results, err := idx.Search(ctx, root, "pad")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "str/pad@2.0.0", results[0].ID)
	assert.Equal(t, "new", results[0].Description)
}

func TestIndexer_IndexAllRebuilds(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	idx := indexer.New()

	require.NoError(t, idx.Index(ctx, root, bitOf("old", "gone", "1.0.0", "", "x")))
	require.NoError(t, idx.IndexAll(ctx, root, []*domain.Bit{bitOf("str", "pad", "1.0.0", "", "x")}))

	results, err := idx.Search(ctx, root, "gone")
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = idx.Search(ctx, root, "pad")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestIndexer_CorruptIndex(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, domain.CacheDirName, domain.IndexFileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte("{"), domain.FilePerm))

	_, err := indexer.New().Search(context.Background(), root, "pad")
	assert.ErrorIs(t, err, domain.ErrIndexFailed)
}
