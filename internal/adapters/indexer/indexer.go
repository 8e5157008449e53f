// Package indexer maintains the per-scope search index.
package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/zerr"
)

// IndexSchema is the index.json format version.
const IndexSchema = 1

// Document is the indexed view of one bit, keyed box_name.
type Document struct {
	ID          string   `json:"id"`
	Box         string   `json:"box"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tokens      []string `json:"tokens"`
	Functions   []string `json:"functions,omitempty"`
	Checksum    string   `json:"checksum"`
}

type indexFile struct {
	Version   int                  `json:"version"`
	Documents map[string]*Document `json:"documents"`
}

// Indexer implements ports.Indexer with a JSON file under the scope cache.
type Indexer struct {
	mu sync.Mutex
}

// New creates an Indexer.
func New() *Indexer {
	return &Indexer{}
}

// DocumentKey returns the key a bit is indexed under.
func DocumentKey(box, name string) string {
	return box + "_" + name
}

// NewDocument builds the document of bit.
func NewDocument(bit *domain.Bit) (*Document, error) {
	sum, err := bit.Checksum()
	if err != nil {
		return nil, err
	}
	id := bit.ID()
	functions := functionNames(bit.Impl)

	tokens := Tokenize(strings.Join(append([]string{id.Box, id.Name, bit.Meta.Description}, functions...), " "))
	return &Document{
		ID:          id.String(),
		Box:         id.Box,
		Name:        id.Name,
		Description: bit.Meta.Description,
		Tokens:      tokens,
		Functions:   functions,
		Checksum:    strconv.FormatUint(sum, 16),
	}, nil
}

func indexPath(scopePath string) string {
	return filepath.Join(scopePath, domain.CacheDirName, domain.IndexFileName)
}

// Index adds or replaces the document of bit. An unchanged document is not rewritten.
func (x *Indexer) Index(ctx context.Context, scopePath string, bit *domain.Bit) error {
	doc, err := NewDocument(bit)
	if err != nil {
		return err
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	idx, err := readIndex(scopePath)
	if err != nil {
		return err
	}
	key := DocumentKey(doc.Box, doc.Name)
	if prev, ok := idx.Documents[key]; ok && prev.Checksum == doc.Checksum && prev.ID == doc.ID {
		return nil
	}
	idx.Documents[key] = doc
	return writeIndex(scopePath, idx)
}

// IndexAll replaces the whole index with documents for bits.
func (x *Indexer) IndexAll(ctx context.Context, scopePath string, bits []*domain.Bit) error {
	idx := &indexFile{Version: IndexSchema, Documents: make(map[string]*Document, len(bits))}
	for _, bit := range bits {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc, err := NewDocument(bit)
		if err != nil {
			return err
		}
		idx.Documents[DocumentKey(doc.Box, doc.Name)] = doc
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	return writeIndex(scopePath, idx)
}

// Search ranks documents by the number of query tokens they match.
// A query token matches a document token it prefixes. Ties are broken by id.
func (x *Indexer) Search(_ context.Context, scopePath, query string) ([]domain.SearchResult, error) {
	terms := Tokenize(query)
	if len(terms) == 0 {
		return nil, nil
	}

	x.mu.Lock()
	idx, err := readIndex(scopePath)
	x.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var results []domain.SearchResult
	for _, doc := range idx.Documents {
		score := 0
		for _, term := range terms {
			if slices.ContainsFunc(doc.Tokens, func(tok string) bool { return strings.HasPrefix(tok, term) }) {
				score++
			}
		}
		if score == 0 {
			continue
		}
		results = append(results, domain.SearchResult{
			ID:          doc.ID,
			Box:         doc.Box,
			Name:        doc.Name,
			Description: doc.Description,
			Score:       score,
		})
	}

	slices.SortFunc(results, func(a, b domain.SearchResult) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return strings.Compare(a.ID, b.ID)
	})
	return results, nil
}

func readIndex(scopePath string) (*indexFile, error) {
	data, err := os.ReadFile(indexPath(scopePath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &indexFile{Version: IndexSchema, Documents: map[string]*Document{}}, nil
		}
		return nil, zerr.Wrap(err, domain.ErrIndexFailed.Error())
	}

	var idx indexFile
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrIndexFailed, err.Error()), "path", indexPath(scopePath))
	}
	if idx.Version > IndexSchema {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedSchema, domain.IndexFileName), "schema", idx.Version)
	}
	if idx.Documents == nil {
		idx.Documents = map[string]*Document{}
	}
	return &idx, nil
}

func writeIndex(scopePath string, idx *indexFile) error {
	idx.Version = IndexSchema
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrIndexFailed.Error())
	}

	path := indexPath(scopePath)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrIndexFailed.Error())
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+domain.IndexFileName+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrIndexFailed.Error())
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrIndexFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrIndexFailed.Error())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.Wrap(err, domain.ErrIndexFailed.Error())
	}
	return nil
}
