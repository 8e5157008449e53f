package repository

import (
	"os"
	"path/filepath"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Scratch is a disposable directory. Nothing in it is authoritative.
type Scratch struct {
	dir string
}

// NewScratch creates a Scratch at dir.
func NewScratch(dir string) *Scratch {
	return &Scratch{dir: dir}
}

// Path returns the directory.
func (s *Scratch) Path() string {
	return s.dir
}

// EnsureDir creates the directory. It is safe to call repeatedly.
func (s *Scratch) EnsureDir() error {
	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", s.dir)
	}
	return nil
}

// Clear removes everything inside the directory and recreates it.
func (s *Scratch) Clear() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear scratch directory"), "path", s.dir)
	}
	return s.EnsureDir()
}

// MkdirTemp creates a fresh directory inside the scratch space.
func (s *Scratch) MkdirTemp(pattern string) (string, error) {
	if err := s.EnsureDir(); err != nil {
		return "", err
	}
	dir, err := os.MkdirTemp(s.dir, pattern)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}
	return filepath.Clean(dir), nil
}
