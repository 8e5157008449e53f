package repository

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Layout reads and writes bits as plain working directories, the shape a
// consumer edits and a build plugin runs in. Unlike records, these carry no
// checksum.
type Layout struct{}

// NewLayout creates a Layout.
func NewLayout() *Layout {
	return &Layout{}
}

// WriteDir lays bit's files out in dir, overwriting files of the same name.
func (l *Layout) WriteDir(dir string, bit *domain.Bit) error {
	files, err := bitFiles(bit)
	if err != nil {
		return err
	}
	return writeFiles(dir, files)
}

// ReadDir loads the bit described by dir's bit.json.
func (l *Layout) ReadDir(dir string) (*domain.Bit, error) {
	return ReadRecord(dir)
}

// ReadManifest reads the project manifest in dir.
func (l *Layout) ReadManifest(dir string) (domain.ConsumerJSON, error) {
	data, err := os.ReadFile(filepath.Join(dir, domain.BitJSONName)) //nolint:gosec // project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ConsumerJSON{}, zerr.With(zerr.Wrap(domain.ErrConsumerNotFound, "missing project manifest"), "path", dir)
		}
		return domain.ConsumerJSON{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	m, err := domain.DecodeConsumerJSON(data)
	if err != nil {
		return domain.ConsumerJSON{}, zerr.With(err, "path", dir)
	}
	return m, nil
}

// WriteManifest replaces the project manifest in dir atomically.
func (l *Layout) WriteManifest(dir string, manifest domain.ConsumerJSON) error {
	data, err := manifest.Encode()
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(dir, domain.BitJSONName), data, domain.FilePerm)
}
