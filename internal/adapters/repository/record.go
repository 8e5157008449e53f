package repository

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/zerr"
)

// checksumFileName stores the xxhash of the record next to its files.
const checksumFileName = ".checksum"

// WriteRecord lays out bit's files in dir together with its checksum.
// dir must not hold a previous record.
func WriteRecord(dir string, bit *domain.Bit) error {
	files, err := bitFiles(bit)
	if err != nil {
		return err
	}

	sum, err := bit.Checksum()
	if err != nil {
		return err
	}
	files[checksumFileName] = []byte(strconv.FormatUint(sum, 16))

	return writeFiles(dir, files)
}

func bitFiles(bit *domain.Bit) (map[string][]byte, error) {
	meta, err := bit.Meta.Encode()
	if err != nil {
		return nil, err
	}

	files := map[string][]byte{domain.BitJSONName: meta}

	impl, err := payloadName(bit.Meta.Impl)
	if err != nil {
		return nil, err
	}
	files[impl] = bit.Impl

	if bit.Meta.Spec != "" && len(bit.Spec) > 0 {
		spec, err := payloadName(bit.Meta.Spec)
		if err != nil {
			return nil, err
		}
		files[spec] = bit.Spec
	}

	for _, p := range bit.DistPaths() {
		rel := filepath.FromSlash(p)
		if !filepath.IsLocal(rel) {
			return nil, zerr.With(zerr.Wrap(domain.ErrValidation, "dist path escapes record"), "path", p)
		}
		files[filepath.Join(domain.DistDirName, rel)] = bit.Dist[p]
	}
	return files, nil
}

func writeFiles(dir string, files map[string][]byte) error {
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
			return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
		}
		if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
		}
	}
	return nil
}

// ReadRecord loads the bit laid out in dir and verifies its checksum when one is present.
func ReadRecord(dir string) (*domain.Bit, error) {
	metaData, err := os.ReadFile(filepath.Join(dir, domain.BitJSONName)) //nolint:gosec // path built from store root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrBitNotFound, "missing bit.json"), "path", dir)
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	meta, err := domain.DecodeBitJSON(metaData)
	if err != nil {
		return nil, zerr.With(err, "path", dir)
	}

	bit := &domain.Bit{Meta: meta}

	impl, err := payloadName(meta.Impl)
	if err != nil {
		return nil, err
	}
	bit.Impl, err = os.ReadFile(filepath.Join(dir, impl)) //nolint:gosec // path built from store root
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "file", impl)
	}

	if meta.Spec != "" {
		spec, err := payloadName(meta.Spec)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(filepath.Join(dir, spec)) //nolint:gosec // path built from store root
		switch {
		case err == nil:
			bit.Spec = data
		case !errors.Is(err, fs.ErrNotExist):
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "file", spec)
		}
	}

	if bit.Dist, err = readDist(filepath.Join(dir, domain.DistDirName)); err != nil {
		return nil, err
	}

	if err := verifyChecksum(dir, bit); err != nil {
		return nil, err
	}
	return bit, nil
}

func readDist(root string) (map[string][]byte, error) {
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	dist := make(map[string][]byte)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path) //nolint:gosec // walking our own record
		if err != nil {
			return err
		}
		dist[filepath.ToSlash(rel)] = data
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return dist, nil
}

func verifyChecksum(dir string, bit *domain.Bit) error {
	recorded, err := os.ReadFile(filepath.Join(dir, checksumFileName)) //nolint:gosec // path built from store root
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	sum, err := bit.Checksum()
	if err != nil {
		return err
	}
	if string(recorded) != strconv.FormatUint(sum, 16) {
		return zerr.With(zerr.Wrap(domain.ErrChecksumMismatch, "record modified on disk"), "path", dir)
	}
	return nil
}

func payloadName(name string) (string, error) {
	if name == "" || filepath.Base(name) != name || name == "." || name == ".." ||
		name == domain.BitJSONName || name == domain.DistDirName || name == checksumFileName {
		return "", zerr.With(zerr.Wrap(domain.ErrValidation, "invalid payload file name"), "file", name)
	}
	return name, nil
}
