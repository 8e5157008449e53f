package repository

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/zerr"
)

// writeFileAtomic writes data to a temp file next to path and renames it into place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

// replaceDir moves a fully written staging directory to final.
// An existing final directory is first moved aside so readers never observe a partial record.
func replaceDir(staging, final string) (created bool, err error) {
	if err := os.MkdirAll(filepath.Dir(final), domain.DirPerm); err != nil {
		return false, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	_, statErr := os.Stat(final)
	switch {
	case errors.Is(statErr, fs.ErrNotExist):
		if err := os.Rename(staging, final); err != nil {
			return false, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
		}
		return true, nil
	case statErr != nil:
		return false, zerr.Wrap(statErr, domain.ErrStoreReadFailed.Error())
	}

	trash, err := os.MkdirTemp(filepath.Dir(final), "."+filepath.Base(final)+".old-*")
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	// MkdirTemp reserves the name; the rename below needs it absent.
	if err := os.Remove(trash); err != nil {
		return false, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(final, trash); err != nil {
		return false, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(staging, final); err != nil {
		_ = os.Rename(trash, final)
		return false, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	_ = os.RemoveAll(trash)
	return false, nil
}

// isHidden reports whether a directory entry is a staging or trash leftover.
func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
