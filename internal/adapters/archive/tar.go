// Package archive packs bits into tar archives for push, fetch and registration.
package archive

import (
	"archive/tar"
	"bytes"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxEntrySize bounds a single archive member.
const maxEntrySize = 64 << 20

// epoch is stamped on every header so equal bits pack to equal bytes.
var epoch = time.Unix(0, 0).UTC()

// TarCodec implements ports.ArchiveCodec.
type TarCodec struct{}

// NewTarCodec creates a TarCodec.
func NewTarCodec() *TarCodec {
	return &TarCodec{}
}

// Encode writes bit.json, the implementation, the spec and dist files in that order.
func (c *TarCodec) Encode(bit *domain.Bit) ([]byte, error) {
	if bit == nil {
		return nil, zerr.Wrap(domain.ErrArchiveFailed, "nil bit")
	}
	meta, err := bit.Meta.Encode()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	write := func(name string, data []byte) error {
		hdr := &tar.Header{
			Name:     name,
			Mode:     0o644,
			Size:     int64(len(data)),
			ModTime:  epoch,
			Typeflag: tar.TypeReg,
			Format:   tar.FormatPAX,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrArchiveFailed, err.Error()), "entry", name)
		}
		if _, err := tw.Write(data); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrArchiveFailed, err.Error()), "entry", name)
		}
		return nil
	}

	if err := write(domain.BitJSONName, meta); err != nil {
		return nil, err
	}
	if err := write(bit.Meta.Impl, bit.Impl); err != nil {
		return nil, err
	}
	if bit.Meta.Spec != "" && len(bit.Spec) > 0 {
		if err := write(bit.Meta.Spec, bit.Spec); err != nil {
			return nil, err
		}
	}
	for _, p := range bit.DistPaths() {
		if err := write(domain.DistDirName+"/"+p, bit.Dist[p]); err != nil {
			return nil, err
		}
	}

	if err := tw.Close(); err != nil {
		return nil, zerr.Wrap(domain.ErrArchiveFailed, err.Error())
	}
	return buf.Bytes(), nil
}

// Decode reads an archive produced by Encode.
func (c *TarCodec) Decode(data []byte) (*domain.Bit, error) {
	files := make(map[string][]byte)
	tr := tar.NewReader(bytes.NewReader(data))
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, zerr.Wrap(domain.ErrArchiveFailed, err.Error())
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		name, err := cleanEntryName(hdr.Name)
		if err != nil {
			return nil, err
		}
		if hdr.Size > maxEntrySize {
			return nil, zerr.With(zerr.Wrap(domain.ErrArchiveFailed, "entry too large"), "entry", name)
		}
		content, err := io.ReadAll(io.LimitReader(tr, maxEntrySize))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrArchiveFailed, err.Error()), "entry", name)
		}
		files[name] = content
	}

	metaData, ok := files[domain.BitJSONName]
	if !ok {
		return nil, zerr.Wrap(domain.ErrArchiveFailed, "archive has no bit.json")
	}
	meta, err := domain.DecodeBitJSON(metaData)
	if err != nil {
		return nil, err
	}

	bit := domain.NewBit(meta, files[meta.Impl], nil)
	if meta.Spec != "" {
		bit.Spec = files[meta.Spec]
	}
	for name, content := range files {
		if rel, ok := strings.CutPrefix(name, domain.DistDirName+"/"); ok {
			if bit.Dist == nil {
				bit.Dist = make(map[string][]byte)
			}
			bit.Dist[rel] = content
		}
	}
	return bit, nil
}

func cleanEntryName(name string) (string, error) {
	clean := path.Clean(strings.TrimPrefix(name, "./"))
	if clean == "." || path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", zerr.With(zerr.Wrap(domain.ErrArchiveFailed, "unsafe entry name"), "entry", name)
	}
	return clean, nil
}
