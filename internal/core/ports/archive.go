package ports

import "go.trai.ch/bit/internal/core/domain"

// ArchiveCodec converts bits to and from their transport payload.
//
//go:generate mockgen -source=archive.go -destination=mocks/mock_archive.go -package=mocks
type ArchiveCodec interface {
	// Encode packs the bit's metadata and payload files into one archive.
	Encode(bit *domain.Bit) ([]byte, error)

	// Decode unpacks an archive produced by Encode.
	Decode(data []byte) (*domain.Bit, error)
}
