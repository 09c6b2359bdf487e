package snapshot

import (
	"fmt"

	"github.com/arloliu/sigkit/endian"
	"github.com/arloliu/sigkit/errs"
	"github.com/arloliu/sigkit/format"
)

const (
	compressionMask uint8 = 0x0f
	byteOrderShift        = 7
)

// Header is the fixed-size section at the start of every snapshot.
type Header struct {
	// Version is the format version, format.SnapshotVersion when written.
	Version uint8 // byte offset 4
	// Compression is the codec applied to the payload.
	Compression format.CompressionType // byte offset 5, low nibble
	// Engine is the byte order of every field after the flags byte.
	Engine endian.EndianEngine // byte offset 5, top bit
	// SeriesCount is the number of index entries that follow the header.
	SeriesCount uint16 // byte offset 6-7
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // byte offset 8-15
}

// Bytes serializes the header into format.SnapshotHeaderSize bytes.
func (h *Header) Bytes() []byte {
	b := make([]byte, format.SnapshotHeaderSize)

	copy(b[0:4], format.SnapshotMagic)
	b[4] = h.Version
	b[5] = uint8(h.Compression)&compressionMask | endian.Flag(h.Engine)<<byteOrderShift
	h.Engine.PutUint16(b[6:8], h.SeriesCount)
	h.Engine.PutUint64(b[8:16], h.Checksum)

	return b
}

// Parse reads the header from data, which must be exactly
// format.SnapshotHeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != format.SnapshotHeaderSize {
		return errs.ErrInvalidHeaderSize
	}
	if string(data[0:4]) != format.SnapshotMagic {
		return fmt.Errorf("%w: got %q", errs.ErrInvalidMagic, data[0:4])
	}

	h.Version = data[4]
	if h.Version != format.SnapshotVersion {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}

	h.Compression = format.CompressionType(data[5] & compressionMask)
	engine, err := endian.FromFlag(data[5] >> byteOrderShift)
	if err != nil {
		return err
	}
	h.Engine = engine
	h.SeriesCount = h.Engine.Uint16(data[6:8])
	h.Checksum = h.Engine.Uint64(data[8:16])

	return nil
}

// ParseHeader parses the header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < format.SnapshotHeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:format.SnapshotHeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
