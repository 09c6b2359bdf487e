package snapshot

import (
	"fmt"
	"math"

	"github.com/arloliu/sigkit/compress"
	"github.com/arloliu/sigkit/errs"
	"github.com/arloliu/sigkit/format"
	"github.com/arloliu/sigkit/internal/hash"
)

// Decode parses and verifies a snapshot produced by Encoder.Finish.
//
// It checks the header, every index entry's ID against its name, the payload
// checksum and that the payload holds exactly the number of values the index
// declares. The returned Snapshot does not reference data.
func Decode(data []byte) (*Snapshot, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	entries, indexEnd, err := parseIndex(data, header)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, fmt.Errorf("snapshot payload: %w", err)
	}
	raw, err := codec.Decompress(data[indexEnd:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress snapshot payload: %w", err)
	}
	if sum := hash.Checksum(raw); sum != header.Checksum {
		return nil, fmt.Errorf("%w: header 0x%016x, payload 0x%016x", errs.ErrChecksumMismatch, header.Checksum, sum)
	}

	points := 0
	if len(entries) > 0 {
		last := entries[len(entries)-1]
		points = last.Offset + last.Count
	}
	if len(raw) != 8*points {
		return nil, fmt.Errorf("%w: index declares %d values, payload holds %d bytes", errs.ErrCorruptIndex, points, len(raw))
	}

	values := make([]float64, points)
	for i := range values {
		values[i] = math.Float64frombits(header.Engine.Uint64(raw[8*i:]))
	}

	return newSnapshot(header, entries, values), nil
}

// parseIndex reads header.SeriesCount entries following the header and
// returns them with absolute offsets and the byte offset where the payload
// starts.
func parseIndex(data []byte, header Header) ([]IndexEntry, int, error) {
	count := int(header.SeriesCount)
	entries := make([]IndexEntry, 0, count)
	seen := make(map[string]struct{}, count)

	pos := format.SnapshotHeaderSize
	offset := 0
	for i := range count {
		entry, n, err := parseIndexEntry(data[pos:], header.Engine)
		if err != nil {
			return nil, 0, fmt.Errorf("index entry %d: %w", i, err)
		}
		if entry.Name == "" {
			return nil, 0, fmt.Errorf("%w: entry %d has an empty name", errs.ErrCorruptIndex, i)
		}
		if entry.ID != hash.ID(entry.Name) {
			return nil, 0, fmt.Errorf("%w: entry %d id does not match name %q", errs.ErrCorruptIndex, i, entry.Name)
		}
		if _, dup := seen[entry.Name]; dup {
			return nil, 0, fmt.Errorf("%w: %q", errs.ErrDuplicateSeries, entry.Name)
		}
		seen[entry.Name] = struct{}{}

		entry.Offset = offset
		offset += entry.Count
		pos += n
		entries = append(entries, entry)
	}

	return entries, pos, nil
}
