package snapshot

import (
	"fmt"
	"math"

	"github.com/arloliu/sigkit/endian"
	"github.com/arloliu/sigkit/errs"
)

// indexEntryFixedSize is the size of an index entry without its name bytes.
const indexEntryFixedSize = 8 + 2 + 4

// MaxSeriesPoints is the largest number of values one series can hold.
const MaxSeriesPoints uint64 = math.MaxUint32

// IndexEntry describes one series in the snapshot index.
//
// On disk an entry is id (8 bytes), name length (2 bytes), name, and point
// count (4 bytes). Offset is not stored; it is rebuilt while decoding by
// accumulating the point counts of the preceding entries.
type IndexEntry struct {
	// ID is the xxHash64 of Name.
	ID uint64
	// Name is the series name, at most format.MaxSeriesNameLen bytes.
	Name string
	// Count is the number of float64 values in the series.
	Count int
	// Offset is the index of the first value in the decoded payload, in values.
	Offset int
}

// size returns the number of bytes the entry occupies on disk.
func (e *IndexEntry) size() int {
	return indexEntryFixedSize + len(e.Name)
}

// AppendTo appends the on-disk form of the entry to buf.
func (e *IndexEntry) AppendTo(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint64(buf, e.ID)
	buf = engine.AppendUint16(buf, uint16(len(e.Name))) //nolint: gosec
	buf = append(buf, e.Name...)
	buf = engine.AppendUint32(buf, uint32(e.Count)) //nolint: gosec

	return buf
}

// parseIndexEntry reads one entry from the start of data and returns it with
// the number of bytes consumed.
func parseIndexEntry(data []byte, engine endian.EndianEngine) (IndexEntry, int, error) {
	if len(data) < indexEntryFixedSize {
		return IndexEntry{}, 0, fmt.Errorf("%w: truncated entry", errs.ErrCorruptIndex)
	}

	id := engine.Uint64(data[0:8])
	nameLen := int(engine.Uint16(data[8:10]))
	end := 10 + nameLen + 4
	if len(data) < end {
		return IndexEntry{}, 0, fmt.Errorf("%w: truncated name", errs.ErrCorruptIndex)
	}

	return IndexEntry{
		ID:    id,
		Name:  string(data[10 : 10+nameLen]),
		Count: int(engine.Uint32(data[10+nameLen : end])),
	}, end, nil
}
