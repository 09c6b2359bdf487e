package snapshot

import (
	"slices"

	"github.com/arloliu/sigkit/endian"
	"github.com/arloliu/sigkit/format"
)

// Snapshot is a decoded, read-only set of named series.
type Snapshot struct {
	header  Header
	entries []IndexEntry
	byName  map[string]int
	byID    map[uint64]int
	values  []float64
}

func newSnapshot(header Header, entries []IndexEntry, values []float64) *Snapshot {
	s := &Snapshot{
		header:  header,
		entries: entries,
		byName:  make(map[string]int, len(entries)),
		byID:    make(map[uint64]int, len(entries)),
		values:  values,
	}
	for i, e := range entries {
		s.byName[e.Name] = i
		if _, exists := s.byID[e.ID]; !exists {
			s.byID[e.ID] = i
		}
	}

	return s
}

// Len returns the number of series.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Names returns the series names in the order they were added.
func (s *Snapshot) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}

	return names
}

// Series returns a copy of the values stored under name.
func (s *Snapshot) Series(name string) ([]float64, bool) {
	i, ok := s.byName[name]
	if !ok {
		return nil, false
	}

	return s.at(i), true
}

// SeriesByID returns a copy of the values of the series whose name hashes to
// id. When two names share an ID the first one added wins; use Series then.
func (s *Snapshot) SeriesByID(id uint64) ([]float64, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}

	return s.at(i), true
}

func (s *Snapshot) at(i int) []float64 {
	e := s.entries[i]
	return slices.Clone(s.values[e.Offset : e.Offset+e.Count])
}

// Entries returns a copy of the index.
func (s *Snapshot) Entries() []IndexEntry {
	return slices.Clone(s.entries)
}

// Compression returns the codec the payload was stored with.
func (s *Snapshot) Compression() format.CompressionType {
	return s.header.Compression
}

// IsBigEndian reports whether the snapshot was written big-endian.
func (s *Snapshot) IsBigEndian() bool {
	return endian.IsBigEndian(s.header.Engine)
}
