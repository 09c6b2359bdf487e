package collision

import (
	"github.com/arloliu/sigkit/errs"
	"github.com/arloliu/sigkit/internal/hash"
)

// Tracker records the series names added to a snapshot, rejects duplicates
// and notices when two different names hash to the same ID.
//
// Snapshots store every name, so a collision never loses data; it only means
// lookups by ID are ambiguous and callers should look series up by name.
type Tracker struct {
	byName       map[string]uint64 // name → hash ID
	byID         map[uint64]string // hash ID → first name seen
	names        []string          // insertion order
	hasCollision bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		byName: make(map[string]uint64),
		byID:   make(map[uint64]string),
	}
}

// Track registers name and returns its hash ID.
//
// It returns ErrEmptySeriesName for an empty name and ErrDuplicateSeries when
// the name was tracked before. A different name with the same hash is not an
// error; it sets the collision flag.
func (t *Tracker) Track(name string) (uint64, error) {
	if name == "" {
		return 0, errs.ErrEmptySeriesName
	}
	if _, exists := t.byName[name]; exists {
		return 0, errs.ErrDuplicateSeries
	}

	id := hash.ID(name)
	if _, exists := t.byID[id]; exists {
		t.hasCollision = true
	} else {
		t.byID[id] = name
	}
	t.byName[name] = id
	t.names = append(t.names, name)

	return id, nil
}

// HasCollision reports whether two tracked names share a hash ID.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in insertion order.
func (t *Tracker) Names() []string {
	return t.names
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset clears all tracked names and the collision flag, keeping map capacity.
func (t *Tracker) Reset() {
	clear(t.byName)
	clear(t.byID)
	t.names = t.names[:0]
	t.hasCollision = false
}
