package snapshot

import (
	"fmt"
	"math"

	"github.com/arloliu/sigkit/compress"
	"github.com/arloliu/sigkit/errs"
	"github.com/arloliu/sigkit/format"
	"github.com/arloliu/sigkit/internal/collision"
	"github.com/arloliu/sigkit/internal/hash"
	"github.com/arloliu/sigkit/internal/options"
	"github.com/arloliu/sigkit/internal/pool"
)

// Encoder assembles a snapshot from named series.
//
// Note: an Encoder is NOT thread-safe and NOT reusable. After Finish, create
// a new Encoder.
type Encoder struct {
	cfg      *encoderConfig
	tracker  *collision.Tracker
	entries  []IndexEntry
	payload  *pool.ByteBuffer
	points   int
	stats    compress.Stats
	finished bool
}

// NewEncoder creates an empty Encoder.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg, err := options.Build(defaultEncoderConfig(), nil, opts...)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		cfg:     cfg,
		tracker: collision.NewTracker(),
		payload: pool.GetSnapshotBuffer(),
	}, nil
}

// Add appends a series. The values are copied, so the caller may reuse the
// slice afterwards. An empty series is allowed.
//
// It returns ErrEmptySeriesName, ErrDuplicateSeries, ErrTooManySeries or
// ErrEncoderFinished, and ErrInvalidParameter for a name longer than
// format.MaxSeriesNameLen bytes or more than MaxSeriesPoints values.
func (e *Encoder) Add(name string, values []float64) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if len(e.entries) >= format.MaxSeriesCount {
		return fmt.Errorf("%w: limit is %d", errs.ErrTooManySeries, format.MaxSeriesCount)
	}
	if len(name) > format.MaxSeriesNameLen {
		return fmt.Errorf("%w: series name is %d bytes, limit is %d",
			errs.ErrInvalidParameter, len(name), format.MaxSeriesNameLen)
	}
	if uint64(len(values)) > MaxSeriesPoints {
		return fmt.Errorf("%w: series %q has %d points, limit is %d",
			errs.ErrInvalidParameter, name, len(values), MaxSeriesPoints)
	}

	id, err := e.tracker.Track(name)
	if err != nil {
		return fmt.Errorf("series %q: %w", name, err)
	}

	engine := e.cfg.engine
	e.payload.Grow(8 * len(values))
	for _, v := range values {
		e.payload.B = engine.AppendUint64(e.payload.B, math.Float64bits(v))
	}

	e.entries = append(e.entries, IndexEntry{ID: id, Name: name, Count: len(values), Offset: e.points})
	e.points += len(values)

	return nil
}

// Len returns the number of series added so far.
func (e *Encoder) Len() int {
	return len(e.entries)
}

// HasCollision reports whether two added names share a hash ID.
func (e *Encoder) HasCollision() bool {
	return e.tracker.HasCollision()
}

// Finish compresses the payload and returns the complete snapshot.
// The Encoder cannot be used afterwards.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true
	defer func() {
		pool.PutSnapshotBuffer(e.payload)
		e.payload = nil
	}()

	raw := e.payload.Bytes()
	compressed, stats, err := compress.CompressWithStats(e.cfg.compression, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to compress snapshot payload: %w", err)
	}
	e.stats = stats

	header := Header{
		Version:     format.SnapshotVersion,
		Compression: e.cfg.compression,
		Engine:      e.cfg.engine,
		SeriesCount: uint16(len(e.entries)), //nolint: gosec
		Checksum:    hash.Checksum(raw),
	}

	indexSize := 0
	for i := range e.entries {
		indexSize += e.entries[i].size()
	}

	out := make([]byte, 0, format.SnapshotHeaderSize+indexSize+len(compressed))
	out = append(out, header.Bytes()...)
	for i := range e.entries {
		out = e.entries[i].AppendTo(out, e.cfg.engine)
	}
	out = append(out, compressed...)

	return out, nil
}

// Stats returns the payload compression statistics of the last Finish call.
func (e *Encoder) Stats() compress.Stats {
	return e.stats
}
