// Package snapshot stores named float64 series (time axes, raw and filtered
// signals, loss traces) in a compact binary container that a presentation
// layer can load without re-running the numerics.
//
// # Layout
//
//	+--------+---------+-------+-------+----------+
//	| magic  | version | flags | count | checksum |   16-byte header
//	| "SGKT" |  uint8  | uint8 | u16   | u64      |
//	+--------+---------+-------+-------+----------+
//	| index: count × (id u64, name len u16, name, points u32)
//	+------------------------------------------------+
//	| payload: all values as float64 bits, compressed |
//	+------------------------------------------------+
//
// The flags byte holds the compression type in its low nibble and the byte
// order in its top bit. Every multi-byte field after the flags byte uses that
// byte order. The checksum is the xxHash64 of the uncompressed payload and
// each id is the xxHash64 of the series name.
//
// # Usage
//
//	enc, err := snapshot.NewEncoder(snapshot.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	_ = enc.Add("time", t)
//	_ = enc.Add("filtered", filtered)
//	data, err := enc.Finish()
//
//	snap, err := snapshot.Decode(data)
//	filtered, ok := snap.Series("filtered")
//
// Encoders are single-use and not safe for concurrent use. A decoded Snapshot
// is immutable and safe to share.
package snapshot
