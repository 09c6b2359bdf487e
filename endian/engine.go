// Package endian selects the byte order used for snapshot headers and payloads.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so that
// encoders can append values directly:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, math.Float64bits(v))
//
// The engine in use is recorded in the snapshot header as a one-byte flag so
// that decoders can pick the matching engine with FromFlag.
package endian

import (
	"encoding/binary"
	"fmt"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

const (
	flagLittle uint8 = 0x0
	flagBig    uint8 = 0x1
)

// GetLittleEndianEngine returns the little-endian engine, the snapshot default.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0102)

	return b[0] == 0x01
}

// Flag returns the header flag describing engine.
func Flag(engine EndianEngine) uint8 {
	if IsBigEndian(engine) {
		return flagBig
	}

	return flagLittle
}

// FromFlag returns the engine for a header flag written by Flag.
func FromFlag(flag uint8) (EndianEngine, error) {
	switch flag {
	case flagLittle:
		return GetLittleEndianEngine(), nil
	case flagBig:
		return GetBigEndianEngine(), nil
	default:
		return nil, fmt.Errorf("unknown byte order flag 0x%02x", flag)
	}
}
