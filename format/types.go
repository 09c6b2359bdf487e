// Package format holds the wire-level constants shared by the snapshot and compress packages.
package format

import (
	"fmt"
	"strings"
)

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the payload as is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

// Snapshot layout constants.
const (
	SnapshotMagic      = "SGKT"
	SnapshotVersion    = uint8(1)
	SnapshotHeaderSize = 16
	MaxSeriesCount     = 1<<16 - 1
	MaxSeriesNameLen   = 1<<16 - 1
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a case-insensitive name ("none", "zstd", "s2", "lz4") to a CompressionType.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}
