package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in   string
		want CompressionType
	}{
		{"", CompressionNone},
		{"none", CompressionNone},
		{"ZSTD", CompressionZstd},
		{" s2 ", CompressionS2},
		{"lz4", CompressionLZ4},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCompression(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCompression("brotli")
	require.Error(t, err)
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}
