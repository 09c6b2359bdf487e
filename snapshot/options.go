package snapshot

import (
	"fmt"

	"github.com/arloliu/sigkit/endian"
	"github.com/arloliu/sigkit/format"
	"github.com/arloliu/sigkit/internal/options"
)

type encoderConfig struct {
	compression format.CompressionType
	engine      endian.EndianEngine
}

func defaultEncoderConfig() *encoderConfig {
	return &encoderConfig{
		compression: format.CompressionZstd,
		engine:      endian.GetLittleEndianEngine(),
	}
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*encoderConfig]

// WithCompression selects the payload codec. The default is Zstd.
func WithCompression(ct format.CompressionType) EncoderOption {
	return options.New(func(cfg *encoderConfig) error {
		switch ct {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.compression = ct
			return nil
		default:
			return fmt.Errorf("invalid snapshot compression: %v", ct)
		}
	})
}

// WithLittleEndian writes multi-byte fields least significant byte first. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes multi-byte fields most significant byte first.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.engine = endian.GetBigEndianEngine()
	})
}
