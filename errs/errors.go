// Package errs defines the sentinel errors returned by sigkit packages.
//
// Callers match them with errors.Is; functions wrap them with call-site
// context using fmt.Errorf("...: %w", err).
package errs

import "errors"

// Numerical routine errors.
var (
	// ErrDegenerateInput is returned when regression input has no variation in x.
	ErrDegenerateInput = errors.New("degenerate input: x values have no variation")
	// ErrInvalidParameter is returned for out-of-range learning, filter or noise parameters.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidSeries is returned when a sample series is too short or x and y lengths differ.
	ErrInvalidSeries = errors.New("invalid sample series")
	// ErrLengthMismatch is returned by elementwise helpers when input lengths differ.
	ErrLengthMismatch = errors.New("length mismatch")
)

// Snapshot format errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid snapshot header size")
	ErrInvalidMagic       = errors.New("invalid snapshot magic")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrChecksumMismatch   = errors.New("snapshot payload checksum mismatch")
	ErrCorruptIndex       = errors.New("corrupt snapshot index")
	ErrDuplicateSeries    = errors.New("duplicate series name")
	ErrEmptySeriesName    = errors.New("series name cannot be empty")
	ErrTooManySeries      = errors.New("too many series in snapshot")
	ErrEncoderFinished    = errors.New("snapshot encoder already finished")
)
