package zuid

import "errors"

// Construction errors. They are returned by New and never by Generate.
var (
	// ErrCapacity means an explicit length is too short for the configured entropy.
	ErrCapacity = errors.New("zuid: length too short for entropy")
	// ErrTimestampCapacity means the entropy budget cannot host the timestamp segment.
	ErrTimestampCapacity = errors.New("zuid: entropy too small for timestamp")
	// ErrConflictingSizing means byte mode and character mode settings were mixed.
	ErrConflictingSizing = errors.New("zuid: conflicting sizing options")
	ErrInvalidSize       = errors.New("zuid: invalid size")
	ErrInvalidCharset    = errors.New("zuid: invalid charset")
)

var (
	// ErrEntropy wraps a failure of the random source.
	ErrEntropy = errors.New("zuid: entropy source failed")

	ErrInvalidSymbol   = errors.New("zuid: symbol not in charset")
	ErrInvalidID       = errors.New("zuid: invalid id")
	ErrInvalidEstimate = errors.New("zuid: invalid estimate parameters")
)
