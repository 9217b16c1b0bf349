package zuid

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"
)

// Parsed holds the segments of an id.
type Parsed struct {
	Prefix string
	// Timestamp is the zero time unless the factory is timestamped.
	Timestamp time.Time
	// Random is the numeric value of the random segment.
	Random *big.Int
	// RandomHex is the random segment as fixed-width big-endian bytes. Only set
	// in byte mode.
	RandomHex string
}

// Validate reports whether id could have been produced by this factory.
// Failures wrap ErrInvalidID.
func (f *Factory) Validate(id string) error {
	_, err := f.Parse(id)
	return err
}

// Parse splits id into its segments and decodes them.
func (f *Factory) Parse(id string) (*Parsed, error) {
	body, ok := strings.CutPrefix(id, f.cfg.Prefix)
	if !ok {
		return nil, fmt.Errorf("%w: missing prefix %q", ErrInvalidID, f.cfg.Prefix)
	}
	if n := f.prefixLen + utf8.RuneCountInString(body); n != f.length {
		return nil, fmt.Errorf("%w: expected length %d, got %d", ErrInvalidID, f.length, n)
	}

	runes := []rune(body)
	p := &Parsed{Prefix: f.cfg.Prefix}

	if f.cfg.Timestamped {
		ts, err := f.charset.Decode(string(runes[:f.tsWidth]))
		if err != nil {
			return nil, fmt.Errorf("%w: timestamp: %w", ErrInvalidID, err)
		}
		if !ts.IsInt64() {
			return nil, fmt.Errorf("%w: timestamp out of range", ErrInvalidID)
		}
		p.Timestamp = time.Unix(0, ts.Int64()).UTC()
	}

	random, err := f.charset.Decode(string(runes[f.tsWidth:]))
	if err != nil {
		return nil, fmt.Errorf("%w: random segment: %w", ErrInvalidID, err)
	}
	p.Random = random

	if f.randChars == 0 {
		if random.BitLen() > 8*f.randBytes {
			return nil, fmt.Errorf("%w: random segment exceeds %d bytes", ErrInvalidID, f.randBytes)
		}
		p.RandomHex = hex.EncodeToString(random.FillBytes(make([]byte, f.randBytes)))
	}

	return p, nil
}
