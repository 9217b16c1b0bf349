package zuid

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DefaultEntropySize matches the 16 bytes of a UUID.
	DefaultEntropySize = 16

	// timestampBytes is the size of the nanosecond timestamp segment.
	timestampBytes = 8
)

// Config describes a Factory. Byte mode (EntropySize, Length) and character
// mode (Chars) are exclusive.
type Config struct {
	// Prefix is prepended verbatim to every id.
	Prefix string
	// EntropySize is the number of random bytes per id in byte mode, including
	// the 8 timestamp bytes when Timestamped is set. Defaults to 16.
	EntropySize int
	// Length is an explicit total id length, prefix included, in byte mode.
	// Zero derives the shortest length that fits the entropy.
	Length int
	// Chars selects character mode: the number of characters after the prefix,
	// timestamp segment included.
	Chars int
	// Timestamped reserves a leading segment holding the generation time in
	// nanoseconds, which makes ids sort in generation order.
	Timestamped bool
	// Charset is the encoding alphabet. Empty means DefaultCharset.
	Charset string
}

// Factory mints ids for one Config. It is immutable and safe for concurrent use.
type Factory struct {
	cfg     Config
	charset Charset
	entropy Entropy
	clock   Clock

	prefixLen int
	length    int
	tsWidth   int
	randWidth int
	randBytes int
	randChars int
}

// Option customises the collaborators of a Factory.
type Option func(*Factory)

// WithEntropy replaces the default crypto/rand source.
func WithEntropy(e Entropy) Option {
	return func(f *Factory) { f.entropy = e }
}

// WithReader draws all randomness from r.
func WithReader(r io.Reader) Option {
	return WithEntropy(ReaderEntropy(r))
}

// WithClock replaces time.Now for timestamped ids.
func WithClock(c Clock) Option {
	return func(f *Factory) { f.clock = c }
}

// New validates cfg and returns a Factory for it.
func New(cfg Config, opts ...Option) (*Factory, error) {
	if cfg.Charset == "" {
		cfg.Charset = DefaultCharset
	}
	charset, err := NewCharset(cfg.Charset)
	if err != nil {
		return nil, err
	}
	if cfg.EntropySize < 0 || cfg.Length < 0 || cfg.Chars < 0 {
		return nil, fmt.Errorf("%w: entropy size %d, length %d, chars %d must not be negative",
			ErrInvalidSize, cfg.EntropySize, cfg.Length, cfg.Chars)
	}

	f := &Factory{
		charset:   charset,
		entropy:   CryptoEntropy(),
		clock:     time.Now,
		prefixLen: utf8.RuneCountInString(cfg.Prefix),
	}
	for _, opt := range opts {
		opt(f)
	}

	if cfg.Timestamped {
		f.tsWidth = charset.Width(timestampBytes)
	}

	if cfg.Chars > 0 {
		err = f.sizeChars(&cfg)
	} else {
		err = f.sizeBytes(&cfg)
	}
	if err != nil {
		return nil, err
	}

	f.cfg = cfg
	return f, nil
}

func (f *Factory) sizeChars(cfg *Config) error {
	if cfg.EntropySize != 0 || cfg.Length != 0 {
		return fmt.Errorf("%w: chars %d cannot be combined with entropy size %d or length %d",
			ErrConflictingSizing, cfg.Chars, cfg.EntropySize, cfg.Length)
	}
	if f.charset.Base() > maxSymbolBase {
		return fmt.Errorf("%w: character mode supports at most %d symbols, got %d",
			ErrInvalidCharset, maxSymbolBase, f.charset.Base())
	}
	if cfg.Timestamped && cfg.Chars <= f.tsWidth {
		return fmt.Errorf("%w: timestamps use %d characters, so timestamped ids need more than %d chars, got %d",
			ErrTimestampCapacity, f.tsWidth, f.tsWidth, cfg.Chars)
	}

	f.randChars = cfg.Chars - f.tsWidth
	f.randWidth = f.randChars
	f.length = f.prefixLen + cfg.Chars
	return nil
}

func (f *Factory) sizeBytes(cfg *Config) error {
	if cfg.EntropySize == 0 {
		cfg.EntropySize = DefaultEntropySize
	}

	f.randBytes = cfg.EntropySize
	if cfg.Timestamped {
		if cfg.EntropySize <= timestampBytes {
			return fmt.Errorf("%w: timestamps use %d bytes, so timestamped ids need at least %d bytes, got %d",
				ErrTimestampCapacity, timestampBytes, timestampBytes+1, cfg.EntropySize)
		}
		f.randBytes -= timestampBytes
	}

	minimum := f.prefixLen + f.tsWidth + f.charset.Width(f.randBytes)
	switch {
	case cfg.Length == 0:
		cfg.Length = minimum
	case cfg.Length < minimum:
		return fmt.Errorf("%w: %d bytes need at least %d characters, got %d",
			ErrCapacity, cfg.EntropySize, minimum, cfg.Length)
	}

	f.length = cfg.Length
	f.randWidth = cfg.Length - f.prefixLen - f.tsWidth
	return nil
}

// Generate returns a new id of exactly Length() characters. It only fails when
// the entropy source does.
func (f *Factory) Generate() (string, error) {
	var b strings.Builder
	b.Grow(len(f.cfg.Prefix) + f.length - f.prefixLen)
	b.WriteString(f.cfg.Prefix)

	if f.cfg.Timestamped {
		b.WriteString(f.timestamp(f.clock()))
	}

	random, err := f.random()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEntropy, err)
	}
	b.WriteString(random)

	return b.String(), nil
}

// MustGenerate is like Generate but panics if the entropy source fails.
func (f *Factory) MustGenerate() string {
	id, err := f.Generate()
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateBatch returns count independent ids.
func (f *Factory) GenerateBatch(count int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: batch count must be positive, got %d", ErrInvalidSize, count)
	}
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := f.Generate()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *Factory) timestamp(t time.Time) string {
	ns := t.UnixNano()
	if ns < 0 {
		ns = 0
	}
	return f.charset.Pad(f.charset.EncodeUint64(uint64(ns)), f.tsWidth)
}

func (f *Factory) random() (string, error) {
	if f.randChars > 0 {
		return f.entropy.Symbols(f.charset.String(), f.randChars)
	}

	buf := make([]byte, f.randBytes)
	if err := f.entropy.Fill(buf); err != nil {
		return "", err
	}
	n := new(big.Int).SetBytes(buf)
	return f.charset.Pad(f.charset.Encode(n), f.randWidth), nil
}

// Config returns the configuration with defaults filled in. Passing it back to
// New yields an equivalent Factory.
func (f *Factory) Config() Config { return f.cfg }

// Charset returns the encoding alphabet.
func (f *Factory) Charset() Charset { return f.charset }

// Length returns the number of characters of every id, prefix included.
func (f *Factory) Length() int { return f.length }

// CharMode reports whether the factory draws one random symbol per character.
func (f *Factory) CharMode() bool { return f.randChars > 0 }

// Bits approximates how many bits the characters after the prefix can represent.
func (f *Factory) Bits() int {
	return int(math.Floor(float64(f.length-f.prefixLen) * f.charset.BitsPerSymbol()))
}

// EntropyBits is the number of random bits drawn for every id.
func (f *Factory) EntropyBits() float64 {
	if f.randChars > 0 {
		return float64(f.randChars) * f.charset.BitsPerSymbol()
	}
	return float64(8 * f.randBytes)
}

// budgetBits is the size of the whole entropy budget, timestamp included.
func (f *Factory) budgetBits() float64 {
	if f.randChars > 0 {
		return float64(f.cfg.Chars) * f.charset.BitsPerSymbol()
	}
	return float64(8 * f.cfg.EntropySize)
}
