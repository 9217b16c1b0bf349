package zuid

import (
	"fmt"
	"math"
	"math/big"
	"slices"
	"strings"
	"unicode/utf8"
)

// Preset alphabets. The position of a symbol is its digit value.
const (
	Base62      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	Base58      = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	Crockford32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	Base36      = "0123456789abcdefghijklmnopqrstuvwxyz"
	Hex         = "0123456789abcdef"

	DefaultCharset = Base62
)

var presets = map[string]string{
	"base62":      Base62,
	"base58":      Base58,
	"crockford32": Crockford32,
	"base36":      Base36,
	"hex":         Hex,
}

// LookupCharset returns the alphabet of a named preset such as "base62".
func LookupCharset(name string) (string, bool) {
	s, ok := presets[strings.ToLower(name)]
	return s, ok
}

// Charset is an ordered alphabet of unique symbols used as positional digits.
// The zero value is not usable; build one with NewCharset.
type Charset struct {
	symbols []rune
	index   map[rune]int
	base    *big.Int
}

// NewCharset validates symbols and returns the charset they define.
// At least two unique symbols are required.
func NewCharset(symbols string) (Charset, error) {
	if !utf8.ValidString(symbols) {
		return Charset{}, fmt.Errorf("%w: not valid UTF-8", ErrInvalidCharset)
	}
	runes := []rune(symbols)
	if len(runes) < 2 {
		return Charset{}, fmt.Errorf("%w: need at least 2 symbols, got %d", ErrInvalidCharset, len(runes))
	}

	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if j, dup := index[r]; dup {
			return Charset{}, fmt.Errorf("%w: symbol %q repeated at positions %d and %d", ErrInvalidCharset, r, j, i)
		}
		index[r] = i
	}

	return Charset{
		symbols: runes,
		index:   index,
		base:    big.NewInt(int64(len(runes))),
	}, nil
}

// MustCharset is like NewCharset but panics on an invalid alphabet.
func MustCharset(symbols string) Charset {
	c, err := NewCharset(symbols)
	if err != nil {
		panic(err)
	}
	return c
}

// Base returns the number of symbols.
func (c Charset) Base() int { return len(c.symbols) }

// Zero returns the symbol with digit value 0, used for padding.
func (c Charset) Zero() rune { return c.symbols[0] }

func (c Charset) String() string { return string(c.symbols) }

// Contains reports whether r belongs to the alphabet.
func (c Charset) Contains(r rune) bool {
	_, ok := c.index[r]
	return ok
}

// BitsPerSymbol is log2(Base()).
func (c Charset) BitsPerSymbol() float64 {
	return math.Log2(float64(len(c.symbols)))
}

// Encode writes n in positional notation. Zero encodes to the empty string and
// the result is never padded. Encode panics if n is negative.
func (c Charset) Encode(n *big.Int) string {
	switch n.Sign() {
	case -1:
		panic("zuid: cannot encode a negative number")
	case 0:
		return ""
	}

	var digits []rune
	q := new(big.Int).Set(n)
	r := new(big.Int)
	for q.Sign() > 0 {
		q.QuoRem(q, c.base, r)
		digits = append(digits, c.symbols[r.Int64()])
	}
	slices.Reverse(digits)
	return string(digits)
}

// EncodeUint64 is Encode for values that fit a machine word.
func (c Charset) EncodeUint64(v uint64) string {
	if v == 0 {
		return ""
	}
	base := uint64(len(c.symbols))
	var digits []rune
	for v > 0 {
		digits = append(digits, c.symbols[v%base])
		v /= base
	}
	slices.Reverse(digits)
	return string(digits)
}

// Decode parses s as a number written in this charset. Leading zero symbols
// are allowed and the empty string decodes to 0.
func (c Charset) Decode(s string) (*big.Int, error) {
	n := new(big.Int)
	digit := new(big.Int)
	for i, r := range s {
		d, ok := c.index[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidSymbol, r, i)
		}
		n.Mul(n, c.base)
		n.Add(n, digit.SetInt64(int64(d)))
	}
	return n, nil
}

// Pad left-pads s with the zero symbol up to width symbols. It never truncates.
func (c Charset) Pad(s string, width int) string {
	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	return strings.Repeat(string(c.symbols[0]), missing) + s
}

// Width returns how many symbols are needed to write any value of n bytes,
// i.e. the digit count of 2^(8n)-1.
func (c Charset) Width(n int) int {
	if n <= 0 {
		return 0
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	width := 0
	for p := big.NewInt(1); p.Cmp(limit) < 0; p.Mul(p, c.base) {
		width++
	}
	return width
}
