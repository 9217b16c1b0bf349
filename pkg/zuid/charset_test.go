package zuid

import (
	"math/big"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func maxValue(bytes int) *big.Int {
	n := new(big.Int).Lsh(big.NewInt(1), uint(8*bytes))
	return n.Sub(n, big.NewInt(1))
}

func TestNewCharset_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
	}{
		{"empty", ""},
		{"single symbol", "a"},
		{"duplicate", "abca"},
		{"invalid utf8", "ab\xff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCharset(tt.symbols)
			assert.ErrorIs(t, err, ErrInvalidCharset)
		})
	}
}

func TestLookupCharset(t *testing.T) {
	s, ok := LookupCharset("Crockford32")
	require.True(t, ok)
	assert.Equal(t, Crockford32, s)

	_, ok = LookupCharset("base99")
	assert.False(t, ok)
}

func TestEncode_Zero(t *testing.T) {
	c := MustCharset(DefaultCharset)

	assert.Equal(t, "", c.Encode(big.NewInt(0)))
	assert.Equal(t, "", c.EncodeUint64(0))
}

func TestEncode_Values(t *testing.T) {
	c := MustCharset(DefaultCharset)

	tests := []struct {
		value uint64
		want  string
	}{
		{1, "1"},
		{61, "z"},
		{62, "10"},
		{255, "47"},
		{1<<64 - 1, "LygHa16AHYF"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.EncodeUint64(tt.value), "value %d", tt.value)
		assert.Equal(t, tt.want, c.Encode(new(big.Int).SetUint64(tt.value)), "value %d", tt.value)
	}
}

func TestEncode_NegativePanics(t *testing.T) {
	c := MustCharset(DefaultCharset)
	assert.Panics(t, func() { c.Encode(big.NewInt(-1)) })
}

func TestEncode_MaxValueFitsWidth(t *testing.T) {
	charsets := []string{Base62, Base58, Crockford32, Base36, Hex}

	for _, symbols := range charsets {
		c := MustCharset(symbols)
		for bytes := 1; bytes <= 32; bytes++ {
			encoded := c.Encode(maxValue(bytes))
			width := c.Width(bytes)
			assert.Len(t, encoded, width, "base %d, %d bytes", c.Base(), bytes)
			assert.Len(t, c.Pad(encoded, width), width)
		}
	}

	assert.Equal(t, "7n42DGM5Tflk9n8mt7Fhc7", MustCharset(Base62).Encode(maxValue(16)))
}

func TestWidth(t *testing.T) {
	tests := []struct {
		symbols string
		bytes   int
		want    int
	}{
		{Base62, 0, 0},
		{Base62, 8, 11},
		{Base62, 16, 22},
		{Base58, 16, 22},
		{Base36, 16, 25},
		{Crockford32, 8, 13},
		{Crockford32, 16, 26},
		{Hex, 16, 32},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MustCharset(tt.symbols).Width(tt.bytes), "base %d, %d bytes", len(tt.symbols), tt.bytes)
	}
}

func TestDecode(t *testing.T) {
	c := MustCharset(DefaultCharset)

	n, err := c.Decode("")
	require.NoError(t, err)
	assert.Zero(t, n.Sign())

	n, err = c.Decode("000z")
	require.NoError(t, err)
	assert.Equal(t, int64(61), n.Int64())

	_, err = c.Decode("ab-c")
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestDecode_RoundTrip(t *testing.T) {
	c := MustCharset(Base58)

	for _, v := range []*big.Int{big.NewInt(1), big.NewInt(57), big.NewInt(58), maxValue(16), maxValue(32)} {
		decoded, err := c.Decode(c.Encode(v))
		require.NoError(t, err)
		assert.Equal(t, 0, v.Cmp(decoded), "value %s", v)
	}
}

func TestPad(t *testing.T) {
	c := MustCharset(Base58)

	assert.Equal(t, "111z", c.Pad("z", 4))
	assert.Equal(t, "abcdef", c.Pad("abcdef", 3), "padding must never truncate")
}

func TestEncode_MatchesKSUID(t *testing.T) {
	c := MustCharset(Base62)

	for i := 0; i < 100; i++ {
		k := ksuid.New()
		encoded := c.Pad(c.Encode(new(big.Int).SetBytes(k.Bytes())), c.Width(len(k.Bytes())))
		assert.Equal(t, k.String(), encoded)
	}
}

func TestEncode_MatchesULID(t *testing.T) {
	c := MustCharset(Crockford32)

	for i := 0; i < 100; i++ {
		u := ulid.Make()
		encoded := c.Pad(c.Encode(new(big.Int).SetBytes(u[:])), c.Width(len(u)))
		assert.Equal(t, u.String(), encoded)

		decoded, err := c.Decode(u.String())
		require.NoError(t, err)
		assert.Equal(t, u[:], decoded.FillBytes(make([]byte, len(u))))
	}
}
