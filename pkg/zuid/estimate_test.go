package zuid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedYears(t *testing.T) {
	bits, rate, p := 64.0, 10.0, 0.5
	direct := math.Sqrt(2*math.Pow(2, bits)*-math.Log(1-p)) / (rate * secondsPerYear)

	assert.InEpsilon(t, direct, ExpectedYears(bits, rate, p), 1e-9)
}

func TestCollisionYears_Default(t *testing.T) {
	f, err := New(Config{})
	require.NoError(t, err)

	years, err := f.CollisionYears(1000, 0.01)
	require.NoError(t, err)
	assert.InEpsilon(t, 82931286.1667, years, 1e-6)
}

func TestCollisionYears_TimestampCountsTowardBudget(t *testing.T) {
	plain, err := New(Config{EntropySize: 16})
	require.NoError(t, err)
	ts, err := New(Config{EntropySize: 16, Timestamped: true})
	require.NoError(t, err)

	a, err := plain.CollisionYears(1000, 0.01)
	require.NoError(t, err)
	b, err := ts.CollisionYears(1000, 0.01)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCollisionYears_Invalid(t *testing.T) {
	f, err := New(Config{})
	require.NoError(t, err)

	tests := []struct {
		name        string
		perSecond   float64
		probability float64
	}{
		{"zero rate", 0, 0.01},
		{"negative rate", -5, 0.01},
		{"nan rate", math.NaN(), 0.01},
		{"zero probability", 1000, 0},
		{"certain collision", 1000, 1},
		{"probability above one", 1000, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.CollisionYears(tt.perSecond, tt.probability)
			assert.ErrorIs(t, err, ErrInvalidEstimate)
		})
	}
}

func TestCollisionYears_LargeBudget(t *testing.T) {
	f, err := New(Config{EntropySize: 256})
	require.NoError(t, err)

	years, err := f.CollisionYears(1000, 0.01)
	require.NoError(t, err)
	assert.False(t, math.IsInf(years, 0))
	assert.InDelta(t, 1024+math.Log2(math.Sqrt(-2*math.Log1p(-0.01)))-math.Log2(1000*secondsPerYear), math.Log2(years), 1e-9)

	msg, err := f.CollisionProbability(1000, 0.01, nil)
	require.NoError(t, err)
	assert.NotContains(t, msg, "Inf")
}

func TestCollisionYears_Overflow(t *testing.T) {
	configs := []Config{
		{EntropySize: 1024},
		{Chars: 400},
	}

	for _, cfg := range configs {
		f, err := New(cfg)
		require.NoError(t, err)

		_, err = f.CollisionYears(1000, 0.01)
		assert.ErrorIs(t, err, ErrInvalidEstimate, "config %+v", cfg)

		_, err = f.CollisionProbability(1000, 0.01, nil)
		assert.ErrorIs(t, err, ErrInvalidEstimate, "config %+v", cfg)
	}
}

func TestCollisionProbability(t *testing.T) {
	f, err := New(Config{})
	require.NoError(t, err)

	msg, err := f.CollisionProbability(1000, 0.01, nil)
	require.NoError(t, err)
	assert.Equal(t, "If you generate 1000 ids per second, it would take 82.9 million years of work "+
		"to have a 1% chance of at least one collision", msg)

	msg, err = f.CollisionProbability(1000, 0.01, FormatterFunc(func(float64) string { return "many" }))
	require.NoError(t, err)
	assert.Contains(t, msg, "take many years")

	_, err = f.CollisionProbability(0, 0.01, nil)
	assert.ErrorIs(t, err, ErrInvalidEstimate)
}

func TestWords(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{999, "999"},
		{1e6, "1 million"},
		{1.5e9, "1.5 billion"},
		{82931286.1667, "82.9 million"},
		{2.25e12, "2.2 trillion"},
		{2e100, "2 googol"},
		{math.Inf(1), "+Inf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Words(tt.in), "input %v", tt.in)
	}
}
