package zuid

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

const secondsPerYear = 3600 * 24 * 365

// NumberFormatter renders a number for humans.
type NumberFormatter interface {
	FormatNumber(v float64) string
}

// FormatterFunc adapts a function to NumberFormatter.
type FormatterFunc func(v float64) string

func (fn FormatterFunc) FormatNumber(v float64) string { return fn(v) }

// ExpectedYears estimates how many years of generating perSecond ids it takes
// to reach the given collision probability among 2^bits equally likely ids,
// using the birthday bound n = sqrt(2 * 2^bits * -ln(1-p)). The result is
// +Inf when it exceeds the float64 range.
func ExpectedYears(bits, perSecond, probability float64) float64 {
	exp := bits/2 + math.Log2(math.Sqrt(-2*math.Log1p(-probability))) - math.Log2(perSecond*secondsPerYear)
	return math.Exp2(exp)
}

// CollisionYears applies ExpectedYears to the factory's entropy budget.
func (f *Factory) CollisionYears(perSecond, probability float64) (float64, error) {
	if !(perSecond > 0) || math.IsInf(perSecond, 1) {
		return 0, fmt.Errorf("%w: rate must be a positive number, got %v", ErrInvalidEstimate, perSecond)
	}
	if !(probability > 0 && probability < 1) {
		return 0, fmt.Errorf("%w: probability must be in (0, 1), got %v", ErrInvalidEstimate, probability)
	}
	years := ExpectedYears(f.budgetBits(), perSecond, probability)
	if math.IsInf(years, 0) || math.IsNaN(years) {
		return 0, fmt.Errorf("%w: %.0f bits at %v ids per second exceed the representable range",
			ErrInvalidEstimate, f.budgetBits(), perSecond)
	}
	return years, nil
}

// CollisionProbability describes CollisionYears in a sentence. A nil formatter
// selects Words.
func (f *Factory) CollisionProbability(perSecond, probability float64, nf NumberFormatter) (string, error) {
	years, err := f.CollisionYears(perSecond, probability)
	if err != nil {
		return "", err
	}
	if nf == nil {
		nf = FormatterFunc(Words)
	}
	return fmt.Sprintf("If you generate %s ids per second, it would take %s years of work to have a %s%% chance of at least one collision",
		strconv.FormatFloat(perSecond, 'f', -1, 64),
		nf.FormatNumber(years),
		strconv.FormatFloat(probability*100, 'f', -1, 64),
	), nil
}

var largeNumbers = []struct {
	exp  int
	name string
}{
	{6, "million"},
	{9, "billion"},
	{12, "trillion"},
	{15, "quadrillion"},
	{18, "quintillion"},
	{21, "sextillion"},
	{24, "septillion"},
	{27, "octillion"},
	{30, "nonillion"},
	{33, "decillion"},
	{100, "googol"},
}

// Words renders large numbers as "1.2 million", "83 billion" and so on, with
// one decimal kept. Numbers below a million are written with separators.
func Words(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	abs := math.Abs(v)
	if abs < 1e6 {
		return humanize.CommafWithDigits(v, 1)
	}
	if abs >= 1e103 {
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
	for i := len(largeNumbers) - 1; i >= 0; i-- {
		p := math.Pow10(largeNumbers[i].exp)
		if abs >= p {
			return humanize.FtoaWithDigits(v/p, 1) + " " + largeNumbers[i].name
		}
	}
	return humanize.CommafWithDigits(v, 1)
}
