package zuid

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// maxSymbolBase bounds charsets usable in character mode, where each symbol is
// drawn from a single random byte.
const maxSymbolBase = 255

// Entropy supplies the randomness a Factory consumes.
type Entropy interface {
	// Fill overwrites p with uniformly distributed random bytes.
	Fill(p []byte) error
	// Symbols returns n symbols drawn independently and uniformly from alphabet.
	Symbols(alphabet string, n int) (string, error)
}

// Clock returns the current wall-clock time.
type Clock func() time.Time

// CryptoEntropy returns the default source, backed by crypto/rand.
// It is safe for concurrent use.
func CryptoEntropy() Entropy {
	return cryptoEntropy{}
}

type cryptoEntropy struct{}

func (cryptoEntropy) Fill(p []byte) error {
	_, err := io.ReadFull(rand.Reader, p)
	return err
}

func (cryptoEntropy) Symbols(alphabet string, n int) (string, error) {
	return gonanoid.Generate(alphabet, n)
}

// ReaderEntropy draws every byte from r. It is as safe for concurrent use as r
// is. Tests use it with fixed byte sequences to get reproducible ids.
func ReaderEntropy(r io.Reader) Entropy {
	return readerEntropy{r: r}
}

type readerEntropy struct {
	r io.Reader
}

func (e readerEntropy) Fill(p []byte) error {
	_, err := io.ReadFull(e.r, p)
	return err
}

// Symbols rejects bytes at or above the largest multiple of the alphabet size
// so that every symbol keeps the same probability.
func (e readerEntropy) Symbols(alphabet string, n int) (string, error) {
	symbols := []rune(alphabet)
	base := len(symbols)
	if base < 2 || base > maxSymbolBase {
		return "", fmt.Errorf("alphabet must have between 2 and %d symbols, got %d", maxSymbolBase, base)
	}
	limit := 256 - 256%base

	out := make([]rune, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := io.ReadFull(e.r, buf[:n-len(out)]); err != nil {
			return "", err
		}
		for _, b := range buf[:n-len(out)] {
			if int(b) >= limit {
				continue
			}
			out = append(out, symbols[int(b)%base])
		}
	}
	return string(out), nil
}
