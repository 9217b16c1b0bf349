package generator

import (
	"errors"
	"fmt"

	"github.com/weiawesome/zuid/pkg/zuid"
)

// Generator defines the interface for ID generation, validation, and parsing.
type Generator interface {
	Generate() (string, error)
	GenerateBatch(count int) ([]string, error)
	Validate(id string) (bool, string) // (valid, reason)
	Parse(id string) (*ParseResult, error)
	Describe() Info
	CollisionYears(perSecond, probability float64) (float64, string, error)
}

// ParseResult holds the parsed fields from an ID.
type ParseResult struct {
	Prefix        string `json:"prefix"`
	TimestampNs   int64  `json:"timestamp_ns,omitempty"` // timestamped entities only
	Timestamp     string `json:"timestamp,omitempty"`    // RFC 3339, timestamped entities only
	RandomPayload string `json:"random_payload,omitempty"`
	RandomValue   string `json:"random_value"` // decimal
	IDLength      int    `json:"id_length"`
}

// Info describes the factory behind an entity.
type Info struct {
	Name        string  `json:"name"`
	Prefix      string  `json:"prefix"`
	Mode        string  `json:"mode"` // "bytes" or "chars"
	Length      int     `json:"length"`
	Bits        int     `json:"bits"`
	EntropyBits float64 `json:"entropy_bits"`
	Timestamped bool    `json:"timestamped"`
	Charset     string  `json:"charset"`
}

// ZUIDGenerator adapts a zuid.Factory to Generator.
type ZUIDGenerator struct {
	name    string
	factory *zuid.Factory
}

// NewZUIDGenerator builds the factory for one entity.
func NewZUIDGenerator(name string, cfg zuid.Config) (*ZUIDGenerator, error) {
	f, err := zuid.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("entity %q: %w", name, err)
	}
	return &ZUIDGenerator{name: name, factory: f}, nil
}

func (g *ZUIDGenerator) Generate() (string, error) {
	return g.factory.Generate()
}

func (g *ZUIDGenerator) GenerateBatch(count int) ([]string, error) {
	return g.factory.GenerateBatch(count)
}

func (g *ZUIDGenerator) Validate(id string) (bool, string) {
	if err := g.factory.Validate(id); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func (g *ZUIDGenerator) Parse(id string) (*ParseResult, error) {
	p, err := g.factory.Parse(id)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{
		Prefix:        p.Prefix,
		RandomPayload: p.RandomHex,
		RandomValue:   p.Random.String(),
		IDLength:      g.factory.Length(),
	}
	if !p.Timestamp.IsZero() {
		result.TimestampNs = p.Timestamp.UnixNano()
		result.Timestamp = p.Timestamp.Format("2006-01-02T15:04:05.000000000Z07:00")
	}
	return result, nil
}

func (g *ZUIDGenerator) Describe() Info {
	cfg := g.factory.Config()
	mode := "bytes"
	if g.factory.CharMode() {
		mode = "chars"
	}
	return Info{
		Name:        g.name,
		Prefix:      cfg.Prefix,
		Mode:        mode,
		Length:      g.factory.Length(),
		Bits:        g.factory.Bits(),
		EntropyBits: g.factory.EntropyBits(),
		Timestamped: cfg.Timestamped,
		Charset:     cfg.Charset,
	}
}

// CollisionYears returns the estimate and its human-readable summary.
func (g *ZUIDGenerator) CollisionYears(perSecond, probability float64) (float64, string, error) {
	years, err := g.factory.CollisionYears(perSecond, probability)
	if err != nil {
		return 0, "", err
	}
	msg, err := g.factory.CollisionProbability(perSecond, probability, nil)
	if err != nil {
		return 0, "", err
	}
	return years, msg, nil
}

// IsClientError reports whether err was caused by caller input rather than
// by the service.
func IsClientError(err error) bool {
	return errors.Is(err, zuid.ErrInvalidID) ||
		errors.Is(err, zuid.ErrInvalidEstimate) ||
		errors.Is(err, zuid.ErrInvalidSize)
}
