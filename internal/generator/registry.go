package generator

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/weiawesome/zuid/internal/config"
	pkglog "github.com/weiawesome/zuid/pkg/log"
)

// Registry maps entity names to their generators. It is built once at
// startup and only read afterwards.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry builds one generator per configured entity. Any invalid entity
// fails the whole registry.
func NewRegistry(entities map[string]config.EntityConfig, metrics *Metrics, logger zerolog.Logger) (*Registry, error) {
	r := &Registry{generators: make(map[string]Generator, len(entities))}

	for name, ec := range entities {
		g, err := NewZUIDGenerator(name, ec.Factory())
		if err != nil {
			return nil, err
		}

		info := g.Describe()
		logger.Info().
			Str(pkglog.FieldEntity, name).
			Str(pkglog.FieldMode, info.Mode).
			Int(pkglog.FieldLength, info.Length).
			Int(pkglog.FieldBits, info.Bits).
			Bool(pkglog.FieldTimestamped, info.Timestamped).
			Msg("id factory initialized")

		if metrics != nil {
			r.Register(name, metrics.Instrument(name, g))
		} else {
			r.Register(name, g)
		}
	}

	return r, nil
}

// Register adds or replaces the generator of an entity. It must not be called
// once the registry is serving requests.
func (r *Registry) Register(name string, g Generator) {
	r.generators[name] = g
}

// Get returns the generator for an entity.
func (r *Registry) Get(name string) (Generator, error) {
	g, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown entity: %q", name)
	}
	return g, nil
}

// Names returns the entity names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
