package cli

import (
	"github.com/spf13/cobra"

	"github.com/weiawesome/zuid/internal/config"
	"github.com/weiawesome/zuid/pkg/zuid"
)

// factoryFlags mirrors config.EntityConfig on the command line.
type factoryFlags struct {
	entity config.EntityConfig
}

func (f *factoryFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.entity.Prefix, "prefix", "", "string prepended to every id")
	fs.IntVar(&f.entity.Bytes, "bytes", 0, "random bytes per id, timestamp included (byte mode, default 16)")
	fs.IntVar(&f.entity.Length, "length", 0, "explicit total id length, prefix included (byte mode)")
	fs.IntVar(&f.entity.Chars, "chars", 0, "characters per id after the prefix (character mode)")
	fs.BoolVar(&f.entity.Timestamped, "timestamped", false, "start ids with a nanosecond timestamp so they sort by creation time")
	fs.StringVar(&f.entity.Charset, "charset", "base62", "preset (base62, base58, crockford32, base36, hex) or literal alphabet")
}

func (f *factoryFlags) factory() (*zuid.Factory, error) {
	return zuid.New(f.entity.Factory())
}
