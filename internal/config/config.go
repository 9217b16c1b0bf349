package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	pkgconfig "github.com/weiawesome/zuid/pkg/config"
	pkglog "github.com/weiawesome/zuid/pkg/log"
	"github.com/weiawesome/zuid/pkg/zuid"
)

// DefaultEntity is served when the configuration declares no entities.
const DefaultEntity = "default"

type Config struct {
	Server   ServerConfig
	Log      pkglog.Config
	Batch    BatchConfig
	Entities map[string]EntityConfig `validate:"required,dive"`
}

type ServerConfig struct {
	Host            string        `validate:"required"`
	Port            int           `validate:"gte=1,lte=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type BatchConfig struct {
	MaxCount int `mapstructure:"max_count" validate:"gte=1,lte=100000"`
}

// EntityConfig configures the id factory of one entity.
type EntityConfig struct {
	Prefix      string `mapstructure:"prefix" validate:"max=64"`
	Bytes       int    `mapstructure:"bytes" validate:"gte=0,lte=256"`
	Length      int    `mapstructure:"length" validate:"gte=0,lte=4096"`
	Chars       int    `mapstructure:"chars" validate:"gte=0,lte=256"`
	Timestamped bool   `mapstructure:"timestamped"`
	// Charset is a preset name (base62, base58, crockford32, base36, hex) or
	// a literal alphabet.
	Charset string `mapstructure:"charset"`
}

// Factory converts the entry into a zuid configuration.
func (e EntityConfig) Factory() zuid.Config {
	charset := e.Charset
	if preset, ok := zuid.LookupCharset(charset); ok {
		charset = preset
	}
	return zuid.Config{
		Prefix:      e.Prefix,
		EntropySize: e.Bytes,
		Length:      e.Length,
		Chars:       e.Chars,
		Timestamped: e.Timestamped,
		Charset:     charset,
	}
}

var validate = validator.New()

// Load reads config.yaml from configPath (or ./config) and the environment.
func Load(configPath string) (*Config, error) {
	v, err := pkgconfig.Load(configPath, "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("batch.max_count", 1000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.service_name", "zuid")
	v.SetDefault("log.file.max_size", 100)
	v.SetDefault("log.file.max_backups", 5)
	v.SetDefault("log.file.max_age", 28)

	// Override from environment
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if len(cfg.Entities) == 0 {
		cfg.Entities = map[string]EntityConfig{
			DefaultEntity: {Bytes: zuid.DefaultEntropySize, Charset: "base62"},
		}
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
