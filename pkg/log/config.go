package log

import (
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration.
type Config struct {
	Level       string     `mapstructure:"level"`
	Pretty      bool       `mapstructure:"pretty"`
	ServiceName string     `mapstructure:"service_name"`
	File        FileConfig `mapstructure:"file"`
}

// FileConfig enables a rolling log file next to console output when Path is set.
type FileConfig struct {
	Path       string `mapstructure:"path"`
	Name       string `mapstructure:"name"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

var (
	global zerolog.Logger

	initMu      sync.Mutex
	initialized bool
)

func init() {
	// Safe default before Init() is called.
	global = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// New creates a configured zerolog.Logger. An empty level means info.
func New(cfg Config) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if cfg.Level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(cfg.Level); err != nil {
			return zerolog.Nop(), errors.Wrapf(err, "log level %q is not supported", cfg.Level)
		}
	}

	var console io.Writer = os.Stdout
	if cfg.Pretty {
		console = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}
	w := console

	if cfg.File.Path != "" {
		file, err := newRollingFile(cfg.File)
		if err != nil {
			return zerolog.Nop(), err
		}
		w = zerolog.MultiLevelWriter(console, file)
	}

	ctx := zerolog.New(w).Level(lvl).Hook(LevelCounter{}).With().Timestamp()
	if cfg.ServiceName != "" {
		ctx = ctx.Str(FieldService, cfg.ServiceName)
	}
	return ctx.Logger(), nil
}

// Init initialises the global logger and bridges stdlib log into it. Only the
// first successful call takes effect; a failed call leaves the default logger
// in place and may be retried.
func Init(cfg Config) error {
	initMu.Lock()
	defer initMu.Unlock()
	if initialized {
		return nil
	}

	l, err := New(cfg)
	if err != nil {
		return err
	}
	global = l
	initialized = true

	stdlog.SetFlags(0)
	stdlog.SetOutput(global.With().Str("source", "stdlog").Logger())
	return nil
}

// L returns the global logger.
func L() zerolog.Logger {
	return global
}

func newRollingFile(cfg FileConfig) (io.Writer, error) {
	if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
		return nil, errors.Wrapf(err, "can't create log directory %s", cfg.Path)
	}

	name := cfg.Name
	if name == "" {
		name = "zuid.log"
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Path, name),
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
	}, nil
}
