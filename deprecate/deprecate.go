package deprecate

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/denismitr/discordkit/set"
)

var (
	mux    sync.Mutex
	logger = defaultLogger()
	warned = set.NewHashSet[string]()
)

func defaultLogger() *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zapcore.WarnLevel,
	)
	return zap.New(core)
}

// SetLogger routes deprecation warnings through the given logger.
// Passing nil silences them.
func SetLogger(l *zap.Logger) {
	mux.Lock()
	defer mux.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

type config struct {
	instead   string
	since     string
	removed   string
	reference string
	always    bool
}

type Option func(*config)

// Instead names the recommended replacement.
func Instead(name string) Option {
	return func(c *config) {
		c.instead = name
	}
}

// Since records the version that deprecated the feature.
func Since(version string) Option {
	return func(c *config) {
		c.since = version
	}
}

// Removed records the version that will drop the feature.
func Removed(version string) Option {
	return func(c *config) {
		c.removed = version
	}
}

// Reference points at a changelog entry or issue explaining the
// deprecation.
func Reference(url string) Option {
	return func(c *config) {
		c.reference = url
	}
}

// Always repeats the warning on every call instead of once per name.
func Always() Option {
	return func(c *config) {
		c.always = true
	}
}

// Warn emits a deprecation warning for the named feature. By default
// each name warns only once per process.
func Warn(name string, options ...Option) {
	var cfg config
	for _, o := range options {
		o(&cfg)
	}

	mux.Lock()
	defer mux.Unlock()

	if !cfg.always && !warned.Insert(name) {
		return
	}

	fields := []zap.Field{zap.String("name", name)}
	if cfg.since != "" {
		fields = append(fields, zap.String("since", cfg.since))
	}
	if cfg.removed != "" {
		fields = append(fields, zap.String("removed", cfg.removed))
	}
	if cfg.reference != "" {
		fields = append(fields, zap.String("reference", cfg.reference))
	}

	logger.Warn(message(name, cfg), fields...)
}

func message(name string, cfg config) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" is deprecated")
	if cfg.since != "" {
		b.WriteString(" since version ")
		b.WriteString(cfg.since)
	}
	if cfg.removed != "" {
		b.WriteString(" and will be removed in version ")
		b.WriteString(cfg.removed)
	}
	if cfg.instead != "" {
		b.WriteString(", consider using ")
		b.WriteString(cfg.instead)
		b.WriteString(" instead")
	}
	b.WriteString(".")
	if cfg.reference != "" {
		b.WriteString(" See ")
		b.WriteString(cfg.reference)
		b.WriteString(" for more information.")
	}
	return b.String()
}

// Reset forgets which names have warned already. Meant for tests.
func Reset() {
	mux.Lock()
	defer mux.Unlock()
	warned.Clear()
}
