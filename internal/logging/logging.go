// Package logging provides named zap loggers backed by one process-wide core.
// Init may be called at any time; loggers obtained earlier pick up the new
// level, format and writer on their next entry.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

const redactedPlaceholder = "[redacted]"

// Config selects the level, encoding and sink of the process logger.
type Config struct {
	// Level is a zap level name such as "debug" or "info". Empty means info.
	Level string

	// Format is "console", "json" or "logfmt". Empty means console.
	Format string

	// Writer receives encoded entries. Nil means os.Stderr.
	Writer io.Writer
}

var (
	mutex sync.RWMutex
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	core  zapcore.Core
)

func init() {
	if err := Init(Config{}); err != nil {
		panic(err)
	}
}

// Init rebuilds the process core from c.
func Init(c Config) error {
	lvl := zapcore.InfoLevel
	if c.Level != "" {
		var err error
		if lvl, err = zapcore.ParseLevel(c.Level); err != nil {
			return ecmath.NewError(ecmath.ErrInvalidConfig, "invalid log level %q", c.Level)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch strings.ToLower(c.Format) {
	case "", "console":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case "logfmt":
		encoder = zaplogfmt.NewEncoder(encoderConfig)
	default:
		return ecmath.NewError(ecmath.ErrInvalidConfig, "invalid log format %q", c.Format)
	}

	w := c.Writer
	if w == nil {
		w = os.Stderr
	}

	mutex.Lock()
	defer mutex.Unlock()
	level.SetLevel(lvl)
	core = zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), level)
	return nil
}

// MustGetLogger returns a logger named after the calling subsystem.
func MustGetLogger(name string) *zap.SugaredLogger {
	return zap.New(&switchCore{}).Named(name).Sugar()
}

// Redacted marks a field whose value is a secret. Callers log it instead of
// the value so the entry shows that something was deliberately left out.
func Redacted(key string) zap.Field {
	return zap.String(key, redactedPlaceholder)
}

// Placeholder returns the string that stands in for a redacted value.
func Placeholder() string {
	return redactedPlaceholder
}

func currentCore() zapcore.Core {
	mutex.RLock()
	defer mutex.RUnlock()
	return core
}

// switchCore forwards every entry to the process core installed by the most
// recent Init, replaying the fields accumulated through With.
type switchCore struct {
	fields []zapcore.Field
}

func (c *switchCore) Enabled(l zapcore.Level) bool {
	return level.Enabled(l)
}

func (c *switchCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &switchCore{fields: merged}
}

func (c *switchCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(e.Level) {
		return ce.AddCore(e, c)
	}
	return ce
}

func (c *switchCore) Write(e zapcore.Entry, fields []zapcore.Field) error {
	target := currentCore()
	if len(c.fields) > 0 {
		target = target.With(c.fields)
	}
	return target.Write(e, fields)
}

func (c *switchCore) Sync() error {
	return currentCore().Sync()
}
