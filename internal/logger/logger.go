package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap for diagnostic output. User-facing output goes
// through fmt in the commands; this carries fetch failures, per-record
// skips and timings.
type Logger struct {
	base *zap.Logger
}

func New(level string, pretty bool) *Logger {
	var cfg zap.Config
	if pretty {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	if lvl, ok := parseLevel(level); ok {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	base, err := cfg.Build(zap.AddStacktrace(zapcore.FatalLevel))
	if err != nil {
		panic(err)
	}

	return &Logger{base: base}
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{base: zap.NewNop()}
}

func parseLevel(lvl string) (zapcore.Level, bool) {
	switch lvl {
	case "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.base.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.base.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.base.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.base.Error(msg, fields...) }

func (l *Logger) Sync() error { return l.base.Sync() }

// Field constructors (re-exported from zap for convenience)
// This allows other packages to use structured logging without importing zap directly.
func String(key, val string) zap.Field                 { return zap.String(key, val) }
func Strings(key string, val []string) zap.Field       { return zap.Strings(key, val) }
func Int(key string, val int) zap.Field                { return zap.Int(key, val) }
func Duration(key string, val time.Duration) zap.Field { return zap.Duration(key, val) }
func Err(err error) zap.Field                          { return zap.Error(err) }
