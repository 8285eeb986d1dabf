// Package obslog holds the process-wide zap logger.
package obslog

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger = zap.NewNop()

// L returns the global logger. It is a no-op logger until Init is called.
func L() *zap.Logger { return globalLogger }

// Options controls logger construction.
type Options struct {
	Level  string // debug|info|warn|error
	Format string // console|json
	Caller bool
}

// OptionsFromEnv reads LOG_LEVEL, LOG_FORMAT and LOG_CALLER.
func OptionsFromEnv() Options {
	return Options{
		Level:  getenvDefault("LOG_LEVEL", "info"),
		Format: strings.ToLower(strings.TrimSpace(getenvDefault("LOG_FORMAT", "console"))),
		Caller: strings.EqualFold(getenvDefault("LOG_CALLER", "false"), "true"),
	}
}

// Init builds the global logger. Output goes to stderr so that stdout stays
// free for program output.
func Init(opts Options) *zap.Logger {
	globalLogger = New(opts, zapcore.AddSync(os.Stderr))
	return globalLogger
}

// InitFromEnv is Init(OptionsFromEnv()).
func InitFromEnv() *zap.Logger {
	return Init(OptionsFromEnv())
}

// New builds a logger writing to w.
func New(opts Options, w zapcore.WriteSyncer) *zap.Logger {
	var enc zapcore.Encoder
	switch opts.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(jsonEncoderConfig())
	default:
		enc = zapcore.NewConsoleEncoder(consoleEncoderConfig())
	}

	logger := zap.New(zapcore.NewCore(enc, w, ParseLevel(opts.Level)))
	if opts.Caller {
		logger = logger.WithOptions(zap.AddCaller())
	}
	return logger.WithOptions(zap.AddStacktrace(zapcore.ErrorLevel))
}

// Sync flushes the global logger.
func Sync() {
	_ = globalLogger.Sync()
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = " | "
	return cfg
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return cfg
}
