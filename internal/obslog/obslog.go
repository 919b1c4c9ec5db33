// Package obslog builds the structured logger used for the CLI's internal
// diagnostics (search progress, sieve rejection counts, checkpoint
// load events). User-facing command output — the found prime, its
// byte/decimal dump — stays on fmt.Fprintf to stdout exactly as the
// teacher's CLI does; zap carries the diagnostics, not the primary
// output.
package obslog

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/oisee/bigprime/internal/config"
)

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
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

// New builds a *zap.Logger from cfg. A console (not JSON) encoder is used
// since this is an interactive CLI rather than a service emitting logs
// for a collector. When cfg.File is set, output is routed through a
// lumberjack.Logger so long searches don't grow an unbounded log file;
// otherwise output goes to stderr.
func New(cfg config.LogConfig) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderCfg)

	var sink zapcore.WriteSyncer
	if cfg.File != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		})
	} else {
		sink = zapcore.AddSync(os.Stderr)
	}

	core := zapcore.NewCore(encoder, sink, parseLevel(cfg.Level))
	return zap.New(core)
}
