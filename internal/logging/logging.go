// Package logging sets up the process-wide zap logger.
//
// The terminal belongs to the TUI, so log output always goes to a file.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Setup opens path for appending, installs a JSON zap logger at level as the
// global logger and returns a function that flushes and closes it.
func Setup(path, level string) (func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := New(zapcore.AddSync(f), lvl)
	restore := zap.ReplaceGlobals(logger)

	return func() {
		_ = logger.Sync()
		restore()
		_ = f.Close()
	}, nil
}

// New builds a logger writing JSON lines to w
func New(w zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), w, level)
	return zap.New(core, zap.AddCaller()).With(zap.String("service", "schemegrip"))
}
