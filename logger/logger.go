package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *Logger

// Logger wraps zap.SugaredLogger so callers don't import zap directly.
type Logger struct {
	*zap.SugaredLogger
}

// skipLogger backs the package-level convenience functions, which add one
// wrapper frame that direct *Logger method calls do not have.
var skipLogger *zap.SugaredLogger

// Init initializes the global logger. Pipeline stages log human-readable
// summaries, so the development encoder is the default outside production.
func Init(service, level, env string) error {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if service != "" {
		config.InitialFields = map[string]interface{}{"service": service}
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := config.Build()
	if err != nil {
		return err
	}

	setGlobal(logger)
	return nil
}

func setGlobal(logger *zap.Logger) {
	globalLogger = &Logger{SugaredLogger: logger.Sugar()}
	skipLogger = logger.WithOptions(zap.AddCallerSkip(1)).Sugar()
}

// Get returns the global logger, falling back to a development logger
// so library code can log before Init runs (e.g. in tests).
func Get() *Logger {
	if globalLogger == nil {
		logger, _ := zap.NewDevelopment()
		setGlobal(logger)
	}
	return globalLogger
}

// With creates a child logger with additional fields.
func (l *Logger) With(args ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...)}
}

// Convenience functions that use the global logger.
func Debugf(template string, args ...interface{}) { skipped().Debugf(template, args...) }
func Infof(template string, args ...interface{})  { skipped().Infof(template, args...) }
func Warnf(template string, args ...interface{})  { skipped().Warnf(template, args...) }
func Errorf(template string, args ...interface{}) { skipped().Errorf(template, args...) }
func Fatalf(template string, args ...interface{}) { skipped().Fatalf(template, args...) }

func skipped() *zap.SugaredLogger {
	if skipLogger == nil {
		Get()
	}
	return skipLogger
}

// Sync flushes any buffered log entries.
func Sync() error {
	if globalLogger != nil {
		return globalLogger.SugaredLogger.Sync()
	}
	return nil
}
