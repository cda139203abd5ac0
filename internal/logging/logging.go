package logging

import (
	"context"
	"os"
	"time"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zapcore.Field

type LoggerCtxKey struct{}

type zapLogger interface {
	Debug(msg string, fields ...zapcore.Field)
	Error(msg string, fields ...zapcore.Field)
	Info(msg string, fields ...zapcore.Field)
	Warn(msg string, fields ...zapcore.Field)
	Sync() error
	With(fields ...zapcore.Field) *zap.Logger
}

// Logger is a thin wrapper over zap so packages depend on a single
// logging surface.
type Logger struct {
	log  zapLogger
	base *zap.Logger
}

func insideContainer() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

// New builds a logger at the given level. Production environments get JSON
// output, everything else gets the colored development encoder.
func New(level string) (*Logger, error) {
	var logCfg zap.Config
	if insideContainer() {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, errs.New("invalid log level %q: %w", level, err)
		}
		logCfg.Level = lvl
	}

	logger, err := logCfg.Build()
	if err != nil {
		return nil, errs.New("could not create logger: %w", err)
	}

	return Wrap(logger), nil
}

// Wrap adapts an existing zap logger. A nil logger yields Nop. Callers are
// reported at the call site of the wrapper methods.
func Wrap(logger *zap.Logger) *Logger {
	if logger == nil {
		return Nop()
	}
	return &Logger{
		log:  logger.WithOptions(zap.AddCallerSkip(1)),
		base: logger,
	}
}

func Nop() *Logger {
	nop := zap.NewNop()
	return &Logger{log: nop, base: nop}
}

// Zap returns the underlying logger, for packages that take a *zap.Logger.
func (l Logger) Zap() *zap.Logger {
	return l.base
}

func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return Nop()
	}

	if l, ok := ctx.Value(LoggerCtxKey{}).(*Logger); ok {
		return l
	}

	return Nop()
}

func (l Logger) Debug(msg string, fields ...Field) {
	l.log.Debug(msg, fields...)
}

func (l Logger) Error(msg string, fields ...Field) {
	l.log.Error(msg, fields...)
}

func (l Logger) Info(msg string, fields ...Field) {
	l.log.Info(msg, fields...)
}

func (l Logger) Warn(msg string, fields ...Field) {
	l.log.Warn(msg, fields...)
}

func (l Logger) Sync() error {
	return l.log.Sync()
}

func (l Logger) With(fields ...Field) *Logger {
	return &Logger{
		log:  l.log.With(fields...),
		base: l.base.With(fields...),
	}
}

func (l *Logger) GetContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, LoggerCtxKey{}, l)
}
