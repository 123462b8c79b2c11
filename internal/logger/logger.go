package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLoggerConfig struct {
	IsDevelopment     bool
	Encoding          string // "json" or "console"
	Level             string
	DisableCaller     bool
	DisableStacktrace bool
}

// ZapLogger is the logging surface the rest of the application consumes.
type ZapLogger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Fatal(msg string, fields ...zap.Field)
	Sync() error
}

type zapLogger struct {
	base *zap.Logger
}

func NewZapLogger(cfg *ZapLoggerConfig) ZapLogger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	if cfg.IsDevelopment {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	// Logs go to stderr so they never interleave with the interactive
	// prompts on stdout.
	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)

	opts := []zap.Option{}
	if !cfg.DisableCaller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(1))
	}
	if !cfg.DisableStacktrace {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return &zapLogger{base: zap.New(core, opts...)}
}

func (l *zapLogger) Debug(msg string, fields ...zap.Field) { l.base.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...zap.Field)  { l.base.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...zap.Field)  { l.base.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...zap.Field) { l.base.Error(msg, fields...) }
func (l *zapLogger) Fatal(msg string, fields ...zap.Field) { l.base.Fatal(msg, fields...) }
func (l *zapLogger) Sync() error                           { return l.base.Sync() }

// NewNop returns a logger that discards everything. Meant for tests.
func NewNop() ZapLogger {
	return &zapLogger{base: zap.NewNop()}
}
