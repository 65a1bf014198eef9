package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging facade used across the storefront. Services
// depend on this interface so tests can swap in a no-op implementation.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})
	With(args ...interface{}) Logger
}

type ZapLoggerConfig struct {
	Level      string
	Encoding   string
	TimeFormat string
}

type zapLogger struct {
	sugar *zap.SugaredLogger
	cfg   ZapLoggerConfig
}

func NewZapLogger(cfg ZapLoggerConfig) (Logger, error) {
	logLevel, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		logLevel = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	if cfg.TimeFormat != "" {
		encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	} else {
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), logLevel)
	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))

	return &zapLogger{sugar: l.Sugar(), cfg: cfg}, nil
}

func (l *zapLogger) Debug(args ...interface{})                    { l.sugar.Debug(args...) }
func (l *zapLogger) Debugf(template string, args ...interface{})  { l.sugar.Debugf(template, args...) }
func (l *zapLogger) Info(args ...interface{})                     { l.sugar.Info(args...) }
func (l *zapLogger) Infof(template string, args ...interface{})   { l.sugar.Infof(template, args...) }
func (l *zapLogger) Warn(args ...interface{})                     { l.sugar.Warn(args...) }
func (l *zapLogger) Warnf(template string, args ...interface{})   { l.sugar.Warnf(template, args...) }
func (l *zapLogger) Error(args ...interface{})                    { l.sugar.Error(args...) }
func (l *zapLogger) Errorf(template string, args ...interface{})  { l.sugar.Errorf(template, args...) }
func (l *zapLogger) Fatal(args ...interface{})                    { l.sugar.Fatal(args...) }
func (l *zapLogger) Fatalf(template string, args ...interface{})  { l.sugar.Fatalf(template, args...) }

func (l *zapLogger) With(args ...interface{}) Logger {
	return &zapLogger{sugar: l.sugar.With(args...), cfg: l.cfg}
}

// NoOp returns a logger that discards everything. Used in tests and as
// a safe default when a service is constructed without a logger.
func NoOp() Logger { return noOpLogger{} }

type noOpLogger struct{}

func (noOpLogger) Debug(args ...interface{})                   {}
func (noOpLogger) Debugf(template string, args ...interface{}) {}
func (noOpLogger) Info(args ...interface{})                    {}
func (noOpLogger) Infof(template string, args ...interface{})  {}
func (noOpLogger) Warn(args ...interface{})                    {}
func (noOpLogger) Warnf(template string, args ...interface{})  {}
func (noOpLogger) Error(args ...interface{})                   {}
func (noOpLogger) Errorf(template string, args ...interface{}) {}
func (noOpLogger) Fatal(args ...interface{})                   {}
func (noOpLogger) Fatalf(template string, args ...interface{}) {}
func (noOpLogger) With(args ...interface{}) Logger             { return noOpLogger{} }
