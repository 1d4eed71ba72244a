package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger handles logging.
type Logger interface {
	Debugf(tmpl string, args ...interface{})
	Errorf(tmpl string, args ...interface{})
	Infof(tmpl string, args ...interface{})
	Warnf(tmpl string, args ...interface{})
}

// NewNoop returns a Logger that discards everything.
func NewNoop() Logger {
	return zap.NewNop().Sugar()
}

// NewZap returns a console Logger writing to stderr along with a sync func
// to be called before exiting. Debug messages are only written when verbose is set.
func NewZap(verbose bool) (Logger, func(), error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Encoding:          `console`,
		DisableCaller:     !verbose,
		DisableStacktrace: true,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        `ts`,
			LevelKey:       `level`,
			NameKey:        `logger`,
			CallerKey:      `caller`,
			MessageKey:     `msg`,
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{`stderr`},
		ErrorOutputPaths: []string{`stderr`},
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return FromZap(l), func() { l.Sync() }, nil
}

// FromZap wraps an existing zap Logger.
func FromZap(l *zap.Logger) Logger {
	return l.Named(`nthline`).Sugar()
}
