package logging

import (
	"fmt"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// zapLogger wraps a single zap.Logger output (console or file) together
// with its level setter
type zapLogger struct {
	logger      *zap.Logger
	level       Level
	levelSetter *zap.AtomicLevel
	isTerminal  bool
}

func (zl *zapLogger) Debug(msg string, fields ...zap.Field) {
	if zl.isTerminal {
		msg = color.MagentaString(msg)
	}
	zl.logger.Debug(msg, fields...)
}

func (zl *zapLogger) Info(msg string, fields ...zap.Field) {
	zl.logger.Info(msg, fields...)
}

func (zl *zapLogger) Warn(msg string, fields ...zap.Field) {
	zl.logger.Warn(msg, fields...)
}

func (zl *zapLogger) Error(msg string, fields ...zap.Field) {
	zl.logger.Error(msg, fields...)
}

func (zl *zapLogger) Fatal(msg string, fields ...zap.Field) {
	zl.logger.Fatal(msg, fields...)
}

func (zl *zapLogger) With(fields ...zap.Field) *zapLogger {
	return &zapLogger{
		logger:      zl.logger.With(fields...),
		level:       zl.level,
		levelSetter: zl.levelSetter,
		isTerminal:  zl.isTerminal,
	}
}

func (zl *zapLogger) Log(level Level, msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf(msg, args...)
	switch level {
	case DebugLevel:
		zl.Debug(formattedMsg)
	case InfoLevel:
		zl.Info(formattedMsg)
	case WarnLevel:
		zl.Warn(formattedMsg)
	case ErrorLevel:
		zl.Error(formattedMsg)
	case FatalLevel:
		zl.Fatal(formattedMsg)
	}
}

func (zl *zapLogger) SetLogLevel(level Level) {
	zl.level = level
	if zl.levelSetter != nil {
		zl.levelSetter.SetLevel(getZapLevel(level))
	}
}

func (zl *zapLogger) Sync() error {
	return zl.logger.Sync()
}
