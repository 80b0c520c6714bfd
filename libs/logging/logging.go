package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/hypernetix/crtime/libs/config"
	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Level represents logging levels
type Level int

const (
	NoneLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
)

const (
	// ServiceField is a field that is added to the log message to identify
	// the service that the log message is from,
	// e.g. logging.MainLogger.WithField(logging.ServiceField, "crtime")
	ServiceField = "service"
)

// Logger writes to the console and optionally to a rotated log file,
// each with its own level
type Logger struct {
	ConsoleLogger *zapLogger
	FileLogger    *zapLogger
	FileName      string
	ConsoleLevel  Level
	FileLevel     Level
}

var MainLogger *Logger = NewLogger(InfoLevel, "", DebugLevel, 0, 0, 0).WithField(ServiceField, "main")

var forcedLogLevel *Level = nil

func ForceLogLevel(level Level) {
	forcedLogLevel = &level
	if MainLogger != nil {
		MainLogger.SetConsoleLogLevel(level)
		MainLogger.SetFileLogLevel(level)
	}
}

func CreateLogger(cfg *config.ConfigLogging, serviceName string) *Logger {
	// Resolve log file path to absolute path in .crtime directory
	logFilePath := resolveLogFilePath(cfg.File)

	return NewLogger(
		stringToLevel(cfg.ConsoleLevel),
		logFilePath,
		stringToLevel(cfg.FileLevel),
		cfg.MaxSizeMB,
		cfg.MaxBackups,
		cfg.MaxAgeDays,
	).WithField(ServiceField, serviceName)
}

func NewLogger(
	consoleLevel Level,
	fileName string,
	fileLevel Level,
	maxSizeMB int,
	maxBackups int,
	maxAgeDays int,
) *Logger {
	if forcedLogLevel != nil {
		consoleLevel = *forcedLogLevel
		fileLevel = *forcedLogLevel
	}

	var consoleLogger, fileLogger *zapLogger

	// Console logger setup
	if consoleLevel == NoneLevel {
		consoleLogger = &zapLogger{logger: zap.NewNop()}
	} else {
		atom := zap.NewAtomicLevel()
		atom.SetLevel(getZapLevel(consoleLevel))

		consoleEncoder := zapcore.NewConsoleEncoder(getConsoleEncoderConfig())
		consoleWriter := zapcore.AddSync(os.Stdout)
		consoleCore := zapcore.NewCore(consoleEncoder, consoleWriter, atom)
		consoleLogger = &zapLogger{
			logger:      zap.New(consoleCore),
			level:       consoleLevel,
			levelSetter: &atom,
			isTerminal:  isTerminal(),
		}
	}

	// File logger setup
	if fileLevel == NoneLevel || fileName == "" {
		fileLogger = &zapLogger{logger: zap.NewNop()}
	} else {
		atom := zap.NewAtomicLevel()
		atom.SetLevel(getZapLevel(fileLevel))

		// Ensure the log directory exists
		if err := os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
			// If we can't create the directory, log to stderr and continue
			fmt.Fprintf(os.Stderr, "Warning: Failed to create log directory %s: %v\n", filepath.Dir(fileName), err)
		}

		fileEncoder := zapcore.NewJSONEncoder(getFileEncoderConfig())
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   fileName,
			MaxSize:    maxSizeMB, // MB
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays, // days
		})
		fileCore := zapcore.NewCore(fileEncoder, fileWriter, atom)
		fileLogger = &zapLogger{
			logger:      zap.New(fileCore),
			level:       fileLevel,
			levelSetter: &atom,
			isTerminal:  false,
		}
	}

	return &Logger{
		ConsoleLogger: consoleLogger,
		FileLogger:    fileLogger,
		FileName:      fileName,
		ConsoleLevel:  consoleLevel,
		FileLevel:     fileLevel,
	}
}

// Internal log function
func logOne(logger *zapLogger, level Level, msg string, fields ...zap.Field) {
	if logger == nil {
		return
	}

	switch level {
	case DebugLevel:
		logger.Debug(msg, fields...)
	case InfoLevel:
		logger.Info(msg, fields...)
	case WarnLevel:
		logger.Warn(msg, fields...)
	case ErrorLevel:
		logger.Error(msg, fields...)
	case FatalLevel:
		logger.Fatal(msg, fields...)
	}
}

// Helper functions
func getConsoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	// Only use colored output if stdout is a terminal
	if isTerminal() {
		cfg.EncodeLevel = paddedColorLevelEncoder
	} else {
		cfg.EncodeLevel = paddedLevelEncoder
	}
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05.000")
	return cfg
}

// paddedLevelEncoder displays the level name with 5-char padding
func paddedLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.DebugLevel:
		enc.AppendString("DEBUG")
	case zapcore.InfoLevel:
		enc.AppendString("INFO ")
	case zapcore.WarnLevel:
		enc.AppendString("WARN ")
	case zapcore.ErrorLevel:
		enc.AppendString("ERROR")
	case zapcore.FatalLevel:
		enc.AppendString("FATAL")
	default:
		zapcore.CapitalLevelEncoder(l, enc)
	}
}

// paddedColorLevelEncoder displays the colored level name with 5-char padding
func paddedColorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.DebugLevel:
		enc.AppendString(color.MagentaString("DEBUG"))
	case zapcore.InfoLevel:
		enc.AppendString(color.CyanString("INFO "))
	case zapcore.WarnLevel:
		enc.AppendString(color.YellowString("WARN "))
	case zapcore.ErrorLevel:
		enc.AppendString(color.RedString("ERROR"))
	case zapcore.FatalLevel:
		enc.AppendString(color.RedString("FATAL"))
	default:
		zapcore.CapitalColorLevelEncoder(l, enc)
	}
}

// isTerminal checks if os.Stdout is a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func getFileEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = paddedLevelEncoder
	return cfg
}

func getZapLevel(level Level) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func stringToLevel(level string) Level {
	switch level {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	case "none":
		return NoneLevel
	default:
		return InfoLevel
	}
}

func levelToString(level Level) string {
	switch level {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	case NoneLevel:
		return "none"
	default:
		return "info"
	}
}

func Debug(msg string, args ...interface{}) {
	MainLogger.Log(DebugLevel, msg, args...)
}

func Info(msg string, args ...interface{}) {
	MainLogger.Log(InfoLevel, msg, args...)
}

func Warn(msg string, args ...interface{}) {
	MainLogger.Log(WarnLevel, msg, args...)
}

func Error(msg string, args ...interface{}) {
	MainLogger.Log(ErrorLevel, msg, args...)
}

func Fatal(msg string, args ...interface{}) {
	MainLogger.Log(FatalLevel, msg, args...)
}

func (l *Logger) GetMinLogLevel() Level {
	if l.ConsoleLevel < l.FileLevel {
		return l.ConsoleLevel
	}
	return l.FileLevel
}

func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	if l == nil {
		return nil
	}

	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return l.With(zapFields...)
}

func (l *Logger) With(fields ...zap.Field) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		ConsoleLogger: l.ConsoleLogger.With(fields...),
		FileLogger:    l.FileLogger.With(fields...),
		ConsoleLevel:  l.ConsoleLevel,
		FileLevel:     l.FileLevel,
		FileName:      l.FileName,
	}
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	if l == nil {
		return nil
	}
	return l.WithFields(map[string]interface{}{key: value})
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.Log(DebugLevel, msg, args...)
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.Log(InfoLevel, msg, args...)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.Log(WarnLevel, msg, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.Log(ErrorLevel, msg, args...)
}

func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.Log(FatalLevel, msg, args...)
}

func (l *Logger) Log(level Level, msg string, args ...interface{}) {
	if level > l.ConsoleLevel && level > l.FileLevel {
		return
	}

	msgToLog := fmt.Sprintf(msg, args...)

	logOne(l.ConsoleLogger, level, msgToLog)
	logOne(l.FileLogger, level, msgToLog)
}

func (l *Logger) SetConsoleLogLevel(level Level) {
	l.ConsoleLevel = level
	l.ConsoleLogger.SetLogLevel(level)
}

func (l *Logger) SetFileLogLevel(level Level) {
	l.FileLevel = level
	l.FileLogger.SetLogLevel(level)
}

// resolveLogFilePath converts relative log file paths to absolute paths in
// the configured server home directory
func resolveLogFilePath(filePath string) string {
	if filePath == "" {
		return ""
	}

	if filepath.IsAbs(filePath) {
		return filePath
	}

	cfg := config.Get()
	var homeDir string
	var err error

	if cfg != nil && cfg.Server.HomeDir != "" {
		homeDir, err = config.ResolveHomeDir(cfg.Server.HomeDir)
	} else {
		homeDir, err = config.GetCrtimeHomeDir()
	}

	if err != nil {
		// Fallback to original path if resolution fails
		fmt.Fprintf(os.Stderr, "Warning: Failed to resolve home directory: %v\n", err)
		return filePath
	}

	return filepath.Join(homeDir, filePath)
}
