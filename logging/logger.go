package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures NewLogger.
type Options struct {
	// Development selects the coloured console encoder.
	Development bool

	// Level is the minimum level written to every output.
	Level zapcore.Level

	// FilePath enables a rotating JSON log file when non-empty.
	FilePath string

	// File tunes rotation of FilePath.
	File FileWriterConfig

	// Console receives console output. Defaults to stderr so that reports
	// written to stdout stay machine-readable.
	Console zapcore.WriteSyncer
}

// Logger wraps a zap.Logger and remembers how it was configured.
//
// Example:
//
//	logger, err := logging.NewLogger(logging.Options{Level: zapcore.InfoLevel})
//	if err != nil {
//	    return err
//	}
//	defer logger.Sync()
//
//	logger.Info("run started", zap.Int(logging.FieldRounds, 10))
type Logger struct {
	zap      *zap.Logger
	dev      bool
	filePath string
}

// NewLogger builds a Logger from opts. It fails when the directory holding
// FilePath does not exist.
func NewLogger(opts Options) (*Logger, error) {
	console := opts.Console
	if console == nil {
		console = zapcore.Lock(os.Stderr)
	}

	var file zapcore.WriteSyncer
	if opts.FilePath != "" {
		dir := filepath.Dir(opts.FilePath)
		if info, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("log directory %s: %w", dir, err)
		} else if !info.IsDir() {
			return nil, fmt.Errorf("log directory %s: not a directory", dir)
		}
		file = NewFileWriter(opts.FilePath, opts.File)
	}

	core := newCore(opts.Level, console, file, opts.Development)
	l := wrap(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)))
	l.dev = opts.Development
	l.filePath = opts.FilePath
	return l, nil
}

// NewWithCore wraps an existing core, typically an observer in tests.
func NewWithCore(core zapcore.Core) *Logger {
	return wrap(zap.New(core))
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return wrap(zap.NewNop())
}

func wrap(z *zap.Logger) *Logger {
	return &Logger{zap: z}
}

// Sync flushes buffered entries. Safe to call on a nil Logger.
func (l *Logger) Sync() error {
	if l == nil || l.zap == nil {
		return nil
	}
	return l.zap.Sync()
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.zap.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.zap.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }

// With returns a child logger that adds fields to every entry.
func (l *Logger) With(fields ...zap.Field) *Logger {
	child := wrap(l.zap.With(fields...))
	child.dev, child.filePath = l.dev, l.filePath
	return child
}

// Named returns a child logger with name appended to the logger name.
func (l *Logger) Named(name string) *Logger {
	child := wrap(l.zap.Named(name))
	child.dev, child.filePath = l.dev, l.filePath
	return child
}

// IsDevelopment reports whether the console uses the development encoder.
func (l *Logger) IsDevelopment() bool { return l.dev }

// LogFilePath returns the log file path, or "" when file output is off.
func (l *Logger) LogFilePath() string { return l.filePath }
