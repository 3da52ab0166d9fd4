package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Info(msg string)
	Error(msg string, err error)
	Warning(msg string)
	Close()

	// Zap exposes the underlying logger for structured fields (request logs).
	Zap() *zap.Logger
}

type zapLogger struct {
	mu      sync.Mutex
	logFile *os.File
	base    *zap.Logger
	log     *zap.Logger
}

// NewFileLogger writes JSON lines to <logDir>/<logPrefix>_<timestamp>.json.
// With alsoStderr the same entries are mirrored to stderr, which the server
// wants and the TUI must not have.
func NewFileLogger(logDir, logPrefix string, alsoStderr bool) (Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory '%s': %w", logDir, err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFilePath := filepath.Join(logDir, fmt.Sprintf("%s_%s.json", logPrefix, timestamp))

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", logFilePath, err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	sink := zapcore.AddSync(file)
	if alsoStderr {
		sink = zapcore.NewMultiWriteSyncer(sink, zapcore.Lock(os.Stderr))
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, zapcore.InfoLevel)
	base := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return &zapLogger{
		logFile: file,
		base:    base,
		log:     base.WithOptions(zap.AddCallerSkip(1)),
	}, nil
}

// NewNop is used by tests and anywhere a logger is optional.
func NewNop() Logger {
	nop := zap.NewNop()
	return &zapLogger{base: nop, log: nop}
}

func (l *zapLogger) Info(msg string) {
	l.log.Info(msg)
}

func (l *zapLogger) Error(msg string, err error) {
	l.log.Error(msg, zap.Error(err))
}

func (l *zapLogger) Warning(msg string) {
	l.log.Warn(msg)
}

func (l *zapLogger) Zap() *zap.Logger {
	return l.base
}

func (l *zapLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	_ = l.base.Sync()
	if l.logFile != nil {
		if err := l.logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
		}
		l.logFile = nil
	}
}
