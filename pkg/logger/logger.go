package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger логгер сервиса с printf-подобным API
type Logger struct {
	entry *logrus.Logger
	file  *os.File
}

// New создает логгер. Если filePath пустой, пишет только в stdout
func New(filePath string, level string) (*Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	l := logrus.New()
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	result := &Logger{entry: l}

	if filePath == "" {
		l.SetOutput(os.Stdout)
		return result, nil
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", filePath, err)
	}
	l.SetOutput(io.MultiWriter(os.Stdout, file))
	result.file = file

	return result, nil
}

// NewNop создает логгер, который ничего не пишет (для тестов)
func NewNop() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{entry: l}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.entry.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.entry.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.entry.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.entry.Errorf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.entry.Fatalf(format, v...)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
